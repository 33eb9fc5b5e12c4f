package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var analysisColumns = []string{
	"id", "uid", "report_number", "locale", "category", "summary", "key_points",
	"recommendation", "raw_text", "model", "created_at",
}

type analysisRepo struct {
	db *sql.DB
}

func (r *analysisRepo) Get(ctx context.Context, reportNumber, locale string) (*AnalysisRecord, error) {
	query, args := sqlite.Select(analysisColumns...).
		From(sqlite.Table("analyses")).
		Where(entsql.And(
			entsql.EQ("report_number", reportNumber),
			entsql.EQ("locale", locale),
		)).
		Query()

	var (
		a         AnalysisRecord
		keyPoints string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.UID, &a.ReportNumber, &a.Locale,
		&a.Category, &a.Summary, &keyPoints, &a.Recommendation, &a.RawText, &a.Model, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %s/%s: %w", reportNumber, locale, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis %s/%s: %w", reportNumber, locale, err)
	}
	if err := json.Unmarshal([]byte(keyPoints), &a.KeyPoints); err != nil {
		return nil, fmt.Errorf("decode key points: %w", err)
	}
	return &a, nil
}

func (r *analysisRepo) Put(ctx context.Context, a *AnalysisRecord) error {
	if a.UID == "" {
		a.UID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	keyPoints := a.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}
	kp, err := json.Marshal(keyPoints)
	if err != nil {
		return fmt.Errorf("encode key points: %w", err)
	}

	query, args := sqlite.Insert("analyses").
		Columns(analysisColumns[1:]...).
		Values(a.UID, a.ReportNumber, a.Locale, a.Category, a.Summary, string(kp),
			a.Recommendation, a.RawText, a.Model, a.CreatedAt).
		OnConflict(
			entsql.ConflictColumns("report_number", "locale"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save analysis %s/%s: %w", a.ReportNumber, a.Locale, err)
	}
	return nil
}

func (r *analysisRepo) DeleteByReport(ctx context.Context, reportNumber string) error {
	query, args := sqlite.Delete("analyses").
		Where(entsql.EQ("report_number", reportNumber)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete analyses of %s: %w", reportNumber, err)
	}
	return nil
}
