package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var letterColumns = []string{
	"id", "uid", "report_number", "mode", "locale", "body", "model", "created_at",
}

type letterRepo struct {
	db *sql.DB
}

func (r *letterRepo) Get(ctx context.Context, reportNumber, mode, locale string) (*LetterRecord, error) {
	query, args := sqlite.Select(letterColumns...).
		From(sqlite.Table("letters")).
		Where(entsql.And(
			entsql.EQ("report_number", reportNumber),
			entsql.EQ("mode", mode),
			entsql.EQ("locale", locale),
		)).
		Query()

	var l LetterRecord
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.UID, &l.ReportNumber,
		&l.Mode, &l.Locale, &l.Body, &l.Model, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("letter %s/%s/%s: %w", reportNumber, mode, locale, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get letter: %w", err)
	}
	return &l, nil
}

func (r *letterRepo) Put(ctx context.Context, l *LetterRecord) error {
	if l.UID == "" {
		l.UID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	query, args := sqlite.Insert("letters").
		Columns(letterColumns[1:]...).
		Values(l.UID, l.ReportNumber, l.Mode, l.Locale, l.Body, l.Model, l.CreatedAt).
		OnConflict(
			entsql.ConflictColumns("report_number", "mode", "locale"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save letter %s: %w", l.ReportNumber, err)
	}
	return nil
}

func (r *letterRepo) DeleteByReport(ctx context.Context, reportNumber string) error {
	query, args := sqlite.Delete("letters").
		Where(entsql.EQ("report_number", reportNumber)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete letters of %s: %w", reportNumber, err)
	}
	return nil
}
