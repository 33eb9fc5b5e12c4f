package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

var classificationColumns = []string{
	"id", "sequence", "timestamp", "source", "report_number", "locale", "category",
	"pass", "terms", "strength", "text_length",
}

func (r *eventRepo) AppendClassification(ctx context.Context, data ClassificationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	terms := data.Terms
	if terms == nil {
		terms = []string{}
	}
	encoded, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("encode terms: %w", err)
	}

	query, args := sqlite.Insert("classification_events").
		Columns(classificationColumns[1:]...).
		Values(seqNum, time.Now().UTC(), data.Source, data.ReportNumber, data.Locale,
			data.Category, data.Pass, string(encoded), data.Strength, data.TextLength).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save classification event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryClassifications(ctx context.Context, opts QueryOpts) ([]ClassificationEvent, error) {
	sel := sqlite.Select(classificationColumns...).From(sqlite.Table("classification_events"))
	query, args := applyQueryOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classification events: %w", err)
	}
	defer rows.Close()

	var out []ClassificationEvent
	for rows.Next() {
		var (
			e     ClassificationEvent
			terms string
		)
		err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.Source, &e.ReportNumber,
			&e.Locale, &e.Category, &e.Pass, &terms, &e.Strength, &e.TextLength)
		if err != nil {
			return nil, fmt.Errorf("scan classification event: %w", err)
		}
		if err := json.Unmarshal([]byte(terms), &e.Terms); err != nil {
			return nil, fmt.Errorf("decode terms: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
