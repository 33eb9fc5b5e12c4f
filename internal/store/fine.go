package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var fineColumns = []string{
	"id", "report_number", "date", "location", "violation", "amount", "due_date",
	"officer_name", "badge_number", "description", "created_at", "updated_at",
}

type fineRepo struct {
	db *sql.DB
}

func (r *fineRepo) Put(ctx context.Context, f *Fine) error {
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now

	query, args := sqlite.Insert("fines").
		Columns(fineColumns[1:]...).
		Values(f.ReportNumber, f.Date, f.Location, f.Violation, f.Amount, f.DueDate,
			f.OfficerName, f.BadgeNumber, f.Description, f.CreatedAt, f.UpdatedAt).
		OnConflict(
			entsql.ConflictColumns("report_number"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				for _, c := range fineColumns[2:] {
					if c != "created_at" {
						u.SetExcluded(c)
					}
				}
			}),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save fine %s: %w", f.ReportNumber, err)
	}
	return nil
}

func (r *fineRepo) Get(ctx context.Context, reportNumber string) (*Fine, error) {
	query, args := sqlite.Select(fineColumns...).
		From(sqlite.Table("fines")).
		Where(entsql.EQ("report_number", reportNumber)).
		Query()

	f, err := scanFine(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fine %s: %w", reportNumber, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get fine %s: %w", reportNumber, err)
	}
	return f, nil
}

func (r *fineRepo) List(ctx context.Context) ([]Fine, error) {
	query, args := sqlite.Select(fineColumns...).
		From(sqlite.Table("fines")).
		OrderBy(entsql.Desc("updated_at"), entsql.Desc("id")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fines: %w", err)
	}
	defer rows.Close()

	var out []Fine
	for rows.Next() {
		f, err := scanFine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fine: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *fineRepo) Delete(ctx context.Context, reportNumber string) error {
	query, args := sqlite.Delete("fines").
		Where(entsql.EQ("report_number", reportNumber)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete fine %s: %w", reportNumber, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("fine %s: %w", reportNumber, ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFine(s rowScanner) (*Fine, error) {
	var f Fine
	err := s.Scan(&f.ID, &f.ReportNumber, &f.Date, &f.Location, &f.Violation, &f.Amount,
		&f.DueDate, &f.OfficerName, &f.BadgeNumber, &f.Description, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
