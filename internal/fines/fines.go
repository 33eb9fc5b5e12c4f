// Package fines manages the registry of traffic fine reports.
package fines

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/finecheck/internal/store"
)

// ErrInvalidReport is returned when a report lacks required fields.
var ErrInvalidReport = errors.New("invalid fine report")

// Report is one traffic fine as entered by the recipient.
type Report struct {
	ReportNumber string    `json:"report_number"`
	Date         string    `json:"date"`
	Location     string    `json:"location"`
	Violation    string    `json:"violation"`
	Amount       string    `json:"amount"`
	DueDate      string    `json:"due_date,omitempty"`
	OfficerName  string    `json:"officer_name,omitempty"`
	BadgeNumber  string    `json:"badge_number,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// Validate checks the required fields. The returned error wraps
// ErrInvalidReport and names every missing field.
func (r *Report) Validate() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"report_number", r.ReportNumber},
		{"date", r.Date},
		{"location", r.Location},
		{"violation", r.Violation},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidReport, strings.Join(missing, ", "))
	}
	return nil
}

// Filled returns a copy whose empty optional fields read placeholder.
func (r Report) Filled(placeholder string) Report {
	for _, f := range []*string{&r.Amount, &r.DueDate, &r.OfficerName, &r.BadgeNumber} {
		if strings.TrimSpace(*f) == "" {
			*f = placeholder
		}
	}
	return r
}

func (r *Report) normalize() {
	r.ReportNumber = strings.TrimSpace(r.ReportNumber)
	r.Date = strings.TrimSpace(r.Date)
	r.Location = strings.TrimSpace(r.Location)
	r.Violation = strings.TrimSpace(r.Violation)
	r.Amount = strings.TrimSpace(r.Amount)
	r.DueDate = strings.TrimSpace(r.DueDate)
	r.OfficerName = strings.TrimSpace(r.OfficerName)
	r.BadgeNumber = strings.TrimSpace(r.BadgeNumber)
	r.Description = strings.TrimSpace(r.Description)
}

func fromStore(f *store.Fine) Report {
	return Report{
		ReportNumber: f.ReportNumber,
		Date:         f.Date,
		Location:     f.Location,
		Violation:    f.Violation,
		Amount:       f.Amount,
		DueDate:      f.DueDate,
		OfficerName:  f.OfficerName,
		BadgeNumber:  f.BadgeNumber,
		Description:  f.Description,
		CreatedAt:    f.CreatedAt,
	}
}

func (r *Report) toStore() *store.Fine {
	return &store.Fine{
		ReportNumber: r.ReportNumber,
		Date:         r.Date,
		Location:     r.Location,
		Violation:    r.Violation,
		Amount:       r.Amount,
		DueDate:      r.DueDate,
		OfficerName:  r.OfficerName,
		BadgeNumber:  r.BadgeNumber,
		Description:  r.Description,
	}
}

// Service is the fine registry.
type Service struct {
	fines    store.FineRepo
	analyses store.AnalysisRepo
	letters  store.LetterRepo
}

// NewService wires the registry. analyses and letters may be nil; when set,
// removing or replacing a fine drops its cached analyses and letters.
func NewService(fines store.FineRepo, analyses store.AnalysisRepo, letters store.LetterRepo) *Service {
	return &Service{fines: fines, analyses: analyses, letters: letters}
}

// Add validates and stores a report. A report with an existing number
// replaces the stored one.
func (s *Service) Add(ctx context.Context, r Report) (Report, error) {
	r.normalize()
	if err := r.Validate(); err != nil {
		return Report{}, err
	}

	_, err := s.fines.Get(ctx, r.ReportNumber)
	replacing := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return Report{}, fmt.Errorf("lookup fine %s: %w", r.ReportNumber, err)
	}

	if err := s.fines.Put(ctx, r.toStore()); err != nil {
		return Report{}, fmt.Errorf("store fine %s: %w", r.ReportNumber, err)
	}
	if replacing {
		if err := s.dropCached(ctx, r.ReportNumber); err != nil {
			return Report{}, err
		}
	}
	return s.Get(ctx, r.ReportNumber)
}

// Get returns the report with the given number. Unknown numbers return an
// error wrapping store.ErrNotFound.
func (s *Service) Get(ctx context.Context, reportNumber string) (Report, error) {
	f, err := s.fines.Get(ctx, strings.TrimSpace(reportNumber))
	if err != nil {
		return Report{}, err
	}
	return fromStore(f), nil
}

// List returns every report, most recently updated first.
func (s *Service) List(ctx context.Context) ([]Report, error) {
	rows, err := s.fines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fines: %w", err)
	}
	out := make([]Report, 0, len(rows))
	for i := range rows {
		out = append(out, fromStore(&rows[i]))
	}
	return out, nil
}

// Remove deletes a report together with its cached analyses and letters.
func (s *Service) Remove(ctx context.Context, reportNumber string) error {
	reportNumber = strings.TrimSpace(reportNumber)
	if err := s.fines.Delete(ctx, reportNumber); err != nil {
		return err
	}
	return s.dropCached(ctx, reportNumber)
}

func (s *Service) dropCached(ctx context.Context, reportNumber string) error {
	if s.analyses != nil {
		if err := s.analyses.DeleteByReport(ctx, reportNumber); err != nil {
			return fmt.Errorf("drop analyses for %s: %w", reportNumber, err)
		}
	}
	if s.letters != nil {
		if err := s.letters.DeleteByReport(ctx, reportNumber); err != nil {
			return fmt.Errorf("drop letters for %s: %w", reportNumber, err)
		}
	}
	return nil
}
