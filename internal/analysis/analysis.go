// Package analysis asks an LLM to assess a fine, classifies the answer into
// a verdict and caches the result per report and locale.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/store"
	"github.com/abhisek/finecheck/internal/verdict"
)

// ErrNoProvider is returned when an analysis needs the LLM but none is
// configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// Classification event sources.
const (
	SourceAnalysis = "analysis"
	SourceManual   = "manual"
)

// Analysis is the parsed assessment of one fine in one locale.
type Analysis struct {
	ID           string          `json:"id"`
	ReportNumber string          `json:"report_number"`
	Locale       verdict.Locale  `json:"locale"`
	Summary      string          `json:"summary"`
	Verdict      verdict.Verdict `json:"verdict"`
	RawText      string          `json:"raw_text"`
	Model        string          `json:"model"`
	Cached       bool            `json:"cached"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Config holds analysis request settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the request settings used by the hosted app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1000,
		Temperature: 0.7,
	}
}

// Service runs and caches fine analyses.
type Service struct {
	provider   llm.Provider
	analyses   store.AnalysisRepo
	events     store.EventRepo
	classifier *verdict.Classifier
	cfg        Config
}

// NewService creates an analysis service. provider may be nil, in which
// case only cached analyses and offline classification are available.
// classifier defaults to verdict.Default().
func NewService(provider llm.Provider, analyses store.AnalysisRepo, events store.EventRepo, classifier *verdict.Classifier, cfg Config) *Service {
	if classifier == nil {
		classifier = verdict.Default()
	}
	return &Service{
		provider:   provider,
		analyses:   analyses,
		events:     events,
		classifier: classifier,
		cfg:        cfg,
	}
}

// Classifier returns the classifier the service parses answers with.
func (s *Service) Classifier() *verdict.Classifier { return s.classifier }

// Analyze returns the analysis of a report in the given locale. A cached
// analysis is returned unless refresh is set.
func (s *Service) Analyze(ctx context.Context, report fines.Report, locale verdict.Locale, refresh bool) (*Analysis, error) {
	locale = verdict.ParseLocale(string(locale))

	if !refresh {
		rec, err := s.analyses.Get(ctx, report.ReportNumber, string(locale))
		switch {
		case err == nil:
			return fromRecord(rec), nil
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	}

	if s.provider == nil {
		return nil, ErrNoProvider
	}

	userMsg, err := buildUserMessage(report, locale)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeFineAnalysis)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompts[locale],
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("fine analysis: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("fine analysis: %w", &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty response")})
	}

	a := s.Parse(text, locale)
	a.ReportNumber = report.ReportNumber
	a.Model = resp.Model
	if a.Model == "" {
		a.Model = s.provider.ModelID()
	}

	rec := toRecord(a)
	if err := s.analyses.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("cache analysis: %w", err)
	}
	a.ID = rec.UID
	a.CreatedAt = rec.CreatedAt

	s.record(ctx, SourceAnalysis, report.ReportNumber, text, a.Verdict)
	return a, nil
}

// Parse turns an analysis text into an Analysis. The text is classified once.
func (s *Service) Parse(text string, locale verdict.Locale) *Analysis {
	locale = verdict.ParseLocale(string(locale))
	return &Analysis{
		Locale:  locale,
		Summary: s.classifier.ExtractSummary(text),
		Verdict: s.classifier.Classify(text, locale),
		RawText: text,
	}
}

// Classify classifies offline text and records the decision.
func (s *Service) Classify(ctx context.Context, text string, locale verdict.Locale) verdict.Verdict {
	v := s.classifier.Classify(text, locale)
	s.record(ctx, SourceManual, "", text, v)
	return v
}

func (s *Service) record(ctx context.Context, source, report, text string, v verdict.Verdict) {
	if s.events == nil {
		return
	}
	err := s.events.AppendClassification(ctx, store.ClassificationEventData{
		Source:       source,
		ReportNumber: report,
		Locale:       string(v.Locale),
		Category:     string(v.Category),
		Pass:         v.Trace.Pass,
		Terms:        v.Trace.Terms,
		Strength:     v.Trace.Strength,
		TextLength:   len([]rune(text)),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log classification event: %v\n", err)
	}
}

func toRecord(a *Analysis) *store.AnalysisRecord {
	return &store.AnalysisRecord{
		ReportNumber:   a.ReportNumber,
		Locale:         string(a.Locale),
		Category:       string(a.Verdict.Category),
		Summary:        a.Summary,
		KeyPoints:      a.Verdict.KeyPoints,
		Recommendation: a.Verdict.Recommendation,
		RawText:        a.RawText,
		Model:          a.Model,
	}
}

// fromRecord rebuilds a cached analysis. The trace is not stored.
func fromRecord(rec *store.AnalysisRecord) *Analysis {
	category, err := verdict.ParseCategory(rec.Category)
	if err != nil {
		category = verdict.CategoryPartial
	}
	keyPoints := rec.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}
	locale := verdict.ParseLocale(rec.Locale)
	return &Analysis{
		ID:           rec.UID,
		ReportNumber: rec.ReportNumber,
		Locale:       locale,
		Summary:      rec.Summary,
		Verdict: verdict.Verdict{
			Category:       category,
			KeyPoints:      keyPoints,
			Recommendation: rec.Recommendation,
			Locale:         locale,
			Trace:          verdict.Match{Pass: "cache"},
		},
		RawText:   rec.RawText,
		Model:     rec.Model,
		Cached:    true,
		CreatedAt: rec.CreatedAt,
	}
}
