// Package letters drafts cancellation requests for traffic fines: either a
// complete formal letter or a list of arguments to contest the fine.
package letters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/store"
	"github.com/abhisek/finecheck/internal/verdict"
)

// ErrNoProvider is returned when a letter is not cached and no LLM is
// configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// Mode selects what to draft.
type Mode string

const (
	ModeFullLetter Mode = "full_letter"
	ModeArguments  Mode = "arguments"
)

// bullet prefixes each argument in the rendered body.
const bullet = "• "

// ParseMode accepts the mode names and their aliases ("auto", "letter" /
// "assisted", "bullet_points"). Empty selects the full letter.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full_letter", "letter", "auto":
		return ModeFullLetter, nil
	case "arguments", "bullet_points", "assisted":
		return ModeArguments, nil
	}
	return "", fmt.Errorf("unknown letter mode %q", s)
}

// Letter is a drafted cancellation request.
type Letter struct {
	ID           string         `json:"id"`
	ReportNumber string         `json:"report_number"`
	Mode         Mode           `json:"mode"`
	Locale       verdict.Locale `json:"locale"`
	Body         string         `json:"body"`
	Arguments    []string       `json:"arguments,omitempty"`
	Model        string         `json:"model"`
	Cached       bool           `json:"cached"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Config holds letter request settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the request settings used by the hosted app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}

// Service drafts and caches letters.
type Service struct {
	provider llm.Provider
	letters  store.LetterRepo
	cfg      Config
}

// NewService creates a letter service. provider may be nil.
func NewService(provider llm.Provider, letters store.LetterRepo, cfg Config) *Service {
	return &Service{provider: provider, letters: letters, cfg: cfg}
}

// Generate drafts a letter for the report. Letters are cached per report,
// mode and locale; additional information does not take part in the key.
func (s *Service) Generate(ctx context.Context, report fines.Report, info string, mode Mode, locale verdict.Locale) (*Letter, error) {
	locale = verdict.ParseLocale(string(locale))
	if mode != ModeArguments {
		mode = ModeFullLetter
	}

	rec, err := s.letters.Get(ctx, report.ReportNumber, string(mode), string(locale))
	switch {
	case err == nil:
		return fromRecord(rec), nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	if s.provider == nil {
		return nil, ErrNoProvider
	}

	userMsg, err := buildUserMessage(report, info, mode, locale)
	if err != nil {
		return nil, fmt.Errorf("build letter prompt: %w", err)
	}

	req := llm.Request{
		System: systemPrompts[locale],
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	l := &Letter{ReportNumber: report.ReportNumber, Mode: mode, Locale: locale}
	if mode == ModeArguments {
		req.Schema = ArgumentsSchema
		ctx = llm.WithPurpose(ctx, llm.PurposeContestArguments)
	} else {
		ctx = llm.WithPurpose(ctx, llm.PurposeCancellationLetter)
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate cancellation request: %w", err)
	}

	if mode == ModeArguments {
		args, err := decodeArguments(resp.Content)
		if err != nil {
			return nil, fmt.Errorf("generate cancellation request: %w", err)
		}
		l.Arguments = args
		l.Body = renderArguments(args)
	} else {
		l.Body = strings.TrimSpace(resp.Text())
		if l.Body == "" {
			return nil, fmt.Errorf("generate cancellation request: %w",
				&llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty letter")})
		}
	}

	l.Model = resp.Model
	if l.Model == "" {
		l.Model = s.provider.ModelID()
	}

	out := &store.LetterRecord{
		ReportNumber: l.ReportNumber,
		Mode:         string(l.Mode),
		Locale:       string(l.Locale),
		Body:         l.Body,
		Model:        l.Model,
	}
	if err := s.letters.Put(ctx, out); err != nil {
		return nil, fmt.Errorf("cache letter: %w", err)
	}
	l.ID = out.UID
	l.CreatedAt = out.CreatedAt
	return l, nil
}

func decodeArguments(raw json.RawMessage) ([]string, error) {
	if err := ArgumentsSchema.Validate(raw); err != nil {
		return nil, err
	}
	var out struct {
		Arguments []string `json:"arguments"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}
	args := make([]string, 0, len(out.Arguments))
	for _, a := range out.Arguments {
		a = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(a), strings.TrimSpace(bullet)))
		if a != "" {
			args = append(args, a)
		}
	}
	return args, nil
}

// renderArguments lays the arguments out as bullets separated by blank lines.
func renderArguments(args []string) string {
	items := make([]string, len(args))
	for i, a := range args {
		items[i] = bullet + a
	}
	return strings.Join(items, "\n\n")
}

// parseArguments reverses renderArguments.
func parseArguments(body string) []string {
	var args []string
	for _, line := range strings.Split(body, "\n") {
		if a, ok := strings.CutPrefix(strings.TrimSpace(line), bullet); ok {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return args
}

func fromRecord(rec *store.LetterRecord) *Letter {
	l := &Letter{
		ID:           rec.UID,
		ReportNumber: rec.ReportNumber,
		Mode:         Mode(rec.Mode),
		Locale:       verdict.ParseLocale(rec.Locale),
		Body:         rec.Body,
		Model:        rec.Model,
		Cached:       true,
		CreatedAt:    rec.CreatedAt,
	}
	if l.Mode == ModeArguments {
		l.Arguments = parseArguments(rec.Body)
	}
	return l
}
