package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/finecheck/internal/analysis"
	"github.com/abhisek/finecheck/internal/demo"
	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/letters"
	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/store"
	"github.com/abhisek/finecheck/internal/verdict"
	"github.com/spf13/cobra"
)

// app bundles the store and the services built on top of it.
type app struct {
	store    *store.Store
	provider llm.Provider
	locale   verdict.Locale

	fines    *fines.Service
	analysis *analysis.Service
	letters  *letters.Service
}

// openApp opens the store and builds the services. The LLM provider is
// optional: when it cannot be built the flows that need it report
// no_provider and everything else keeps working.
func openApp(cmd *cobra.Command) (*app, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	tuning, err := cfg.Tuning()
	if err != nil {
		st.Close()
		return nil, err
	}

	a := &app{store: st, locale: resolveLocale(cmd)}
	a.provider, err = buildProvider(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Analysis and letters will be unavailable.")
		a.provider = nil
	}

	a.fines = fines.NewService(st.FineRepo(), st.AnalysisRepo(), st.LetterRepo())
	a.analysis = analysis.NewService(a.provider, st.AnalysisRepo(), st.EventRepo(),
		verdict.New(verdict.WithTuning(tuning)),
		analysis.Config{MaxTokens: cfg.LLM.MaxTokens, Temperature: cfg.LLM.Temperature})
	a.letters = letters.NewService(a.provider, st.LetterRepo(),
		letters.Config{MaxTokens: cfg.LLM.LetterMaxTokens, Temperature: cfg.LLM.Temperature})
	return a, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// buildProvider resolves the configured provider. "demo" answers offline
// from canned documents and is still logged like a real vendor.
func buildProvider(ctx context.Context, events store.EventRepo) (llm.Provider, error) {
	p := cfg.LLM.Config
	if p.Provider == "demo" {
		return llm.WithLogging(demo.New(), events), nil
	}
	return llm.NewProvider(ctx, p, events)
}
