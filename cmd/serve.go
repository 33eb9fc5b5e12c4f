package cmd

import (
	"os/signal"
	"syscall"

	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		deps := server.Deps{
			Fines:    a.fines,
			Analysis: a.analysis,
			Letters:  a.letters,
			Events:   a.store.EventRepo(),
			Locale:   a.locale,
			Version:  version,
		}
		if a.provider != nil {
			deps.Provider = llm.ProviderName(a.provider)
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.ServerAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.Serve(ctx, addr, server.NewEngine(deps))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address or port (default from config, :8080)")
}
