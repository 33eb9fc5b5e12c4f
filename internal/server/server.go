// Package server exposes the fine registry, the classifier and the LLM
// flows over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/finecheck/internal/analysis"
	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/letters"
	"github.com/abhisek/finecheck/internal/server/middleware"
	"github.com/abhisek/finecheck/internal/store"
	"github.com/abhisek/finecheck/internal/telemetry"
	"github.com/abhisek/finecheck/internal/verdict"
)

// Deps are the services the API serves.
type Deps struct {
	Fines    *fines.Service
	Analysis *analysis.Service
	Letters  *letters.Service
	Events   store.EventRepo

	// Locale is used when a request names none.
	Locale verdict.Locale

	// Provider names the configured LLM provider; empty when none.
	Provider string
	Version  string
}

// NewEngine builds the gin engine with middleware and routes registered.
func NewEngine(d Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	h := &handler{deps: d}
	h.registerRoutes(engine.Group("/api/v1"))
	return engine
}

// Addr returns a normalized listen address for the given port or address.
func Addr(addr string) string {
	if addr == "" {
		return ":8080"
	}
	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}
	return ":" + addr
}

// Serve runs the API until ctx is canceled, then drains in-flight requests.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              Addr(addr),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	telemetry.Info("server.stop", nil)
	return srv.Shutdown(shutdownCtx)
}
