package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/finecheck/internal/analysis"
	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/letters"
	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/server/respond"
	"github.com/abhisek/finecheck/internal/store"
	"github.com/abhisek/finecheck/internal/verdict"
)

type handler struct {
	deps Deps
}

func (h *handler) registerRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.health)
	api.POST("/classify", h.classify)
	api.GET("/classifications", h.classifications)

	api.GET("/fines", h.listFines)
	api.POST("/fines", h.addFine)
	api.GET("/fines/:report", h.getFine)
	api.DELETE("/fines/:report", h.removeFine)
	api.POST("/fines/:report/analysis", h.analyze)
	api.POST("/fines/:report/letters", h.letter)
}

func (h *handler) health(c *gin.Context) {
	respond.OK(c, gin.H{
		"ok":       true,
		"version":  h.deps.Version,
		"provider": h.deps.Provider,
	})
}

// locale picks the request locale: explicit value, then Accept-Language,
// then the server default.
func (h *handler) locale(c *gin.Context, explicit string) verdict.Locale {
	if explicit == "" {
		explicit = c.Query("locale")
	}
	if explicit == "" {
		if al := c.GetHeader("Accept-Language"); al != "" {
			explicit = strings.TrimSpace(strings.Split(al, ",")[0])
		}
	}
	if explicit == "" {
		return verdict.ParseLocale(string(h.deps.Locale))
	}
	return verdict.ParseLocale(explicit)
}

type classifyRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

func (h *handler) classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "body must be a JSON object with a text field")
		return
	}
	v := h.deps.Analysis.Classify(c.Request.Context(), req.Text, h.locale(c, req.Locale))
	respond.OK(c, v)
}

func (h *handler) classifications(c *gin.Context) {
	if h.deps.Events == nil {
		respond.OK(c, gin.H{"events": []classificationJSON{}})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
		return
	}
	events, err := h.deps.Events.QueryClassifications(c.Request.Context(), store.QueryOpts{Limit: limit})
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]classificationJSON, 0, len(events))
	for _, e := range events {
		out = append(out, classificationJSON{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			Source:       e.Source,
			ReportNumber: e.ReportNumber,
			Locale:       e.Locale,
			Category:     e.Category,
			Pass:         e.Pass,
			Terms:        e.Terms,
			Strength:     e.Strength,
			TextLength:   e.TextLength,
		})
	}
	respond.OK(c, gin.H{"events": out})
}

type classificationJSON struct {
	Sequence     int64     `json:"sequence"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	ReportNumber string    `json:"report_number,omitempty"`
	Locale       string    `json:"locale"`
	Category     string    `json:"category"`
	Pass         string    `json:"pass"`
	Terms        []string  `json:"terms,omitempty"`
	Strength     string    `json:"strength,omitempty"`
	TextLength   int       `json:"text_length"`
}

func (h *handler) listFines(c *gin.Context) {
	list, err := h.deps.Fines.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, gin.H{"fines": list})
}

func (h *handler) addFine(c *gin.Context) {
	var r fines.Report
	if err := c.ShouldBindJSON(&r); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "body must be a fine report object")
		return
	}
	added, err := h.deps.Fines.Add(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, added)
}

func (h *handler) getFine(c *gin.Context) {
	r, err := h.deps.Fines.Get(c.Request.Context(), c.Param("report"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, r)
}

func (h *handler) removeFine(c *gin.Context) {
	if err := h.deps.Fines.Remove(c.Request.Context(), c.Param("report")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) analyze(c *gin.Context) {
	ctx := c.Request.Context()
	r, err := h.deps.Fines.Get(ctx, c.Param("report"))
	if err != nil {
		h.fail(c, err)
		return
	}
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))

	a, err := h.deps.Analysis.Analyze(ctx, r, h.locale(c, ""), refresh)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("cached", a.Cached)
	respond.OK(c, a)
}

type letterRequest struct {
	Mode   string `json:"mode"`
	Info   string `json:"info"`
	Locale string `json:"locale"`
}

func (h *handler) letter(c *gin.Context) {
	var req letterRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "body must be a JSON object")
			return
		}
	}
	mode, err := letters.ParseMode(req.Mode)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_mode", err.Error())
		return
	}

	ctx := c.Request.Context()
	r, err := h.deps.Fines.Get(ctx, c.Param("report"))
	if err != nil {
		h.fail(c, err)
		return
	}

	l, err := h.deps.Letters.Generate(ctx, r, req.Info, mode, h.locale(c, req.Locale))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("cached", l.Cached)
	respond.OK(c, l)
}

// fail maps a service error onto the error envelope.
func (h *handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, fines.ErrInvalidReport):
		respond.Error(c, http.StatusBadRequest, "invalid_report", err.Error())
	case errors.Is(err, analysis.ErrNoProvider), errors.Is(err, letters.ErrNoProvider):
		respond.Error(c, http.StatusServiceUnavailable, "no_provider", "no LLM provider is configured")
	case errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusGatewayTimeout, "timeout", "the LLM did not answer in time")
	case llm.IsProviderError(err):
		respond.Error(c, http.StatusBadGateway, "llm_error", err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error")
	}
}
