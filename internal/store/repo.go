package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup by key matches no row.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Fine is a stored fine report.
type Fine struct {
	ID           int
	ReportNumber string
	Date         string
	Location     string
	Violation    string
	Amount       string
	DueDate      string
	OfficerName  string
	BadgeNumber  string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FineRepo manages fine reports keyed by report number.
type FineRepo interface {
	// Put inserts the fine or replaces the one with the same report number.
	Put(ctx context.Context, f *Fine) error

	// Get returns the fine with the given report number, or ErrNotFound.
	Get(ctx context.Context, reportNumber string) (*Fine, error)

	// List returns all fines, most recently updated first.
	List(ctx context.Context) ([]Fine, error)

	// Delete removes a fine. Deleting a missing fine returns ErrNotFound.
	Delete(ctx context.Context, reportNumber string) error
}

// AnalysisRecord is a cached, parsed analysis of one fine in one locale.
type AnalysisRecord struct {
	ID             int
	UID            string
	ReportNumber   string
	Locale         string
	Category       string
	Summary        string
	KeyPoints      []string
	Recommendation string
	RawText        string
	Model          string
	CreatedAt      time.Time
}

// AnalysisRepo caches analyses keyed by report number and locale.
type AnalysisRepo interface {
	// Get returns the cached analysis, or ErrNotFound.
	Get(ctx context.Context, reportNumber, locale string) (*AnalysisRecord, error)

	// Put stores the analysis, replacing any cached one for the same key.
	Put(ctx context.Context, a *AnalysisRecord) error

	// DeleteByReport drops every cached analysis of a fine.
	DeleteByReport(ctx context.Context, reportNumber string) error
}

// LetterRecord is a cached cancellation request.
type LetterRecord struct {
	ID           int
	UID          string
	ReportNumber string
	Mode         string
	Locale       string
	Body         string
	Model        string
	CreatedAt    time.Time
}

// LetterRepo caches letters keyed by report number, mode and locale.
type LetterRepo interface {
	Get(ctx context.Context, reportNumber, mode, locale string) (*LetterRecord, error)
	Put(ctx context.Context, l *LetterRecord) error
	DeleteByReport(ctx context.Context, reportNumber string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ClassificationEventData captures one verdict decision.
type ClassificationEventData struct {
	Source       string // manual or analysis
	ReportNumber string
	Locale       string
	Category     string
	Pass         string
	Terms        []string
	Strength     string
	TextLength   int
}

// ClassificationEvent is a stored classification event.
type ClassificationEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ClassificationEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendClassification records a verdict decision.
	AppendClassification(ctx context.Context, data ClassificationEventData) error

	// QueryClassifications returns classification events, newest first.
	QueryClassifications(ctx context.Context, opts QueryOpts) ([]ClassificationEvent, error)
}
