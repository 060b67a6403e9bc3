package store

import (
	"context"
	"time"
)

// LLMEventData is the payload for recording a single LLM call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	InputTokens  int
	OutputTokens int
}

// LLMEvent is a recorded LLM call as stored.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// QueryOpts narrows event queries.
type QueryOpts struct {
	// Limit caps the number of returned events. Zero means no limit.
	Limit int
	// Purpose filters to a single purpose label when non-empty.
	Purpose string
}

// PurposeUsage aggregates token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries LLM call telemetry.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}
