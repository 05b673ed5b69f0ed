package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match when non-empty
}

// ResultRecord is the last analysis saved for a client key.
type ResultRecord struct {
	ID           string
	ClientKey    string
	Sequence     int64
	Season       string
	Confidence   int
	Reasoning    string
	FullAnalysis string
	PDFURL       string
	Source       string
	Fallback     bool
	Answers      map[string]string
	CreatedAt    time.Time
}

// SeasonCount is the number of stored results for a season.
type SeasonCount struct {
	Season string
	Count  int
}

// ResultRepo stores analysis results keyed by an opaque client key. A key
// holds only its latest result.
type ResultRepo interface {
	// Save inserts or replaces the result for rec.ClientKey.
	Save(ctx context.Context, rec *ResultRecord) error

	// Get returns the result for key, or nil if none is stored.
	Get(ctx context.Context, key string) (*ResultRecord, error)

	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]ResultRecord, error)

	// CountBySeason tallies stored results per season, in season order.
	CountBySeason(ctx context.Context) ([]SeasonCount, error)

	// Delete removes the result for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates LLM usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
