package store

import (
	"context"
	"time"

	"vocadrill/internal/progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LedgerRepo persists the progress ledger.
type LedgerRepo interface {
	// Save stores the ledger as a new snapshot row and prunes old rows.
	Save(ctx context.Context, p progress.UserProgress) error

	// Load returns the most recently saved ledger. A missing or
	// unparseable snapshot yields the initial zero-state ledger, not
	// an error; only I/O failures are reported.
	Load(ctx context.Context) (progress.UserProgress, error)
}

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // start, complete, quit
	Mode         string // daily, weekly-test
	WordCount    int
	WordsSkipped int
	DurationSecs int
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

// LLMEvent is the read model for a logged LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
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

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if it
	// doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
