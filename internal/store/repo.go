package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	Before    int64  // sequence < Before
	SessionID string // restrict to one session (turn events)
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

// LLMEvent is the stored form of an LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// TurnEventData captures one committed conversation turn.
type TurnEventData struct {
	SessionID        string
	Agent            string
	UserPreview      string
	MessagesAppended int
	CurrentStep      int
	QuizPhase        string
}

// TurnEvent is the stored form of a turn event.
type TurnEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendTurn records one committed conversation turn.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// QueryTurns returns turn events, newest first.
	QueryTurns(ctx context.Context, opts QueryOpts) ([]TurnEvent, error)
}

// SessionRecord is a stored session snapshot.
type SessionRecord struct {
	SessionID string
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo persists session snapshots. One session accumulates a
// snapshot per committed turn; Load returns the newest.
type SnapshotRepo interface {
	// Save stores a snapshot of the given session.
	Save(ctx context.Context, sessionID string, data []byte) error

	// Load returns the most recent snapshot for a session, or nil if the
	// session was never saved.
	Load(ctx context.Context, sessionID string) (*SessionRecord, error)

	// LoadLatest returns the most recent snapshot across all sessions,
	// or nil when the store is empty.
	LoadLatest(ctx context.Context) (*SessionRecord, error)

	// Sessions lists the distinct stored sessions, newest first.
	Sessions(ctx context.Context) ([]SessionRecord, error)

	// Prune keeps only the newest snapshot of each session.
	Prune(ctx context.Context) error

	// Delete removes every snapshot of a session.
	Delete(ctx context.Context, sessionID string) error
}
