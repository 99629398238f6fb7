package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time JSON payload, discriminated by Kind.
// Bank runs persist their result summaries here; other tools can add
// their own kinds without schema changes.
type Snapshot struct {
	ID        int
	Kind      string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages persisted snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. Sequence and Timestamp are assigned
	// during save; the caller provides Kind and Data.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot of the given kind, or nil
	// if none exist.
	Latest(ctx context.Context, kind string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots of the given kind.
	Prune(ctx context.Context, kind string, keep int) error
}

// SolveEventData captures one resolved question.
type SolveEventData struct {
	RequestID    string
	Question     string
	Grade        int
	Topic        string
	Answer       string
	SolverUsed   string
	IsAboveGrade bool
	DurationMs   int64
}

// SolveEvent is a persisted solve record.
type SolveEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SolveEventData
}

// SolveTotal aggregates solve counts per solver kind.
type SolveTotal struct {
	SolverUsed string `json:"solver_used"`
	Count      int    `json:"count"`
}

// SolverFaultEventData captures a recovered solver panic.
type SolverFaultEventData struct {
	SolverName string
	Question   string
	PanicText  string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RequestID    string
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

// LLMRequestEvent is a persisted LLM call record.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage per purpose.
type LLMPurposeUsage struct {
	Purpose      string  `json:"purpose"`
	Calls        int     `json:"calls"`
	InputTokens  int64   `json:"input"`
	OutputTokens int64   `json:"output"`
	AvgLatencyMs float64 `json:"avg_latency"`
}

// LLMModelUsage aggregates LLM usage per model.
type LLMModelUsage struct {
	Model        string `json:"model"`
	Calls        int    `json:"calls"`
	InputTokens  int64  `json:"input"`
	OutputTokens int64  `json:"output"`
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSolve records a resolved question.
	AppendSolve(ctx context.Context, data SolveEventData) error

	// AppendSolverFault records a recovered solver panic.
	AppendSolverFault(ctx context.Context, data SolverFaultEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSolves returns solve events, newest first.
	RecentSolves(ctx context.Context, opts QueryOpts) ([]*SolveEvent, error)

	// SolveTotals returns solve counts grouped by solver kind.
	SolveTotals(ctx context.Context) ([]SolveTotal, error)

	// TopicsSeen returns the distinct topics across all solve events.
	TopicsSeen(ctx context.Context) ([]string, error)

	// FaultCount returns the total number of recorded solver faults.
	FaultCount(ctx context.Context) (int, error)

	// RecentLLMRequests returns LLM request events, newest first.
	RecentLLMRequests(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMRequest returns one LLM request event by ID, or nil if it
	// does not exist.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose returns LLM usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel returns LLM usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
