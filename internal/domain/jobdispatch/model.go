package jobdispatch

import "time"

type Status string

const (
	StatusSent      Status = "sent"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Event records one state change of a queued background job.
type Event struct {
	DispatchID string
	JobName    string
	JobPath    string
	// Scope identifies what the job acts on, e.g. "season:12" or "matchup:40:home".
	Scope        string
	Status       Status
	Payload      map[string]any
	ErrorMessage string
	OccurredAt   time.Time
	TraceID      string
	SpanID       string
}
