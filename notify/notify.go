package notify

import "context"

// Alert is one outbound notification for a single team.
type Alert struct {
	Team      string
	Phone     string // E.164
	Type      string
	Message   string
	DedupeKey string
}

// Result reports what happened to a send. Sent=false with a Reason is not
// an error; it covers dedupe hits and rate caps.
type Result struct {
	Sent   bool
	Reason string
}

// Dispatcher delivers alerts. Implementations are expected to collapse
// repeated sends with the same dedupe key, so a retried trigger never
// double-notifies a team.
type Dispatcher interface {
	Send(ctx context.Context, alert Alert) (Result, error)
}
