package notify

import (
	"context"
	"time"
)

// Content is the title and body of one notification.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Pending is a scheduled trigger as reported by the OS boundary.
type Pending struct {
	ID      string    `json:"id"`
	Content Content   `json:"content"`
	At      time.Time `json:"at"`
}

// Notifier is the OS notification boundary, implemented outside the core.
// All calls are blocking and must be awaited; the scheduler issues them
// strictly in order.
type Notifier interface {
	// RequestPermission asks the OS for notification permission. Denial
	// is a first-class false, not an error.
	RequestPermission(ctx context.Context) (bool, error)
	// ScheduleAt registers a trigger. Scheduling the same id again
	// replaces the previous trigger.
	ScheduleAt(ctx context.Context, id string, content Content, at time.Time) error
	// CancelAll removes every pending trigger.
	CancelAll(ctx context.Context) error
	// ListScheduled returns the pending triggers.
	ListScheduled(ctx context.Context) ([]Pending, error)
}
