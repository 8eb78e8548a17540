// CLAUDE:SUMMARY In-process Notifier backed by a mutex-guarded map, the delivery backend of the standalone server.
package notify

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Notifier. It holds pending triggers in a map and
// never denies permission. The server binary uses it as its delivery
// backend; tests use it to observe scheduler behavior.
type Memory struct {
	mu      sync.Mutex
	pending map[string]Pending
}

// NewMemory returns an empty in-process notifier.
func NewMemory() *Memory {
	return &Memory{pending: make(map[string]Pending)}
}

func (m *Memory) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (m *Memory) ScheduleAt(ctx context.Context, id string, content Content, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[id] = Pending{ID: id, Content: content, At: at}
	return nil
}

func (m *Memory) CancelAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = make(map[string]Pending)
	return nil
}

// ListScheduled returns the pending triggers sorted by fire time, ties by ID.
func (m *Memory) ListScheduled(ctx context.Context) ([]Pending, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Pending, 0, len(m.pending))
	for _, p := range m.pending {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].At.Equal(out[j].At) {
			return out[i].At.Before(out[j].At)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
