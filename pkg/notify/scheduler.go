// CLAUDE:SUMMARY Notification scheduler: permission-gated enable, cancel-then-schedule reschedule over a 4-week horizon, deterministic trigger IDs.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
	"github.com/kasagi/gomical/pkg/schedule"
)

// horizonDays is the reschedule lookahead: four weeks from today.
const horizonDays = 28

// Scheduler drives the OS notification boundary from the occurrence
// calculator. All engine inputs are immutable; the only state is on the
// boundary side.
//
// Callers issuing overlapping Reschedule calls must serialize them
// (single-writer discipline): a second reschedule's CancelAll can wipe
// triggers the first just created. The scheduler does not guard against
// this itself.
type Scheduler struct {
	notifier Notifier
	logger   *slog.Logger
	tz       *time.Location
	now      func() time.Time
}

// NewScheduler wires the scheduler. tz is the civil timezone trigger
// instants are computed in; nil means time.Local.
func NewScheduler(n Notifier, logger *slog.Logger, tz *time.Location) *Scheduler {
	if tz == nil {
		tz = time.Local
	}
	return &Scheduler{
		notifier: n,
		logger:   logger,
		tz:       tz,
		now:      time.Now,
	}
}

// Enable requests notification permission from the OS boundary. A denial
// is reported as false with no error and is not retried; the caller keeps
// the profile disabled and surfaces its own message.
func (s *Scheduler) Enable(ctx context.Context) (bool, error) {
	granted, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		return false, fmt.Errorf("request permission: %w", err)
	}
	if !granted {
		s.logger.Info("notification permission denied")
	}
	return granted, nil
}

// Disable cancels every pending trigger. No rescheduling follows.
func (s *Scheduler) Disable(ctx context.Context) error {
	if err := s.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("cancel all: %w", err)
	}
	return nil
}

// Reschedule replaces the full pending-trigger set for the area. Any
// settings mutation requires a full reschedule; cancellation completes
// before new triggers are submitted, otherwise duplicate or stale
// triggers can fire. Disabled settings reduce to a plain cancel.
//
// Trigger IDs derive from (date, slot) only, so rescheduling twice with
// unchanged inputs yields the identical ID set.
func (s *Scheduler) Reschedule(ctx context.Context, area *schedule.Area, cal *schedule.Calendar, settings Settings, loc locale.Locale) error {
	if err := s.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("cancel all: %w", err)
	}
	if !settings.Enabled {
		return nil
	}

	now := s.now()
	today := schedule.DateOf(now.In(s.tz))
	scheduled := 0

	for i := 0; i < horizonDays; i++ {
		d := today.AddDays(i)

		cats := schedule.OccurrenceCategories(d, area, cal)
		cats = filterEnabled(cats, settings)
		if len(cats) == 0 {
			continue
		}

		evening := d.AddDays(-1).At(settings.EveningTime.Hour, settings.EveningTime.Minute, s.tz)
		morning := d.At(settings.MorningTime.Hour, settings.MorningTime.Minute, s.tz)

		// Past instants are silently skipped, not scheduled.
		if evening.After(now) {
			id := triggerID(d, "evening")
			if err := s.notifier.ScheduleAt(ctx, id, buildContent(cats, loc, true), evening); err != nil {
				return fmt.Errorf("schedule %s: %w", id, err)
			}
			scheduled++
		}
		if morning.After(now) {
			id := triggerID(d, "morning")
			if err := s.notifier.ScheduleAt(ctx, id, buildContent(cats, loc, false), morning); err != nil {
				return fmt.Errorf("schedule %s: %w", id, err)
			}
			scheduled++
		}
	}

	s.logger.Info("notifications rescheduled", "area", area.ID, "triggers", scheduled)
	return nil
}

// triggerID is deterministic in (collection date, slot).
func triggerID(d schedule.Date, slot string) string {
	return fmt.Sprintf("waste-%s-%s", d, slot)
}

func filterEnabled(cats []catalog.Category, settings Settings) []catalog.Category {
	var out []catalog.Category
	for _, c := range cats {
		if settings.categoryEnabled(c) {
			out = append(out, c)
		}
	}
	return out
}
