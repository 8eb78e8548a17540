package notify

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
	"github.com/kasagi/gomical/pkg/schedule"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func testTZ(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func testArea() *schedule.Area {
	return &schedule.Area{
		ID:   "test-area",
		Ward: "川崎区",
		Rules: map[catalog.Category]schedule.Rule{
			catalog.NormalGarbage: {Weekdays: []int{1, 5}},
			catalog.CansBottles:   {Weekdays: []int{3}},
			catalog.SmallMetal:    {Nth: &schedule.NthWeekday{Weekday: 0, Weeks: []int{1, 3}}},
		},
	}
}

func emptyCalendar(t *testing.T) *schedule.Calendar {
	t.Helper()
	cal, err := schedule.NewCalendar(nil)
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	return cal
}

// newTestScheduler pins the clock to noon on Monday 2024-01-01 JST.
func newTestScheduler(t *testing.T, n Notifier) *Scheduler {
	t.Helper()
	tz := testTZ(t)
	s := NewScheduler(n, testLogger(), tz)
	s.now = func() time.Time {
		return time.Date(2024, time.January, 1, 12, 0, 0, 0, tz)
	}
	return s
}

func pendingIDs(t *testing.T, n *Memory) []string {
	t.Helper()
	pending, err := n.ListScheduled(context.Background())
	if err != nil {
		t.Fatalf("ListScheduled: %v", err)
	}
	ids := make([]string, len(pending))
	for i, p := range pending {
		ids[i] = p.ID
	}
	return ids
}

func hasID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestRescheduleTriggerSet(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)

	err := s.Reschedule(context.Background(), testArea(), emptyCalendar(t), DefaultSettings(), locale.JA)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	ids := pendingIDs(t, n)
	// 14 collection days fall in the 28-day window starting 2024-01-01.
	// Today's evening and morning instants are already past, so 13 days
	// carry both triggers.
	if len(ids) != 26 {
		t.Fatalf("got %d triggers, want 26: %v", len(ids), ids)
	}

	for _, id := range ids {
		if !strings.HasPrefix(id, "waste-2024-") {
			t.Errorf("unexpected trigger id %q", id)
		}
		if !strings.HasSuffix(id, "-evening") && !strings.HasSuffix(id, "-morning") {
			t.Errorf("trigger id %q has no slot suffix", id)
		}
	}

	// Today's collection fired in the past and must be skipped entirely.
	if hasID(ids, "waste-2024-01-01-morning") || hasID(ids, "waste-2024-01-01-evening") {
		t.Error("past triggers for today were scheduled")
	}
	// Wednesday's pair is fully in the future.
	if !hasID(ids, "waste-2024-01-03-evening") || !hasID(ids, "waste-2024-01-03-morning") {
		t.Error("missing triggers for 2024-01-03")
	}
}

func TestRescheduleTriggerInstants(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)
	tz := testTZ(t)

	settings := DefaultSettings()
	settings.EveningTime = ClockTime{Hour: 21, Minute: 30}
	settings.MorningTime = ClockTime{Hour: 6, Minute: 45}

	if err := s.Reschedule(context.Background(), testArea(), emptyCalendar(t), settings, locale.JA); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	pending, _ := n.ListScheduled(context.Background())
	byID := make(map[string]Pending, len(pending))
	for _, p := range pending {
		byID[p.ID] = p
	}

	// Evening trigger fires the day before the collection day.
	ev, ok := byID["waste-2024-01-03-evening"]
	if !ok {
		t.Fatal("missing waste-2024-01-03-evening")
	}
	if want := time.Date(2024, time.January, 2, 21, 30, 0, 0, tz); !ev.At.Equal(want) {
		t.Errorf("evening At = %v, want %v", ev.At, want)
	}

	mo, ok := byID["waste-2024-01-03-morning"]
	if !ok {
		t.Fatal("missing waste-2024-01-03-morning")
	}
	if want := time.Date(2024, time.January, 3, 6, 45, 0, 0, tz); !mo.At.Equal(want) {
		t.Errorf("morning At = %v, want %v", mo.At, want)
	}
}

func TestRescheduleIdempotent(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)
	ctx := context.Background()

	if err := s.Reschedule(ctx, testArea(), emptyCalendar(t), DefaultSettings(), locale.JA); err != nil {
		t.Fatalf("first Reschedule: %v", err)
	}
	first := pendingIDs(t, n)

	if err := s.Reschedule(ctx, testArea(), emptyCalendar(t), DefaultSettings(), locale.JA); err != nil {
		t.Fatalf("second Reschedule: %v", err)
	}
	second := pendingIDs(t, n)

	if len(first) != len(second) {
		t.Fatalf("trigger count changed: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("trigger %d changed: %q then %q", i, first[i], second[i])
		}
	}
}

func TestRescheduleDisabledCancelsOnly(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)
	ctx := context.Background()

	if err := s.Reschedule(ctx, testArea(), emptyCalendar(t), DefaultSettings(), locale.JA); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if len(pendingIDs(t, n)) == 0 {
		t.Fatal("setup produced no triggers")
	}

	settings := DefaultSettings()
	settings.Enabled = false
	if err := s.Reschedule(ctx, testArea(), emptyCalendar(t), settings, locale.JA); err != nil {
		t.Fatalf("disabled Reschedule: %v", err)
	}
	if ids := pendingIDs(t, n); len(ids) != 0 {
		t.Errorf("disabled reschedule left %d triggers: %v", len(ids), ids)
	}
}

func TestRescheduleCategoryFilter(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)

	settings := DefaultSettings()
	settings.Categories = []catalog.Category{catalog.NormalGarbage}

	if err := s.Reschedule(context.Background(), testArea(), emptyCalendar(t), settings, locale.JA); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	ids := pendingIDs(t, n)
	// Wednesday collects only cans, which is filtered out.
	if hasID(ids, "waste-2024-01-03-morning") {
		t.Error("cans-only day scheduled despite category filter")
	}
	if !hasID(ids, "waste-2024-01-08-morning") {
		t.Error("normal-garbage day missing")
	}
}

func TestRescheduleRespectsExceptions(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)
	cal, err := schedule.NewCalendar([]*schedule.Exception{
		{Date: schedule.Date{Year: 2024, Month: time.January, Day: 8}, Label: "成人の日"},
	})
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}

	if err := s.Reschedule(context.Background(), testArea(), cal, DefaultSettings(), locale.JA); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	ids := pendingIDs(t, n)
	if hasID(ids, "waste-2024-01-08-morning") || hasID(ids, "waste-2024-01-08-evening") {
		t.Error("exception day got triggers")
	}
	if !hasID(ids, "waste-2024-01-15-morning") {
		t.Error("regular day after exception missing")
	}
}

func TestRescheduleContent(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)

	if err := s.Reschedule(context.Background(), testArea(), emptyCalendar(t), DefaultSettings(), locale.JA); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	pending, _ := n.ListScheduled(context.Background())
	for _, p := range pending {
		if p.ID == "waste-2024-01-08-evening" {
			if p.Content.Title != "ごみ収集のお知らせ" {
				t.Errorf("Title = %q", p.Content.Title)
			}
			if p.Content.Body != "明日は普通ごみの収集日です" {
				t.Errorf("Body = %q", p.Content.Body)
			}
			return
		}
	}
	t.Fatal("waste-2024-01-08-evening not found")
}

type denyingNotifier struct{ *Memory }

func (d *denyingNotifier) RequestPermission(ctx context.Context) (bool, error) {
	return false, nil
}

type failingNotifier struct{ *Memory }

func (f *failingNotifier) CancelAll(ctx context.Context) error {
	return errors.New("boundary down")
}

func TestEnable(t *testing.T) {
	s := newTestScheduler(t, NewMemory())
	granted, err := s.Enable(context.Background())
	if err != nil || !granted {
		t.Errorf("Enable = (%v, %v), want (true, nil)", granted, err)
	}

	s = newTestScheduler(t, &denyingNotifier{Memory: NewMemory()})
	granted, err = s.Enable(context.Background())
	if err != nil {
		t.Fatalf("Enable with denial: %v", err)
	}
	if granted {
		t.Error("denied permission reported as granted")
	}
}

func TestRescheduleCancelFailure(t *testing.T) {
	s := newTestScheduler(t, &failingNotifier{Memory: NewMemory()})
	err := s.Reschedule(context.Background(), testArea(), emptyCalendar(t), DefaultSettings(), locale.JA)
	if err == nil {
		t.Fatal("Reschedule succeeded despite cancel failure")
	}
}

func TestDisable(t *testing.T) {
	n := NewMemory()
	s := newTestScheduler(t, n)
	ctx := context.Background()

	if err := s.Reschedule(ctx, testArea(), emptyCalendar(t), DefaultSettings(), locale.JA); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if err := s.Disable(ctx); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if ids := pendingIDs(t, n); len(ids) != 0 {
		t.Errorf("Disable left %d triggers", len(ids))
	}
}
