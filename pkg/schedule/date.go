// Package schedule evaluates recurring collection rules and calendar
// exceptions against civil dates.
package schedule

import (
	"fmt"
	"time"
)

// Date is a civil calendar day. It carries no time-of-day and no timezone:
// exception matching is plain day equality, never instant arithmetic.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String returns the ISO form, which is also the identity used for
// exception lookup and notification trigger IDs.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalYAML encodes the date in ISO form.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts the ISO form.
func (d *Date) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week, 0=Sunday .. 6=Saturday.
func (d Date) Weekday() int {
	return int(d.time().Weekday())
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

// At combines the date with a wall-clock time in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// WeekOfMonth returns the occurrence-week of d within its month:
// ceil((dayOfMonth + weekdayOfFirstOfMonth - 1) / 7). The nth weekday of
// a month lands in week n, so the 1st Sunday of January 2024 (the 7th) is
// week 1. Fifth occurrences yield 5 and are never matched by rules, whose
// week sets only cover 1 through 4.
func (d Date) WeekOfMonth() int {
	firstWeekday := Date{Year: d.Year, Month: d.Month, Day: 1}.Weekday()
	return (d.Day + firstWeekday + 5) / 7
}
