// CLAUDE:SUMMARY Collection rule union (weekday set / nth-weekday-of-month) with YAML decoding and date matching.
package schedule

import (
	"fmt"
)

// Rule is a recurring collection rule: either a plain weekday set ("every
// Monday and Thursday") or an nth-weekday constraint ("1st and 3rd
// Sunday"). YAML forms:
//
//	normal-garbage: [1, 4]
//	small-metal: {weekday: 0, weeks: [1, 3]}
type Rule struct {
	// Weekdays is the weekday-set form, 0=Sunday .. 6=Saturday. Nil when
	// the rule is nth-weekday based.
	Weekdays []int

	// Nth is the nth-weekday form. Nil when Weekdays is set.
	Nth *NthWeekday
}

// NthWeekday constrains a rule to particular occurrence-weeks of a month.
type NthWeekday struct {
	Weekday int   `yaml:"weekday" json:"weekday"`
	Weeks   []int `yaml:"weeks" json:"weeks"`
}

// Matches reports whether the rule fires on d. No calendar-exception
// knowledge: that belongs to the occurrence layer.
func (r Rule) Matches(d Date) bool {
	if r.Nth != nil {
		if d.Weekday() != r.Nth.Weekday {
			return false
		}
		week := d.WeekOfMonth()
		for _, w := range r.Nth.Weeks {
			if week == w {
				return true
			}
		}
		return false
	}
	weekday := d.Weekday()
	for _, w := range r.Weekdays {
		if weekday == w {
			return true
		}
	}
	return false
}

// UnmarshalYAML accepts either rule form.
func (r *Rule) UnmarshalYAML(unmarshal func(any) error) error {
	var weekdays []int
	if err := unmarshal(&weekdays); err == nil {
		for _, w := range weekdays {
			if w < 0 || w > 6 {
				return fmt.Errorf("weekday %d out of range 0..6", w)
			}
		}
		r.Weekdays = weekdays
		r.Nth = nil
		return nil
	}

	var nth NthWeekday
	if err := unmarshal(&nth); err != nil {
		return fmt.Errorf("rule must be a weekday list or {weekday, weeks}: %w", err)
	}
	if nth.Weekday < 0 || nth.Weekday > 6 {
		return fmt.Errorf("weekday %d out of range 0..6", nth.Weekday)
	}
	if len(nth.Weeks) == 0 {
		return fmt.Errorf("nth-weekday rule needs at least one week")
	}
	for _, w := range nth.Weeks {
		if w < 1 || w > 4 {
			return fmt.Errorf("week %d out of range 1..4", w)
		}
	}
	r.Weekdays = nil
	r.Nth = &nth
	return nil
}

// MarshalYAML emits the same form that was read.
func (r Rule) MarshalYAML() (any, error) {
	if r.Nth != nil {
		return *r.Nth, nil
	}
	return r.Weekdays, nil
}
