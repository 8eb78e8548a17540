// CLAUDE:SUMMARY Occurrence queries: what is collected on a date, today, or next within a bounded horizon.
package schedule

import (
	"github.com/kasagi/gomical/pkg/catalog"
)

// DefaultHorizonDays bounds the forward scan of NextOccurrence.
const DefaultHorizonDays = 14

// Occurrence is a calendar date with the categories actually collected on
// it.
type Occurrence struct {
	Date       Date               `json:"date"`
	Categories []catalog.Category `json:"categories"`
}

// OccurrenceCategories returns the categories collected on d for the
// area. An exception day returns nil before any rule is consulted.
// Oversized is reservation-only and never appears, even if a rule exists
// for it. Results follow catalog.Categories order.
func OccurrenceCategories(d Date, area *Area, cal *Calendar) []catalog.Category {
	if cal.IsException(d) {
		return nil
	}
	var out []catalog.Category
	for _, cat := range catalog.Categories {
		if cat == catalog.Oversized {
			continue
		}
		rule, ok := area.Rules[cat]
		if ok && rule.Matches(d) {
			out = append(out, cat)
		}
	}
	return out
}

// NextOccurrence scans forward day by day, starting the day after from,
// and returns the first occurrence within horizonDays. Nil when the
// horizon is exhausted — an expected outcome, not a failure.
func NextOccurrence(area *Area, cal *Calendar, from Date, horizonDays int) *Occurrence {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	d := from
	for i := 0; i < horizonDays; i++ {
		d = d.AddDays(1)
		if cats := OccurrenceCategories(d, area, cal); len(cats) > 0 {
			return &Occurrence{Date: d, Categories: cats}
		}
	}
	return nil
}

// TodayOccurrence evaluates today itself. Nil when nothing is collected.
func TodayOccurrence(area *Area, cal *Calendar, today Date) *Occurrence {
	if cats := OccurrenceCategories(today, area, cal); len(cats) > 0 {
		return &Occurrence{Date: today, Categories: cats}
	}
	return nil
}
