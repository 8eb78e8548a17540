// CLAUDE:SUMMARY Calendar-exception set (holidays, year-end suspension) loaded from YAML; exact-day suppression lookups.
package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Exception is a calendar day on which all collection is suspended,
// regardless of what rules would otherwise match.
type Exception struct {
	Date            Date   `yaml:"date" json:"date"`
	Label           string `yaml:"label" json:"label"`
	AlternativeDate *Date  `yaml:"alternative_date,omitempty" json:"alternative_date,omitempty"`
}

// Calendar is the loaded, read-only exception set.
type Calendar struct {
	byDate map[string]*Exception
	all    []*Exception
}

type calendarFile struct {
	Exceptions []*Exception `yaml:"exceptions"`
}

// LoadCalendar reads an exception-set YAML file. Duplicate dates are a
// load error: dates are the identity of an exception.
func LoadCalendar(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calendar %s: %w", path, err)
	}
	return ParseCalendar(data)
}

// ParseCalendar builds a Calendar from YAML bytes.
func ParseCalendar(data []byte) (*Calendar, error) {
	var f calendarFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	return NewCalendar(f.Exceptions)
}

// NewCalendar builds a Calendar directly from exceptions. Used by tests
// and by callers that assemble the set programmatically.
func NewCalendar(exceptions []*Exception) (*Calendar, error) {
	cal := &Calendar{
		byDate: make(map[string]*Exception, len(exceptions)),
		all:    exceptions,
	}
	for _, ex := range exceptions {
		key := ex.Date.String()
		if _, dup := cal.byDate[key]; dup {
			return nil, fmt.Errorf("duplicate exception date %s", key)
		}
		cal.byDate[key] = ex
	}
	return cal, nil
}

// IsException reports whether d is a suspension day. Plain calendar-day
// equality, no timezone arithmetic.
func (c *Calendar) IsException(d Date) bool {
	_, ok := c.byDate[d.String()]
	return ok
}

// Lookup returns the exception on d, or nil.
func (c *Calendar) Lookup(d Date) *Exception {
	return c.byDate[d.String()]
}

// Len returns the number of exceptions.
func (c *Calendar) Len() int {
	return len(c.all)
}
