package schedule

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-07")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2024 || d.Month != time.January || d.Day != 7 {
		t.Errorf("ParseDate(2024-01-07) = %+v", d)
	}
	if got := d.String(); got != "2024-01-07" {
		t.Errorf("String() = %q, want 2024-01-07", got)
	}

	for _, bad := range []string{"", "2024-1-7", "2024/01/07", "not-a-date", "2024-13-01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestDateWeekday(t *testing.T) {
	tests := []struct {
		iso  string
		want int
	}{
		{"2024-01-01", 1}, // Monday
		{"2024-01-05", 5}, // Friday
		{"2024-01-06", 6}, // Saturday
		{"2024-01-07", 0}, // Sunday
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.iso)
		if err != nil {
			t.Fatalf("ParseDate(%s): %v", tt.iso, err)
		}
		if got := d.Weekday(); got != tt.want {
			t.Errorf("%s Weekday() = %d, want %d", tt.iso, got, tt.want)
		}
	}
}

func TestDateAddDays(t *testing.T) {
	d, _ := ParseDate("2024-12-30")
	if got := d.AddDays(2).String(); got != "2025-01-01" {
		t.Errorf("AddDays(2) = %s, want 2025-01-01", got)
	}
	if got := d.AddDays(-30).String(); got != "2024-11-30" {
		t.Errorf("AddDays(-30) = %s, want 2024-11-30", got)
	}
	// Leap day.
	d, _ = ParseDate("2024-02-28")
	if got := d.AddDays(1).String(); got != "2024-02-29" {
		t.Errorf("AddDays over leap day = %s, want 2024-02-29", got)
	}
}

func TestDateAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	d, _ := ParseDate("2024-03-10")
	got := d.At(19, 30, loc)
	want := time.Date(2024, time.March, 10, 19, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("At(19, 30) = %v, want %v", got, want)
	}
}

func TestDateOf(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	// 23:59 local is still the same civil day even though UTC has not
	// rolled over yet.
	instant := time.Date(2024, time.June, 1, 23, 59, 0, 0, loc)
	if got := DateOf(instant).String(); got != "2024-06-01" {
		t.Errorf("DateOf = %s, want 2024-06-01", got)
	}
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		iso  string
		want int
	}{
		{"2024-01-01", 1}, // first Monday, month starts on Monday
		{"2024-01-07", 1}, // first Sunday of January 2024
		{"2024-01-08", 2}, // second Monday
		{"2024-01-14", 2}, // second Sunday
		{"2024-01-21", 3}, // third Sunday
		{"2024-01-28", 4}, // fourth Sunday
		{"2024-01-31", 5}, // fifth Wednesday, beyond any rule's reach
		{"2024-02-01", 1}, // month starts on Thursday
		{"2024-02-04", 1}, // first Sunday of February 2024
		{"2024-03-03", 1}, // first Sunday of March 2024
		{"2024-03-31", 5}, // fifth Sunday
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.iso)
		if err != nil {
			t.Fatalf("ParseDate(%s): %v", tt.iso, err)
		}
		if got := d.WeekOfMonth(); got != tt.want {
			t.Errorf("%s WeekOfMonth() = %d, want %d", tt.iso, got, tt.want)
		}
	}
}
