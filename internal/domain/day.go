package domain

import (
	"time"
)

// DayKeyFormat is the layout of a calendar-day key (YYYY-MM-DD).
const DayKeyFormat = "2006-01-02"

// Day represents a single calendar day in the device's local timezone.
// Tasks are bucketed by Day independent of time-of-day, so this is a pure
// date value with no clock or zone attached. The persisted form is the
// YYYY-MM-DD key produced by String.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day containing t, interpreted in t's location.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar day in the local timezone.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a YYYY-MM-DD calendar-day key.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayKeyFormat, s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// String returns the YYYY-MM-DD key for the day.
func (d Day) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(DayKeyFormat)
}

// IsZero reports whether the day is the zero value.
func (d Day) IsZero() bool {
	return d == Day{}
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysUntil returns the number of calendar days from d to other.
// Both sides are anchored at noon UTC so the result counts whole calendar
// days and is unaffected by daylight-saving transitions.
func (d Day) DaysUntil(other Day) int {
	from := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	to := time.Date(other.Year, other.Month, other.Day, 12, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
