package scheduling

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ParseClock converts an "HH:MM" local clock string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AtClock places a minutes-since-midnight clock value on a calendar date in
// the given location.
func AtClock(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}

// SameDate reports whether two instants fall on the same calendar date,
// ignoring their locations.
func SameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
