package scheduling

import (
	"sort"

	"github.com/slotwise/booking-app/models"
)

// MaxSuggestions caps how many alternative start times a conflict result carries.
const MaxSuggestions = 3

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// BusyIntervals expands every occupying appointment by the buffer on both
// sides. Cancelled and no-show appointments do not block the calendar, and
// excludeID skips the appointment being rescheduled.
func BusyIntervals(appointments []models.Appointment, bufferMin int, excludeID uint) ([]Interval, error) {
	var busy []Interval
	for _, appt := range appointments {
		if appt.ID == excludeID || !appt.Status.Occupies() {
			continue
		}
		start, err := ParseClock(appt.StartTime)
		if err != nil {
			return nil, err
		}
		busy = append(busy, Interval{
			Start: start - bufferMin,
			End:   start + appt.Duration + bufferMin,
		})
	}
	return busy, nil
}

// FindConflicts returns the occupying appointments whose buffered interval
// overlaps the raw candidate interval.
func FindConflicts(appointments []models.Appointment, bufferMin int, excludeID uint, candidate Interval) ([]models.Appointment, error) {
	var conflicts []models.Appointment
	for _, appt := range appointments {
		if appt.ID == excludeID || !appt.Status.Occupies() {
			continue
		}
		start, err := ParseClock(appt.StartTime)
		if err != nil {
			return nil, err
		}
		buffered := Interval{
			Start: start - bufferMin,
			End:   start + appt.Duration + bufferMin,
		}
		if candidate.Overlaps(buffered) {
			conflicts = append(conflicts, appt)
		}
	}
	return conflicts, nil
}

// OverlapsAny reports whether the candidate intersects any busy interval.
func OverlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// SuggestAlternatives re-runs slot generation for the day, drops candidates
// that themselves conflict, and orders the rest by absolute distance from the
// requested start, ties going to the earlier slot.
func SuggestAlternatives(window DayWindow, duration, granularity int, busy []Interval, requestedStart int) []int {
	var free []int
	for _, start := range GenerateSlots(window, duration, granularity) {
		if start == requestedStart {
			continue
		}
		if !OverlapsAny(Interval{Start: start, End: start + duration}, busy) {
			free = append(free, start)
		}
	}

	sort.SliceStable(free, func(i, j int) bool {
		di, dj := distance(free[i], requestedStart), distance(free[j], requestedStart)
		if di == dj {
			return free[i] < free[j]
		}
		return di < dj
	})
	return free
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
