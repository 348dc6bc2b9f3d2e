package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotwise/booking-app/models"
)

func confirmedAt(id uint, start string, duration int) models.Appointment {
	startMin, _ := ParseClock(start)
	appt := models.Appointment{
		StartTime: start,
		EndTime:   FormatClock(startMin + duration),
		Duration:  duration,
		Status:    models.StatusConfirmed,
	}
	appt.ID = id
	return appt
}

// A confirmed 10:00-10:30 appointment with a 10 minute buffer blocks
// 09:50-10:40 for a new 30 minute booking; 10:40 itself is free.
func TestFindConflicts_BufferExpansion(t *testing.T) {
	existing := []models.Appointment{confirmedAt(1, "10:00", 30)}

	blocked := []string{"09:50", "10:00", "10:20", "10:39"}
	for _, at := range blocked {
		start, err := ParseClock(at)
		require.NoError(t, err)
		conflicts, err := FindConflicts(existing, 10, 0, Interval{Start: start, End: start + 30})
		require.NoError(t, err)
		assert.NotEmpty(t, conflicts, "expected %s to conflict", at)
	}

	free := []string{"09:20", "10:40", "11:00"}
	for _, at := range free {
		start, err := ParseClock(at)
		require.NoError(t, err)
		conflicts, err := FindConflicts(existing, 10, 0, Interval{Start: start, End: start + 30})
		require.NoError(t, err)
		assert.Empty(t, conflicts, "expected %s to be free", at)
	}
}

func TestFindConflicts_IgnoresNonOccupying(t *testing.T) {
	cancelled := confirmedAt(1, "10:00", 30)
	cancelled.Status = models.StatusCancelled
	noShow := confirmedAt(2, "10:00", 30)
	noShow.Status = models.StatusNoShow

	conflicts, err := FindConflicts([]models.Appointment{cancelled, noShow}, 10, 0, Interval{Start: 10 * 60, End: 10*60 + 30})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_ExcludesOwnAppointment(t *testing.T) {
	existing := []models.Appointment{confirmedAt(7, "10:00", 30)}

	conflicts, err := FindConflicts(existing, 10, 7, Interval{Start: 10 * 60, End: 10*60 + 30})
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = FindConflicts(existing, 10, 0, Interval{Start: 10 * 60, End: 10*60 + 30})
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestSuggestAlternatives_NearestFirst(t *testing.T) {
	window := DayWindow{IsOpen: true, Open: 9 * 60, Close: 17 * 60}
	existing := []models.Appointment{confirmedAt(1, "10:00", 30)}
	busy, err := BusyIntervals(existing, 10, 0)
	require.NoError(t, err)

	// Requested 10:00 conflicts; nearest free 30 minute grid slots are 11:00
	// (60 away), 09:00 (60 away, tie goes earlier), 11:30.
	got := SuggestAlternatives(window, 30, 30, busy, 10*60)
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, 9*60, got[0])
	assert.Equal(t, 11*60, got[1])
	assert.Equal(t, 11*60+30, got[2])

	for _, start := range got {
		assert.False(t, OverlapsAny(Interval{Start: start, End: start + 30}, busy))
	}
}

func TestBusyIntervals(t *testing.T) {
	existing := []models.Appointment{confirmedAt(1, "10:00", 30)}
	busy, err := BusyIntervals(existing, 10, 0)
	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, 9*60+50, busy[0].Start)
	assert.Equal(t, 10*60+40, busy[0].End)
}
