package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotwise/booking-app/models"
)

func TestCheckBookingWindow_MinAdvance(t *testing.T) {
	policy := models.BookingPolicy{
		MinAdvanceBookingHours: 2,
		MaxAdvanceBookingDays:  30,
		AllowSameDayBooking:    true,
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Exactly at now + 2h is accepted.
	assert.NoError(t, CheckBookingWindow(policy, now, date, 10*60))

	// One second earlier than the minimum is rejected.
	err := CheckBookingWindow(policy, now.Add(time.Second), date, 10*60)
	var werr *WindowError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, RuleMinAdvance, werr.Rule)
}

func TestCheckBookingWindow_MaxAdvance(t *testing.T) {
	policy := models.BookingPolicy{
		MaxAdvanceBookingDays: 30,
		AllowSameDayBooking:   true,
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	// Any time on the 30th allowed day is acceptable.
	day30 := now.AddDate(0, 0, 30)
	assert.NoError(t, CheckBookingWindow(policy, now, day30, 23*60))

	// Day 31 is past the window.
	day31 := now.AddDate(0, 0, 31)
	err := CheckBookingWindow(policy, now, day31, 9*60)
	var werr *WindowError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, RuleMaxAdvance, werr.Rule)
}

func TestCheckBookingWindow_SameDay(t *testing.T) {
	policy := models.BookingPolicy{
		MaxAdvanceBookingDays: 30,
		AllowSameDayBooking:   false,
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	// Same calendar date is rejected even though the hour-based minimum passes.
	err := CheckBookingWindow(policy, now, now, 20*60)
	var werr *WindowError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, RuleSameDayDisallowed, werr.Rule)

	// The next day is fine.
	assert.NoError(t, CheckBookingWindow(policy, now, now.AddDate(0, 0, 1), 9*60))
}
