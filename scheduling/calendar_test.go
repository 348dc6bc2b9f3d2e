package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotwise/booking-app/models"
)

func weekdayHours(open bool, openTime, closeTime string) []models.WeeklyHours {
	var hours []models.WeeklyHours
	for dow := models.Sunday; dow <= models.Saturday; dow++ {
		wh := models.WeeklyHours{DayOfWeek: dow}
		if dow >= models.Monday && dow <= models.Friday && open {
			wh.IsOpen = true
			wh.OpenTime = openTime
			wh.CloseTime = closeTime
		}
		hours = append(hours, wh)
	}
	return hours
}

func TestResolveDayWindow(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	weekly := weekdayHours(true, "09:00", "17:00")

	t.Run("weekly rule applies without override", func(t *testing.T) {
		window, err := ResolveDayWindow(weekly, nil, monday)
		require.NoError(t, err)
		assert.True(t, window.IsOpen)
		assert.Equal(t, 9*60, window.Open)
		assert.Equal(t, 17*60, window.Close)
	})

	t.Run("weekly closed day", func(t *testing.T) {
		window, err := ResolveDayWindow(weekly, nil, sunday)
		require.NoError(t, err)
		assert.False(t, window.IsOpen)
		assert.Equal(t, ClosedWeekly, window.ClosedReason)
	})

	t.Run("no weekly entry means closed", func(t *testing.T) {
		window, err := ResolveDayWindow(nil, nil, monday)
		require.NoError(t, err)
		assert.False(t, window.IsOpen)
		assert.Equal(t, ClosedWeekly, window.ClosedReason)
	})

	t.Run("closed override beats open weekly rule", func(t *testing.T) {
		override := &models.DateOverride{IsOpen: false, Reason: "public holiday"}
		window, err := ResolveDayWindow(weekly, override, monday)
		require.NoError(t, err)
		assert.False(t, window.IsOpen)
		assert.Equal(t, ClosedOverride, window.ClosedReason)
		assert.Equal(t, "public holiday", window.Label)
	})

	t.Run("open override replaces weekly window entirely", func(t *testing.T) {
		override := &models.DateOverride{IsOpen: true, OpenTime: "12:00", CloseTime: "15:00", Reason: "half day"}
		window, err := ResolveDayWindow(weekly, override, monday)
		require.NoError(t, err)
		assert.True(t, window.IsOpen)
		assert.Equal(t, 12*60, window.Open)
		assert.Equal(t, 15*60, window.Close)
	})

	t.Run("open override opens a weekly closed day", func(t *testing.T) {
		override := &models.DateOverride{IsOpen: true, OpenTime: "10:00", CloseTime: "14:00"}
		window, err := ResolveDayWindow(weekly, override, sunday)
		require.NoError(t, err)
		assert.True(t, window.IsOpen)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		override := &models.DateOverride{IsOpen: true, OpenTime: "15:00", CloseTime: "12:00"}
		_, err := ResolveDayWindow(weekly, override, monday)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("malformed clock string is rejected", func(t *testing.T) {
		override := &models.DateOverride{IsOpen: true, OpenTime: "9am", CloseTime: "17:00"}
		_, err := ResolveDayWindow(weekly, override, monday)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "open_time", verr.Field)
	})
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)
	assert.Equal(t, "09:30", FormatClock(570))

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}
