package scheduling

import (
	"fmt"
	"time"

	"github.com/slotwise/booking-app/models"
)

// CheckBookingWindow validates a requested start against the tenant's
// advance-notice policy. The minimum bound is compared at instant granularity;
// the maximum bound at calendar-day granularity, so any time on the last
// allowed day passes. When same-day booking is disabled, any request on
// now's calendar date is rejected regardless of hour.
func CheckBookingWindow(policy models.BookingPolicy, now, date time.Time, startMinute int) error {
	startAt := AtClock(date, startMinute, now.Location())

	if !policy.AllowSameDayBooking && SameDate(date, now) {
		return &WindowError{
			Rule:    RuleSameDayDisallowed,
			Message: "same-day booking is not allowed",
		}
	}

	earliest := now.Add(time.Duration(policy.MinAdvanceBookingHours) * time.Hour)
	if startAt.Before(earliest) {
		return &WindowError{
			Rule:    RuleMinAdvance,
			Message: fmt.Sprintf("bookings require at least %d hour(s) notice", policy.MinAdvanceBookingHours),
		}
	}

	lastDay := now.AddDate(0, 0, policy.MaxAdvanceBookingDays)
	if dateAfter(date, lastDay) {
		return &WindowError{
			Rule:    RuleMaxAdvance,
			Message: fmt.Sprintf("bookings can be made at most %d day(s) in advance", policy.MaxAdvanceBookingDays),
		}
	}

	return nil
}

// dateAfter reports whether a's calendar date is strictly after b's.
func dateAfter(a, b time.Time) bool {
	return a.Format("2006-01-02") > b.Format("2006-01-02")
}
