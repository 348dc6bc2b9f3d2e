package scheduling

import (
	"time"

	"github.com/slotwise/booking-app/models"
)

// DayWindow is the effective open window for one concrete calendar date after
// override resolution. Open and Close are minutes since midnight, half-open.
type DayWindow struct {
	IsOpen       bool
	Open         int
	Close        int
	ClosedReason string // ClosedWeekly or ClosedOverride when !IsOpen
	Label        string // override reason label, if any
}

// ResolveDayWindow merges the recurring weekly hours with a date override into
// the effective window for date. An override, when present, fully replaces the
// weekly rule; there is no partial merge and no further fallback.
func ResolveDayWindow(weekly []models.WeeklyHours, override *models.DateOverride, date time.Time) (DayWindow, error) {
	if override != nil {
		if !override.IsOpen {
			return DayWindow{ClosedReason: ClosedOverride, Label: override.Reason}, nil
		}
		return parseWindow(override.OpenTime, override.CloseTime, override.Reason)
	}

	dow := models.DayOfWeek(date.Weekday())
	for _, wh := range weekly {
		if wh.DayOfWeek != dow {
			continue
		}
		if !wh.IsOpen {
			break
		}
		return parseWindow(wh.OpenTime, wh.CloseTime, "")
	}
	// No override and the weekly rule is closed or absent for this day.
	return DayWindow{ClosedReason: ClosedWeekly}, nil
}

// ValidateWindow checks an open/close pair as submitted through tenant
// configuration. Closed entries must not carry times; open entries need a
// complete, well-ordered window.
func ValidateWindow(isOpen bool, openTime, closeTime string) error {
	if !isOpen {
		if openTime != "" || closeTime != "" {
			return &ValidationError{Field: "open_time", Message: "closed entries must not carry open or close times"}
		}
		return nil
	}
	_, err := parseWindow(openTime, closeTime, "")
	return err
}

func parseWindow(openTime, closeTime, label string) (DayWindow, error) {
	open, err := ParseClock(openTime)
	if err != nil {
		return DayWindow{}, &ValidationError{Field: "open_time", Message: err.Error()}
	}
	close, err := ParseClock(closeTime)
	if err != nil {
		return DayWindow{}, &ValidationError{Field: "close_time", Message: err.Error()}
	}
	if open >= close {
		return DayWindow{}, &ValidationError{Field: "open_time", Message: "open time must be before close time"}
	}
	return DayWindow{IsOpen: true, Open: open, Close: close, Label: label}, nil
}
