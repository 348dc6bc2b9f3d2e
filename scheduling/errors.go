package scheduling

import (
	"fmt"

	"github.com/slotwise/booking-app/models"
)

// Booking window rule codes carried by WindowError for UI messaging.
const (
	RuleMinAdvance        = "min_advance"
	RuleMaxAdvance        = "max_advance"
	RuleSameDayDisallowed = "same_day_disallowed"
)

// Closed day reason codes carried by ClosedDayError.
const (
	ClosedWeekly   = "weekly_closed"
	ClosedOverride = "override_closed"
)

// ValidationError reports malformed input, rejected before any persistence access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// WindowError reports a booking-window policy violation.
type WindowError struct {
	Rule    string
	Message string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("booking window violation (%s): %s", e.Rule, e.Message)
}

// ClosedDayError reports that the requested date has no open window.
type ClosedDayError struct {
	Reason string // ClosedWeekly or ClosedOverride
	Label  string // override reason label, if any
}

func (e *ClosedDayError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("day is closed (%s: %s)", e.Reason, e.Label)
	}
	return fmt.Sprintf("day is closed (%s)", e.Reason)
}

// ConflictError reports an overlap with existing occupying appointments and
// carries up to MaxSuggestions alternative start times.
type ConflictError struct {
	Conflicts   []models.Summary
	Suggestions []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with %d existing appointment(s)", len(e.Conflicts))
}

// InvalidTransitionError reports an illegal appointment lifecycle step.
type InvalidTransitionError struct {
	From models.AppointmentStatus
	To   models.AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// ConcurrencyError reports that the atomic booking step lost a race. The
// orchestrator retries once before surfacing it.
type ConcurrencyError struct {
	Err error
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("booking transaction lost a race: %v", e.Err)
}

func (e *ConcurrencyError) Unwrap() error {
	return e.Err
}
