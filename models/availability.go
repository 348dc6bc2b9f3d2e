package models

// Reasons attached to unavailable slots. Closed days never reach slot level;
// they carry a day-level closed reason instead.
const (
	ReasonOutsideWindow = "outside_booking_window"
	ReasonConflict      = "conflict"
)

// AvailableSlot is a derived, never persisted candidate start time for one date.
type AvailableSlot struct {
	Time      string `json:"time"` // Format "HH:MM" in 24h
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AppointmentConflict is the derived result of a single conflict query.
type AppointmentConflict struct {
	HasConflict             bool      `json:"has_conflict"`
	ConflictingAppointments []Summary `json:"conflicting_appointments,omitempty"`
	SuggestedTimes          []string  `json:"suggested_times,omitempty"`
}
