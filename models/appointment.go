package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// statusTransitions lists the legal next statuses for each status.
// Terminal statuses have no entry.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo reports whether moving to next is a legal lifecycle step.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Occupies reports whether an appointment in this status blocks the calendar
// for conflict checks.
func (s AppointmentStatus) Occupies() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// Appointment is a booked slot. Cancellation is a status change, never a row
// removal. EndTime is always derived from StartTime + Duration.
type Appointment struct {
	gorm.Model
	Ref          string            `json:"ref" gorm:"uniqueIndex"`
	TenantID     uint              `json:"tenant_id" gorm:"index:idx_appt_tenant_date"`
	ClientID     uint              `json:"client_id"`
	Client       Client            `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ServiceID    uint              `json:"service_id"`
	Service      Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Date         time.Time         `json:"date" gorm:"type:date;index:idx_appt_tenant_date"`
	StartTime    string            `json:"start_time"` // Format "HH:MM" in 24h
	EndTime      string            `json:"end_time"`   // Format "HH:MM" in 24h
	Duration     int               `json:"duration"`   // minutes
	Status       AppointmentStatus `json:"status"`
	Price        float64           `json:"price"`
	CancelReason string            `json:"cancel_reason,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Ref == "" {
		a.Ref = uuid.NewString()
	}
	return nil
}

// Summary is the compact appointment shape returned inside conflict reports.
type Summary struct {
	ID        uint              `json:"id"`
	Ref       string            `json:"ref"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Status    AppointmentStatus `json:"status"`
}

func (a *Appointment) Summary() Summary {
	return Summary{
		ID:        a.ID,
		Ref:       a.Ref,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    a.Status,
	}
}
