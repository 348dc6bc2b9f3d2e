package models

import (
	"gorm.io/gorm"
)

// Tenant is an isolated brand account owning its own hours, policy and appointments.
type Tenant struct {
	gorm.Model
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	PhoneNumber  string `json:"phone_number"`
	// Timezone is stored per tenant but scheduling math stays naive local clock.
	Timezone string `json:"timezone" gorm:"default:'Local'"`

	BookingPolicy BookingPolicy  `json:"booking_policy,omitempty" gorm:"foreignKey:TenantID"`
	WeeklyHours   []WeeklyHours  `json:"weekly_hours,omitempty" gorm:"foreignKey:TenantID"`
	DateOverrides []DateOverride `json:"date_overrides,omitempty" gorm:"foreignKey:TenantID"`
	Services      []Service      `json:"services,omitempty" gorm:"foreignKey:TenantID"`
}

// BookingPolicy holds the per-tenant booking rules applied by the scheduling core.
type BookingPolicy struct {
	gorm.Model
	TenantID uint `json:"tenant_id" gorm:"uniqueIndex"`
	// DefaultDuration is the fallback appointment length and slot granularity, in minutes.
	DefaultDuration int `json:"default_duration" gorm:"default:30"`
	// BufferTime is the mandatory gap between consecutive appointments, in minutes.
	BufferTime             int  `json:"buffer_time" gorm:"default:0"`
	MaxAdvanceBookingDays  int  `json:"max_advance_booking_days" gorm:"default:30"`
	MinAdvanceBookingHours int  `json:"min_advance_booking_hours" gorm:"default:0"`
	AllowSameDayBooking    bool `json:"allow_same_day_booking" gorm:"default:true"`
}
