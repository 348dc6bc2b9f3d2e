package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeeklyHours is the recurring open window for one day of the week.
// When IsOpen is false the open/close times are empty.
type WeeklyHours struct {
	gorm.Model
	TenantID  uint      `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_dow"`
	DayOfWeek DayOfWeek `json:"day_of_week" gorm:"uniqueIndex:idx_tenant_dow"`
	IsOpen    bool      `json:"is_open"`
	OpenTime  string    `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime string    `json:"close_time"` // Format "HH:MM" in 24h
}
