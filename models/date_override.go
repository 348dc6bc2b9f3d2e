package models

import (
	"time"

	"gorm.io/gorm"
)

// DateOverride replaces the weekly rule for one concrete calendar date entirely.
// Partial overrides are not supported: an open override carries the full window.
type DateOverride struct {
	gorm.Model
	TenantID  uint      `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_date"`
	Date      time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_tenant_date"`
	IsOpen    bool      `json:"is_open"`
	OpenTime  string    `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime string    `json:"close_time"` // Format "HH:MM" in 24h
	Reason    string    `json:"reason"`     // holiday, vacation, special event
}
