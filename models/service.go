package models

import (
	"gorm.io/gorm"
)

// Service is a bookable catalog entry. Its duration drives slot granularity
// when a specific service is requested.
type Service struct {
	gorm.Model
	TenantID    uint    `json:"tenant_id" gorm:"index"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // minutes
	Price       float64 `json:"price"`
}
