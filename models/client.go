package models

import (
	"gorm.io/gorm"
)

// Client is a minimal projection of the CRM record: enough for a booking to
// reference and for reminder emails to reach someone. The full client record
// lives in the external CRM.
type Client struct {
	gorm.Model
	TenantID    uint   `json:"tenant_id" gorm:"index"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
