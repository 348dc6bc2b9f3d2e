package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/slotwise/booking-app/db"
	"github.com/slotwise/booking-app/models"
	"github.com/slotwise/booking-app/redis"
)

// GetBookingPolicy returns the tenant's policy, falling back to the default
// for tenants that never saved one.
func GetBookingPolicy(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var policy models.BookingPolicy
	err = db.DB.Where("tenant_id = ?", tenantID).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(db.DefaultBookingPolicy(tenantID))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get booking policy",
		})
	}
	return c.JSON(policy)
}

type bookingPolicyRequest struct {
	DefaultDuration        *int  `json:"default_duration"`
	BufferTime             *int  `json:"buffer_time"`
	MaxAdvanceBookingDays  *int  `json:"max_advance_booking_days"`
	MinAdvanceBookingHours *int  `json:"min_advance_booking_hours"`
	AllowSameDayBooking    *bool `json:"allow_same_day_booking"`
}

// UpdateBookingPolicy upserts the tenant policy; absent fields keep their
// current values.
func UpdateBookingPolicy(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req bookingPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var policy models.BookingPolicy
	err = db.DB.Where("tenant_id = ?", tenantID).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		policy = db.DefaultBookingPolicy(tenantID)
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get booking policy",
		})
	}

	if req.DefaultDuration != nil {
		policy.DefaultDuration = *req.DefaultDuration
	}
	if req.BufferTime != nil {
		policy.BufferTime = *req.BufferTime
	}
	if req.MaxAdvanceBookingDays != nil {
		policy.MaxAdvanceBookingDays = *req.MaxAdvanceBookingDays
	}
	if req.MinAdvanceBookingHours != nil {
		policy.MinAdvanceBookingHours = *req.MinAdvanceBookingHours
	}
	if req.AllowSameDayBooking != nil {
		policy.AllowSameDayBooking = *req.AllowSameDayBooking
	}

	if policy.DefaultDuration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "default_duration must be positive",
		})
	}
	if policy.BufferTime < 0 || policy.MinAdvanceBookingHours < 0 || policy.MaxAdvanceBookingDays < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "buffer_time, min_advance_booking_hours and max_advance_booking_days must not be negative",
		})
	}

	if err := db.DB.Save(&policy).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update booking policy",
		})
	}

	redis.InvalidateScheduleConfig(c.Context(), tenantID)
	return c.JSON(policy)
}
