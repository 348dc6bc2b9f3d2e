package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotwise/booking-app/scheduling"
)

// Scheduler is the shared availability orchestrator, wired in main.
var Scheduler *scheduling.Service

// GetAvailability answers "what slots are free on date D?" for a tenant.
// Optional service_id switches duration and granularity to that service.
func GetAvailability(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
	}

	serviceID := uint(c.QueryInt("service_id"))

	availability, err := Scheduler.GetAvailableSlots(c.Context(), tenantID, date, serviceID)
	if err != nil {
		return respondSchedulingError(c, err)
	}
	return c.JSON(availability)
}

type conflictCheckRequest struct {
	Date                 string `json:"date"` // YYYY-MM-DD
	StartTime            string `json:"start_time"`
	Duration             int    `json:"duration"` // minutes, 0 = policy default
	ExcludeAppointmentID uint   `json:"exclude_appointment_id"`
}

// CheckConflict probes a candidate interval without reserving anything.
func CheckConflict(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req conflictCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	conflict, err := Scheduler.CheckConflict(c.Context(), tenantID, date, req.StartTime, req.Duration, req.ExcludeAppointmentID)
	if err != nil {
		return respondSchedulingError(c, err)
	}
	return c.JSON(conflict)
}
