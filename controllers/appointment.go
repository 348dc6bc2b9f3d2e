package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/slotwise/booking-app/db"
	"github.com/slotwise/booking-app/models"
	"github.com/slotwise/booking-app/scheduling"
	"github.com/slotwise/booking-app/utils"
)

type createAppointmentRequest struct {
	ClientID  uint   `json:"client_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
}

// CreateAppointment books a slot for a client. Window and conflict rules are
// re-validated inside the same transaction that inserts the row, so two
// concurrent requests for one slot cannot both succeed.
func CreateAppointment(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req createAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	appointment, err := Scheduler.CreateAppointment(c.Context(), scheduling.BookingRequest{
		TenantID:  tenantID,
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: req.StartTime,
	})
	if err != nil {
		return respondSchedulingError(c, err)
	}

	sendBookingEmail(appointment, "Your appointment has been received",
		"Your appointment request was received and is pending confirmation.")

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointment returns one appointment with its client and service loaded.
func GetAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.Preload("Client").Preload("Service").First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// ListAppointments returns a tenant's appointments, optionally filtered by
// ?date= and ?status=.
func ListAppointments(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	query := db.DB.Preload("Client").Preload("Service").Where("tenant_id = ?", tenantID)
	if value := c.Query("date"); value != "" {
		date, err := parseDate(value)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("date asc, start_time asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

type rescheduleRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD, empty keeps the current date
	StartTime string `json:"start_time"`
}

// RescheduleAppointment moves an appointment to a new start, ignoring its own
// old slot during the conflict check.
func RescheduleAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var req rescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var current models.Appointment
	if err := db.DB.First(&current, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	date := current.Date
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
	}

	appointment, err := Scheduler.Reschedule(c.Context(), uint(id), date, req.StartTime)
	if err != nil {
		return respondSchedulingError(c, err)
	}

	sendBookingEmail(appointment, "Your appointment was rescheduled",
		fmt.Sprintf("Your appointment now starts at %s on %s.", appointment.StartTime, appointment.Date.Format("2006-01-02")))

	return c.JSON(appointment)
}

// ConfirmAppointment moves a pending appointment to confirmed.
func ConfirmAppointment(c *fiber.Ctx) error {
	return transitionAppointment(c, models.StatusConfirmed, "")
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// CancelAppointment cancels a pending or confirmed appointment. The row is
// kept; the slot is freed because cancelled appointments stop occupying the
// calendar.
func CancelAppointment(c *fiber.Ctx) error {
	var req cancelRequest
	// The body is optional for cancellations.
	_ = c.BodyParser(&req)
	return transitionAppointment(c, models.StatusCancelled, req.Reason)
}

// StartAppointment marks a confirmed appointment as underway.
func StartAppointment(c *fiber.Ctx) error {
	return transitionAppointment(c, models.StatusInProgress, "")
}

// CompleteAppointment finishes an in-progress appointment.
func CompleteAppointment(c *fiber.Ctx) error {
	return transitionAppointment(c, models.StatusCompleted, "")
}

// MarkNoShow records that the client failed to appear. Only reachable from
// confirmed.
func MarkNoShow(c *fiber.Ctx) error {
	return transitionAppointment(c, models.StatusNoShow, "")
}

func transitionAppointment(c *fiber.Ctx, to models.AppointmentStatus, reason string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	appointment, err := Scheduler.Transition(c.Context(), uint(id), to, reason)
	if err != nil {
		return respondSchedulingError(c, err)
	}
	return c.JSON(appointment)
}

// sendBookingEmail notifies the client best-effort; booking outcomes never
// depend on SMTP.
func sendBookingEmail(appointment *models.Appointment, subject, line string) {
	var client models.Client
	if err := db.DB.First(&client, appointment.ClientID).Error; err != nil || client.Email == "" {
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Appointment Team</p>
	`, client.Name, line,
		appointment.Date.Format("2006-01-02"),
		appointment.StartTime,
		appointment.EndTime,
		appointment.Status)

	if err := utils.SendEmail(client.Email, subject, body); err != nil {
		log.Printf("Failed to send booking email for appointment %d: %v", appointment.ID, err)
	}
}
