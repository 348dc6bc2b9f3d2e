package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slotwise/booking-app/scheduling"
	"github.com/slotwise/booking-app/utils"
)

// respondSchedulingError maps the scheduling core's typed outcomes onto HTTP
// responses. Anything untyped is an infrastructure failure: logged, surfaced
// as a generic 500.
func respondSchedulingError(c *fiber.Ctx, err error) error {
	var verr *scheduling.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
			"field": verr.Field,
		})
	}

	var werr *scheduling.WindowError
	if errors.As(err, &werr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": werr.Message,
			"rule":  werr.Rule,
		})
	}

	var derr *scheduling.ClosedDayError
	if errors.As(err, &derr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "The requested day has no open window",
			"reason": derr.Reason,
			"label":  derr.Label,
		})
	}

	var cerr *scheduling.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":                    "Time slot not available",
			"conflicting_appointments": cerr.Conflicts,
			"suggested_times":          cerr.Suggestions,
		})
	}

	var terr *scheduling.InvalidTransitionError
	if errors.As(err, &terr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": terr.Error(),
			"from":  terr.From,
			"to":    terr.To,
		})
	}

	// A booking that lost its race twice reads as a conflict to the caller.
	var race *scheduling.ConcurrencyError
	if errors.As(err, &race) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Time slot was taken by a concurrent booking, please pick another slot",
		})
	}

	log.Printf("Unexpected scheduling error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Internal server error",
		Error:   "unexpected failure",
	})
}

// parseTenantID reads the :tenantId path parameter.
func parseTenantID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("tenantId")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid tenant ID")
	}
	return uint(id), nil
}

// parseDate reads a YYYY-MM-DD value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
