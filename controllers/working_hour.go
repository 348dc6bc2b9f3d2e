package controllers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/slotwise/booking-app/db"
	"github.com/slotwise/booking-app/models"
	"github.com/slotwise/booking-app/redis"
	"github.com/slotwise/booking-app/scheduling"
)

// GetWeeklyHours returns the tenant's recurring hours as exactly 7 entries,
// filling days that were never configured as closed.
func GetWeeklyHours(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var hours []models.WeeklyHours
	if err := db.DB.Where("tenant_id = ?", tenantID).Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get weekly hours",
		})
	}

	byDay := map[models.DayOfWeek]models.WeeklyHours{}
	for _, wh := range hours {
		byDay[wh.DayOfWeek] = wh
	}

	week := make([]models.WeeklyHours, 0, 7)
	for dow := models.Sunday; dow <= models.Saturday; dow++ {
		if wh, ok := byDay[dow]; ok {
			week = append(week, wh)
		} else {
			week = append(week, models.WeeklyHours{TenantID: tenantID, DayOfWeek: dow})
		}
	}
	return c.JSON(week)
}

// UpdateWeeklyHours replaces the tenant's full week in one request.
func UpdateWeeklyHours(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var week []models.WeeklyHours
	if err := c.BodyParser(&week); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	seen := map[models.DayOfWeek]bool{}
	for _, wh := range week {
		if wh.DayOfWeek < models.Sunday || wh.DayOfWeek > models.Saturday {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "day_of_week must be between 0 and 6",
			})
		}
		if seen[wh.DayOfWeek] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "duplicate day_of_week entry",
			})
		}
		seen[wh.DayOfWeek] = true
		if err := scheduling.ValidateWindow(wh.IsOpen, wh.OpenTime, wh.CloseTime); err != nil {
			return respondSchedulingError(c, err)
		}
	}

	for i := range week {
		week[i].TenantID = tenantID
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete: soft-deleted rows would still occupy the
		// (tenant, day_of_week) unique index and break the re-create below.
		if err := tx.Unscoped().Where("tenant_id = ?", tenantID).Delete(&models.WeeklyHours{}).Error; err != nil {
			return err
		}
		for i := range week {
			week[i].ID = 0
			if err := tx.Create(&week[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update weekly hours",
		})
	}

	redis.InvalidateScheduleConfig(c.Context(), tenantID)

	sort.Slice(week, func(i, j int) bool { return week[i].DayOfWeek < week[j].DayOfWeek })
	return c.JSON(week)
}
