package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/slotwise/booking-app/db"
	"github.com/slotwise/booking-app/models"
	"github.com/slotwise/booking-app/scheduling"
)

type dateOverrideRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Reason    string `json:"reason"`
}

// ListDateOverrides returns the tenant's overrides, optionally bounded by
// ?from= and ?to= dates.
func ListDateOverrides(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	query := db.DB.Where("tenant_id = ?", tenantID)
	if from := c.Query("from"); from != "" {
		date, err := parseDate(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid from date, expected YYYY-MM-DD",
			})
		}
		query = query.Where("date >= ?", date.Format("2006-01-02"))
	}
	if to := c.Query("to"); to != "" {
		date, err := parseDate(to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid to date, expected YYYY-MM-DD",
			})
		}
		query = query.Where("date <= ?", date.Format("2006-01-02"))
	}

	var overrides []models.DateOverride
	if err := query.Order("date asc").Find(&overrides).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list date overrides",
		})
	}
	return c.JSON(overrides)
}

// CreateDateOverride adds a full-day override. At most one may exist per
// (tenant, date).
func CreateDateOverride(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req dateOverrideRequest
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
	if err := scheduling.ValidateWindow(req.IsOpen, req.OpenTime, req.CloseTime); err != nil {
		return respondSchedulingError(c, err)
	}

	var existing models.DateOverride
	err = db.DB.Where("tenant_id = ? AND date = ?", tenantID, date).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An override already exists for this date",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing overrides",
		})
	}

	override := models.DateOverride{
		TenantID:  tenantID,
		Date:      date,
		IsOpen:    req.IsOpen,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Reason:    req.Reason,
	}
	if err := db.DB.Create(&override).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create date override",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(override)
}

// UpdateDateOverride rewrites an existing override in place.
func UpdateDateOverride(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var override models.DateOverride
	if err := db.DB.Where("tenant_id = ?", tenantID).First(&override, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Date override not found",
		})
	}

	var req dateOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := scheduling.ValidateWindow(req.IsOpen, req.OpenTime, req.CloseTime); err != nil {
		return respondSchedulingError(c, err)
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		if date.Format("2006-01-02") != override.Date.Format("2006-01-02") {
			var occupied models.DateOverride
			err := db.DB.Where("tenant_id = ? AND date = ?", tenantID, date).First(&occupied).Error
			if err == nil {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "An override already exists for this date",
				})
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to check existing overrides",
				})
			}
		}
		override.Date = date
	}
	override.IsOpen = req.IsOpen
	override.OpenTime = req.OpenTime
	override.CloseTime = req.CloseTime
	override.Reason = req.Reason

	if err := db.DB.Save(&override).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update date override",
		})
	}
	return c.JSON(override)
}

// DeleteDateOverride removes an override so the weekly rule applies again.
func DeleteDateOverride(c *fiber.Ctx) error {
	tenantID, err := parseTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var override models.DateOverride
	if err := db.DB.Where("tenant_id = ?", tenantID).First(&override, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Date override not found",
		})
	}
	// Hard delete so the (tenant, date) unique index frees up and the date
	// can be overridden again later.
	if err := db.DB.Unscoped().Delete(&override).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete date override",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
