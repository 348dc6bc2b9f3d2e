package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slotwise/booking-app/controllers"
	"github.com/slotwise/booking-app/middleware"
)

// SetupScheduleRoutes configures the tenant schedule configuration routes:
// weekly hours, date overrides and the booking policy.
func SetupScheduleRoutes(app *fiber.App) {
	tenant := app.Group("/tenants/:tenantId", middleware.Protected(), middleware.RequireTenant())

	tenant.Get("/working-hours", controllers.GetWeeklyHours)
	tenant.Put("/working-hours", controllers.UpdateWeeklyHours)

	tenant.Get("/date-overrides", controllers.ListDateOverrides)
	tenant.Post("/date-overrides", controllers.CreateDateOverride)
	tenant.Patch("/date-overrides/:id", controllers.UpdateDateOverride)
	tenant.Delete("/date-overrides/:id", controllers.DeleteDateOverride)

	tenant.Get("/booking-policy", controllers.GetBookingPolicy)
	tenant.Patch("/booking-policy", controllers.UpdateBookingPolicy)
}
