package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slotwise/booking-app/controllers"
)

// SetupAvailabilityRoutes configures the read-only availability queries.
// They stay public so booking clients can browse slots before signing in.
func SetupAvailabilityRoutes(app *fiber.App) {
	tenant := app.Group("/tenants/:tenantId")
	tenant.Get("/availability", controllers.GetAvailability)
	tenant.Post("/availability/check", controllers.CheckConflict)
}
