package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slotwise/booking-app/controllers"
	"github.com/slotwise/booking-app/middleware"
)

func SetupServiceRoutes(app *fiber.App) {
	tenant := app.Group("/tenants/:tenantId")
	tenant.Get("/services", controllers.GetAllServices)
	tenant.Get("/services/:id", controllers.GetService)
	tenant.Post("/services", middleware.Protected(), middleware.RequireTenant(), controllers.CreateService)
	tenant.Put("/services/:id", middleware.Protected(), middleware.RequireTenant(), controllers.UpdateService)
	tenant.Delete("/services/:id", middleware.Protected(), middleware.RequireTenant(), controllers.DeleteService)
}
