package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slotwise/booking-app/controllers"
	"github.com/slotwise/booking-app/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	tenant := app.Group("/tenants/:tenantId", middleware.Protected())
	tenant.Post("/appointments", controllers.CreateAppointment)
	tenant.Get("/appointments", middleware.RequireTenant(), controllers.ListAppointments)

	appointment := app.Group("/appointments", middleware.Protected())
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Patch("/:id/reschedule", controllers.RescheduleAppointment)
	appointment.Post("/:id/confirm", controllers.ConfirmAppointment)
	appointment.Post("/:id/cancel", controllers.CancelAppointment)
	appointment.Post("/:id/start", controllers.StartAppointment)
	appointment.Post("/:id/complete", controllers.CompleteAppointment)
	appointment.Post("/:id/no-show", controllers.MarkNoShow)
}
