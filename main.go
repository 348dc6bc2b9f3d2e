package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/slotwise/booking-app/controllers"
	"github.com/slotwise/booking-app/cron"
	"github.com/slotwise/booking-app/db"
	"github.com/slotwise/booking-app/redis"
	"github.com/slotwise/booking-app/routes"
	"github.com/slotwise/booking-app/scheduling"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()

	controllers.Scheduler = scheduling.NewService(db.NewSchedulingStore(db.DB))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	routes.SetupScheduleRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupServiceRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
