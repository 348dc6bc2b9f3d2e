package db

import (
	"fmt"
	"log"

	"github.com/slotwise/booking-app/models"
)

func Migrate() {
	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Tenant{},
		&models.BookingPolicy{},
		&models.WeeklyHours{},
		&models.DateOverride{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
