package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/slotwise/booking-app/db"
	"github.com/slotwise/booking-app/models"
	"github.com/slotwise/booking-app/scheduling"
	"github.com/slotwise/booking-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for confirmed appointments starting in
// roughly one hour and emails the client. Start times are stored as clock
// strings on a date column, so the window is built from clock strings too.
// Appointments inside the first hour after midnight are picked up by the
// previous day's sweep running before midnight only if the window stays on
// one calendar day, so the sweep also checks tomorrow when the window wraps.
func sendAppointmentReminders() {
	now := time.Now()
	from := now.Add(55 * time.Minute)
	to := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	query := db.DB.Preload("Client").Preload("Service").
		Where("status = ?", models.StatusConfirmed)
	if scheduling.SameDate(from, to) {
		query = query.Where("date = ? AND start_time BETWEEN ? AND ?",
			from.Format("2006-01-02"), clockOf(from), clockOf(to))
	} else {
		query = query.Where(
			"(date = ? AND start_time >= ?) OR (date = ? AND start_time <= ?)",
			from.Format("2006-01-02"), clockOf(from),
			to.Format("2006-01-02"), clockOf(to))
	}
	if err := query.Find(&appointments).Error; err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Client.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Client.Email)
	}
}

func clockOf(t time.Time) string {
	return t.Format("15:04")
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, appointment.Client.Name, appointment.Service.Name,
		appointment.Date.Format("2006-01-02"),
		appointment.StartTime, appointment.EndTime)

	return utils.SendEmail(appointment.Client.Email, subject, body)
}
