package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every morning at 08:00 to remind customers booked for the next day
	_, err := c.AddFunc("0 8 * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders emails customers with a scheduled appointment tomorrow
func sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)

	var shifts []models.Shift
	err := db.DB.Preload("Slot").Preload("Appointment.Customer").Preload("Appointment.Service").
		Joins("JOIN appointments ON appointments.id = shifts.appointment_id").
		Where("shifts.date = ? AND appointments.status = ?", tomorrow, models.StatusScheduled).
		Find(&shifts).Error
	if err != nil {
		log.Printf("Error fetching shifts for reminders: %v", err)
		return
	}

	for _, shift := range shifts {
		if err := sendReminderEmail(&shift); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", shift.AppointmentID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s",
			shift.AppointmentID, shift.Appointment.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(shift *models.Shift) error {
	appointment := shift.Appointment
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Skincare Team</p>
	`, appointment.Customer.Username, appointment.Service.Name,
		shift.Date.Format("2006-01-02"),
		shift.Slot.StartTime, shift.Slot.EndTime,
		appointment.Status)

	return utils.SendEmail(appointment.Customer.Email, subject, body)
}
