package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
	"github.com/kamausoft/health_connect/notifications"
)

type reminderWindow struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
}

func (w reminderWindow) spansMidnight() bool {
	return w.StartDate != w.EndDate
}

// upcomingWindow bounds the slots starting 60 to 65 minutes from now.
// Each bound carries its own date so the window stays valid when it
// crosses midnight, e.g. for departments that open at 00:00.
func upcomingWindow(now time.Time) reminderWindow {
	lower := now.Add(60 * time.Minute)
	upper := now.Add(65 * time.Minute)
	return reminderWindow{
		StartDate: lower.Format("2006-01-02"),
		StartTime: lower.Format("15:04"),
		EndDate:   upper.Format("2006-01-02"),
		EndTime:   upper.Format("15:04"),
	}
}

// SendAppointmentReminders emails both parties one hour before a visit.
// Zero-padded "HH:MM" strings order lexicographically, so the window
// bounds translate directly into SQL comparisons.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	window := upcomingWindow(time.Now())

	query := database.DB.
		Preload("Patient").
		Preload("Doctor").
		Where("status IN ?", []string{models.AppointmentScheduled, models.AppointmentConfirmed})

	if window.spansMidnight() {
		query = query.Where("(appointment_date = ? AND appointment_time >= ?) OR (appointment_date = ? AND appointment_time <= ?)",
			window.StartDate, window.StartTime, window.EndDate, window.EndTime)
	} else {
		query = query.Where("appointment_date = ? AND appointment_time BETWEEN ? AND ?",
			window.StartDate, window.StartTime, window.EndTime)
	}

	var upcomingAppointments []models.Appointment
	if err := query.Find(&upcomingAppointments).Error; err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	if len(upcomingAppointments) == 0 {
		return
	}

	for _, appointment := range upcomingAppointments {
		log.Printf("Sending reminder for appointment ID: %s", appointment.ID)

		emailSubject := "Reminder: Your Appointment Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Appointment Reminder</h1><p>Hi there,</p><p>This is a friendly reminder of your appointment today at %s with Dr. %s %s.</p>",
			appointment.AppointmentTime, appointment.Doctor.FirstName, appointment.Doctor.LastName,
		)

		appt := appointment
		go func() {
			var patientUser, doctorUser models.User
			if err := database.DB.First(&patientUser, "id = ?", appt.Patient.UserID).Error; err == nil {
				notifications.SendEmail(appt.Patient.FirstName+" "+appt.Patient.LastName, patientUser.Email, emailSubject, emailBody)
			}
			if err := database.DB.First(&doctorUser, "id = ?", appt.Doctor.UserID).Error; err == nil {
				notifications.SendEmail(appt.Doctor.FirstName+" "+appt.Doctor.LastName, doctorUser.Email, emailSubject, emailBody)
			}
		}()
	}
}
