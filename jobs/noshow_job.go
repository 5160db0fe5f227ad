package jobs

import (
	"log"
	"time"

	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
)

// noShowCutoff returns the calendar date and "HH:MM" clock one hour
// before now. The sweep compares against the cutoff's own date, so in
// the first hour after midnight the cutoff lands on the previous day
// and the current day's schedule is left alone.
func noShowCutoff(now time.Time) (date, clock string) {
	cutoff := now.Add(-60 * time.Minute)
	return cutoff.Format("2006-01-02"), cutoff.Format("15:04")
}

// MarkNoShowAppointments sweeps appointments whose slot passed over an
// hour ago without being completed or cancelled.
func MarkNoShowAppointments() {
	log.Println("Running job: MarkNoShowAppointments...")

	cutoffDate, cutoffTime := noShowCutoff(time.Now())

	var missedAppointments []models.Appointment
	err := database.DB.
		Where("status IN ?", []string{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Where("appointment_date < ? OR (appointment_date = ? AND appointment_time < ?)", cutoffDate, cutoffDate, cutoffTime).
		Find(&missedAppointments).Error
	if err != nil {
		log.Printf("Error checking for missed appointments: %v", err)
		return
	}

	if len(missedAppointments) == 0 {
		return
	}

	for _, appointment := range missedAppointments {
		appointment.Status = models.AppointmentNoShow
		database.DB.Save(&appointment)
	}

	log.Printf("Marked %d appointment(s) as no-show.", len(missedAppointments))
}
