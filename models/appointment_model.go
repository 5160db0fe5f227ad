package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
	AppointmentNoShow    = "NO_SHOW"
)

// AppointmentTime is the zero-padded "HH:MM" slot start. Availability
// checks compare it to generated slot strings by exact equality, so it
// is validated against the "15:04" layout on every write.
type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID `gorm:"not null" json:"patient_id"`
	DoctorID        uuid.UUID `gorm:"not null" json:"doctor_id"`
	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null" json:"appointment_time"`
	Status          string    `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	Reason          string    `gorm:"type:text" json:"reason"`
	Notes           *string   `gorm:"type:text" json:"notes"`

	Patient Patient `gorm:"foreignkey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignkey:DoctorID" json:"doctor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var appointmentTransitions = map[string][]string{
	AppointmentScheduled: {AppointmentConfirmed, AppointmentCancelled, AppointmentNoShow},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
}

// CanTransition reports whether an appointment may move from one status
// to another. COMPLETED, CANCELLED and NO_SHOW are terminal.
func CanTransition(from, to string) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsAppointmentStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}
