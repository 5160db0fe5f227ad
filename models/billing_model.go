package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BillPending   = "PENDING"
	BillPaid      = "PAID"
	BillCancelled = "CANCELLED"
)

type Billing struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID  `gorm:"not null" json:"patient_id"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	InvoiceNumber string     `gorm:"size:20;not null;unique" json:"invoice_number"`
	Description   string     `gorm:"type:text" json:"description"`
	Amount        float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaidAmount    float64    `gorm:"type:numeric(10,2);not null;default:0.00" json:"paid_amount"`
	Status        string     `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	DueDate       time.Time  `gorm:"type:date" json:"due_date"`
	PaidAt        *time.Time `json:"paid_at"`

	Patient     Patient     `gorm:"foreignkey:PatientID" json:"patient,omitempty"`
	Appointment Appointment `gorm:"foreignkey:AppointmentID" json:"appointment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
