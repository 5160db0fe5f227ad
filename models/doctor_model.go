package models

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"not null;unique" json:"user_id"`
	FirstName       string    `gorm:"size:100;not null" json:"first_name"`
	LastName        string    `gorm:"size:100;not null" json:"last_name"`
	Specialization  string    `gorm:"size:100;not null" json:"specialization"`
	LicenseNumber   string    `gorm:"size:50;not null;unique" json:"license_number"`
	PhoneNumber     string    `gorm:"size:30" json:"phone_number"`
	Experience      int       `gorm:"not null;default:0" json:"experience"`
	ConsultationFee float64   `gorm:"type:numeric(10,2);not null" json:"consultation_fee"`
	DepartmentID    uuid.UUID `gorm:"not null" json:"department_id"`

	User       User       `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Department Department `gorm:"foreignkey:DepartmentID" json:"department,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
