package models

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"not null;unique" json:"user_id"`
	FirstName        string    `gorm:"size:100;not null" json:"first_name"`
	LastName         string    `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string    `gorm:"size:10;not null" json:"gender"`
	PhoneNumber      string    `gorm:"size:30" json:"phone_number"`
	Address          string    `gorm:"size:255" json:"address"`
	City             string    `gorm:"size:100" json:"city"`
	BloodType        *string   `gorm:"size:15" json:"blood_type"`
	Allergies        *string   `gorm:"type:text" json:"allergies"`
	EmergencyContact string    `gorm:"size:30" json:"emergency_contact"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
