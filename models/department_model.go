package models

import (
	"time"

	"github.com/google/uuid"
)

// Clinic hours live on the department so policies can differ per
// department instead of being a module-wide constant.
type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:100;not null;unique" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	PhoneNumber string    `gorm:"size:30" json:"phone_number"`

	OpenHour    int `gorm:"not null;default:9" json:"open_hour"`
	CloseHour   int `gorm:"not null;default:17" json:"close_hour"`
	SlotMinutes int `gorm:"not null;default:30" json:"slot_minutes"`

	Doctors []Doctor `gorm:"foreignkey:DepartmentID" json:"doctors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
