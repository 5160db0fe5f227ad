package models

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	GenericName string    `gorm:"size:100" json:"generic_name"`
	DosageForm  string    `gorm:"size:50" json:"dosage_form"`
	Strength    string    `gorm:"size:50" json:"strength"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
