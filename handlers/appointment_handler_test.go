package handlers

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func bookingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	database.DB = db
	database.Migrate()
	return db
}

func newBookingRequest(doctorID, patientID uuid.UUID, date time.Time, slot string) *models.Appointment {
	return &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: slot,
		Status:          models.AppointmentScheduled,
		Reason:          "Routine checkup",
	}
}

func TestBookSlot_SequentialDoubleBooking(t *testing.T) {
	db := bookingTestDB(t)

	doctorID := uuid.New()
	patientID := uuid.New()
	date, _ := time.Parse("2006-01-02", "2025-03-10")

	book := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			return bookSlot(tx, newBookingRequest(doctorID, patientID, date, "10:00"), "2025-03-10")
		})
	}

	if err := book(); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if err := book(); !errors.Is(err, errSlotAlreadyBooked) {
		t.Fatalf("expected slot conflict on second booking, got %v", err)
	}

	var count int64
	db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
			doctorID, "2025-03-10", "10:00", models.AppointmentCancelled).
		Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one active appointment for the slot, got %d", count)
	}
}

func TestBookSlot_CancelledSlotRebookable(t *testing.T) {
	db := bookingTestDB(t)

	doctorID := uuid.New()
	patientID := uuid.New()
	date, _ := time.Parse("2006-01-02", "2025-03-10")

	first := newBookingRequest(doctorID, patientID, date, "11:30")
	err := db.Transaction(func(tx *gorm.DB) error {
		return bookSlot(tx, first, "2025-03-10")
	})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	if err := db.Model(first).Update("status", models.AppointmentCancelled).Error; err != nil {
		t.Fatalf("failed to cancel appointment: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return bookSlot(tx, newBookingRequest(doctorID, patientID, date, "11:30"), "2025-03-10")
	})
	if err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
}
