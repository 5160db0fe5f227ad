package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
	"github.com/kamausoft/health_connect/notifications"
	ws "github.com/kamausoft/health_connect/websocket"
	"gorm.io/gorm"
)

var errSlotAlreadyBooked = errors.New("This time slot is already booked")

// bookSlot re-checks the slot and inserts inside the caller's
// transaction. Both the pre-check and a violation of the partial unique
// index surface as errSlotAlreadyBooked.
func bookSlot(tx *gorm.DB, appointment *models.Appointment, date string) error {
	var existing models.Appointment
	err := tx.Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
		appointment.DoctorID, date, appointment.AppointmentTime, models.AppointmentCancelled).
		First(&existing).Error
	if err == nil {
		return errSlotAlreadyBooked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := tx.Create(appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errSlotAlreadyBooked
		}
		return err
	}
	return nil
}

func GetAppointments(c *fiber.Ctx) error {
	patientID := c.Query("patientId")
	doctorID := c.Query("doctorId")
	status := c.Query("status")

	query := database.DB.
		Preload("Patient").
		Preload("Doctor.Department")

	if patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date desc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch appointments"})
	}

	return c.JSON(appointments)
}

type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"required,uuid"`
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" validate:"required,datetime=15:04"`
	Reason          string `json:"reason" validate:"required"`
}

// CreateAppointment re-checks the slot inside the insert transaction
// because the availability view the client saw may be stale. The partial
// unique index on (doctor_id, appointment_date, appointment_time) is the
// authoritative guard: a duplicate-key error surfaces as the same
// conflict response as the pre-check.
func CreateAppointment(c *fiber.Ctx) error {
	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	appointmentDate, _ := time.Parse("2006-01-02", req.AppointmentDate)
	patientID, _ := uuid.Parse(req.PatientID)
	doctorID, _ := uuid.Parse(req.DoctorID)

	var patient models.Patient
	if err := database.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found"})
	}
	var doctor models.Doctor
	if err := database.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found"})
	}

	appointment := models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          models.AppointmentScheduled,
		Reason:          req.Reason,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return bookSlot(tx, &appointment, req.AppointmentDate)
	})
	if err != nil {
		if errors.Is(err, errSlotAlreadyBooked) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errSlotAlreadyBooked.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create appointment"})
	}

	database.DB.Preload("Patient").Preload("Doctor.Department").First(&appointment, "id = ?", appointment.ID)

	ws.PushAppointmentEvent("appointment.created", &appointment)

	go func(appt models.Appointment) {
		subject := "Appointment Scheduled"
		body := fmt.Sprintf("<h1>Appointment Scheduled</h1><p>Your appointment with Dr. %s %s on %s at %s has been scheduled.</p>",
			appt.Doctor.FirstName, appt.Doctor.LastName, appt.AppointmentDate.Format("January 2, 2006"), appt.AppointmentTime)

		var patientUser models.User
		if err := database.DB.First(&patientUser, "id = ?", appt.Patient.UserID).Error; err == nil {
			notifications.SendEmail(appt.Patient.FirstName+" "+appt.Patient.LastName, patientUser.Email, subject, body)
		}
	}(appointment)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED CONFIRMED COMPLETED CANCELLED NO_SHOW"`
	Notes  string `json:"notes,omitempty"`
}

func UpdateAppointmentStatus(c *fiber.Ctx) error {
	appointmentID := c.Params("appointmentId")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var appointment models.Appointment
	if err := database.DB.Preload("Patient").Preload("Doctor").First(&appointment, "id = ?", appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	if !models.CanTransition(appointment.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot change appointment status from %s to %s", appointment.Status, req.Status),
		})
	}

	appointment.Status = req.Status
	if req.Notes != "" {
		appointment.Notes = &req.Notes
	}
	if err := database.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update appointment"})
	}

	ws.PushAppointmentEvent("appointment.status_changed", &appointment)

	if req.Status == models.AppointmentCancelled {
		go func(appt models.Appointment) {
			var patientUser models.User
			if err := database.DB.First(&patientUser, "id = ?", appt.Patient.UserID).Error; err == nil {
				notifications.SendEmail(appt.Patient.FirstName+" "+appt.Patient.LastName, patientUser.Email,
					"Appointment Cancelled",
					fmt.Sprintf("<h1>Appointment Cancelled</h1><p>Your appointment on %s at %s has been cancelled. The slot is now open for rebooking.</p>",
						appt.AppointmentDate.Format("January 2, 2006"), appt.AppointmentTime))
			}
		}(appointment)
	}

	return c.JSON(appointment)
}
