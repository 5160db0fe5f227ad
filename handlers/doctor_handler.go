package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
	"github.com/kamausoft/health_connect/services"
)

// GetMySchedule returns the authenticated doctor's appointments for one
// day, ordered by slot time. Defaults to today.
func GetMySchedule(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := claims["profile_id"].(string)

	date := c.Query("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}

	var appointments []models.Appointment
	err := database.DB.
		Preload("Patient").
		Where("doctor_id = ? AND appointment_date = ? AND status <> ?", doctorID, date, models.AppointmentCancelled).
		Order("appointment_time asc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}

	return c.JSON(fiber.Map{
		"date":         date,
		"appointments": appointments,
	})
}

func ListDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	query := database.DB.Preload("Department").Order("last_name asc")

	if departmentID := c.Query("departmentId"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}

	if err := query.Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch doctors"})
	}
	return c.JSON(doctors)
}

func GetDoctor(c *fiber.Ctx) error {
	doctorID := c.Params("doctorId")

	var doctor models.Doctor
	if err := database.DB.Preload("Department").First(&doctor, "id = ?", doctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found"})
	}
	return c.JSON(doctor)
}

// GetDoctorAvailability returns every slot of the doctor's clinic day
// with its availability flag. A slot is taken iff a non-cancelled
// appointment exists with the exact same time string.
func GetDoctorAvailability(c *fiber.Ctx) error {
	doctorID := c.Params("doctorId")

	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date parameter is required"})
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}

	var doctor models.Doctor
	if err := database.DB.Preload("Department").First(&doctor, "id = ?", doctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found"})
	}

	slots, err := services.DoctorAvailability(&doctor, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch availability"})
	}

	return c.JSON(fiber.Map{
		"doctorId": doctor.ID,
		"date":     date,
		"slots":    slots,
	})
}
