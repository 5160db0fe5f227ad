package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
)

type DashboardStatsResponse struct {
	TotalPatients         int64   `json:"total_patients"`
	TotalDoctors          int64   `json:"total_doctors"`
	TotalAppointments     int64   `json:"total_appointments"`
	TodayAppointments     int64   `json:"today_appointments"`
	PendingAppointments   int64   `json:"pending_appointments"`
	CompletedAppointments int64   `json:"completed_appointments"`
	TotalRevenue          float64 `json:"total_revenue"`
	PendingBills          int64   `json:"pending_bills"`
}

// GetDashboardStats aggregates counters scoped to the caller's role:
// admins see hospital-wide numbers, doctors and patients see their own.
func GetDashboardStats(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role := claims["role"].(string)
	profileID, _ := claims["profile_id"].(string)

	switch role {
	case models.RoleDoctor:
		return c.JSON(doctorStats(profileID))
	case models.RolePatient:
		return c.JSON(patientStats(profileID))
	default:
		return c.JSON(adminStats())
	}
}

func adminStats() DashboardStatsResponse {
	var stats DashboardStatsResponse
	today := time.Now().Format("2006-01-02")

	database.DB.Model(&models.Patient{}).Count(&stats.TotalPatients)
	database.DB.Model(&models.Doctor{}).Count(&stats.TotalDoctors)
	database.DB.Model(&models.Appointment{}).Count(&stats.TotalAppointments)
	database.DB.Model(&models.Appointment{}).Where("appointment_date = ?", today).Count(&stats.TodayAppointments)
	database.DB.Model(&models.Appointment{}).
		Where("status IN ?", []string{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Count(&stats.PendingAppointments)
	database.DB.Model(&models.Appointment{}).Where("status = ?", models.AppointmentCompleted).Count(&stats.CompletedAppointments)
	err := database.DB.Model(&models.Billing{}).Where("status = ?", models.BillPaid).
		Select("COALESCE(SUM(paid_amount), 0)").Row().Scan(&stats.TotalRevenue)
	if err != nil {
		log.Printf("Error computing total revenue: %v", err)
	}
	database.DB.Model(&models.Billing{}).Where("status = ?", models.BillPending).Count(&stats.PendingBills)

	return stats
}

func doctorStats(doctorID string) DashboardStatsResponse {
	var stats DashboardStatsResponse
	today := time.Now().Format("2006-01-02")

	database.DB.Model(&models.Appointment{}).Where("doctor_id = ?", doctorID).
		Distinct("patient_id").Count(&stats.TotalPatients)
	database.DB.Model(&models.Appointment{}).Where("doctor_id = ?", doctorID).Count(&stats.TotalAppointments)
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ?", doctorID, today).
		Count(&stats.TodayAppointments)
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status IN ?", doctorID, []string{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Count(&stats.PendingAppointments)
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ?", doctorID, models.AppointmentCompleted).
		Count(&stats.CompletedAppointments)

	return stats
}

func patientStats(patientID string) DashboardStatsResponse {
	var stats DashboardStatsResponse

	database.DB.Model(&models.Appointment{}).Where("patient_id = ?", patientID).Count(&stats.TotalAppointments)
	database.DB.Model(&models.Appointment{}).
		Where("patient_id = ? AND status IN ?", patientID, []string{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Count(&stats.PendingAppointments)
	database.DB.Model(&models.Appointment{}).
		Where("patient_id = ? AND status = ?", patientID, models.AppointmentCompleted).
		Count(&stats.CompletedAppointments)
	database.DB.Model(&models.Billing{}).
		Where("patient_id = ? AND status = ?", patientID, models.BillPending).
		Count(&stats.PendingBills)

	return stats
}

// GetRecentAppointments feeds the dashboard list: upcoming visits for
// doctors and patients, latest activity for admins.
func GetRecentAppointments(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role := claims["role"].(string)
	profileID, _ := claims["profile_id"].(string)

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := database.DB.
		Preload("Patient").
		Preload("Doctor").
		Limit(limit)

	today := time.Now().Format("2006-01-02")
	switch role {
	case models.RoleDoctor:
		query = query.
			Where("doctor_id = ? AND appointment_date >= ?", profileID, today).
			Order("appointment_date asc, appointment_time asc")
	case models.RolePatient:
		query = query.
			Where("patient_id = ? AND status IN ?", profileID, []string{models.AppointmentScheduled, models.AppointmentConfirmed}).
			Order("appointment_date asc, appointment_time asc")
	default:
		query = query.Order("created_at desc")
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch recent appointments"})
	}

	return c.JSON(appointments)
}
