package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
)

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	response := fiber.Map{"user": user}

	switch user.Role {
	case models.RolePatient:
		var patient models.Patient
		if err := database.DB.Where("user_id = ?", userID).First(&patient).Error; err == nil {
			response["profile"] = patient
		}
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := database.DB.Preload("Department").Where("user_id = ?", userID).First(&doctor).Error; err == nil {
			response["profile"] = doctor
		}
	case models.RoleAdmin:
		var admin models.Admin
		if err := database.DB.Where("user_id = ?", userID).First(&admin).Error; err == nil {
			response["profile"] = admin
		}
	}

	return c.JSON(response)
}

type UpdateProfileRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
}

// UpdateProfile covers the contact fields every role shares; clinical
// and staffing fields are managed by admins.
func UpdateProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	switch user.Role {
	case models.RolePatient:
		var patient models.Patient
		if err := database.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient profile not found"})
		}
		if req.PhoneNumber != nil {
			patient.PhoneNumber = *req.PhoneNumber
		}
		if req.Address != nil {
			patient.Address = *req.Address
		}
		if req.City != nil {
			patient.City = *req.City
		}
		database.DB.Save(&patient)
		return c.JSON(patient)

	case models.RoleDoctor:
		var doctor models.Doctor
		if err := database.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor profile not found"})
		}
		if req.PhoneNumber != nil {
			doctor.PhoneNumber = *req.PhoneNumber
		}
		database.DB.Save(&doctor)
		return c.JSON(doctor)

	default:
		var admin models.Admin
		if err := database.DB.Where("user_id = ?", userID).First(&admin).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Admin profile not found"})
		}
		if req.PhoneNumber != nil {
			admin.PhoneNumber = *req.PhoneNumber
		}
		database.DB.Save(&admin)
		return c.JSON(admin)
	}
}
