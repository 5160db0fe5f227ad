package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
	"gorm.io/gorm"
)

func ListDepartments(c *fiber.Ctx) error {
	var departments []models.Department
	if err := database.DB.Preload("Doctors").Order("name asc").Find(&departments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}
	return c.JSON(departments)
}

type DepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`

	OpenHour    int `json:"open_hour,omitempty" validate:"omitempty,min=0,max=23"`
	CloseHour   int `json:"close_hour,omitempty" validate:"omitempty,min=1,max=24"`
	SlotMinutes int `json:"slot_minutes,omitempty" validate:"omitempty,oneof=10 15 20 30 60"`
}

func CreateDepartment(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.OpenHour != 0 && req.CloseHour != 0 && req.CloseHour <= req.OpenHour {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Close hour must be after open hour"})
	}

	department := models.Department{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
	}
	if req.OpenHour != 0 {
		department.OpenHour = req.OpenHour
	}
	if req.CloseHour != 0 {
		department.CloseHour = req.CloseHour
	}
	if req.SlotMinutes != 0 {
		department.SlotMinutes = req.SlotMinutes
	}

	if err := database.DB.Create(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A department with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create department"})
	}

	return c.Status(fiber.StatusCreated).JSON(department)
}

func UpdateDepartment(c *fiber.Ctx) error {
	departmentID := c.Params("departmentId")

	var department models.Department
	if err := database.DB.First(&department, "id = ?", departmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department.Name = req.Name
	department.Description = req.Description
	department.Location = req.Location
	department.PhoneNumber = req.PhoneNumber
	if req.OpenHour != 0 {
		department.OpenHour = req.OpenHour
	}
	if req.CloseHour != 0 {
		department.CloseHour = req.CloseHour
	}
	if req.SlotMinutes != 0 {
		department.SlotMinutes = req.SlotMinutes
	}
	if department.CloseHour <= department.OpenHour {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Close hour must be after open hour"})
	}

	if err := database.DB.Save(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update department"})
	}
	return c.JSON(department)
}

func DeleteDepartment(c *fiber.Ctx) error {
	departmentID := c.Params("departmentId")

	var doctorCount int64
	database.DB.Model(&models.Doctor{}).Where("department_id = ?", departmentID).Count(&doctorCount)
	if doctorCount > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a department that still has doctors"})
	}

	result := database.DB.Delete(&models.Department{}, "id = ?", departmentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete department"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
