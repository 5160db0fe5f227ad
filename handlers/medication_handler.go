package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
)

func ListMedications(c *fiber.Ctx) error {
	query := database.DB.Order("name asc")

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name ILIKE ? OR generic_name ILIKE ?", pattern, pattern)
	}

	var medications []models.Medication
	if err := query.Find(&medications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch medications"})
	}
	return c.JSON(medications)
}

type MedicationRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	GenericName string  `json:"generic_name"`
	DosageForm  string  `json:"dosage_form"`
	Strength    string  `json:"strength"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

func CreateMedication(c *fiber.Ctx) error {
	var req MedicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	medication := models.Medication{
		Name:        req.Name,
		GenericName: req.GenericName,
		DosageForm:  req.DosageForm,
		Strength:    req.Strength,
		Price:       req.Price,
	}
	if err := database.DB.Create(&medication).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create medication"})
	}

	return c.Status(fiber.StatusCreated).JSON(medication)
}

func UpdateMedication(c *fiber.Ctx) error {
	medicationID := c.Params("medicationId")

	var medication models.Medication
	if err := database.DB.First(&medication, "id = ?", medicationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Medication not found"})
	}

	var req MedicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	medication.Name = req.Name
	medication.GenericName = req.GenericName
	medication.DosageForm = req.DosageForm
	medication.Strength = req.Strength
	medication.Price = req.Price
	database.DB.Save(&medication)

	return c.JSON(medication)
}

func DeleteMedication(c *fiber.Ctx) error {
	medicationID := c.Params("medicationId")

	result := database.DB.Delete(&models.Medication{}, "id = ?", medicationID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete medication"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Medication not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
