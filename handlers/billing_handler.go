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
	"github.com/kamausoft/health_connect/services"
	"github.com/kamausoft/health_connect/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBillRequest struct {
	PatientID     string  `json:"patient_id" validate:"required,uuid"`
	AppointmentID string  `json:"appointment_id,omitempty" validate:"omitempty,uuid"`
	Description   string  `json:"description" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	DueDate       string  `json:"due_date" validate:"required,datetime=2006-01-02"`
}

func CreateBill(c *fiber.Ctx) error {
	var req CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	patientID, _ := uuid.Parse(req.PatientID)
	var patient models.Patient
	if err := database.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found"})
	}

	var appointmentID *uuid.UUID
	if req.AppointmentID != "" {
		id, _ := uuid.Parse(req.AppointmentID)
		var appointment models.Appointment
		if err := database.DB.First(&appointment, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		}
		appointmentID = &id
	}

	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	var bill models.Billing
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Invoice numbers are random; retry a couple of times if the
		// unique column rejects a collision.
		for attempt := 0; attempt < 3; attempt++ {
			bill = models.Billing{
				PatientID:     patientID,
				AppointmentID: appointmentID,
				InvoiceNumber: utils.NewInvoiceNumber(),
				Description:   req.Description,
				Amount:        req.Amount,
				Status:        models.BillPending,
				DueDate:       dueDate,
			}
			err := tx.Create(&bill).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		}
		return errors.New("failed to allocate invoice number")
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create bill"})
	}

	return c.Status(fiber.StatusCreated).JSON(bill)
}

func ListBills(c *fiber.Ctx) error {
	query := database.DB.Preload("Patient").Order("created_at desc")

	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bills []models.Billing
	if err := query.Find(&bills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bills"})
	}
	return c.JSON(bills)
}

type PayBillRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func PayBill(c *fiber.Ctx) error {
	billID := c.Params("billId")

	var req PayBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var bill models.Billing
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bill, "id = ?", billID).Error; err != nil {
			return errors.New("bill not found")
		}
		if bill.Status != models.BillPending {
			return errors.New("only pending bills can be paid")
		}
		if bill.PaidAmount+req.Amount > bill.Amount {
			return errors.New("payment exceeds the outstanding balance")
		}

		bill.PaidAmount += req.Amount
		if bill.PaidAmount >= bill.Amount {
			now := time.Now()
			bill.Status = models.BillPaid
			bill.PaidAt = &now
		}
		return tx.Save(&bill).Error
	})
	if err != nil {
		if err.Error() == "bill not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if bill.Status == models.BillPaid {
		go func(paid models.Billing) {
			var patient models.Patient
			if err := database.DB.Preload("User").First(&patient, "id = ?", paid.PatientID).Error; err != nil {
				return
			}
			notifications.SendEmail(patient.FirstName+" "+patient.LastName, patient.User.Email,
				"Payment Received",
				fmt.Sprintf("<h1>Payment Received</h1><p>Invoice %s has been settled in full. Thank you.</p>", paid.InvoiceNumber))
		}(bill)
	}

	return c.JSON(bill)
}

// DownloadInvoice renders the bill as a PDF and streams it back; a copy
// is archived to Cloudinary in the background.
func DownloadInvoice(c *fiber.Ctx) error {
	billID := c.Params("billId")

	var bill models.Billing
	if err := database.DB.Preload("Patient").First(&bill, "id = ?", billID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
	}

	pdfBytes, err := services.GenerateInvoicePDF(&bill)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate invoice PDF"})
	}

	go services.ArchiveInvoicePDF(pdfBytes, bill.InvoiceNumber)

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.pdf\"", bill.InvoiceNumber))
	return c.Send(pdfBytes)
}
