package services

import (
	"strings"
	"testing"
	"time"

	"github.com/kamausoft/health_connect/models"
)

func TestRenderInvoiceHTML(t *testing.T) {
	due := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	bill := &models.Billing{
		InvoiceNumber: "INV-202504-A1B2C3",
		Description:   "Cardiology consultation",
		Amount:        150.00,
		PaidAmount:    50.00,
		Status:        models.BillPending,
		DueDate:       due,
		Patient:       models.Patient{FirstName: "Jane", LastName: "Doe"},
	}
	bill.CreatedAt = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	html, err := RenderInvoiceHTML(bill)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"INV-202504-A1B2C3",
		"Jane Doe",
		"Cardiology consultation",
		"$150.00",
		"$50.00",
		"$100.00", // balance
		"PENDING",
		"April 30, 2025",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered invoice missing %q", want)
		}
	}
}
