package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/kamausoft/health_connect/configs"
	"github.com/kamausoft/health_connect/models"
)

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; color: #1a1a1a; }
  .header { border-bottom: 2px solid #0d6efd; padding-bottom: 12px; }
  .header h1 { margin: 0; color: #0d6efd; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  td, th { padding: 8px 4px; text-align: left; border-bottom: 1px solid #ddd; }
  .total { font-size: 1.2em; font-weight: bold; }
  .status { text-transform: uppercase; letter-spacing: 1px; }
</style>
</head>
<body>
  <div class="header">
    <h1>Invoice {{.InvoiceNumber}}</h1>
    <p>Issued {{.IssuedDate}} &middot; Due {{.DueDate}}</p>
  </div>
  <p><b>Billed to:</b> {{.PatientName}}</p>
  <table>
    <tr><th>Description</th><th>Amount</th></tr>
    <tr><td>{{.Description}}</td><td>${{printf "%.2f" .Amount}}</td></tr>
    <tr><td>Paid</td><td>${{printf "%.2f" .PaidAmount}}</td></tr>
    <tr class="total"><td>Balance</td><td>${{printf "%.2f" .Balance}}</td></tr>
  </table>
  <p class="status">Status: {{.Status}}</p>
</body>
</html>`

var invoiceTmpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

type invoiceData struct {
	InvoiceNumber string
	IssuedDate    string
	DueDate       string
	PatientName   string
	Description   string
	Amount        float64
	PaidAmount    float64
	Balance       float64
	Status        string
}

// RenderInvoiceHTML fills the invoice template from a bill. The bill
// must have its Patient preloaded.
func RenderInvoiceHTML(bill *models.Billing) (string, error) {
	data := invoiceData{
		InvoiceNumber: bill.InvoiceNumber,
		IssuedDate:    bill.CreatedAt.Format("January 2, 2006"),
		DueDate:       bill.DueDate.Format("January 2, 2006"),
		PatientName:   bill.Patient.FirstName + " " + bill.Patient.LastName,
		Description:   bill.Description,
		Amount:        bill.Amount,
		PaidAmount:    bill.PaidAmount,
		Balance:       bill.Amount - bill.PaidAmount,
		Status:        bill.Status,
	}

	var rendered bytes.Buffer
	if err := invoiceTmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

// GenerateInvoicePDF renders the bill to PDF through headless Chrome.
func GenerateInvoicePDF(bill *models.Billing) ([]byte, error) {
	htmlContent, err := RenderInvoiceHTML(bill)
	if err != nil {
		return nil, err
	}

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

// ArchiveInvoicePDF uploads a generated invoice to Cloudinary so billing
// staff keep a copy independent of the download. Best effort.
func ArchiveInvoicePDF(pdfBytes []byte, invoiceNumber string) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		log.Printf("🔥 Failed to initialize Cloudinary for invoice archive: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("invoices/%s", invoiceNumber),
		Folder:       "health_connect_invoices",
		ResourceType: "raw",
	}

	if _, err := cld.Upload.Upload(ctx, bytes.NewReader(pdfBytes), uploadParams); err != nil {
		log.Printf("🔥 Failed to archive invoice %s to Cloudinary: %v", invoiceNumber, err)
		return
	}
	log.Printf("✅ Archived invoice %s to Cloudinary", invoiceNumber)
}
