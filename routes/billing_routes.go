package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/handlers"
	"github.com/kamausoft/health_connect/middleware"
)

func BillingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	billing := api.Group("/billing", middleware.Protected())
	billing.Get("", handlers.ListBills)
	billing.Get("/:billId/invoice", handlers.DownloadInvoice)

	adminBilling := api.Group("/billing", middleware.Protected(), middleware.AdminRequired())
	adminBilling.Post("", handlers.CreateBill)
	adminBilling.Post("/:billId/pay", handlers.PayBill)
}
