package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/handlers"
	"github.com/kamausoft/health_connect/middleware"
)

func MedicationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/medications", handlers.ListMedications)

	admin := api.Group("/medications", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateMedication)
	admin.Put("/:medicationId", handlers.UpdateMedication)
	admin.Delete("/:medicationId", handlers.DeleteMedication)
}
