package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/handlers"
	"github.com/kamausoft/health_connect/middleware"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments", middleware.Protected())
	appointments.Get("", handlers.GetAppointments)
	appointments.Post("", handlers.CreateAppointment)
	appointments.Patch("/:appointmentId/status", handlers.UpdateAppointmentStatus)
}
