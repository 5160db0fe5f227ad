package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/handlers"
	"github.com/kamausoft/health_connect/middleware"
)

func DoctorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/doctors/me/schedule", middleware.Protected(), middleware.DoctorRequired(), handlers.GetMySchedule)

	api.Get("/doctors", handlers.ListDoctors)
	api.Get("/doctors/:doctorId", handlers.GetDoctor)
	api.Get("/doctors/:doctorId/availability", handlers.GetDoctorAvailability)
}
