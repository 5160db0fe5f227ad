package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", handlers.Signup)
	auth.Post("/login", handlers.Login)
}
