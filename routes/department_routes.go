package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamausoft/health_connect/handlers"
	"github.com/kamausoft/health_connect/middleware"
)

func DepartmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/departments", handlers.ListDepartments)

	admin := api.Group("/departments", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateDepartment)
	admin.Put("/:departmentId", handlers.UpdateDepartment)
	admin.Delete("/:departmentId", handlers.DeleteDepartment)
}
