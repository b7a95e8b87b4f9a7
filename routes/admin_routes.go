package routes

import (
	"github.com/deskreserve/deskreserve/handlers"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/register", handlers.RegisterAdmin)
	admin.Get("/students", handlers.GetStudents)
	admin.Get("/student", handlers.GetStudent)
}
