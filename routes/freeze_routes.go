package routes

import (
	"github.com/deskreserve/deskreserve/handlers"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/gofiber/fiber/v2"
)

func FreezeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	freeze := api.Group("/freeze", middleware.Protected())
	freeze.Post("/request", handlers.RequestFreeze)
	freeze.Get("/me", handlers.GetMyFreezeStatus)

	freeze.Post("/action", middleware.AdminRequired(), handlers.ActionFreeze)
	freeze.Get("/pending", middleware.AdminRequired(), handlers.GetPendingFreezes)
}
