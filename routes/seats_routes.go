package routes

import (
	"github.com/deskreserve/deskreserve/handlers"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/gofiber/fiber/v2"
)

func SeatsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	seats := api.Group("/seats", middleware.Protected())
	seats.Get("/status", handlers.GetSeatStatus)
	seats.Get("/availability", handlers.GetSeatAvailability)
}
