package routes

import (
	"github.com/deskreserve/deskreserve/handlers"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/gofiber/fiber/v2"
)

func AnalyticsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	analytics := api.Group("/analytics", middleware.Protected())
	analytics.Get("/today", handlers.TodaySummary)
	analytics.Get("/revenue", handlers.RevenueSummary)
	analytics.Get("/seats", handlers.SeatUtilization)
}
