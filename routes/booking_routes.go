package routes

import (
	"github.com/gofiber/fiber/v2"
)

// BookingRoutes is a tombstone: per-slot booking was retired when
// subscriptions took over, but the router stays mounted so old clients get
// an explicit 410 instead of a 404.
func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/booking")
	booking.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": "Booking routes are deprecated. Use subscription APIs.",
		})
	})
}
