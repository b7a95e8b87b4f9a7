package routes

import (
	"github.com/deskreserve/deskreserve/handlers"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/gofiber/fiber/v2"
)

func SubscriptionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sub := api.Group("/subscription", middleware.Protected())
	sub.Post("/quote", handlers.PreviewQuote)
	sub.Post("/quote/lock", handlers.LockQuote)
	sub.Post("/create", handlers.CreateSubscription)
	sub.Post("/change-seat", handlers.ChangeSeat)
	sub.Get("/details", handlers.GetSubscriptionDetails)
	sub.Patch("/update", handlers.UpdateSubscription)
	sub.Delete("/delete", handlers.DeleteSubscription)
	sub.Post("/freeze", handlers.FreezeSubscription)
	sub.Get("/all", handlers.GetAllSubscriptions)
}
