package handlers

import (
	"math"

	"github.com/deskreserve/deskreserve/database"
	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/services"
	"github.com/deskreserve/deskreserve/utils"
	"github.com/gofiber/fiber/v2"
)

func TodaySummary(c *fiber.Ctx) error {
	today := utils.Today()

	var activeToday int64
	err := database.DB.Model(&models.Subscription{}).
		Where("status = ? AND start_date <= ? AND end_date >= ?", "ACTIVE", today, today).
		Count(&activeToday).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	totalSeats := services.TotalSeats()

	return c.JSON(fiber.Map{
		"activeSubscriptions": activeToday,
		"occupiedSeats":       activeToday,
		"freeSeats":           int64(totalSeats) - activeToday,
	})
}

func RevenueSummary(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month is required (YYYY-MM)"})
	}

	var subs []models.Subscription
	err := database.DB.Where("status = ? AND start_date LIKE ?", "ACTIVE", month+"%").Find(&subs).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var totalRevenue, totalPaid int
	for _, sub := range subs {
		totalRevenue += sub.FinalAmount
		totalPaid += sub.PaidAmount
	}

	return c.JSON(fiber.Map{
		"month":         month,
		"subscriptions": len(subs),
		"totalRevenue":  totalRevenue,
		"totalPaid":     totalPaid,
		"pendingAmount": totalRevenue - totalPaid,
	})
}

func SeatUtilization(c *fiber.Ctx) error {
	today := utils.Today()

	var subs []models.Subscription
	err := database.DB.Where("status = ? AND start_date <= ? AND end_date >= ?", "ACTIVE", today, today).
		Find(&subs).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	activeSeats := make(map[int]bool)
	for _, sub := range subs {
		activeSeats[sub.Seat] = true
	}

	totalSeats := services.TotalSeats()

	return c.JSON(fiber.Map{
		"totalSeats":         totalSeats,
		"activeSeats":        len(activeSeats),
		"utilizationPercent": int(math.Round(float64(len(activeSeats)) / float64(totalSeats) * 100)),
	})
}
