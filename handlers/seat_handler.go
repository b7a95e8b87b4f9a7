package handlers

import (
	"github.com/deskreserve/deskreserve/database"
	"github.com/deskreserve/deskreserve/services"
	"github.com/deskreserve/deskreserve/utils"
	"github.com/gofiber/fiber/v2"
)

// GetSeatStatus reports per-seat occupancy of the preset windows for one day.
func GetSeatStatus(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}
	if _, err := utils.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	status, err := services.SeatStatusByDate(database.DB, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(status)
}

// GetSeatAvailability lists seats free of any date-overlapping active
// subscription in the requested range.
func GetSeatAvailability(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "startDate and endDate are required"})
	}
	if _, err := utils.ParseDate(startDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "startDate must be YYYY-MM-DD"})
	}
	if _, err := utils.ParseDate(endDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "endDate must be YYYY-MM-DD"})
	}

	seats, err := services.GetAvailableSeats(database.DB, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"availableSeats": seats})
}
