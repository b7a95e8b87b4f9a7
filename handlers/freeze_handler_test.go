package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func freezeApp() *fiber.App {
	app := fiber.New()
	app.Post("/freeze/request", RequestFreeze)
	return app
}

func TestRequestFreezeRejectsRetroactiveStart(t *testing.T) {
	app := freezeApp()

	status, body := postJSON(t, app, "/freeze/request", fiber.Map{
		"email":      "student@example.com",
		"start_date": "2020-01-01",
		"end_date":   "2020-01-05",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Freeze cannot be retroactive", body["message"])
}

func TestRequestFreezeRejectsInvertedRange(t *testing.T) {
	app := freezeApp()

	status, body := postJSON(t, app, "/freeze/request", fiber.Map{
		"email":      "student@example.com",
		"start_date": "2999-02-10",
		"end_date":   "2999-02-01",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid date range", body["message"])
}

func TestRequestFreezeRejectsMalformedDates(t *testing.T) {
	app := freezeApp()

	status, body := postJSON(t, app, "/freeze/request", fiber.Map{
		"email":      "student@example.com",
		"start_date": "not-a-date",
		"end_date":   "2999-02-01",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid date range", body["message"])
}
