package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRoutesAreGone(t *testing.T) {
	app := fiber.New()
	BookingRoutes(app)

	for _, method := range []string{"GET", "POST", "DELETE"} {
		req := httptest.NewRequest(method, "/api/v1/booking/anything", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusGone, resp.StatusCode, "method=%s", method)
		resp.Body.Close()
	}
}
