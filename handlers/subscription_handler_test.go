package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewApp() *fiber.App {
	app := fiber.New()
	app.Post("/quote", PreviewQuote)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestPreviewQuoteHappyPath(t *testing.T) {
	app := previewApp()

	status, body := postJSON(t, app, "/quote", fiber.Map{
		"slots":  []fiber.Map{{"start": "08:00", "end": "12:00"}},
		"months": 3,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(700), body["baseAmount"])
	assert.Equal(t, float64(5), body["discount"])
	assert.Equal(t, float64(665), body["finalAmount"])
}

func TestPreviewQuoteRejectsOverlappingSlots(t *testing.T) {
	app := previewApp()

	status, body := postJSON(t, app, "/quote", fiber.Map{
		"slots": []fiber.Map{
			{"start": "08:00", "end": "12:00"},
			{"start": "10:00", "end": "14:00"},
		},
		"months": 3,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "overlapping")
}

func TestPreviewQuoteRejectsInvalidPlan(t *testing.T) {
	app := previewApp()

	status, body := postJSON(t, app, "/quote", fiber.Map{
		"slots":  []fiber.Map{{"start": "08:00", "end": "12:00"}},
		"months": 5,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, services.ErrInvalidPlan.Error(), body["error"])
}

func TestPreviewQuoteRejectsEmptySlots(t *testing.T) {
	app := previewApp()

	status, _ := postJSON(t, app, "/quote", fiber.Map{
		"slots":  []fiber.Map{},
		"months": 3,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func lockedQuote(amount int, expiresAt time.Time) models.Quote {
	return models.Quote{Status: "ACTIVE", FinalAmount: amount, ExpiresAt: expiresAt}
}

func TestQuoteRedeemableWhileActive(t *testing.T) {
	q := lockedQuote(665, time.Now().Add(5*time.Minute))

	assert.NoError(t, checkQuoteRedeemable(q, time.Now(), 665))
}

func TestQuoteRedeemableOnlyOnce(t *testing.T) {
	q := lockedQuote(665, time.Now().Add(5*time.Minute))
	q.Status = "USED"

	assert.ErrorIs(t, checkQuoteRedeemable(q, time.Now(), 665), errQuoteUsed)
}

func TestQuoteExpiryEnforcedAtRedemption(t *testing.T) {
	minted := time.Now()
	q := lockedQuote(665, minted.Add(10*time.Minute))

	assert.NoError(t, checkQuoteRedeemable(q, minted.Add(9*time.Minute), 665))
	assert.ErrorIs(t, checkQuoteRedeemable(q, minted.Add(11*time.Minute), 665), errQuoteExpired)
}

func TestQuoteRejectsPaymentMismatch(t *testing.T) {
	q := lockedQuote(665, time.Now().Add(5*time.Minute))

	assert.ErrorIs(t, checkQuoteRedeemable(q, time.Now(), 600), errPaymentMismatch)
}
