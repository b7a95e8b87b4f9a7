package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/deskreserve/deskreserve/database"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/services"
	"github.com/deskreserve/deskreserve/utils"
	"github.com/deskreserve/deskreserve/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errQuoteNotFound   = errors.New("Quote not found")
	errQuoteUsed       = errors.New("Quote already used")
	errQuoteExpired    = errors.New("Quote expired")
	errPaymentMismatch = errors.New("Payment mismatch")
	errSeatTaken       = errors.New("Seat not available")
	errFreezeLimit     = errors.New("Freeze limit exceeded")
)

// checkQuoteRedeemable gates redemption: a quote is spendable exactly once,
// while still ACTIVE and unexpired, and only for its locked amount. Expiry
// is enforced here at redemption time; nothing sweeps expired rows.
func checkQuoteRedeemable(quote models.Quote, now time.Time, paidAmount int) error {
	if quote.Status != "ACTIVE" {
		return errQuoteUsed
	}
	if now.After(quote.ExpiresAt) {
		return errQuoteExpired
	}
	if paidAmount != quote.FinalAmount {
		return errPaymentMismatch
	}
	return nil
}

type QuoteRequest struct {
	Slots  []models.Slot `json:"slots" validate:"required,min=1"`
	Months int           `json:"months" validate:"required"`
}

// PreviewQuote prices a slot set without persisting anything.
func PreviewQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.ValidateSlots(req.Slots); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	price, err := services.CalculatePrice(req.Slots, req.Months)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(price)
}

type LockQuoteRequest struct {
	Slots  []models.Slot `json:"slots" validate:"required,min=1"`
	Months int           `json:"months" validate:"required"`
	// Accepted for API compatibility and deliberately ignored; the
	// discount is derived from months alone.
	Discount int `json:"discount,omitempty"`
}

// LockQuote mints a 10-minute price lock. Expired quotes are never reaped;
// redemption checks expiry lazily.
func LockQuote(c *fiber.Ctx) error {
	var req LockQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.ValidateSlots(req.Slots); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	price, err := services.CalculatePrice(req.Slots, req.Months)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quote := models.Quote{
		QuoteID:         utils.NewQuoteCode(),
		Slots:           req.Slots,
		Months:          req.Months,
		BaseAmount:      price.BaseAmount,
		DiscountPercent: price.Discount,
		DiscountAmount:  price.DiscountAmount,
		FinalAmount:     price.FinalAmount,
		Status:          "ACTIVE",
		ExpiresAt:       time.Now().Add(10 * time.Minute),
	}
	if err := database.DB.Create(&quote).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to lock quote"})
	}

	return c.JSON(fiber.Map{
		"quoteId":   quote.QuoteID,
		"amount":    quote.FinalAmount,
		"expiresAt": quote.ExpiresAt,
	})
}

type PaymentInput struct {
	PaidAmount int    `json:"paidAmount" validate:"required"`
	Mode       string `json:"mode" validate:"required"`
}

type StudentInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	IDProofType string `json:"idProofType"`
	IDProofURL  string `json:"idProofUrl"`
}

type CreateSubscriptionRequest struct {
	QuoteID string       `json:"quoteId" validate:"required"`
	Email   string       `json:"email" validate:"required,email"`
	Seat    int          `json:"seat" validate:"required,min=1"`
	Payment PaymentInput `json:"payment" validate:"required"`
	Student StudentInput `json:"student"`
}

// CreateSubscription redeems a quote and creates the subscription row.
// Redemption, the availability check, the insert and marking the quote
// USED commit in one transaction, so a quote can never be redeemed twice.
func CreateSubscription(c *fiber.Ctx) error {
	var req CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var quote models.Quote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("quote_id = ?", req.QuoteID).
			First(&quote).Error
		if err == gorm.ErrRecordNotFound {
			return errQuoteNotFound
		}
		if err != nil {
			return err
		}

		if err := checkQuoteRedeemable(quote, time.Now(), req.Payment.PaidAmount); err != nil {
			return err
		}

		startDate := utils.Today()
		endDate, err := utils.AddMonths(startDate, quote.Months)
		if err != nil {
			return err
		}

		available, err := services.IsSeatAvailable(tx, req.Seat, startDate, endDate, quote.Slots)
		if err != nil {
			return err
		}
		if !available {
			return errSeatTaken
		}

		freezeDays, seatChanges := services.PlanAllowances(quote.Months)

		paymentStatus := "PARTIAL"
		if req.Payment.PaidAmount >= quote.FinalAmount {
			paymentStatus = "PAID"
		}

		sub := models.Subscription{
			Email:             req.Email,
			Seat:              req.Seat,
			StartDate:         startDate,
			EndDate:           endDate,
			Months:            quote.Months,
			Status:            "ACTIVE",
			QuoteID:           &quote.ID,
			Slots:             quote.Slots,
			BaseAmount:        quote.BaseAmount,
			DiscountPercent:   quote.DiscountPercent,
			DiscountAmount:    quote.DiscountAmount,
			FinalAmount:       quote.FinalAmount,
			PaidAmount:        req.Payment.PaidAmount,
			PaymentMode:       req.Payment.Mode,
			PaymentStatus:     paymentStatus,
			StudentName:       req.Student.Name,
			StudentPhone:      req.Student.Phone,
			IDProofType:       req.Student.IDProofType,
			IDProofURL:        req.Student.IDProofURL,
			FreezeDaysAllowed: freezeDays,
			OriginalEndDate:   endDate,
			SeatChangeAllowed: seatChanges,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}

		quote.Status = "USED"
		return tx.Save(&quote).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, errQuoteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, errQuoteUsed), errors.Is(err, errQuoteExpired),
			errors.Is(err, errPaymentMismatch), errors.Is(err, errSeatTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	go services.LogAction(middleware.CallerEmail(c), "CREATE_SUBSCRIPTION",
		fmt.Sprintf("Seat %d assigned to %s", req.Seat, req.Email))
	websocket.NotifySeat("subscription_created", req.Seat, req.Email)

	return c.JSON(fiber.Map{"success": true})
}

type ChangeSeatRequest struct {
	Email   string `json:"email" validate:"required,email"`
	OldSeat int    `json:"oldSeat" validate:"required,min=1"`
	NewSeat int    `json:"newSeat" validate:"required,min=1"`
}

func ChangeSeat(c *fiber.Ctx) error {
	var req ChangeSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := services.ChangeSeat(database.DB, req.Email, req.OldSeat, req.NewSeat, middleware.CallerEmail(c))
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		for _, known := range []error{
			services.ErrSubscriptionNotActive,
			services.ErrSubscriptionExpired,
			services.ErrSeatChangeNotAllowedForPlan,
			services.ErrSeatChangeLimitExceeded,
			services.ErrFrozenSeatChangeDenied,
			services.ErrSameSeat,
			services.ErrSeatUnavailable,
		} {
			if errors.Is(err, known) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	websocket.NotifySeat("seat_changed", req.NewSeat, req.Email)

	return c.JSON(fiber.Map{
		"success":               true,
		"seat_change_used":      result.SeatChangeUsed,
		"seat_change_remaining": result.SeatChangeRemaining,
	})
}

func GetSubscriptionDetails(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	// Exact-match lookup deliberately ignores status so operators can
	// inspect soft-deleted rows.
	var sub models.Subscription
	if err := database.DB.Where("email = ?", email).First(&sub).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
	}

	return c.JSON(sub)
}

// updatableColumns whitelists the fields a partial update may touch.
// Seat-change counters are managed exclusively by the seat-change flow.
var updatableColumns = map[string]string{
	"email":               "email",
	"seat":                "seat",
	"start_date":          "start_date",
	"end_date":            "end_date",
	"months":              "months",
	"status":              "status",
	"base_amount":         "base_amount",
	"discount_percent":    "discount_percent",
	"discount_amount":     "discount_amount",
	"final_amount":        "final_amount",
	"paid_amount":         "paid_amount",
	"payment_mode":        "payment_mode",
	"payment_status":      "payment_status",
	"student_name":        "student_name",
	"student_phone":       "student_phone",
	"id_proof_type":       "id_proof_type",
	"id_proof_url":        "id_proof_url",
	"freeze_days_allowed": "freeze_days_allowed",
	"freeze_days_used":    "freeze_days_used",
	"original_end_date":   "original_end_date",
}

type UpdateSubscriptionRequest struct {
	Email   string                 `json:"email" validate:"required,email"`
	Updates map[string]interface{} `json:"updates" validate:"required"`
}

func UpdateSubscription(c *fiber.Ctx) error {
	var req UpdateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sub models.Subscription
	if err := database.DB.Where("email = ?", req.Email).First(&sub).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
	}

	if _, touchesSeat := req.Updates["seat"]; touchesSeat {
		frozen, err := services.IsUserFrozen(database.DB, sub.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		if frozen {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot change seat during active freeze"})
		}
	}

	updates := make(map[string]interface{})
	for key, value := range req.Updates {
		if column, ok := updatableColumns[key]; ok {
			updates[column] = value
		}
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&sub).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update subscription"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Subscription updated successfully"})
}

type DeleteSubscriptionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// DeleteSubscription soft-deletes: the row stays queryable by the detail
// lookup, but every ACTIVE-filtered scan excludes it.
func DeleteSubscription(c *fiber.Ctx) error {
	var req DeleteSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sub models.Subscription
	if err := database.DB.Where("email = ?", req.Email).First(&sub).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
	}

	sub.Status = "DELETED"
	if err := database.DB.Save(&sub).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete subscription"})
	}

	websocket.NotifySeat("subscription_deleted", sub.Seat, sub.Email)

	return c.JSON(fiber.Map{"success": true, "message": "Subscription soft deleted"})
}

func GetAllSubscriptions(c *fiber.Ctx) error {
	var subs []models.Subscription
	if err := database.DB.Where("status = ?", "ACTIVE").Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(subs)
}

type DirectFreezeRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FreezeDays int    `json:"freeze_days" validate:"required,min=1"`
}

// FreezeSubscription applies a freeze immediately, without the
// request/approval flow: it extends the end date and burns allowance in
// one transaction.
func FreezeSubscription(c *fiber.Ctx) error {
	var req DirectFreezeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var newEndDate string
	var newUsed int

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		today := utils.Today()
		var sub models.Subscription
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ? AND status = ? AND start_date <= ? AND end_date >= ?",
				req.Email, "ACTIVE", today, today).
			First(&sub).Error
		if err == gorm.ErrRecordNotFound {
			return services.ErrSubscriptionNotFound
		}
		if err != nil {
			return err
		}

		if err := services.ApplyFreeze(&sub, req.FreezeDays); err != nil {
			if errors.Is(err, services.ErrInsufficientFreezeBalance) {
				return errFreezeLimit
			}
			return err
		}
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		newEndDate = sub.EndDate
		newUsed = sub.FreezeDaysUsed
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubscriptionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, errFreezeLimit):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"new_end_date":     newEndDate,
		"freeze_days_used": newUsed,
	})
}
