package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/deskreserve/deskreserve/database"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/notifications"
	"github.com/deskreserve/deskreserve/services"
	"github.com/deskreserve/deskreserve/utils"
	"github.com/deskreserve/deskreserve/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errFreezeInvalid    = errors.New("Invalid freeze request")
	errFreezeSubMissing = errors.New("Subscription not found")
)

type FreezeRequestInput struct {
	Email     string `json:"email" validate:"required,email"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// RequestFreeze files a pending freeze. Approval happens separately; no
// subscription state changes here.
func RequestFreeze(c *fiber.Ctx) error {
	var req FreezeRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email, start_date and end_date required"})
	}

	if _, err := utils.ParseDate(req.StartDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date range"})
	}
	if _, err := utils.ParseDate(req.EndDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date range"})
	}

	today := utils.Today()
	if req.StartDate < today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Freeze cannot be retroactive"})
	}
	if req.EndDate < req.StartDate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date range"})
	}

	sub, err := services.GetActiveSubscription(database.DB, req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	if sub == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "No active subscription"})
	}

	if req.StartDate > sub.EndDate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Freeze outside subscription period"})
	}

	totalDays, err := utils.InclusiveDays(req.StartDate, req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date range"})
	}

	remaining := sub.FreezeDaysAllowed - sub.FreezeDaysUsed
	if totalDays > remaining {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Only %d freeze days remaining", remaining),
		})
	}

	overlapping, err := services.HasOverlappingFreeze(database.DB, req.Email, req.StartDate, req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	if overlapping {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Overlapping freeze request exists"})
	}

	freeze := models.FreezeRequest{
		FreezeID:    utils.NewFreezeCode(),
		Email:       req.Email,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalDays:   totalDays,
		Status:      "pending",
		RequestedAt: time.Now(),
	}
	if err := database.DB.Create(&freeze).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save freeze request"})
	}

	return c.JSON(fiber.Map{"message": "Freeze request submitted successfully"})
}

type FreezeActionRequest struct {
	FreezeID string `json:"freeze_id" validate:"required"`
	Action   string `json:"action" validate:"required,oneof=approve reject"`
	Reason   string `json:"reason,omitempty"`
}

// ActionFreeze approves or rejects a pending freeze. Approval re-checks the
// allowance against the live subscription and extends the end date in the
// same transaction that marks the freeze approved.
func ActionFreeze(c *fiber.Ctx) error {
	var req FreezeActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "freeze_id and action required"})
	}

	approver := middleware.CallerEmail(c)
	now := time.Now()

	if req.Action == "reject" {
		reason := req.Reason
		if reason == "" {
			reason = "Rejected by admin"
		}

		result := database.DB.Model(&models.FreezeRequest{}).
			Where("freeze_id = ? AND status = ?", req.FreezeID, "pending").
			Updates(map[string]interface{}{
				"status":           "rejected",
				"rejection_reason": reason,
				"approved_at":      now,
				"approved_by":      approver,
			})
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid freeze request"})
		}

		go services.LogAction(approver, "REJECT_FREEZE", fmt.Sprintf("Freeze %s rejected: %s", req.FreezeID, reason))
		go notifyFreezeDecision(req.FreezeID, "rejected", reason)

		return c.JSON(fiber.Map{"message": "Freeze rejected"})
	}

	var frozenSeat int
	var frozenEmail string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var freeze models.FreezeRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("freeze_id = ?", req.FreezeID).
			First(&freeze).Error
		if err == gorm.ErrRecordNotFound {
			return errFreezeInvalid
		}
		if err != nil {
			return err
		}
		if freeze.Status != "pending" {
			return errFreezeInvalid
		}

		today := utils.Today()
		var sub models.Subscription
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ? AND status = ? AND start_date <= ? AND end_date >= ?",
				freeze.Email, "ACTIVE", today, today).
			First(&sub).Error
		if err == gorm.ErrRecordNotFound {
			return errFreezeSubMissing
		}
		if err != nil {
			return err
		}

		// Balance may have changed since the request was filed.
		if err := services.ApplyFreeze(&sub, freeze.TotalDays); err != nil {
			return err
		}
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		freeze.Status = "approved"
		freeze.ApprovedAt = &now
		freeze.ApprovedBy = &approver
		if err := tx.Save(&freeze).Error; err != nil {
			return err
		}

		frozenSeat = sub.Seat
		frozenEmail = sub.Email
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, errFreezeInvalid), errors.Is(err, errFreezeSubMissing),
			errors.Is(err, services.ErrInsufficientFreezeBalance):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	go services.LogAction(approver, "APPROVE_FREEZE", fmt.Sprintf("Freeze %s approved for %s", req.FreezeID, frozenEmail))
	go notifyFreezeDecision(req.FreezeID, "approved", "")
	websocket.NotifySeat("freeze_approved", frozenSeat, frozenEmail)

	return c.JSON(fiber.Map{"message": "Freeze approved successfully"})
}

func notifyFreezeDecision(freezeID, decision, reason string) {
	var freeze models.FreezeRequest
	if err := database.DB.Where("freeze_id = ?", freezeID).First(&freeze).Error; err != nil {
		return
	}

	subject := "Your freeze request was " + decision
	body := fmt.Sprintf("<h1>Freeze %s</h1><p>Your freeze request for %s to %s has been %s.</p>",
		decision, freeze.StartDate, freeze.EndDate, decision)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	notifications.SendEmail(freeze.Email, freeze.Email, subject, body)
}

func GetMyFreezeStatus(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email required"})
	}

	sub, err := services.GetActiveSubscription(database.DB, email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	if sub == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No active subscription found"})
	}

	active, err := services.ActiveFreeze(database.DB, email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	response := fiber.Map{
		"isFrozen":            active != nil,
		"freezeStart":         nil,
		"freezeEnd":           nil,
		"freezeDaysUsed":      sub.FreezeDaysUsed,
		"freezeDaysRemaining": sub.FreezeDaysAllowed - sub.FreezeDaysUsed,
	}
	if active != nil {
		response["freezeStart"] = active.StartDate
		response["freezeEnd"] = active.EndDate
	}

	return c.JSON(response)
}

func GetPendingFreezes(c *fiber.Ctx) error {
	var pending []models.FreezeRequest
	if err := database.DB.Where("status = ?", "pending").Order("requested_at asc").Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(pending)
}
