package handlers

import (
	"fmt"
	"strconv"

	"github.com/deskreserve/deskreserve/database"
	"github.com/deskreserve/deskreserve/middleware"
	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAdmin lets a logged-in admin create another admin or staff user.
func RegisterAdmin(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := database.DB.Model(&models.Admin{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	role := req.Role
	if role == "" {
		role = "ADMIN"
	}

	admin := models.Admin{Email: req.Email, Password: string(hashedPassword), Role: role}
	if err := database.DB.Create(&admin).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	go services.LogAction(middleware.CallerEmail(c), "REGISTER_ADMIN",
		fmt.Sprintf("Created user %s with role %s", req.Email, role))

	return c.JSON(fiber.Map{"success": true, "message": "User registered successfully"})
}

type StudentSummary struct {
	Email       string `json:"email"`
	Seat        int    `json:"seat"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	IDProofType string `json:"idProofType"`
	IDProofURL  string `json:"idProofUrl"`
}

func studentSummary(sub models.Subscription) StudentSummary {
	return StudentSummary{
		Email:       sub.Email,
		Seat:        sub.Seat,
		Name:        sub.StudentName,
		Phone:       sub.StudentPhone,
		IDProofType: sub.IDProofType,
		IDProofURL:  sub.IDProofURL,
	}
}

func GetStudents(c *fiber.Ctx) error {
	var subs []models.Subscription
	if err := database.DB.Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	students := make([]StudentSummary, 0, len(subs))
	for _, sub := range subs {
		students = append(students, studentSummary(sub))
	}
	return c.JSON(students)
}

// GetStudent looks a student up by email or seat number.
func GetStudent(c *fiber.Ctx) error {
	email := c.Query("email")
	seatParam := c.Query("seat")

	query := database.DB
	switch {
	case email != "":
		query = query.Where("email = ?", email)
	case seatParam != "":
		seat, err := strconv.Atoi(seatParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seat must be a number"})
		}
		query = query.Where("seat = ?", seat)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email or seat is required"})
	}

	var sub models.Subscription
	if err := query.First(&sub).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(studentSummary(sub))
}
