package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/services"
)

type makeupCreditResponse struct {
	models.MakeupCredit
	RemainingMinutes    int    `json:"remaining_minutes"`
	DaysUntilExpiration int    `json:"days_until_expiration"`
	DisplayStatus       string `json:"display_status"`
}

// ListAvailableCredits returns only the credits a new schedule request can
// still draw on. Expired and exhausted credits never appear here.
func ListAvailableCredits(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	today := services.Today()
	credits, err := services.AvailableCredits(database.DB, studentID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch makeup credits"})
	}

	return c.JSON(decorateCredits(credits, today))
}

// ListCreditHistory returns every credit for a student, including expired
// and exhausted ones. Teacher-facing.
func ListCreditHistory(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var credits []models.MakeupCredit
	if err := database.DB.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&credits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch makeup credits"})
	}

	return c.JSON(decorateCredits(credits, services.Today()))
}

func decorateCredits(credits []models.MakeupCredit, today time.Time) []makeupCreditResponse {
	out := make([]makeupCreditResponse, 0, len(credits))
	for _, credit := range credits {
		out = append(out, makeupCreditResponse{
			MakeupCredit:        credit,
			RemainingMinutes:    credit.RemainingMinutes(),
			DaysUntilExpiration: services.DaysUntilExpiration(credit.ExpiresAt, today),
			DisplayStatus:       services.DisplayStatus(credit.ExpiresAt, today),
		})
	}
	return out
}
