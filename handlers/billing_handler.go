package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/services"
)

// GetMonthlyBilling computes the statement for a student and month
// (?month=2026-09, defaulting to the current month).
func GetMonthlyBilling(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	today := services.Today()

	targetMonth := services.StartOfMonth(today)
	if month := c.Query("month"); month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month, expected YYYY-MM"})
		}
		targetMonth = parsed
	}

	lessons, err := lessonsForMonth(studentID, targetMonth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	return c.JSON(services.CalculateBillingInfo(lessons, targetMonth, today))
}

// GetNextMonthBilling is the parent-facing preview of next month's charges.
func GetNextMonthBilling(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	today := services.Today()

	nextMonth := services.StartOfMonth(today).AddDate(0, 1, 0)
	lessons, err := lessonsForMonth(studentID, nextMonth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	return c.JSON(services.NextMonthBillingInfo(lessons, today))
}

// GetBillingStatementPDF renders the month's statement to PDF and returns
// the hosted URL.
func GetBillingStatementPDF(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	today := services.Today()

	targetMonth := services.StartOfMonth(today)
	if month := c.Query("month"); month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month, expected YYYY-MM"})
		}
		targetMonth = parsed
	}

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	lessons, err := lessonsForMonth(studentID, targetMonth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	info := services.CalculateBillingInfo(lessons, targetMonth, today)
	url, err := services.GenerateStatementPDF(student, info)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate statement PDF"})
	}

	return c.JSON(fiber.Map{"statement_url": url})
}

// lessonsForMonth scopes the query to the target month; the billing
// calculator itself never filters by date.
func lessonsForMonth(studentID string, targetMonth time.Time) ([]models.Lesson, error) {
	start := services.StartOfMonth(targetMonth)
	var lessons []models.Lesson
	err := database.DB.
		Where("student_id = ? AND date >= ? AND date < ?", studentID, start, start.AddDate(0, 1, 0)).
		Order("date asc, start_time asc").
		Find(&lessons).Error
	return lessons, err
}
