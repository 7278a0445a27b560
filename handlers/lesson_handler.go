package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/notifications"
	"github.com/mkobay/tutor_manage/services"
	"gorm.io/gorm"
)

type CreateLessonRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Memo      *string `json:"memo,omitempty"`
}

// CreateLesson lets the teacher put a lesson on the calendar directly,
// outside the request/confirm negotiation.
func CreateLesson(c *fiber.Ctx) error {
	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hours, err := services.DurationHours(req.StartTime, req.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if hours <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End time must be after start time"})
	}

	var student models.Student
	if err := database.DB.First(&student, "id = ?", req.StudentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	lesson := models.Lesson{
		StudentID:    student.ID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Hours:        hours,
		Amount:       services.LessonFee(hours, student.HourlyRate),
		TransportFee: services.TransportFee(student.Location),
		Status:       models.LessonPlanned,
		Memo:         req.Memo,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// ListLessons returns a student's lessons, optionally scoped to a month
// (?month=2026-09).
func ListLessons(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	query := database.DB.Where("student_id = ?", studentID).Order("date asc, start_time asc")
	if month := c.Query("month"); month != "" {
		start, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month, expected YYYY-MM"})
		}
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}

	var lessons []models.Lesson
	if err := query.Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	return c.JSON(lessons)
}

type LessonNotesRequest struct {
	Memo     *string `json:"memo,omitempty"`
	Homework *string `json:"homework,omitempty"`
}

func UpdateLessonNotes(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var req LessonNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Memo != nil {
		lesson.Memo = req.Memo
	}
	if req.Homework != nil {
		lesson.Homework = req.Homework
	}
	if err := database.DB.Save(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lesson"})
	}

	return c.JSON(lesson)
}

func CompleteLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson id"})
	}

	lesson, err := services.CompleteLesson(database.DB, lessonID)
	if err != nil {
		return lessonServiceError(c, err)
	}

	return c.JSON(lesson)
}

type CancelLessonRequest struct {
	GrantMakeup bool    `json:"grant_makeup"`
	Reason      *string `json:"reason,omitempty"`
}

// CancelLesson cancels a planned lesson. grant_makeup carries the teacher's
// policy decision on whether this cancellation earns a makeup credit.
func CancelLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson id"})
	}

	var req CancelLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	lesson, credit, err := services.CancelLesson(database.DB, lessonID, req.GrantMakeup)
	if err != nil {
		return lessonServiceError(c, err)
	}

	if credit != nil {
		go notifyMakeupCreditIssued(lesson, credit)
	}

	return c.JSON(fiber.Map{
		"lesson":        lesson,
		"makeup_credit": credit,
	})
}

type RescheduleLessonRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func RescheduleLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson id"})
	}

	var req RescheduleLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	lesson, err := services.RescheduleLesson(database.DB, lessonID, date, req.StartTime, req.EndTime)
	if err != nil {
		return lessonServiceError(c, err)
	}

	return c.JSON(lesson)
}

func lessonServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func notifyMakeupCreditIssued(lesson models.Lesson, credit *models.MakeupCredit) {
	var student models.Student
	if err := database.DB.Preload("Parent").First(&student, "id = ?", lesson.StudentID).Error; err != nil {
		return
	}
	if student.Parent == nil {
		return
	}
	body := fmt.Sprintf(
		"<h1>Makeup Credit Issued</h1><p>The lesson on %s was cancelled. A makeup credit of %d minutes has been issued, valid until %s.</p>",
		lesson.Date.Format("2006-01-02"),
		credit.TotalMinutes,
		credit.ExpiresAt.Format("2006-01-02"),
	)
	notifications.SendEmail(student.Parent.FullName, student.Parent.Email, "Makeup Credit Issued", body)
}
