package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/notifications"
	"github.com/mkobay/tutor_manage/services"
	"gorm.io/gorm"
)

type CreateScheduleRequest struct {
	StudentID      string  `json:"student_id" validate:"required,uuid"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time" validate:"required"`
	EndTime        string  `json:"end_time" validate:"required"`
	Location       *string `json:"location,omitempty"`
	Message        *string `json:"message,omitempty"`
	MakeupCreditID *string `json:"makeup_credit_id,omitempty"`
}

// CreateRequest opens a schedule negotiation. A request funded by a makeup
// credit is checked for redeemability up front so the requester learns
// immediately that the credit is spent or expired.
func CreateRequest(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	requesterID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateScheduleRequest
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

	// Only one request may be in flight per proposed slot.
	var inFlight int64
	database.DB.Model(&models.ScheduleRequest{}).
		Where("student_id = ? AND date = ? AND start_time = ? AND status IN ?",
			student.ID, date, req.StartTime, []models.RequestStatus{models.RequestRequested, models.RequestReproposed}).
		Count(&inFlight)
	if inFlight > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A request for this slot is already awaiting a decision"})
	}

	request := models.ScheduleRequest{
		StudentID:   student.ID,
		RequestedBy: requesterID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Message:     req.Message,
		Status:      models.RequestRequested,
	}

	if req.MakeupCreditID != nil && *req.MakeupCreditID != "" {
		creditID, err := uuid.Parse(*req.MakeupCreditID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid makeup credit id"})
		}
		request.MakeupCreditID = &creditID
		if err := services.ValidateRequestCredit(database.DB, &request, services.Today()); err != nil {
			if errors.Is(err, services.ErrCreditUnavailable) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to validate makeup credit"})
		}
	}

	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create schedule request"})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// ListRequests returns a student's in-flight and settled requests, newest
// first.
func ListRequests(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var requests []models.ScheduleRequest
	if err := database.DB.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch schedule requests"})
	}

	return c.JSON(requests)
}

type ReproposeRequestBody struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Message   *string `json:"message,omitempty"`
}

func ReproposeRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var req ReproposeRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	request, err := services.ReproposeRequest(database.DB, requestID, date, req.StartTime, req.EndTime, req.Message)
	if err != nil {
		return requestServiceError(c, err)
	}

	go notifyRequestUpdate(request, "Schedule Counter-Proposal", "The teacher has proposed a different time for your requested lesson.")

	return c.JSON(request)
}

func RejectRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	request, err := services.RejectRequest(database.DB, requestID)
	if err != nil {
		return requestServiceError(c, err)
	}

	go notifyRequestUpdate(request, "Schedule Request Declined", "Your requested lesson time could not be accommodated.")

	return c.JSON(request)
}

// ConfirmRequest settles the negotiation: the lesson is created and, for
// credit-funded requests, the makeup balance is drawn down atomically.
func ConfirmRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	lesson, err := services.ConfirmRequest(database.DB, requestID, services.Today())
	if err != nil {
		return requestServiceError(c, err)
	}

	var request models.ScheduleRequest
	if err := database.DB.First(&request, "id = ?", requestID).Error; err == nil {
		go notifyRequestUpdate(request, "Lesson Confirmed", fmt.Sprintf(
			"Your lesson on %s from %s to %s is confirmed.",
			lesson.Date.Format("2006-01-02"), lesson.StartTime, lesson.EndTime,
		))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"request_id": requestID,
		"lesson":     lesson,
	})
}

func requestServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule request not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCreditUnavailable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func notifyRequestUpdate(request models.ScheduleRequest, subject, body string) {
	var requester models.User
	if err := database.DB.First(&requester, "id = ?", request.RequestedBy).Error; err != nil {
		return
	}
	notifications.SendEmail(requester.FullName, requester.Email, subject, "<h1>"+subject+"</h1><p>"+body+"</p>")
}
