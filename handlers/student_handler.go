package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/utils"
	"gorm.io/gorm"
)

type StudentRequest struct {
	Name       string  `json:"name" validate:"required"`
	HourlyRate int     `json:"hourly_rate" validate:"required,gt=0"`
	Location   *string `json:"location,omitempty"`
}

// CreateStudent registers a new student profile and mints the invite code
// the parent will use at registration.
func CreateStudent(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.Student
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateUniqueInviteCode(tx)
		if err != nil {
			return err
		}
		student = models.Student{
			TeacherID:  teacherID,
			Name:       req.Name,
			HourlyRate: req.HourlyRate,
			Location:   req.Location,
			InviteCode: &code,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student.Name = req.Name
	student.HourlyRate = req.HourlyRate
	student.Location = req.Location
	database.DB.Save(&student)

	return c.JSON(student)
}

func DeactivateStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	result := database.DB.Model(&models.Student{}).Where("id = ?", studentID).Update("is_active", false)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListStudents returns the teacher's roster, or a parent's own children.
func ListStudents(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)

	var students []models.Student
	query := database.DB.Where("is_active = ?", true).Order("name asc")
	if role == "teacher" {
		query = query.Where("teacher_id = ?", userID)
	} else {
		query = query.Where("parent_id = ?", userID)
	}
	if err := query.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(students)
}
