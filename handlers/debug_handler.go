package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/services"
)

type DebugDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SetDebugDate pins the application clock to a fixed date. Every
// time-sensitive computation (billing cutoffs, credit expiry, statements)
// sees the override until it is cleared.
func SetDebugDate(c *fiber.Ctx) error {
	var req DebugDateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.SetDebugDate(req.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"debug_date": req.Date})
}

func ClearDebugDate(c *fiber.Ctx) error {
	services.ClearDebugDate()
	return c.JSON(fiber.Map{"debug_date": nil})
}

func GetDebugDate(c *fiber.Ctx) error {
	if date, ok := services.DebugDate(); ok {
		return c.JSON(fiber.Map{"debug_date": date.Format("2006-01-02")})
	}
	return c.JSON(fiber.Map{"debug_date": nil})
}
