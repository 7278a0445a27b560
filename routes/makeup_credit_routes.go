package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
	"github.com/mkobay/tutor_manage/middleware"
)

func MakeupCreditRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	credits := api.Group("/students/:studentId/makeup-credits", middleware.Protected())
	credits.Get("/available", handlers.ListAvailableCredits)
	credits.Get("/history", middleware.TeacherRequired(), handlers.ListCreditHistory)
}
