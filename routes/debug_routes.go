package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
	"github.com/mkobay/tutor_manage/middleware"
)

// Debug routes let the teacher pin the application date while checking
// billing cutoffs and credit expiry. Teacher-only.
func DebugRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	debug := api.Group("/debug", middleware.Protected(), middleware.TeacherRequired())
	debug.Get("/date", handlers.GetDebugDate)
	debug.Post("/date", handlers.SetDebugDate)
	debug.Delete("/date", handlers.ClearDebugDate)
}
