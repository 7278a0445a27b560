package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
	"github.com/mkobay/tutor_manage/middleware"
)

func ScheduleRequestRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	requests := api.Group("/schedule-requests", middleware.Protected())
	requests.Post("", handlers.CreateRequest)

	api.Get("/students/:studentId/schedule-requests", middleware.Protected(), handlers.ListRequests)

	teacherRequests := api.Group("/schedule-requests", middleware.Protected(), middleware.TeacherRequired())
	teacherRequests.Post("/:requestId/repropose", handlers.ReproposeRequest)
	teacherRequests.Post("/:requestId/reject", handlers.RejectRequest)
	teacherRequests.Post("/:requestId/confirm", handlers.ConfirmRequest)
}
