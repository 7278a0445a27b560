package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
	"github.com/mkobay/tutor_manage/middleware"
)

func LessonRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	lessons := api.Group("/students/:studentId/lessons", middleware.Protected())
	lessons.Get("", handlers.ListLessons)

	teacherLessons := api.Group("/lessons", middleware.Protected(), middleware.TeacherRequired())
	teacherLessons.Post("", handlers.CreateLesson)
	teacherLessons.Patch("/:lessonId/notes", handlers.UpdateLessonNotes)
	teacherLessons.Post("/:lessonId/complete", handlers.CompleteLesson)
	teacherLessons.Post("/:lessonId/cancel", handlers.CancelLesson)
	teacherLessons.Post("/:lessonId/reschedule", handlers.RescheduleLesson)
}
