package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
	"github.com/mkobay/tutor_manage/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.ListStudents)

	teacherStudents := api.Group("/students", middleware.Protected(), middleware.TeacherRequired())
	teacherStudents.Post("", handlers.CreateStudent)
	teacherStudents.Put("/:studentId", handlers.UpdateStudent)
	teacherStudents.Delete("/:studentId", handlers.DeactivateStudent)
}
