package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
}
