package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkobay/tutor_manage/handlers"
	"github.com/mkobay/tutor_manage/middleware"
)

func BillingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	billing := api.Group("/students/:studentId/billing", middleware.Protected())
	billing.Get("", handlers.GetMonthlyBilling)
	billing.Get("/next-month", handlers.GetNextMonthBilling)
	billing.Get("/statement.pdf", handlers.GetBillingStatementPDF)
}
