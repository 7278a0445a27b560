package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	configs "github.com/mkobay/tutor_manage/configs"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/jobs"
	"github.com/mkobay/tutor_manage/notifications"
	"github.com/mkobay/tutor_manage/routes"
	"github.com/mkobay/tutor_manage/websocket"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedTeacher()
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("0 9 * * *", jobs.SendCreditExpiryNotices)
	c.AddFunc("0 18 * * *", jobs.SendLessonReminders)
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Tutor Manage",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Tutor Manage API",
		})
	})

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.StudentRoutes(app)
	routes.LessonRoutes(app)
	routes.ScheduleRequestRoutes(app)
	routes.MakeupCreditRoutes(app)
	routes.BillingRoutes(app)
	routes.MessagingRoutes(app)
	routes.UploadRoutes(app)
	routes.DebugRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	addr := ":" + configs.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
