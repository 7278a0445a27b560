package database

import (
	"fmt"
	"log"

	config "github.com/mkobay/tutor_manage/configs"
	"github.com/mkobay/tutor_manage/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Lesson{},
		&models.MakeupCredit{},
		&models.ScheduleRequest{},
		&models.Conversation{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedTeacher() {
	teacherEmail := config.Config("TEACHER_EMAIL")
	teacherPassword := config.Config("TEACHER_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", teacherEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for teacher user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Teacher user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(teacherPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash teacher password: %v", err)
		return
	}

	teacher := models.User{
		FullName: config.ConfigOr("TEACHER_FULL_NAME", "Teacher"),
		Email:    teacherEmail,
		Password: string(hashedPassword),
		Role:     "teacher",
	}

	if err := DB.Create(&teacher).Error; err != nil {
		log.Fatalf("🔥 Failed to seed teacher user: %v", err)
		return
	}

	log.Println("✅ Teacher user seeded successfully")
}
