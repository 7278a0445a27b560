package jobs

import (
	"fmt"
	"log"

	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/notifications"
	"github.com/mkobay/tutor_manage/services"
)

// SendLessonReminders emails parents the evening before a planned lesson.
// Runs once a day.
func SendLessonReminders() {
	log.Println("Running job: SendLessonReminders...")

	tomorrow := services.Today().AddDate(0, 0, 1)

	var upcomingLessons []models.Lesson
	err := database.DB.
		Preload("Student.Parent").
		Where("status = ? AND date = ?", models.LessonPlanned, tomorrow).
		Find(&upcomingLessons).Error
	if err != nil {
		log.Printf("Error checking for upcoming lessons: %v", err)
		return
	}

	if len(upcomingLessons) == 0 {
		return
	}

	for _, lesson := range upcomingLessons {
		parent := lesson.Student.Parent
		if parent == nil {
			continue
		}

		emailSubject := "Reminder: Lesson Tomorrow"
		emailBody := fmt.Sprintf(
			"<h1>Lesson Reminder</h1><p>%s has a lesson tomorrow from %s to %s.</p>",
			lesson.Student.Name,
			lesson.StartTime,
			lesson.EndTime,
		)
		go notifications.SendEmail(parent.FullName, parent.Email, emailSubject, emailBody)
	}

	log.Printf("Sent reminders for %d lesson(s).", len(upcomingLessons))
}
