package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompleteLesson marks a planned lesson as held.
func CompleteLesson(db *gorm.DB, lessonID uuid.UUID) (models.Lesson, error) {
	var lesson models.Lesson

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lesson, "id = ?", lessonID).Error; err != nil {
			return err
		}
		if !lesson.Status.CanTransitionTo(models.LessonDone) {
			return fmt.Errorf("%w: %s lesson cannot be marked done", ErrInvalidTransition, lesson.Status)
		}
		lesson.Status = models.LessonDone
		return tx.Save(&lesson).Error
	})

	return lesson, err
}

// CancelLesson cancels a planned lesson. Whether the cancellation earns a
// makeup credit is the caller's policy decision (who cancelled, how late);
// when grantMakeup is set and the lesson is not itself a makeup session, a
// credit for the lesson's full duration is issued in the same transaction,
// expiring one calendar month after the lesson date. Cancelling a makeup
// lesson never mints a new credit.
func CancelLesson(db *gorm.DB, lessonID uuid.UUID, grantMakeup bool) (models.Lesson, *models.MakeupCredit, error) {
	var lesson models.Lesson
	var credit *models.MakeupCredit

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lesson, "id = ?", lessonID).Error; err != nil {
			return err
		}
		if !lesson.Status.CanTransitionTo(models.LessonCancelled) {
			return fmt.Errorf("%w: %s lesson cannot be cancelled", ErrInvalidTransition, lesson.Status)
		}
		lesson.Status = models.LessonCancelled
		if err := tx.Save(&lesson).Error; err != nil {
			return err
		}

		if grantMakeup && !lesson.IsMakeup {
			credit = &models.MakeupCredit{
				StudentID:    lesson.StudentID,
				TotalMinutes: lesson.DurationMinutes(),
				UsedMinutes:  0,
				ExpiresAt:    ExpirationDate(lesson.Date),
				LessonID:     lesson.ID,
			}
			if err := tx.Create(credit).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return lesson, nil, err
	}
	return lesson, credit, nil
}

// RescheduleLesson moves a planned lesson to a new slot, recomputing its
// duration and fees from the student's current rate.
func RescheduleLesson(db *gorm.DB, lessonID uuid.UUID, date time.Time, startTime, endTime string) (models.Lesson, error) {
	var lesson models.Lesson

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lesson, "id = ?", lessonID).Error; err != nil {
			return err
		}
		if lesson.Status.IsTerminal() {
			return fmt.Errorf("%w: %s lesson cannot be rescheduled", ErrInvalidTransition, lesson.Status)
		}

		hours, err := DurationHours(startTime, endTime)
		if err != nil {
			return err
		}
		if hours <= 0 {
			return fmt.Errorf("slot %s-%s has non-positive duration", startTime, endTime)
		}

		var student models.Student
		if err := tx.First(&student, "id = ?", lesson.StudentID).Error; err != nil {
			return err
		}

		lesson.Date = Midnight(date)
		lesson.StartTime = startTime
		lesson.EndTime = endTime
		lesson.Hours = hours
		lesson.Amount = LessonFee(hours, student.HourlyRate)
		return tx.Save(&lesson).Error
	})

	return lesson, err
}
