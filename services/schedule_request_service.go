package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfirmRequest moves a schedule request to confirmed and materializes the
// lesson in one transaction. If the request draws on a makeup credit the
// credit row is locked, checked and decremented here; a credit that has
// expired or holds too few minutes aborts the whole confirmation with
// ErrCreditUnavailable and the request keeps its current status. Two
// confirmations racing for the same credit serialize on the row lock, so
// the balance can never be driven below zero.
func ConfirmRequest(db *gorm.DB, requestID uuid.UUID, referenceDate time.Time) (models.Lesson, error) {
	var lesson models.Lesson

	err := db.Transaction(func(tx *gorm.DB) error {
		var request models.ScheduleRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}
		if !request.Status.CanTransitionTo(models.RequestConfirmed) {
			return fmt.Errorf("%w: %s request cannot be confirmed", ErrInvalidTransition, request.Status)
		}

		var student models.Student
		if err := tx.First(&student, "id = ?", request.StudentID).Error; err != nil {
			return err
		}

		date, startTime, endTime := request.EffectiveSlot()
		hours, err := DurationHours(startTime, endTime)
		if err != nil {
			return err
		}
		if hours <= 0 {
			return fmt.Errorf("requested slot %s-%s has non-positive duration", startTime, endTime)
		}

		location := request.Location
		if location == nil {
			location = student.Location
		}

		isMakeup := request.MakeupCreditID != nil
		if isMakeup {
			var credit models.MakeupCredit
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&credit, "id = ?", *request.MakeupCreditID).Error; err != nil {
				return err
			}
			if err := ConsumeMinutes(&credit, HoursToMinutes(hours), referenceDate); err != nil {
				return err
			}
			if err := tx.Save(&credit).Error; err != nil {
				return err
			}
		}

		lesson = models.Lesson{
			StudentID:    request.StudentID,
			Date:         Midnight(date),
			StartTime:    startTime,
			EndTime:      endTime,
			Hours:        hours,
			Amount:       LessonFee(hours, student.HourlyRate),
			TransportFee: TransportFee(location),
			Status:       models.LessonPlanned,
			IsMakeup:     isMakeup,
		}
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}

		request.Status = models.RequestConfirmed
		return tx.Save(&request).Error
	})

	return lesson, err
}

// ReproposeRequest records the teacher's counter-proposal on a pending
// request.
func ReproposeRequest(db *gorm.DB, requestID uuid.UUID, date time.Time, startTime, endTime string, message *string) (models.ScheduleRequest, error) {
	var request models.ScheduleRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}
		if !request.Status.CanTransitionTo(models.RequestReproposed) {
			return fmt.Errorf("%w: %s request cannot be reproposed", ErrInvalidTransition, request.Status)
		}
		if _, err := DurationHours(startTime, endTime); err != nil {
			return err
		}

		proposed := Midnight(date)
		request.Status = models.RequestReproposed
		request.ProposedDate = &proposed
		request.ProposedStartTime = &startTime
		request.ProposedEndTime = &endTime
		if message != nil {
			request.Message = message
		}
		return tx.Save(&request).Error
	})

	return request, err
}

// RejectRequest closes a request without creating a lesson.
func RejectRequest(db *gorm.DB, requestID uuid.UUID) (models.ScheduleRequest, error) {
	var request models.ScheduleRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}
		if !request.Status.CanTransitionTo(models.RequestRejected) {
			return fmt.Errorf("%w: %s request cannot be rejected", ErrInvalidTransition, request.Status)
		}
		request.Status = models.RequestRejected
		return tx.Save(&request).Error
	})

	return request, err
}

// ValidateRequestCredit checks up front that a request's funding credit is
// still redeemable so the caller can warn before attempting confirmation.
func ValidateRequestCredit(db *gorm.DB, request *models.ScheduleRequest, referenceDate time.Time) error {
	if request.MakeupCreditID == nil {
		return nil
	}
	var credit models.MakeupCredit
	if err := db.First(&credit, "id = ?", *request.MakeupCreditID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: credit %s not found", ErrCreditUnavailable, *request.MakeupCreditID)
		}
		return err
	}
	if !IsRedeemable(&credit, referenceDate) {
		return fmt.Errorf("%w: credit %s is expired or exhausted", ErrCreditUnavailable, credit.ID)
	}
	return nil
}
