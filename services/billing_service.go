package services

import (
	"time"

	"github.com/mkobay/tutor_manage/models"
)

// Billing for month M locks on the 20th of month M-1. From that day the
// statement is treated as confirmed and is no longer recalculated for the
// parent, whatever happens to the underlying lessons. The rule is fixed.
const billingConfirmationDay = 20

// BillingInfo is the computed monthly statement. It is derived on demand
// and never persisted.
type BillingInfo struct {
	TargetMonth       time.Time       `json:"target_month"`
	TotalAmount       int             `json:"total_amount"`
	LessonFeeTotal    int             `json:"lesson_fee_total"`
	TransportFeeTotal int             `json:"transport_fee_total"`
	LessonCount       int             `json:"lesson_count"`
	IsConfirmed       bool            `json:"is_confirmed"`
	ConfirmationDate  time.Time       `json:"confirmation_date"`
	Lessons           []models.Lesson `json:"lessons"`
}

// CalculateBillingInfo totals the billable lessons for a month. Only
// planned, non-makeup lessons count; done and cancelled lessons and every
// makeup session are excluded whatever their amount. The caller supplies
// lessons already scoped to targetMonth; no date filtering happens here.
func CalculateBillingInfo(lessons []models.Lesson, targetMonth, referenceDate time.Time) BillingInfo {
	info := BillingInfo{
		TargetMonth:      StartOfMonth(targetMonth),
		IsConfirmed:      IsBillingConfirmed(targetMonth, referenceDate),
		ConfirmationDate: ConfirmationDate(targetMonth),
		Lessons:          []models.Lesson{},
	}

	for _, lesson := range lessons {
		if !lesson.Billable() {
			continue
		}
		info.LessonFeeTotal += lesson.Amount
		info.TransportFeeTotal += lesson.TransportFee
		info.Lessons = append(info.Lessons, lesson)
	}
	info.LessonCount = len(info.Lessons)
	info.TotalAmount = info.LessonFeeTotal + info.TransportFeeTotal
	return info
}

// IsBillingConfirmed reports whether the statement for targetMonth is
// locked as of referenceDate: true on and after the 20th of the preceding
// month.
func IsBillingConfirmed(targetMonth, referenceDate time.Time) bool {
	return !Midnight(referenceDate).Before(ConfirmationDate(targetMonth))
}

// ConfirmationDate returns the lock date for targetMonth's statement: the
// 20th of the month before, at local midnight.
func ConfirmationDate(targetMonth time.Time) time.Time {
	first := StartOfMonth(targetMonth)
	return time.Date(first.Year(), first.Month()-1, billingConfirmationDay, 0, 0, 0, 0, time.Local)
}

// NextMonthBillingInfo computes the statement for the calendar month after
// the reference date's month.
func NextMonthBillingInfo(lessons []models.Lesson, referenceDate time.Time) BillingInfo {
	next := StartOfMonth(referenceDate).AddDate(0, 1, 0)
	return CalculateBillingInfo(lessons, next, referenceDate)
}

// StartOfMonth truncates a date to the first of its month at local
// midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}
