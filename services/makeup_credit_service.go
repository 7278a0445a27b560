package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/models"
	"gorm.io/gorm"
)

// Makeup credits expire one calendar month after the cancelled lesson. The
// day-of-month is kept, clamped to the last day of the target month when it
// would overflow (Jan 31 -> Feb 28/29). The clamping is deliberate policy:
// a credit granted at month-end must not spill into the month after next.

// ExpirationDate returns the expiry for a credit issued against a lesson
// held on lessonDate.
func ExpirationDate(lessonDate time.Time) time.Time {
	d := Midnight(lessonDate)
	year, month, day := d.Year(), d.Month(), d.Day()

	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local)
	lastOfNext := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastOfNext {
		day = lastOfNext
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, time.Local)
}

// IsExpired reports whether the credit's expiry date has passed as of the
// reference date. A credit on its expiry date is not yet expired, though it
// can no longer fund a request; see IsRedeemable.
func IsExpired(expiresAt, referenceDate time.Time) bool {
	return Midnight(expiresAt).Before(Midnight(referenceDate))
}

// DaysUntilExpiration counts calendar days from the reference date to
// expiry. Negative values mean the credit expired that many days ago. Both
// dates are normalized to UTC midnights first so a daylight-saving shift
// between them cannot shorten or stretch a day.
func DaysUntilExpiration(expiresAt, referenceDate time.Time) int {
	diff := utcMidnight(expiresAt).Sub(utcMidnight(referenceDate))
	return int(diff.Hours() / 24)
}

func utcMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DisplayStatus buckets a credit's expiry for the UI. Anything within seven
// days (including already expired) is the urgent band and is worded as a
// countdown; farther out it shows the calendar date.
func DisplayStatus(expiresAt, referenceDate time.Time) string {
	days := DaysUntilExpiration(expiresAt, referenceDate)
	switch {
	case days < 0:
		return "expired"
	case days == 0:
		return "expires today"
	case days == 1:
		return "expires tomorrow"
	case days <= 7:
		return fmt.Sprintf("%d days remaining", days)
	default:
		e := Midnight(expiresAt)
		return fmt.Sprintf("expires on %d/%d", int(e.Month()), e.Day())
	}
}

// IsRedeemable reports whether a credit can still fund a schedule request:
// minutes left on the balance and an expiry date still in the future.
func IsRedeemable(credit *models.MakeupCredit, referenceDate time.Time) bool {
	return credit.RemainingMinutes() > 0 && Midnight(credit.ExpiresAt).After(Midnight(referenceDate))
}

// ConsumeMinutes decrements a credit's balance, refusing to go below zero.
// The same expiry cutoff as IsRedeemable applies, so a credit that the
// available listing no longer offers can never be drawn on at confirmation
// either. The caller persists the mutated credit inside its own
// transaction.
func ConsumeMinutes(credit *models.MakeupCredit, minutes int, referenceDate time.Time) error {
	if !Midnight(credit.ExpiresAt).After(Midnight(referenceDate)) {
		return fmt.Errorf("%w: not redeemable past %s", ErrCreditUnavailable, credit.ExpiresAt.Format("2006-01-02"))
	}
	if credit.RemainingMinutes() < minutes {
		return fmt.Errorf("%w: %d minutes remaining, %d requested", ErrCreditUnavailable, credit.RemainingMinutes(), minutes)
	}
	credit.UsedMinutes += minutes
	return nil
}

// AvailableCredits lists a student's redeemable credits, oldest expiry
// first. Exhausted and expired credits never reach the requester.
func AvailableCredits(db *gorm.DB, studentID uuid.UUID, referenceDate time.Time) ([]models.MakeupCredit, error) {
	var credits []models.MakeupCredit
	err := db.
		Where("student_id = ? AND used_minutes < total_minutes AND expires_at > ?", studentID, Midnight(referenceDate)).
		Order("expires_at asc").
		Find(&credits).Error
	if err != nil {
		return nil, err
	}
	return credits, nil
}
