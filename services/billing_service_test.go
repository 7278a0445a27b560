package services

import (
	"testing"
	"time"

	"github.com/mkobay/tutor_manage/models"
)

func plannedLesson(amount, transportFee int) models.Lesson {
	return models.Lesson{
		Status:       models.LessonPlanned,
		Amount:       amount,
		TransportFee: transportFee,
	}
}

func TestCalculateBillingInfo(t *testing.T) {
	targetMonth := date(2026, time.September, 1)
	ref := date(2026, time.August, 10)

	t.Run("sums planned non-makeup lessons only", func(t *testing.T) {
		done := plannedLesson(5000, 0)
		done.Status = models.LessonDone
		cancelled := plannedLesson(5000, 500)
		cancelled.Status = models.LessonCancelled
		makeup := plannedLesson(5000, 500)
		makeup.IsMakeup = true

		lessons := []models.Lesson{
			plannedLesson(7000, 900),
			plannedLesson(3500, 0),
			done,
			cancelled,
			makeup,
		}

		info := CalculateBillingInfo(lessons, targetMonth, ref)

		if info.LessonCount != 2 {
			t.Errorf("LessonCount = %d, want 2", info.LessonCount)
		}
		if info.LessonFeeTotal != 10500 {
			t.Errorf("LessonFeeTotal = %d, want 10500", info.LessonFeeTotal)
		}
		if info.TransportFeeTotal != 900 {
			t.Errorf("TransportFeeTotal = %d, want 900", info.TransportFeeTotal)
		}
		if info.TotalAmount != 11400 {
			t.Errorf("TotalAmount = %d, want 11400", info.TotalAmount)
		}
		if len(info.Lessons) != info.LessonCount {
			t.Errorf("returned list has %d lessons, count says %d", len(info.Lessons), info.LessonCount)
		}
	})

	t.Run("lesson at 3500 per hour for 2 hours with transport 900", func(t *testing.T) {
		lesson := plannedLesson(LessonFee(2, 3500), 900)
		info := CalculateBillingInfo([]models.Lesson{lesson}, targetMonth, ref)

		if info.LessonFeeTotal != 7000 {
			t.Errorf("LessonFeeTotal = %d, want 7000", info.LessonFeeTotal)
		}
		if info.TransportFeeTotal != 900 {
			t.Errorf("TransportFeeTotal = %d, want 900", info.TransportFeeTotal)
		}
		if info.TotalAmount != 7900 {
			t.Errorf("TotalAmount = %d, want 7900", info.TotalAmount)
		}
	})

	t.Run("empty input yields an empty statement", func(t *testing.T) {
		info := CalculateBillingInfo(nil, targetMonth, ref)
		if info.TotalAmount != 0 || info.LessonCount != 0 || len(info.Lessons) != 0 {
			t.Errorf("empty input produced %+v", info)
		}
	})

	t.Run("total always equals sum of subtotals", func(t *testing.T) {
		lessons := []models.Lesson{
			plannedLesson(3500, 500),
			plannedLesson(5250, 0),
			plannedLesson(7000, 900),
		}
		info := CalculateBillingInfo(lessons, targetMonth, ref)
		if info.TotalAmount != info.LessonFeeTotal+info.TransportFeeTotal {
			t.Errorf("TotalAmount %d != %d + %d", info.TotalAmount, info.LessonFeeTotal, info.TransportFeeTotal)
		}
	})
}

func TestIsBillingConfirmed(t *testing.T) {
	tests := []struct {
		name        string
		targetMonth time.Time
		reference   time.Time
		want        bool
	}{
		{"day before cutoff", date(2026, time.September, 1), date(2026, time.August, 19), false},
		{"on the 20th", date(2026, time.September, 1), date(2026, time.August, 20), true},
		{"day after cutoff", date(2026, time.September, 1), date(2026, time.August, 21), true},
		{"well before", date(2026, time.September, 1), date(2026, time.July, 25), false},
		{"january confirms on december 20", date(2027, time.January, 1), date(2026, time.December, 20), true},
		{"january not confirmed on december 19", date(2027, time.January, 1), date(2026, time.December, 19), false},
		{"target month passed in mid-month", date(2026, time.September, 18), date(2026, time.August, 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBillingConfirmed(tt.targetMonth, tt.reference); got != tt.want {
				t.Errorf("IsBillingConfirmed(%v, %v) = %v, want %v", tt.targetMonth, tt.reference, got, tt.want)
			}
		})
	}
}

func TestConfirmationDate(t *testing.T) {
	tests := []struct {
		targetMonth time.Time
		want        time.Time
	}{
		{date(2026, time.September, 1), date(2026, time.August, 20)},
		{date(2027, time.January, 1), date(2026, time.December, 20)},
		{date(2026, time.March, 15), date(2026, time.February, 20)},
	}

	for _, tt := range tests {
		if got := ConfirmationDate(tt.targetMonth); !got.Equal(tt.want) {
			t.Errorf("ConfirmationDate(%v) = %v, want %v", tt.targetMonth, got, tt.want)
		}
	}
}

func TestNextMonthBillingInfo(t *testing.T) {
	ref := date(2026, time.August, 25)
	lessons := []models.Lesson{plannedLesson(7000, 900)}

	info := NextMonthBillingInfo(lessons, ref)

	if !info.TargetMonth.Equal(date(2026, time.September, 1)) {
		t.Errorf("TargetMonth = %v, want 2026-09-01", info.TargetMonth)
	}
	// Past the August 20 cutoff, so September is already locked.
	if !info.IsConfirmed {
		t.Error("September billing should be confirmed on August 25")
	}
	if info.TotalAmount != 7900 {
		t.Errorf("TotalAmount = %d, want 7900", info.TotalAmount)
	}

	t.Run("december reference rolls into january", func(t *testing.T) {
		info := NextMonthBillingInfo(nil, date(2026, time.December, 5))
		if !info.TargetMonth.Equal(date(2027, time.January, 1)) {
			t.Errorf("TargetMonth = %v, want 2027-01-01", info.TargetMonth)
		}
		if info.IsConfirmed {
			t.Error("January billing should not be confirmed on December 5")
		}
	})
}
