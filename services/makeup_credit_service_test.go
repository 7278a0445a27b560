package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mkobay/tutor_manage/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestExpirationDate(t *testing.T) {
	tests := []struct {
		name       string
		lessonDate time.Time
		want       time.Time
	}{
		{"mid-month keeps day", date(2026, time.March, 10), date(2026, time.April, 10)},
		{"december rolls into january", date(2026, time.December, 15), date(2027, time.January, 15)},
		{"jan 31 clamps to end of february", date(2026, time.January, 31), date(2026, time.February, 28)},
		{"jan 31 in a leap year clamps to feb 29", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"mar 31 clamps to apr 30", date(2026, time.March, 31), date(2026, time.April, 30)},
		{"month end without overflow is kept", date(2026, time.April, 30), date(2026, time.May, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpirationDate(tt.lessonDate); !got.Equal(tt.want) {
				t.Errorf("ExpirationDate(%v) = %v, want %v", tt.lessonDate, got, tt.want)
			}
		})
	}
}

func TestIsExpired(t *testing.T) {
	expiry := date(2026, time.June, 15)

	if IsExpired(expiry, date(2026, time.June, 14)) {
		t.Error("credit should not be expired the day before expiry")
	}
	if IsExpired(expiry, expiry) {
		t.Error("credit should not be expired on its expiry date")
	}
	if !IsExpired(expiry, date(2026, time.June, 16)) {
		t.Error("credit should be expired the day after expiry")
	}
}

func TestDaysUntilExpiration(t *testing.T) {
	ref := date(2026, time.June, 15)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int
	}{
		{"expired yesterday", date(2026, time.June, 14), -1},
		{"expires today", ref, 0},
		{"expires tomorrow", date(2026, time.June, 16), 1},
		{"a week out", date(2026, time.June, 22), 7},
		{"across a month boundary", date(2026, time.July, 1), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntilExpiration(tt.expiresAt, ref); got != tt.want {
				t.Errorf("DaysUntilExpiration(%v, %v) = %d, want %d", tt.expiresAt, ref, got, tt.want)
			}
		})
	}
}

func TestDaysUntilExpirationAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	in := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	}

	// 2026-03-08 has 23 hours in this zone, 2026-11-01 has 25. The count
	// is calendar days either way.
	if got := DaysUntilExpiration(in(2026, time.March, 9), in(2026, time.March, 8)); got != 1 {
		t.Errorf("across spring forward: DaysUntilExpiration = %d, want 1", got)
	}
	if got := DisplayStatus(in(2026, time.March, 9), in(2026, time.March, 8)); got != "expires tomorrow" {
		t.Errorf("across spring forward: DisplayStatus = %q, want %q", got, "expires tomorrow")
	}
	if got := DaysUntilExpiration(in(2026, time.November, 2), in(2026, time.November, 1)); got != 1 {
		t.Errorf("across fall back: DaysUntilExpiration = %d, want 1", got)
	}
	if got := DaysUntilExpiration(in(2026, time.March, 15), in(2026, time.March, 7)); got != 8 {
		t.Errorf("spanning the transition by a week: DaysUntilExpiration = %d, want 8", got)
	}
}

func TestDisplayStatus(t *testing.T) {
	ref := date(2026, time.June, 15)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      string
	}{
		{"expired", date(2026, time.June, 14), "expired"},
		{"today", ref, "expires today"},
		{"tomorrow", date(2026, time.June, 16), "expires tomorrow"},
		{"two days is the urgent band", date(2026, time.June, 17), "2 days remaining"},
		{"seven days is still urgent", date(2026, time.June, 22), "7 days remaining"},
		{"eight days shows the calendar date", date(2026, time.June, 23), "expires on 6/23"},
		{"far out shows the calendar date", date(2026, time.August, 1), "expires on 8/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayStatus(tt.expiresAt, ref); got != tt.want {
				t.Errorf("DisplayStatus(%v, %v) = %q, want %q", tt.expiresAt, ref, got, tt.want)
			}
		})
	}
}

func TestIsRedeemable(t *testing.T) {
	ref := date(2026, time.June, 15)

	tests := []struct {
		name   string
		credit models.MakeupCredit
		want   bool
	}{
		{"minutes left, not expired", models.MakeupCredit{TotalMinutes: 90, UsedMinutes: 30, ExpiresAt: date(2026, time.July, 1)}, true},
		{"exhausted", models.MakeupCredit{TotalMinutes: 90, UsedMinutes: 90, ExpiresAt: date(2026, time.July, 1)}, false},
		{"expires today is no longer redeemable", models.MakeupCredit{TotalMinutes: 90, UsedMinutes: 0, ExpiresAt: ref}, false},
		{"expired", models.MakeupCredit{TotalMinutes: 90, UsedMinutes: 0, ExpiresAt: date(2026, time.June, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRedeemable(&tt.credit, ref); got != tt.want {
				t.Errorf("IsRedeemable(%+v) = %v, want %v", tt.credit, got, tt.want)
			}
		})
	}
}

func TestConsumeMinutes(t *testing.T) {
	ref := date(2026, time.June, 15)

	t.Run("exact balance leaves zero remaining", func(t *testing.T) {
		credit := models.MakeupCredit{TotalMinutes: 60, UsedMinutes: 0, ExpiresAt: date(2026, time.July, 1)}
		if err := ConsumeMinutes(&credit, 60, ref); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credit.RemainingMinutes() != 0 {
			t.Errorf("remaining = %d, want 0", credit.RemainingMinutes())
		}
	})

	t.Run("one minute short fails and leaves balance unchanged", func(t *testing.T) {
		credit := models.MakeupCredit{TotalMinutes: 60, UsedMinutes: 1, ExpiresAt: date(2026, time.July, 1)}
		err := ConsumeMinutes(&credit, 60, ref)
		if !errors.Is(err, ErrCreditUnavailable) {
			t.Fatalf("expected ErrCreditUnavailable, got %v", err)
		}
		if credit.RemainingMinutes() != 59 {
			t.Errorf("remaining = %d, want 59 (unchanged)", credit.RemainingMinutes())
		}
	})

	t.Run("expiry day fails, matching the available listing", func(t *testing.T) {
		credit := models.MakeupCredit{TotalMinutes: 60, UsedMinutes: 0, ExpiresAt: ref}
		err := ConsumeMinutes(&credit, 30, ref)
		if !errors.Is(err, ErrCreditUnavailable) {
			t.Fatalf("expected ErrCreditUnavailable, got %v", err)
		}
		if credit.UsedMinutes != 0 {
			t.Errorf("used minutes = %d, want 0 (unchanged)", credit.UsedMinutes)
		}
		if IsRedeemable(&credit, ref) {
			t.Error("a credit ConsumeMinutes refuses must not be redeemable either")
		}
	})

	t.Run("expired credit fails regardless of balance", func(t *testing.T) {
		credit := models.MakeupCredit{TotalMinutes: 120, UsedMinutes: 0, ExpiresAt: date(2026, time.June, 1)}
		err := ConsumeMinutes(&credit, 30, ref)
		if !errors.Is(err, ErrCreditUnavailable) {
			t.Fatalf("expected ErrCreditUnavailable, got %v", err)
		}
		if credit.UsedMinutes != 0 {
			t.Errorf("used minutes = %d, want 0 (unchanged)", credit.UsedMinutes)
		}
	})

	t.Run("sequential draws cannot overdraw", func(t *testing.T) {
		credit := models.MakeupCredit{TotalMinutes: 45, UsedMinutes: 0, ExpiresAt: date(2026, time.July, 1)}
		if err := ConsumeMinutes(&credit, 30, ref); err != nil {
			t.Fatalf("first draw failed: %v", err)
		}
		err := ConsumeMinutes(&credit, 30, ref)
		if !errors.Is(err, ErrCreditUnavailable) {
			t.Fatalf("second draw should fail, got %v", err)
		}
		if credit.RemainingMinutes() != 15 {
			t.Errorf("remaining = %d, want 15", credit.RemainingMinutes())
		}
	})
}

func TestCancellationIssuesCreditExpiringNextMonth(t *testing.T) {
	lessonDate := date(2026, time.May, 10)
	expiry := ExpirationDate(lessonDate)

	if !expiry.Equal(date(2026, time.June, 10)) {
		t.Fatalf("expiry = %v, want 2026-06-10", expiry)
	}
	if got := DaysUntilExpiration(expiry, date(2026, time.June, 9)); got != 1 {
		t.Errorf("one day before expiry: DaysUntilExpiration = %d, want 1", got)
	}
}
