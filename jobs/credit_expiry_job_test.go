package jobs

import (
	"testing"
	"time"
)

func TestNoticeWindowCoversTheFullUrgentBand(t *testing.T) {
	today := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.Local)
	from, to := noticeWindow(today)

	within := func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	}

	if !within(today) {
		t.Error("a credit expiring today must be in the digest window")
	}
	if !within(today.AddDate(0, 0, 7)) {
		t.Error("a credit expiring seven days out must be in the digest window")
	}
	if within(today.AddDate(0, 0, -1)) {
		t.Error("an already expired credit must not be in the digest window")
	}
	if within(today.AddDate(0, 0, 8)) {
		t.Error("a credit eight days out must not be in the digest window")
	}
}
