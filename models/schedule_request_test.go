package models

import (
	"testing"
	"time"
)

func TestEffectiveSlot(t *testing.T) {
	requested := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.Local)
	proposed := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.Local)
	start, end := "17:00", "18:30"

	t.Run("uses the original slot before a counter-proposal", func(t *testing.T) {
		r := ScheduleRequest{Date: requested, StartTime: "16:00", EndTime: "17:00", Status: RequestRequested}
		d, s, e := r.EffectiveSlot()
		if !d.Equal(requested) || s != "16:00" || e != "17:00" {
			t.Errorf("EffectiveSlot() = %v %s-%s, want original slot", d, s, e)
		}
	})

	t.Run("uses the counter-proposal once reproposed", func(t *testing.T) {
		r := ScheduleRequest{
			Date:              requested,
			StartTime:         "16:00",
			EndTime:           "17:00",
			Status:            RequestReproposed,
			ProposedDate:      &proposed,
			ProposedStartTime: &start,
			ProposedEndTime:   &end,
		}
		d, s, e := r.EffectiveSlot()
		if !d.Equal(proposed) || s != start || e != end {
			t.Errorf("EffectiveSlot() = %v %s-%s, want counter-proposal", d, s, e)
		}
	})
}
