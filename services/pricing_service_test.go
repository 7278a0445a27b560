package services

import (
	"math"
	"testing"
)

func TestLessonFee(t *testing.T) {
	tests := []struct {
		name       string
		hours      float64
		hourlyRate int
		want       int
	}{
		{"two hours at 3500", 2, 3500, 7000},
		{"fractional hours", 1.5, 3000, 4500},
		{"rounds to nearest yen", 1.0 / 3.0, 1000, 333},
		{"rounds half up", 0.5, 3333, 1667},
		{"zero hours", 0, 5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LessonFee(tt.hours, tt.hourlyRate); got != tt.want {
				t.Errorf("LessonFee(%v, %d) = %d, want %d", tt.hours, tt.hourlyRate, got, tt.want)
			}
		})
	}
}

func TestTransportFee(t *testing.T) {
	studentHome := "student_home"
	online := "online"
	unknown := "somewhere_else"

	tests := []struct {
		name     string
		location *string
		want     int
	}{
		{"known location", &studentHome, 900},
		{"zero-fee location", &online, 0},
		{"unknown location resolves to zero", &unknown, 0},
		{"nil location resolves to zero", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransportFee(tt.location); got != tt.want {
				t.Errorf("TransportFee(%v) = %d, want %d", tt.location, got, tt.want)
			}
		})
	}
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		want      float64
		wantError bool
	}{
		{"ninety minutes", "16:00", "17:30", 1.5, false},
		{"two hours", "09:00", "11:00", 2, false},
		{"end before start is negative, not an error", "18:00", "17:00", -1, false},
		{"zero duration", "10:00", "10:00", 0, false},
		{"malformed start", "9am", "10:00", 0, true},
		{"malformed end", "09:00", "25:61", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationHours(tt.start, tt.end)
			if tt.wantError {
				if err == nil {
					t.Fatalf("DurationHours(%q, %q) expected error, got %v", tt.start, tt.end, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DurationHours(%q, %q) unexpected error: %v", tt.start, tt.end, err)
			}
			if got != tt.want {
				t.Errorf("DurationHours(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestMinutesHoursRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 30, 45, 60, 90, 100, 135} {
		if got := HoursToMinutes(MinutesToHours(minutes)); got != minutes {
			t.Errorf("HoursToMinutes(MinutesToHours(%d)) = %d", minutes, got)
		}
	}

	for _, hours := range []float64{0, 0.5, 1, 1.5, 2.25} {
		back := MinutesToHours(HoursToMinutes(hours))
		if math.Abs(back-hours) > 1.0/120 {
			t.Errorf("MinutesToHours(HoursToMinutes(%v)) = %v, outside rounding tolerance", hours, back)
		}
	}
}
