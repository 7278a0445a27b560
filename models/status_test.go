package models

import "testing"

func TestLessonStatusTransitions(t *testing.T) {
	tests := []struct {
		from    LessonStatus
		to      LessonStatus
		allowed bool
	}{
		{LessonPlanned, LessonDone, true},
		{LessonPlanned, LessonCancelled, true},
		{LessonDone, LessonPlanned, false},
		{LessonDone, LessonCancelled, false},
		{LessonCancelled, LessonPlanned, false},
		{LessonCancelled, LessonDone, false},
		{LessonPlanned, LessonPlanned, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestRequestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestRequested, RequestReproposed, true},
		{RequestRequested, RequestRejected, true},
		{RequestRequested, RequestConfirmed, true},
		{RequestReproposed, RequestRejected, true},
		{RequestReproposed, RequestConfirmed, true},
		{RequestReproposed, RequestReproposed, false},
		{RequestRejected, RequestConfirmed, false},
		{RequestRejected, RequestRequested, false},
		{RequestConfirmed, RequestRejected, false},
		{RequestConfirmed, RequestRequested, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []LessonStatus{LessonDone, LessonCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	if LessonPlanned.IsTerminal() {
		t.Error("planned should not be terminal")
	}

	for _, s := range []RequestStatus{RequestRejected, RequestConfirmed} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []RequestStatus{RequestRequested, RequestReproposed} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestLessonBillable(t *testing.T) {
	tests := []struct {
		name   string
		lesson Lesson
		want   bool
	}{
		{"planned regular lesson", Lesson{Status: LessonPlanned}, true},
		{"planned makeup lesson", Lesson{Status: LessonPlanned, IsMakeup: true}, false},
		{"done lesson", Lesson{Status: LessonDone}, false},
		{"cancelled lesson", Lesson{Status: LessonCancelled}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lesson.Billable(); got != tt.want {
				t.Errorf("Billable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLessonDurationMinutes(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{1, 60},
		{1.5, 90},
		{0.75, 45},
		{2, 120},
	}

	for _, tt := range tests {
		lesson := Lesson{Hours: tt.hours}
		if got := lesson.DurationMinutes(); got != tt.want {
			t.Errorf("DurationMinutes() with %v hours = %d, want %d", tt.hours, got, tt.want)
		}
	}
}
