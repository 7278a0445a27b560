package services

import (
	"testing"
	"time"
)

func TestDebugDateOverride(t *testing.T) {
	defer ClearDebugDate()

	if _, ok := DebugDate(); ok {
		t.Fatal("no override should be set initially")
	}

	if err := SetDebugDate("2026-04-01"); err != nil {
		t.Fatalf("SetDebugDate failed: %v", err)
	}

	want := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
	if got := Today(); !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}
	if got, ok := DebugDate(); !ok || !got.Equal(want) {
		t.Errorf("DebugDate() = %v, %v; want %v, true", got, ok, want)
	}

	ClearDebugDate()
	if _, ok := DebugDate(); ok {
		t.Error("override should be cleared")
	}
	if got := Today(); !got.Equal(Midnight(time.Now())) {
		t.Errorf("Today() after clear = %v, want today's midnight", got)
	}
}

func TestSetDebugDateRejectsMalformedInput(t *testing.T) {
	defer ClearDebugDate()

	for _, input := range []string{"", "04/01/2026", "2026-13-01", "tomorrow"} {
		if err := SetDebugDate(input); err == nil {
			t.Errorf("SetDebugDate(%q) should fail", input)
		}
	}
	if _, ok := DebugDate(); ok {
		t.Error("failed SetDebugDate must not leave an override behind")
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, time.May, 3, 17, 45, 12, 999, time.Local)
	want := time.Date(2026, time.May, 3, 0, 0, 0, 0, time.Local)
	if got := Midnight(in); !got.Equal(want) {
		t.Errorf("Midnight(%v) = %v, want %v", in, got, want)
	}
}
