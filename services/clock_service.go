package services

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Clock supplies "today" for every date-sensitive computation so nothing in
// the core reads the wall clock directly.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	return Midnight(time.Now())
}

// debugClock serves an override date when one is set and falls through to
// the system clock otherwise. The override applies process-wide so every
// computation sees the same "today".
type debugClock struct {
	mu       sync.RWMutex
	override *time.Time
	fallback Clock
}

func (c *debugClock) Today() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override != nil {
		return *c.override
	}
	return c.fallback.Today()
}

var appClock = &debugClock{fallback: systemClock{}}

// AppClock is the clock the handlers and jobs resolve "today" from.
func AppClock() Clock {
	return appClock
}

// Today is shorthand for AppClock().Today().
func Today() time.Time {
	return appClock.Today()
}

// SetDebugDate pins the application date to the given YYYY-MM-DD value.
func SetDebugDate(date string) error {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid debug date %q: expected YYYY-MM-DD", date)
	}
	appClock.mu.Lock()
	appClock.override = &t
	appClock.mu.Unlock()
	log.Printf("Debug date override set to %s", date)
	return nil
}

// ClearDebugDate restores the wall clock.
func ClearDebugDate() {
	appClock.mu.Lock()
	appClock.override = nil
	appClock.mu.Unlock()
	log.Println("Debug date override cleared")
}

// DebugDate returns the current override, if any.
func DebugDate() (time.Time, bool) {
	appClock.mu.RLock()
	defer appClock.mu.RUnlock()
	if appClock.override == nil {
		return time.Time{}, false
	}
	return *appClock.override, true
}

// Midnight truncates a timestamp to local midnight. Date comparisons in the
// billing and makeup rules are whole-day comparisons, so everything is
// normalized through here first.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
