package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	config "github.com/mkobay/tutor_manage/configs"
)

// Fees are whole yen. LessonFee is the only place rounding happens; every
// other amount in the system is already an integer.

// defaultTransportFees maps lesson locations to a flat per-visit transport
// charge. Extended at startup from TRANSPORT_FEE_TABLE
// ("name:fee,name:fee"); unknown locations always cost 0.
var defaultTransportFees = map[string]int{
	"student_home": 900,
	"cafe":         500,
	"online":       0,
}

var transportFees = loadTransportFees()

func loadTransportFees() map[string]int {
	fees := make(map[string]int, len(defaultTransportFees))
	for k, v := range defaultTransportFees {
		fees[k] = v
	}

	extra := config.Config("TRANSPORT_FEE_TABLE")
	if extra == "" {
		return fees
	}
	for _, pair := range strings.Split(extra, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		var fee int
		if _, err := fmt.Sscanf(parts[1], "%d", &fee); err == nil {
			fees[parts[0]] = fee
		}
	}
	return fees
}

// LessonFee computes the charge for a lesson: hours times the student's
// hourly rate, rounded to the nearest yen. Fractional hours (1.5 etc.) are
// expected.
func LessonFee(hours float64, hourlyRate int) int {
	return int(math.Round(hours * float64(hourlyRate)))
}

// TransportFee looks up the flat fee for a location. Unknown or empty
// locations mean "no transport cost known" and resolve to 0, never an
// error.
func TransportFee(location *string) int {
	if location == nil {
		return 0
	}
	return transportFees[*location]
}

// DurationHours parses two HH:MM wall-clock strings and returns the elapsed
// time in hours. A negative result (end before start) is returned as-is;
// rejecting it is the caller's validation concern.
func DurationHours(startTime, endTime string) (float64, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return 0, err
	}
	return float64(end-start) / 60, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesToHours converts lesson-minutes to hours at 60 minutes per hour.
func MinutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}

// HoursToMinutes converts hours to whole minutes, rounding to the nearest
// minute.
func HoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}
