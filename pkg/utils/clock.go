// pkg/utils/clock.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ParseClock converts a "HH:MM" time of day into seconds since midnight.
// "24:00" is accepted as the exclusive end of day.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*3600 + m*60, nil
}

// FormatClock renders seconds since midnight as "HH:MM".
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	if sec > secondsPerDay {
		sec = secondsPerDay
	}
	return fmt.Sprintf("%02d:%02d", sec/3600, (sec%3600)/60)
}

// SlotName builds the canonical "HH:MM - HH:MM" name for a slot window.
func SlotName(startSec, endSec int) string {
	return FormatClock(startSec) + " - " + FormatClock(endSec)
}

// ParseDate parses an ISO-8601 calendar date into midnight in the given zone.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), loc)
}

// FormatDate renders a date as ISO-8601 YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayBounds returns the [start, end) instant window of the calendar day that
// starts at date. The date is expected to be midnight in its zone.
func DayBounds(date time.Time) (time.Time, time.Time) {
	return date, date.AddDate(0, 0, 1)
}

// TrailingNumber extracts the integer suffix of a display name, e.g. 23 from
// "Stand 23". ok is false when the name carries no digit suffix.
func TrailingNumber(name string) (int, bool) {
	name = strings.TrimSpace(name)
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return 0, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
