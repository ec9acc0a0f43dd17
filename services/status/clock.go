package status

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return hour*60 + minute, nil
}

// parseDate parses a "YYYY-MM-DD" calendar date at midnight in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
}

// minuteOfDay returns the wall-clock minute count for t in its own location.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// atMinutes pins a minute-of-day onto t's calendar date in loc.
func atMinutes(t time.Time, minutes int, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), minutes/60, minutes%60, 0, 0, loc)
}

// dayStart returns midnight of t's calendar date in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// calendarDaysBetween counts calendar-day boundaries between a and b in loc.
// Midnight anchors keep the count stable across DST offset changes.
func calendarDaysBetween(a, b time.Time, loc *time.Location) int {
	from := dayStart(a, loc)
	to := dayStart(b, loc)
	hours := to.Sub(from).Hours()
	if hours >= 0 {
		return int((hours + 12) / 24)
	}
	return -int((-hours + 12) / 24)
}
