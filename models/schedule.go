package models

import (
	"slices"
	"strings"
	"time"
)

// Weekday keys used by WeeklySchedule. Always lowercase.
var WeekdayKeys = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayKey returns the WeeklySchedule key for a time.Weekday.
func WeekdayKey(d time.Weekday) string {
	return WeekdayKeys[int(d)%7]
}

// DayRule describes one weekday's regular hours. Open and Close are
// 24-hour "HH:MM" wall-clock strings in the business's home timezone.
type DayRule struct {
	Closed bool   `json:"isClosed" bson:"isClosed"`
	Open   string `json:"open,omitempty" bson:"open,omitempty"`
	Close  string `json:"close,omitempty" bson:"close,omitempty"`
}

// WeeklySchedule maps lowercase weekday names to their day rule.
type WeeklySchedule map[string]DayRule

// HolidayRule overrides the weekly baseline for a single calendar date
// ("YYYY-MM-DD" in the business timezone).
type HolidayRule struct {
	ID     string `json:"id" bson:"id"`
	Date   string `json:"date" bson:"date"`
	Label  string `json:"label" bson:"label"`
	Closed bool   `json:"isClosed" bson:"isClosed"`
	Open   string `json:"open,omitempty" bson:"open,omitempty"`
	Close  string `json:"close,omitempty" bson:"close,omitempty"`
}

// TemporaryRule overrides hours for every date in [StartDate, EndDate]
// inclusive, applying the same clock window each day.
type TemporaryRule struct {
	ID        string `json:"id" bson:"id"`
	StartDate string `json:"startDate" bson:"startDate"`
	EndDate   string `json:"endDate" bson:"endDate"`
	Label     string `json:"label" bson:"label"`
	Closed    bool   `json:"isClosed" bson:"isClosed"`
	Open      string `json:"open,omitempty" bson:"open,omitempty"`
	Close     string `json:"close,omitempty" bson:"close,omitempty"`
}

// OverrideStatus is the manual status switch. Anything other than
// OverrideAuto short-circuits every other rule.
type OverrideStatus string

const (
	OverrideAuto        OverrideStatus = "auto"
	OverrideOpen        OverrideStatus = "open"
	OverrideClosed      OverrideStatus = "closed"
	OverrideUnavailable OverrideStatus = "unavailable"
)

// Valid reports whether the override value is one of the known states.
func (o OverrideStatus) Valid() bool {
	switch o {
	case OverrideAuto, OverrideOpen, OverrideClosed, OverrideUnavailable:
		return true
	}
	return false
}

// BusinessConfig is the single configuration document holding the full
// schedule snapshot read on every evaluation cycle.
type BusinessConfig struct {
	RegularHours   WeeklySchedule  `json:"regularHours" bson:"regularHours"`
	HolidayHours   []HolidayRule   `json:"holidayHours" bson:"holidayHours"`
	TemporaryHours []TemporaryRule `json:"temporaryHours" bson:"temporaryHours"`
	StatusOverride OverrideStatus  `json:"statusOverride" bson:"statusOverride"`
	Timezone       string          `json:"timezone,omitempty" bson:"timezone,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Normalize lowercases weekday keys, drops unknown ones and defaults the
// override so the resolver only ever sees canonical input.
func (c *BusinessConfig) Normalize() {
	if c.RegularHours != nil {
		clean := make(WeeklySchedule, len(WeekdayKeys))
		for stored, rule := range c.RegularHours {
			key := strings.ToLower(strings.TrimSpace(stored))
			if slices.Contains(WeekdayKeys, key) {
				clean[key] = rule
			}
		}
		c.RegularHours = clean
	}
	if !c.StatusOverride.Valid() {
		c.StatusOverride = OverrideAuto
	}
}
