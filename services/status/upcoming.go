package status

import (
	"fmt"
	"sort"
	"time"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

// UpcomingHolidays builds the public "upcoming holidays" list: one line
// per holiday rule dated today or later, each with its own mini status.
func UpcomingHolidays(cfg models.BusinessConfig, now time.Time, bizZone, visitorZone *time.Location) []models.UpcomingEntry {
	if bizZone == nil {
		bizZone = time.UTC
	}
	local := now.In(bizZone)

	var entries []models.UpcomingEntry
	for _, rule := range cfg.HolidayHours {
		date, err := parseDate(rule.Date, bizZone)
		if err != nil {
			continue
		}
		days := calendarDaysBetween(local, date, bizZone)
		if days < 0 {
			continue
		}
		window := windowView{closed: rule.Closed, open: rule.Open, close: rule.Close, label: rule.Label, layer: "holiday"}
		entries = append(entries, models.UpcomingEntry{
			Label:  rule.Label,
			Detail: upcomingDetail(local, date, days, window, bizZone, visitorZone),
			Date:   rule.Date,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// UpcomingTemporaries builds the "upcoming temporary hours" list for
// rules whose end date is today or later. Active ranges report against
// today; future ranges report against their start date.
func UpcomingTemporaries(cfg models.BusinessConfig, now time.Time, bizZone, visitorZone *time.Location) []models.UpcomingEntry {
	if bizZone == nil {
		bizZone = time.UTC
	}
	local := now.In(bizZone)
	today := dayStart(local, bizZone)

	var entries []models.UpcomingEntry
	for _, rule := range cfg.TemporaryHours {
		start, err := parseDate(rule.StartDate, bizZone)
		if err != nil {
			continue
		}
		end, err := parseDate(rule.EndDate, bizZone)
		if err != nil {
			continue
		}
		if end.Before(today) {
			continue
		}
		anchor := start
		if start.Before(today) {
			anchor = today
		}
		days := calendarDaysBetween(local, anchor, bizZone)
		window := windowView{closed: rule.Closed, open: rule.Open, close: rule.Close, label: rule.Label, layer: "temporary"}
		entries = append(entries, models.UpcomingEntry{
			Label:  rule.Label,
			Detail: upcomingDetail(local, anchor, days, window, bizZone, visitorZone),
			Date:   rule.StartDate,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// windowView is the per-rule slice of state upcomingDetail needs.
type windowView struct {
	closed      bool
	open, close string
	label       string
	layer       string
}

// upcomingDetail renders one per-rule status line. Distances are
// business-zone calendar-day differences, never elapsed hours, so the
// phrasing stays right across DST offset changes.
func upcomingDetail(now, date time.Time, days int, w windowView, bizZone, visitorZone *time.Location) string {
	degraded := visitorZone == nil
	zone := visitorZone
	if degraded {
		zone = bizZone
	}

	openMin, closeMin, hasWindow := 0, 0, false
	if !w.closed && w.open != "" && w.close != "" {
		openMin, closeMin, hasWindow = ruleWindow(w.open, w.close, w.layer, w.label)
	}

	switch {
	case days == 0:
		if w.closed || !hasWindow {
			return "closed today"
		}
		minutes := minuteOfDay(now)
		if minutes >= openMin && minutes < closeMin {
			return "active today until " + formatAt(atMinutes(date, closeMin, bizZone), zone, degraded)
		}
		if minutes >= closeMin {
			return "closed today"
		}
		return "today at " + formatAt(atMinutes(date, openMin, bizZone), zone, degraded)
	case days == 1:
		if !hasWindow {
			return "tomorrow"
		}
		return "tomorrow at " + formatAt(atMinutes(date, openMin, bizZone), zone, degraded)
	case days <= 7:
		return fmt.Sprintf("upcoming on %s (in %d days)", date.Weekday(), days)
	default:
		return fmt.Sprintf("upcoming in %d days", days)
	}
}

// weekdayOrder is the display order of the weekly hours listing.
var weekdayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeeklyHours renders the regular schedule localized to the visitor's
// timezone, anchoring each weekday to its next occurrence.
func WeeklyHours(cfg models.BusinessConfig, now time.Time, bizZone, visitorZone *time.Location) []models.DayHours {
	if bizZone == nil {
		bizZone = time.UTC
	}
	cfg.Normalize()
	degraded := visitorZone == nil
	zone := visitorZone
	if degraded {
		zone = bizZone
	}

	local := now.In(bizZone)
	todayKey := models.WeekdayKey(local.Weekday())

	out := make([]models.DayHours, 0, len(weekdayOrder))
	for _, key := range weekdayOrder {
		entry := models.DayHours{Day: titleWeekday(key), IsToday: key == todayKey}
		rule, present := cfg.RegularHours[key]
		if !present || rule.Closed {
			entry.Hours = "Closed"
			out = append(out, entry)
			continue
		}
		openMin, closeMin, ok := ruleWindow(rule.Open, rule.Close, "weekly", key)
		if !ok {
			entry.Hours = "Closed"
			out = append(out, entry)
			continue
		}
		anchor := nextWeekday(local, key, bizZone)
		open := atMinutes(anchor, openMin, bizZone).In(zone)
		close := atMinutes(anchor, closeMin, bizZone).In(zone)
		entry.Hours = open.Format("3:04 PM") + " - " + formatAt(close, zone, degraded)
		out = append(out, entry)
	}
	return out
}

// nextWeekday returns the next business-local date (today included)
// falling on the named weekday.
func nextWeekday(from time.Time, key string, loc *time.Location) time.Time {
	day := dayStart(from, loc)
	for i := 0; i < 7; i++ {
		if models.WeekdayKey(day.Weekday()) == key {
			return day
		}
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func titleWeekday(key string) string {
	if key == "" {
		return key
	}
	return string(key[0]-'a'+'A') + key[1:]
}
