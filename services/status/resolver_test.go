package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

func nyc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

// at parses "2006-01-02 15:04" in the given zone.
func at(t *testing.T, loc *time.Location, stamp string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", stamp, loc)
	require.NoError(t, err)
	return ts
}

// baseConfig is a week with 09:00-17:00 hours Monday through Saturday
// and Sundays closed. 2026-03-02 is a Monday.
func baseConfig() models.BusinessConfig {
	weekly := models.WeeklySchedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		weekly[day] = models.DayRule{Open: "09:00", Close: "17:00"}
	}
	weekly["sunday"] = models.DayRule{Closed: true}
	return models.BusinessConfig{
		RegularHours:   weekly,
		StatusOverride: models.OverrideAuto,
	}
}

func TestResolveWeeklyBaseline(t *testing.T) {
	loc := nyc(t)

	tests := []struct {
		name       string
		stamp      string
		wantStatus models.StatusKind
		wantReason string
		wantRule   models.RuleRef
	}{
		{"mid-morning open", "2026-03-02 10:30", models.StatusOpen, "Regular Hours", models.RuleWeekly},
		{"exactly at open", "2026-03-02 09:00", models.StatusOpen, "Regular Hours", models.RuleWeekly},
		{"one minute before open", "2026-03-02 08:59", models.StatusClosed, "Regular Hours", models.RuleWeekly},
		{"exactly at close", "2026-03-02 17:00", models.StatusClosed, "Regular Hours", models.RuleWeekly},
		{"one minute before close", "2026-03-02 16:59", models.StatusOpen, "Regular Hours", models.RuleWeekly},
		{"closed sunday", "2026-03-08 12:00", models.StatusClosed, "Regular Hours", models.RuleWeekly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(baseConfig(), at(t, loc, tt.stamp), loc, loc)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantRule, got.ActiveRule)
		})
	}
}

func TestResolveNoRuleForToday(t *testing.T) {
	loc := nyc(t)
	cfg := baseConfig()
	delete(cfg.RegularHours, "monday")

	got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.Equal(t, "Scheduled Hours", got.Reason)
	assert.Equal(t, models.RuleDefault, got.ActiveRule)
}

func TestResolveMalformedWeeklyTimes(t *testing.T) {
	loc := nyc(t)
	cfg := baseConfig()
	cfg.RegularHours["monday"] = models.DayRule{Open: "9am", Close: "17:00"}

	// The broken rule is indeterminate; resolution falls to the default.
	got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.Equal(t, "Scheduled Hours", got.Reason)
}

func TestResolveOverrideShortCircuits(t *testing.T) {
	loc := nyc(t)

	tests := []struct {
		override models.OverrideStatus
		want     models.StatusKind
	}{
		{models.OverrideClosed, models.StatusClosed},
		{models.OverrideOpen, models.StatusOpen},
		{models.OverrideUnavailable, models.StatusUnavailable},
	}
	for _, tt := range tests {
		t.Run(string(tt.override), func(t *testing.T) {
			cfg := baseConfig()
			cfg.StatusOverride = tt.override
			// Layer a holiday and a temporary under the override; both
			// must be ignored.
			cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Founders Day", Closed: true}}
			cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Inventory", Closed: true}}

			got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, models.RuleOverride, got.ActiveRule)
			assert.Equal(t, "Manual Override", got.Reason)
			assert.Equal(t, "Status is manually set", got.Message)
			assert.False(t, got.IsCountdown)
		})
	}
}

func TestResolveHoliday(t *testing.T) {
	loc := nyc(t)

	t.Run("closed holiday beats open weekly baseline", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Founders Day", Closed: true}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Equal(t, models.StatusClosed, got.Status)
		assert.Equal(t, models.RuleHoliday, got.ActiveRule)
		assert.Equal(t, "Holiday (Founders Day)", got.Reason)
		assert.Equal(t, "For Holiday Closed All Day", got.Message)
	})

	t.Run("holiday with its own window replaces baseline", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Half Day", Open: "10:00", Close: "13:00"}}

		inside := Resolve(cfg, at(t, loc, "2026-03-02 11:00"), loc, loc)
		assert.Equal(t, models.StatusOpen, inside.Status)
		assert.Equal(t, "Holiday (Half Day)", inside.Reason)

		// 09:30 is open per the weekly baseline but the holiday window
		// replaces it wholesale.
		before := Resolve(cfg, at(t, loc, "2026-03-02 09:30"), loc, loc)
		assert.Equal(t, models.StatusClosed, before.Status)
		assert.Equal(t, models.RuleHoliday, before.ActiveRule)
	})

	t.Run("holiday missing times is closed", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Mystery Day"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Equal(t, models.StatusClosed, got.Status)
		assert.Equal(t, models.RuleHoliday, got.ActiveRule)
	})

	t.Run("holiday on another date is ignored", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-03", Label: "Tomorrow", Closed: true}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Equal(t, models.StatusOpen, got.Status)
		assert.Equal(t, models.RuleWeekly, got.ActiveRule)
	})
}

func TestResolveTemporary(t *testing.T) {
	loc := nyc(t)

	t.Run("inside temporary window is unavailable", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Maintenance", Open: "09:00", Close: "10:00"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 09:30"), loc, loc)
		assert.Equal(t, models.StatusUnavailable, got.Status)
		assert.Equal(t, models.RuleTemporary, got.ActiveRule)
		assert.Contains(t, got.Reason, "Maintenance")
	})

	t.Run("all-day temporary closure over an open monday", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Inventory", Closed: true}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Equal(t, models.StatusClosed, got.Status)
		assert.Contains(t, got.Reason, "Temporary (Inventory)")
		assert.Equal(t, "Temporarily Closed All Day", got.Message)
	})

	t.Run("temporary outside its window does not override baseline", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Maintenance", Open: "14:00", Close: "15:00"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 10:00"), loc, loc)
		assert.Equal(t, models.StatusOpen, got.Status)
		assert.Equal(t, models.RuleWeekly, got.ActiveRule)
	})

	t.Run("active temporary wins over holiday window", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Half Day", Open: "09:00", Close: "13:00"}}
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Repairs", Open: "10:00", Close: "11:00"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 10:30"), loc, loc)
		assert.Equal(t, models.StatusUnavailable, got.Status)
		assert.Equal(t, models.RuleTemporary, got.ActiveRule)
	})

	t.Run("date range covers every day inclusive", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-06", Label: "Renovation", Closed: true}}

		for _, stamp := range []string{"2026-03-02 12:00", "2026-03-04 12:00", "2026-03-06 12:00"} {
			got := Resolve(cfg, at(t, loc, stamp), loc, loc)
			assert.Equal(t, models.StatusClosed, got.Status, stamp)
			assert.Equal(t, models.RuleTemporary, got.ActiveRule, stamp)
		}
		after := Resolve(cfg, at(t, loc, "2026-03-07 12:00"), loc, loc)
		assert.Equal(t, models.RuleWeekly, after.ActiveRule)
	})
}

func TestResolveDeterministicTieBreaks(t *testing.T) {
	loc := nyc(t)

	t.Run("narrower temporary range wins", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{
			{ID: "wide", StartDate: "2026-03-01", EndDate: "2026-03-07", Label: "Wide", Closed: true},
			{ID: "narrow", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Narrow", Closed: true},
		}

		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Contains(t, got.Reason, "Narrow")
	})

	t.Run("same-date holidays pick label order", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{
			{ID: "b", Date: "2026-03-02", Label: "Zeta Day", Closed: true},
			{ID: "a", Date: "2026-03-02", Label: "Alpha Day", Closed: true},
		}

		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Contains(t, got.Reason, "Alpha Day")
	})
}

func TestResolveSkipsMalformedRules(t *testing.T) {
	loc := nyc(t)

	cfg := baseConfig()
	cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "03/02/2026", Label: "Bad Date", Closed: true}}
	cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "not-a-date", Label: "Bad Range", Closed: true}}

	// Both rules are unparseable; the weekly baseline must still resolve.
	got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
	assert.Equal(t, models.StatusOpen, got.Status)
	assert.Equal(t, models.RuleWeekly, got.ActiveRule)
}

func TestResolveNormalizesWeekdayKeys(t *testing.T) {
	loc := nyc(t)
	cfg := models.BusinessConfig{
		RegularHours: models.WeeklySchedule{
			"Monday": {Open: "09:00", Close: "17:00"},
			"brunch": {Open: "10:00", Close: "11:00"}, // unknown key dropped
		},
	}

	got := Resolve(cfg, at(t, loc, "2026-03-02 10:00"), loc, loc)
	assert.Equal(t, models.StatusOpen, got.Status)
	assert.Equal(t, models.RuleWeekly, got.ActiveRule)
}
