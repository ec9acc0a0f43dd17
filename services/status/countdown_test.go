package status

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

func TestCountdownOpensSoon(t *testing.T) {
	loc := nyc(t)

	// Monday 08:45, opens 09:00.
	got := Resolve(baseConfig(), at(t, loc, "2026-03-02 08:45"), loc, loc)
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.True(t, got.IsCountdown)
	assert.Equal(t, "Opens in 15 min", got.Message)
	require.NotNil(t, got.TargetAt)
	assert.Equal(t, at(t, loc, "2026-03-02 09:00"), got.TargetAt.In(loc))
}

func TestCountdownClosesSoon(t *testing.T) {
	loc := nyc(t)

	// Monday 16:50, closes 17:00.
	got := Resolve(baseConfig(), at(t, loc, "2026-03-02 16:50"), loc, loc)
	assert.Equal(t, models.StatusOpen, got.Status)
	assert.True(t, got.IsCountdown)
	assert.Equal(t, "Closes in 10 min", got.Message)
}

func TestCountdownFormattingByDistance(t *testing.T) {
	loc := nyc(t)

	t.Run("25 minutes away matches countdown pattern", func(t *testing.T) {
		got := Resolve(baseConfig(), at(t, loc, "2026-03-02 08:35"), loc, loc)
		assert.Regexp(t, regexp.MustCompile(`^Opens in \d+ min$`), got.Message)
		assert.True(t, got.IsCountdown)
	})

	t.Run("45 minutes away is a static until message", func(t *testing.T) {
		got := Resolve(baseConfig(), at(t, loc, "2026-03-02 08:15"), loc, loc)
		assert.Regexp(t, regexp.MustCompile(`until \d{1,2}:\d{2} (AM|PM)`), got.Message)
		assert.Equal(t, "Closed until 9:00 AM EST", got.Message)
		assert.False(t, got.IsCountdown)
	})

	t.Run("exactly thirty minutes is still a countdown", func(t *testing.T) {
		got := Resolve(baseConfig(), at(t, loc, "2026-03-02 08:30"), loc, loc)
		assert.Equal(t, "Opens in 30 min", got.Message)
		assert.True(t, got.IsCountdown)
	})

	t.Run("under one minute collapses to very soon", func(t *testing.T) {
		cfg := baseConfig()
		now := at(t, loc, "2026-03-02 08:59").Add(30 * time.Second)
		got := Resolve(cfg, now, loc, loc)
		assert.Equal(t, "Opening very soon", got.Message)
	})

	t.Run("target already passed yields no message", func(t *testing.T) {
		cfg := baseConfig()
		// Holiday window already over; holidays never roll to tomorrow.
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Half Day", Open: "09:00", Close: "10:00"}}
		got := Resolve(cfg, at(t, loc, "2026-03-02 11:00"), loc, loc)
		assert.Equal(t, models.StatusClosed, got.Status)
		assert.Empty(t, got.Message)
		assert.Nil(t, got.TargetAt)
	})
}

func TestCountdownRollsWeeklyOpenToNextDay(t *testing.T) {
	loc := nyc(t)

	// Monday 18:00, after close: the weekly open rolls to Tuesday.
	got := Resolve(baseConfig(), at(t, loc, "2026-03-02 18:00"), loc, loc)
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.Equal(t, "Closed until 9:00 AM EST", got.Message)
	require.NotNil(t, got.TargetAt)
	assert.Equal(t, at(t, loc, "2026-03-03 09:00"), got.TargetAt.In(loc))
}

func TestCountdownTemporaryReopens(t *testing.T) {
	loc := nyc(t)

	t.Run("reopens after temporary period when baseline open at close", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Repairs", Open: "09:00", Close: "12:00"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 09:30"), loc, loc)
		assert.Equal(t, models.StatusUnavailable, got.Status)
		assert.Equal(t, "Unavailable until 12:00 PM EST, then Opens", got.Message)
	})

	t.Run("plain unavailable when baseline closed at window end", func(t *testing.T) {
		cfg := baseConfig()
		// Window runs to the weekly close; [open, close) means the
		// baseline is already closed at 17:00 exactly.
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Repairs", Open: "15:00", Close: "17:00"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 15:30"), loc, loc)
		assert.Equal(t, "Temporarily Unavailable until 5:00 PM EST", got.Message)
	})

	t.Run("countdown inside the window", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Repairs", Open: "09:00", Close: "10:00"}}

		got := Resolve(cfg, at(t, loc, "2026-03-02 09:40"), loc, loc)
		assert.True(t, got.IsCountdown)
		assert.Equal(t, "Opens in 20 min", got.Message)
	})
}

func TestCountdownUpcomingTemporaryPreemptsClose(t *testing.T) {
	loc := nyc(t)

	cfg := baseConfig()
	cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Stream", Open: "14:00", Close: "15:00"}}

	t.Run("beyond threshold shows static open-until", func(t *testing.T) {
		got := Resolve(cfg, at(t, loc, "2026-03-02 13:00"), loc, loc)
		assert.Equal(t, models.StatusOpen, got.Status)
		assert.Equal(t, "Open until 2:00 PM EST", got.Message)
	})

	t.Run("inside threshold counts down to the window start", func(t *testing.T) {
		got := Resolve(cfg, at(t, loc, "2026-03-02 13:45"), loc, loc)
		assert.True(t, got.IsCountdown)
		assert.Equal(t, "Becomes unavailable in 15 min", got.Message)
	})
}

func TestCountdownAllDayClosures(t *testing.T) {
	loc := nyc(t)

	t.Run("plain non-working weekday", func(t *testing.T) {
		got := Resolve(baseConfig(), at(t, loc, "2026-03-08 12:00"), loc, loc) // Sunday
		assert.Equal(t, "Closed All Day", got.Message)
	})

	t.Run("holiday closure", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HolidayHours = []models.HolidayRule{{ID: "h1", Date: "2026-03-02", Label: "Founders Day", Closed: true}}
		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Equal(t, "For Holiday Closed All Day", got.Message)
	})

	t.Run("temporary closure", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TemporaryHours = []models.TemporaryRule{{ID: "t1", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Inventory", Closed: true}}
		got := Resolve(cfg, at(t, loc, "2026-03-02 12:00"), loc, loc)
		assert.Equal(t, "Temporarily Closed All Day", got.Message)
	})
}

func TestCountdownLongDurationsIncludeHours(t *testing.T) {
	assert.Equal(t, "Opens in 1 hr 5 min", liveCountdown(verbOpens, 65*time.Minute))
	assert.Equal(t, "Opens in 2 hr", liveCountdown(verbOpens, 120*time.Minute))
	assert.Equal(t, "Closes in 45 min", liveCountdown(verbCloses, 45*time.Minute))
}

func TestFormatSameZoneRoundTrip(t *testing.T) {
	loc := nyc(t)

	// A 14:00 business wall time shown to a visitor in the same zone
	// must not shift.
	target := at(t, loc, "2026-03-02 14:00")
	assert.Equal(t, "2:00 PM EST", formatAt(target, loc, false))
}

func TestFormatDegradedZone(t *testing.T) {
	loc := nyc(t)

	cfg := baseConfig()
	// Visitor zone could not be loaded: nil zone degrades to labeled
	// business-local output instead of failing.
	got := Resolve(cfg, at(t, loc, "2026-03-02 08:15"), loc, nil)
	assert.Equal(t, "Closed until 9:00 AM EST (approx)", got.Message)
}

func TestUpcomingTemporaryTodaySkipsClosedRules(t *testing.T) {
	loc := nyc(t)
	now := at(t, loc, "2026-03-02 10:00")

	cfg := baseConfig()
	cfg.TemporaryHours = []models.TemporaryRule{
		{ID: "c", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Retreat", Closed: true},
		{ID: "w", StartDate: "2026-03-02", EndDate: "2026-03-02", Label: "Stream", Open: "14:00", Close: "15:00"},
	}

	ec := evalContext{
		cfg:     cfg,
		now:     now,
		bizZone: loc,
		today:   "2026-03-02",
		minutes: minuteOfDay(now),
		weekday: "monday",
	}

	// Only the windowed rule feeds the preempting countdown target;
	// all-day closures decide the evaluator chain instead.
	openMin, ok := upcomingTemporaryToday(ec)
	require.True(t, ok)
	assert.Equal(t, 14*60, openMin)
}
