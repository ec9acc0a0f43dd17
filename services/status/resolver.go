package status

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

// evalContext carries the business-local view of "now" shared by every
// rule evaluator. All window tests run in business-local time; the
// visitor zone is used for output formatting only.
type evalContext struct {
	cfg     models.BusinessConfig
	now     time.Time // business-local
	bizZone *time.Location
	today   string // "YYYY-MM-DD" business-local
	minutes int    // minute of day, business-local
	weekday string
}

// resolution is the internal evaluator output. It keeps the active
// window bounds around so the countdown step can pick its target
// without re-deriving rule state.
type resolution struct {
	status     models.StatusKind
	activeRule models.RuleRef
	reason     string

	openMin      int // -1 when not applicable
	closeMin     int
	allDayClosed bool

	temporary *models.TemporaryRule
	holiday   *models.HolidayRule
}

// evaluator inspects one rule layer and reports whether it decided the
// status. The chain is ordered by precedence, first match wins.
type evaluator func(ec evalContext) (resolution, bool)

var evaluators = []evaluator{
	evalOverride,
	evalTemporary,
	evalHoliday,
	evalWeekly,
	evalDefault,
}

// Resolve computes the current business status from a schedule snapshot.
// It is a pure function of its inputs (plus diagnostics through zap) and
// always returns a best-effort ResolvedStatus, never an error.
//
// Precedence: manual override > active temporary > active holiday >
// weekly baseline > closed default.
func Resolve(cfg models.BusinessConfig, now time.Time, bizZone, visitorZone *time.Location) models.ResolvedStatus {
	if bizZone == nil {
		bizZone = time.UTC
	}
	cfg.Normalize()

	local := now.In(bizZone)
	ec := evalContext{
		cfg:     cfg,
		now:     local,
		bizZone: bizZone,
		today:   local.Format(dateLayout),
		minutes: minuteOfDay(local),
		weekday: models.WeekdayKey(local.Weekday()),
	}

	var res resolution
	for _, eval := range evaluators {
		if r, ok := eval(ec); ok {
			res = r
			break
		}
	}

	out := models.ResolvedStatus{
		Status:     res.status,
		ActiveRule: res.activeRule,
		Reason:     res.reason,
		CheckedAt:  now,
	}
	applyCountdown(&out, ec, res, visitorZone)
	return out
}

// evalOverride short-circuits everything when the manual switch is set.
func evalOverride(ec evalContext) (resolution, bool) {
	switch ec.cfg.StatusOverride {
	case models.OverrideOpen:
		return resolution{status: models.StatusOpen, activeRule: models.RuleOverride, reason: "Manual Override", openMin: -1, closeMin: -1}, true
	case models.OverrideClosed:
		return resolution{status: models.StatusClosed, activeRule: models.RuleOverride, reason: "Manual Override", openMin: -1, closeMin: -1}, true
	case models.OverrideUnavailable:
		return resolution{status: models.StatusUnavailable, activeRule: models.RuleOverride, reason: "Manual Override", openMin: -1, closeMin: -1}, true
	}
	return resolution{}, false
}

// evalTemporary reports a date-range rule whose window is currently
// active. A rule covering today whose window has not started (or is
// already over) does not decide the status; it only feeds the countdown.
func evalTemporary(ec evalContext) (resolution, bool) {
	for _, rule := range temporariesForDate(ec.cfg.TemporaryHours, ec.today, ec.bizZone) {
		if rule.Closed {
			return resolution{
				status:       models.StatusClosed,
				activeRule:   models.RuleTemporary,
				reason:       "Temporary (" + rule.Label + ")",
				openMin:      -1,
				closeMin:     -1,
				allDayClosed: true,
				temporary:    &rule,
			}, true
		}
		openMin, closeMin, ok := ruleWindow(rule.Open, rule.Close, "temporary", rule.Label)
		if !ok {
			continue
		}
		if ec.minutes >= openMin && ec.minutes < closeMin {
			return resolution{
				status:     models.StatusUnavailable,
				activeRule: models.RuleTemporary,
				reason:     "Temporary (" + rule.Label + ")",
				openMin:    openMin,
				closeMin:   closeMin,
				temporary:  &rule,
			}, true
		}
	}
	return resolution{}, false
}

// evalHoliday replaces the weekly baseline wholesale on a matching date.
func evalHoliday(ec evalContext) (resolution, bool) {
	for _, rule := range holidaysForDate(ec.cfg.HolidayHours, ec.today, ec.bizZone) {
		reason := "Holiday (" + rule.Label + ")"
		if rule.Closed || rule.Open == "" || rule.Close == "" {
			return resolution{
				status:       models.StatusClosed,
				activeRule:   models.RuleHoliday,
				reason:       reason,
				openMin:      -1,
				closeMin:     -1,
				allDayClosed: true,
				holiday:      &rule,
			}, true
		}
		openMin, closeMin, ok := ruleWindow(rule.Open, rule.Close, "holiday", rule.Label)
		if !ok {
			// Unparseable times: the rule is indeterminate, fall
			// through to the weekly baseline.
			continue
		}
		st := models.StatusClosed
		if ec.minutes >= openMin && ec.minutes < closeMin {
			st = models.StatusOpen
		}
		return resolution{
			status:     st,
			activeRule: models.RuleHoliday,
			reason:     reason,
			openMin:    openMin,
			closeMin:   closeMin,
			holiday:    &rule,
		}, true
	}
	return resolution{}, false
}

// evalWeekly applies the regular half-open [open, close) interval.
func evalWeekly(ec evalContext) (resolution, bool) {
	rule, present := ec.cfg.RegularHours[ec.weekday]
	if !present {
		return resolution{}, false
	}
	if rule.Closed {
		return resolution{
			status:       models.StatusClosed,
			activeRule:   models.RuleWeekly,
			reason:       "Regular Hours",
			openMin:      -1,
			closeMin:     -1,
			allDayClosed: true,
		}, true
	}
	openMin, closeMin, ok := ruleWindow(rule.Open, rule.Close, "weekly", ec.weekday)
	if !ok {
		// Cannot determine the window; assume closed via the default rule.
		return resolution{}, false
	}
	st := models.StatusClosed
	if ec.minutes >= openMin && ec.minutes < closeMin {
		st = models.StatusOpen
	}
	return resolution{
		status:     st,
		activeRule: models.RuleWeekly,
		reason:     "Regular Hours",
		openMin:    openMin,
		closeMin:   closeMin,
	}, true
}

// evalDefault is the terminal rule: closed, always matches.
func evalDefault(evalContext) (resolution, bool) {
	return resolution{
		status:       models.StatusClosed,
		activeRule:   models.RuleDefault,
		reason:       "Scheduled Hours",
		openMin:      -1,
		closeMin:     -1,
		allDayClosed: true,
	}, true
}

// ruleWindow parses a rule's open/close pair into minute bounds. A
// malformed or inverted pair makes the rule indeterminate; it is logged
// and skipped rather than failing resolution.
func ruleWindow(open, close, layer, label string) (int, int, bool) {
	openMin, err := parseClock(open)
	if err != nil {
		zap.L().Warn("skipping rule with malformed open time",
			zap.String("layer", layer), zap.String("rule", label), zap.Error(err))
		return 0, 0, false
	}
	closeMin, err := parseClock(close)
	if err != nil {
		zap.L().Warn("skipping rule with malformed close time",
			zap.String("layer", layer), zap.String("rule", label), zap.Error(err))
		return 0, 0, false
	}
	if openMin >= closeMin {
		zap.L().Warn("skipping rule with inverted window",
			zap.String("layer", layer), zap.String("rule", label),
			zap.String("open", open), zap.String("close", close))
		return 0, 0, false
	}
	return openMin, closeMin, true
}

// temporariesForDate returns every range rule covering date, ordered by
// the deterministic tie-break: narrower range first, then earlier start,
// then label. Rules with unparseable dates are logged and skipped.
func temporariesForDate(rules []models.TemporaryRule, date string, loc *time.Location) []models.TemporaryRule {
	target, err := parseDate(date, loc)
	if err != nil {
		return nil
	}

	type candidate struct {
		rule models.TemporaryRule
		span int
	}
	var matched []candidate
	for _, rule := range rules {
		start, err := parseDate(rule.StartDate, loc)
		if err != nil {
			zap.L().Warn("skipping temporary rule with malformed start date",
				zap.String("rule", rule.Label), zap.Error(err))
			continue
		}
		end, err := parseDate(rule.EndDate, loc)
		if err != nil {
			zap.L().Warn("skipping temporary rule with malformed end date",
				zap.String("rule", rule.Label), zap.Error(err))
			continue
		}
		if target.Before(start) || target.After(end) {
			continue
		}
		matched = append(matched, candidate{rule: rule, span: calendarDaysBetween(start, end, loc)})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].span != matched[j].span {
			return matched[i].span < matched[j].span
		}
		if matched[i].rule.StartDate != matched[j].rule.StartDate {
			return matched[i].rule.StartDate < matched[j].rule.StartDate
		}
		return matched[i].rule.Label < matched[j].rule.Label
	})

	out := make([]models.TemporaryRule, len(matched))
	for i, c := range matched {
		out[i] = c.rule
	}
	return out
}

// holidaysForDate returns holiday rules for the date, label order.
func holidaysForDate(rules []models.HolidayRule, date string, loc *time.Location) []models.HolidayRule {
	target, err := parseDate(date, loc)
	if err != nil {
		return nil
	}
	var matched []models.HolidayRule
	for _, rule := range rules {
		day, err := parseDate(rule.Date, loc)
		if err != nil {
			zap.L().Warn("skipping holiday rule with malformed date",
				zap.String("rule", rule.Label), zap.Error(err))
			continue
		}
		if day.Equal(target) {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Label < matched[j].Label
	})
	return matched
}
