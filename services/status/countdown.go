package status

import (
	"fmt"
	"time"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

// countdownWindow is the threshold below which a live ticking countdown
// replaces the static "until HH:MM" message.
const countdownWindow = 30 * time.Minute

type verb struct {
	future      string // "Opens"
	progressive string // "Opening"
}

var (
	verbOpens       = verb{"Opens", "Opening"}
	verbCloses      = verb{"Closes", "Closing"}
	verbUnavailable = verb{"Becomes unavailable", "Becoming unavailable"}
)

// messageVariant selects the static-message template.
type messageVariant int

const (
	variantDefault messageVariant = iota
	variantThenOpens
)

// applyCountdown fills Message, IsCountdown and TargetAt on a resolved
// status. The target is always computed in business-local time; only the
// rendered clock string uses the visitor zone.
func applyCountdown(out *models.ResolvedStatus, ec evalContext, res resolution, visitorZone *time.Location) {
	if res.activeRule == models.RuleOverride {
		out.Message = "Status is manually set"
		return
	}

	degraded := visitorZone == nil
	zone := visitorZone
	if degraded {
		zone = ec.bizZone
	}

	target, v, variant := selectTarget(ec, res)
	if target == nil {
		if res.allDayClosed {
			out.Message = closedAllDayMessage(res.activeRule)
		}
		return
	}

	delta := target.Sub(ec.now)
	if delta <= 0 {
		// Target already passed; treated as "no target".
		return
	}

	t := *target
	out.TargetAt = &t
	if delta <= countdownWindow {
		out.IsCountdown = true
		out.Message = liveCountdown(v, delta)
		return
	}
	out.Message = staticMessage(out.Status, t, zone, degraded, variant)
}

// selectTarget finds the next meaningful state change for the current
// resolution, if any.
func selectTarget(ec evalContext, res resolution) (*time.Time, verb, messageVariant) {
	switch res.activeRule {
	case models.RuleTemporary:
		if res.allDayClosed {
			return nil, verbOpens, variantDefault
		}
		// Unavailable inside a temporary window; it ends today at its
		// close time. If the weekly baseline is open at that instant the
		// site reopens immediately after the temporary period.
		target := atMinutes(ec.now, res.closeMin, ec.bizZone)
		if weeklyOpenAt(ec, res.closeMin) {
			return &target, verbOpens, variantThenOpens
		}
		return &target, verbOpens, variantDefault

	case models.RuleHoliday, models.RuleWeekly:
		if res.allDayClosed {
			return nil, verbOpens, variantDefault
		}
		if res.status == models.StatusOpen {
			// A temporary window starting later today preempts the
			// regular close target.
			if openMin, ok := upcomingTemporaryToday(ec); ok {
				target := atMinutes(ec.now, openMin, ec.bizZone)
				return &target, verbUnavailable, variantDefault
			}
			target := atMinutes(ec.now, res.closeMin, ec.bizZone)
			return &target, verbCloses, variantDefault
		}
		// Closed with a known window: count down to the open time.
		target := atMinutes(ec.now, res.openMin, ec.bizZone)
		if !target.After(ec.now) {
			if res.activeRule != models.RuleWeekly {
				// Holiday open time already passed; no forward target.
				return nil, verbOpens, variantDefault
			}
			target = atMinutes(ec.now.AddDate(0, 0, 1), res.openMin, ec.bizZone)
		}
		return &target, verbOpens, variantDefault
	}
	return nil, verbOpens, variantDefault
}

// weeklyOpenAt reports whether the weekly baseline is open at the given
// business-local minute today.
func weeklyOpenAt(ec evalContext, minutes int) bool {
	rule, present := ec.cfg.RegularHours[ec.weekday]
	if !present || rule.Closed {
		return false
	}
	openMin, closeMin, ok := ruleWindow(rule.Open, rule.Close, "weekly", ec.weekday)
	if !ok {
		return false
	}
	return minutes >= openMin && minutes < closeMin
}

// upcomingTemporaryToday returns the open minute of the earliest
// temporary window covering today that has not started yet. All-day
// closures never reach here: they already decided the evaluator chain.
func upcomingTemporaryToday(ec evalContext) (int, bool) {
	bestMin := -1
	for _, rule := range temporariesForDate(ec.cfg.TemporaryHours, ec.today, ec.bizZone) {
		if rule.Closed {
			continue
		}
		openMin, _, ok := ruleWindow(rule.Open, rule.Close, "temporary", rule.Label)
		if !ok || openMin <= ec.minutes {
			continue
		}
		if bestMin == -1 || openMin < bestMin {
			bestMin = openMin
		}
	}
	if bestMin == -1 {
		return 0, false
	}
	return bestMin, true
}

// liveCountdown renders the ticking countdown message.
func liveCountdown(v verb, d time.Duration) string {
	if d < time.Minute {
		return v.progressive + " very soon"
	}
	minutes := int((d + time.Minute - 1) / time.Minute)
	hours := minutes / 60
	minutes = minutes % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%s in %d hr %d min", v.future, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%s in %d hr", v.future, hours)
	default:
		return fmt.Sprintf("%s in %d min", v.future, minutes)
	}
}

// staticMessage renders the beyond-threshold "until" message.
func staticMessage(st models.StatusKind, target time.Time, zone *time.Location, degraded bool, variant messageVariant) string {
	clock := formatAt(target, zone, degraded)
	if variant == variantThenOpens {
		return "Unavailable until " + clock + ", then Opens"
	}
	switch st {
	case models.StatusOpen:
		return "Open until " + clock
	case models.StatusUnavailable:
		return "Temporarily Unavailable until " + clock
	default:
		return "Closed until " + clock
	}
}

// closedAllDayMessage renders the no-forward-target closure message.
func closedAllDayMessage(rule models.RuleRef) string {
	switch rule {
	case models.RuleTemporary:
		return "Temporarily Closed All Day"
	case models.RuleHoliday:
		return "For Holiday Closed All Day"
	default:
		return "Closed All Day"
	}
}

// formatAt renders an instant as a visitor-local clock time, e.g.
// "2:00 PM EST". Degraded output (visitor zone unavailable) is labeled
// rather than dropped.
func formatAt(t time.Time, zone *time.Location, degraded bool) string {
	s := t.In(zone).Format("3:04 PM MST")
	if degraded {
		s += " (approx)"
	}
	return s
}
