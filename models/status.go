package models

import "time"

// StatusKind is the resolved state category. It doubles as the CSS class
// the frontend applies to the status badge.
type StatusKind string

const (
	StatusOpen        StatusKind = "open"
	StatusClosed      StatusKind = "closed"
	StatusUnavailable StatusKind = "unavailable"
)

// Display returns the human-readable status label.
func (s StatusKind) Display() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusUnavailable:
		return "Temporarily Unavailable"
	default:
		return "Closed"
	}
}

// RuleRef identifies which rule layer produced a resolved status.
type RuleRef string

const (
	RuleOverride  RuleRef = "override"
	RuleTemporary RuleRef = "temporary"
	RuleHoliday   RuleRef = "holiday"
	RuleWeekly    RuleRef = "weekly"
	RuleDefault   RuleRef = "default"
)

// ResolvedStatus is the resolver output. Computed on every evaluation,
// never persisted.
type ResolvedStatus struct {
	Status      StatusKind `json:"status"`
	ActiveRule  RuleRef    `json:"activeRule"`
	Reason      string     `json:"reason"`
	Message     string     `json:"message"`
	IsCountdown bool       `json:"isCountdown"`
	TargetAt    *time.Time `json:"targetAt,omitempty"`
	CheckedAt   time.Time  `json:"checkedAt"`
}

// DayHours is one line of the visitor-localized weekly hours listing.
type DayHours struct {
	Day     string `json:"day"`
	Hours   string `json:"hours"`
	IsToday bool   `json:"isToday"`
}

// UpcomingEntry is one line of the upcoming holiday/temporary lists.
type UpcomingEntry struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Date   string `json:"date"`
}

// StatusPage bundles everything the public status endpoint returns.
type StatusPage struct {
	Status            ResolvedStatus  `json:"status"`
	WeeklyHours       []DayHours      `json:"weeklyHours"`
	UpcomingHolidays  []UpcomingEntry `json:"upcomingHolidays"`
	UpcomingTemporary []UpcomingEntry `json:"upcomingTemporary"`
	Timezone          string          `json:"timezone"`
}
