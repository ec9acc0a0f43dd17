package models

import "time"

// Shoutout is a featured creator card shown on the public page.
type Shoutout struct {
	ID        string    `json:"id" bson:"id"`
	Platform  string    `json:"platform" bson:"platform"` // tiktok | instagram | youtube
	Username  string    `json:"username" bson:"username"`
	Nickname  string    `json:"nickname" bson:"nickname"`
	Bio       string    `json:"bio,omitempty" bson:"bio,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Verified  bool      `json:"isVerified" bson:"isVerified"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SocialLink is a single entry of the public links list.
type SocialLink struct {
	ID        string    `json:"id" bson:"id"`
	Label     string    `json:"label" bson:"label"`
	URL       string    `json:"url" bson:"url"`
	Icon      string    `json:"icon,omitempty" bson:"icon,omitempty"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Profile is the site owner's public profile card.
type Profile struct {
	Username  string    `json:"username" bson:"username"`
	Bio       string    `json:"bio" bson:"bio"`
	ImageURL  string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Status    string    `json:"status,omitempty" bson:"status,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// LegislationItem is one tracked bill on the legislation page.
type LegislationItem struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Stage     string    `json:"stage" bson:"stage"`
	Summary   string    `json:"summary,omitempty" bson:"summary,omitempty"`
	URL       string    `json:"url,omitempty" bson:"url,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Settings is the site-wide feature flag record. Immutable once read;
// writers replace the whole document and publish the new snapshot.
type Settings struct {
	DarkMode          bool      `json:"darkMode" bson:"darkMode"`
	MaintenanceBanner bool      `json:"maintenanceBanner" bson:"maintenanceBanner"`
	ShowShoutouts     bool      `json:"showShoutouts" bson:"showShoutouts"`
	ShowLegislation   bool      `json:"showLegislation" bson:"showLegislation"`
	ShowBusinessHours bool      `json:"showBusinessHours" bson:"showBusinessHours"`
	FocusOutlines     bool      `json:"focusOutlines" bson:"focusOutlines"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DefaultSettings is the record used before an admin has saved anything.
func DefaultSettings() Settings {
	return Settings{
		ShowShoutouts:     true,
		ShowLegislation:   true,
		ShowBusinessHours: true,
		FocusOutlines:     true,
	}
}
