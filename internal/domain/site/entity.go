package site

import (
	"time"
)

// Site is a work site ("obra"): a named point with a circular geofence.
// Which labor policy governs the site lives in configuration keyed by the
// site's ID, not on the row, so policy changes never touch stored data.
type Site struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
