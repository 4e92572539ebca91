package attendance

import (
	"time"
)

type EventKind string

const (
	EventCheckIn  EventKind = "entrada"
	EventCheckOut EventKind = "salida"
)

// ClockEvent is one immutable check-in or check-out registration. The hours
// engine reconstructs work sessions from these; nothing ever edits them.
type ClockEvent struct {
	ID             string
	WorkerID       string
	SiteID         string
	Kind           EventKind
	Timestamp      time.Time // server-assigned, UTC
	Latitude       float64
	Longitude      float64
	DistanceMeters float64
	WithinFence    bool
	Day            string // YYYY-MM-DD on the site's local clock
	Justification  *string
	Shift          *string
	CreatedAt      time.Time

	// Joined for listings
	WorkerName *string
	SiteName   *string
}
