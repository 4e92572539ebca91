package absence

import (
	"time"
)

// Absence ("permiso") is a pre-approved deduction of hours for a worker on
// one date. Creating the record is the approval act; the report engine only
// ever sums these, it never splits them into time-of-day buckets.
type Absence struct {
	ID        string
	WorkerID  string
	SiteID    string
	Date      string // YYYY-MM-DD
	Hours     float64
	Reason    string
	CreatedAt time.Time

	// Joined for listings
	WorkerName *string
	SiteName   *string
}
