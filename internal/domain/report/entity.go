package report

import (
	"time"
)

// Interval is one reconstructed work session: a check-in paired with the
// next check-out of the same worker. Transient, never persisted.
type Interval struct {
	Start time.Time
	End   time.Time
}

// DaySegment is the portion of an Interval falling inside one site-local
// calendar day. Start and End are expressed in the site's local zone so all
// later clock math runs on the same shift that produced the day split.
type DaySegment struct {
	Day   string // YYYY-MM-DD
	Start time.Time
	End   time.Time
}

// Hours returns the segment's duration in hours, never negative.
func (s DaySegment) Hours() float64 {
	h := s.End.Sub(s.Start).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// ClassifiedDay is one day's outcome under the daily-block policy. On a
// Sunday everything lands in SundayHours and the other two stay zero.
type ClassifiedDay struct {
	Date          string
	IsSunday      bool
	RegularHours  float64
	OvertimeHours float64
	SundayHours   float64
}

// WeekBucket is one Monday-start week's outcome under the weekly-cap
// policy. RegularHours = min(total, cap); OvertimeHours = max(0, total-cap).
type WeekBucket struct {
	WeekStart     string // Monday, YYYY-MM-DD
	WeekEnd       string // Sunday, YYYY-MM-DD
	TotalHours    float64
	NightHours    float64
	RegularHours  float64
	OvertimeHours float64
}
