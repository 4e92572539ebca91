package policy

import (
	"fmt"
	"time"
)

// Kind selects which labor-hour classification regime a site runs under.
type Kind string

const (
	KindDailyBlock Kind = "daily_block"
	KindWeeklyCap  Kind = "weekly_cap"
)

// ClockTime is a local wall-clock time as minutes since midnight.
type ClockTime int

// ParseClockTime parses "HH:MM" (24h).
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) Duration() time.Duration {
	return time.Duration(c) * time.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c/60, c%60)
}

// DailyBlockParams are the fixed clock-time bands of the daily-block regime.
// The evening band runs [EveningCutoff, 24:00); EveningCutoff doubles as the
// local time from which a clock-out requires a justification.
type DailyBlockParams struct {
	MorningStart   ClockTime
	MorningEnd     ClockTime
	AfternoonStart ClockTime
	AfternoonEnd   ClockTime
	EveningCutoff  ClockTime
}

// WeeklyCapParams are the constants of the weekly-cap regime. The night
// window opens at NightStart and closes at NightEnd of the following day.
type WeeklyCapParams struct {
	CapHours   float64
	NightStart ClockTime
	NightEnd   ClockTime
}

// Policy is the labor policy of one site: the regime tag plus the constants
// of both regimes (only the tagged one is consulted during classification).
// UTCOffsetHours positions the site's local clock relative to server (UTC)
// time; every local-day boundary derives from it.
type Policy struct {
	Kind           Kind
	UTCOffsetHours int
	DailyBlock     DailyBlockParams
	WeeklyCap      WeeklyCapParams
}

// Location returns the fixed-offset zone for the site's local clock.
func (p Policy) Location() *time.Location {
	if p.UTCOffsetHours == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", p.UTCOffsetHours), p.UTCOffsetHours*3600)
}

// LocalDay formats the calendar day of t on the site's local clock.
func (p Policy) LocalDay(t time.Time) string {
	return t.In(p.Location()).Format("2006-01-02")
}

// Default returns the business constants every site starts from: morning
// 07:00-12:00 and afternoon 14:00-17:00 as regular bands, overtime from
// 17:00, a 45h weekly cap, and a 19:00-06:00 night window.
func Default() Policy {
	return Policy{
		Kind: KindDailyBlock,
		DailyBlock: DailyBlockParams{
			MorningStart:   7 * 60,
			MorningEnd:     12 * 60,
			AfternoonStart: 14 * 60,
			AfternoonEnd:   17 * 60,
			EveningCutoff:  17 * 60,
		},
		WeeklyCap: WeeklyCapParams{
			CapHours:   45,
			NightStart: 19 * 60,
			NightEnd:   6 * 60,
		},
	}
}

// Set holds the resolved policy per site. Sites without an entry fall back
// to Default.
type Set struct {
	Default Policy
	Sites   map[string]Policy
}

// For returns the policy governing siteID.
func (s Set) For(siteID string) Policy {
	if p, ok := s.Sites[siteID]; ok {
		return p
	}
	return s.Default
}
