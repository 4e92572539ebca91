package report

import (
	"math"
	"time"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
)

// classifyWeeklyCap folds day segments into Monday-start week buckets. Each
// segment contributes its full duration to the week's total plus whatever
// part of it falls inside the night window anchored on the segment's own
// local day ([NightStart, NightEnd of the following day)). Once every
// segment is in, the cap splits each week's total into regular and overtime.
func classifyWeeklyCap(segments []report.DaySegment, params policy.WeeklyCapParams, loc *time.Location) []report.WeekBucket {
	byWeek := make(map[string]*report.WeekBucket)
	var order []string

	for _, seg := range segments {
		hours := seg.Hours()
		if hours == 0 {
			continue
		}

		dayStart := time.Date(seg.Start.Year(), seg.Start.Month(), seg.Start.Day(), 0, 0, 0, 0, loc)

		nightFrom := dayStart.Add(params.NightStart.Duration())
		nightTo := dayStart.AddDate(0, 0, 1).Add(params.NightEnd.Duration())
		night := overlapHours(seg, nightFrom, nightTo)

		weekStart := mondayOf(dayStart)
		key := weekStart.Format("2006-01-02")

		bucket, ok := byWeek[key]
		if !ok {
			bucket = &report.WeekBucket{
				WeekStart: key,
				WeekEnd:   weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
			}
			byWeek[key] = bucket
			order = append(order, key)
		}

		bucket.TotalHours += hours
		bucket.NightHours += night
	}

	weeks := make([]report.WeekBucket, 0, len(order))
	for _, key := range order {
		bucket := byWeek[key]
		bucket.RegularHours = math.Min(bucket.TotalHours, params.CapHours)
		bucket.OvertimeHours = math.Max(0, bucket.TotalHours-params.CapHours)
		weeks = append(weeks, *bucket)
	}

	return weeks
}

// mondayOf returns the Monday opening t's week. time.Weekday counts from
// Sunday, so Sunday belongs to the week that started six days earlier.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
