package report

import (
	"time"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/attendance"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
)

// buildIntervals pairs each check-in with the next check-out in timestamp
// order. A second check-in before any check-out replaces the pending one; a
// check-out with no pending check-in is skipped. Pairs that would not produce
// a positive duration are dropped. Unclosed check-ins at the end contribute
// nothing.
func buildIntervals(events []attendance.ClockEvent) []report.Interval {
	var intervals []report.Interval
	var pending *time.Time

	for _, ev := range events {
		switch ev.Kind {
		case attendance.EventCheckIn:
			t := ev.Timestamp
			pending = &t
		case attendance.EventCheckOut:
			if pending == nil {
				continue
			}
			if ev.Timestamp.After(*pending) {
				intervals = append(intervals, report.Interval{Start: *pending, End: ev.Timestamp})
			}
			pending = nil
		}
	}

	return intervals
}

// splitIntoDaySegments clips an interval at site-local midnights so that no
// segment spans two calendar days. Segment endpoints come out in loc, which
// keeps the later band and window math on the same clock that named the day.
func splitIntoDaySegments(iv report.Interval, loc *time.Location) []report.DaySegment {
	var segments []report.DaySegment

	cursor := iv.Start.In(loc)
	end := iv.End.In(loc)

	for cursor.Before(end) {
		dayStart := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 0, 0, 0, 0, loc)
		nextMidnight := dayStart.AddDate(0, 0, 1)

		segEnd := end
		if nextMidnight.Before(end) {
			segEnd = nextMidnight
		}

		segments = append(segments, report.DaySegment{
			Day:   dayStart.Format("2006-01-02"),
			Start: cursor,
			End:   segEnd,
		})

		cursor = nextMidnight
	}

	return segments
}

// overlapHours returns the hours of seg falling inside [from, to).
func overlapHours(seg report.DaySegment, from, to time.Time) float64 {
	start := seg.Start
	if from.After(start) {
		start = from
	}

	end := seg.End
	if to.Before(end) {
		end = to
	}

	if !end.After(start) {
		return 0
	}

	return end.Sub(start).Hours()
}
