package report

import (
	"time"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
)

// classifyDailyBlock intersects each day segment with the policy's fixed
// bands: morning and afternoon count as regular, everything from the evening
// cutoff to midnight as overtime. Time outside every band pays nothing. On a
// Sunday the whole band outcome reclassifies as Sunday hours instead.
// Segments arrive in chronological order, so days come out ordered by date.
func classifyDailyBlock(segments []report.DaySegment, params policy.DailyBlockParams, loc *time.Location) []report.ClassifiedDay {
	byDate := make(map[string]*report.ClassifiedDay)
	var order []string

	for _, seg := range segments {
		dayStart := time.Date(seg.Start.Year(), seg.Start.Month(), seg.Start.Day(), 0, 0, 0, 0, loc)

		morning := overlapHours(seg, dayStart.Add(params.MorningStart.Duration()), dayStart.Add(params.MorningEnd.Duration()))
		afternoon := overlapHours(seg, dayStart.Add(params.AfternoonStart.Duration()), dayStart.Add(params.AfternoonEnd.Duration()))
		evening := overlapHours(seg, dayStart.Add(params.EveningCutoff.Duration()), dayStart.AddDate(0, 0, 1))

		if morning+afternoon+evening == 0 {
			continue
		}

		day, ok := byDate[seg.Day]
		if !ok {
			day = &report.ClassifiedDay{
				Date:     seg.Day,
				IsSunday: dayStart.Weekday() == time.Sunday,
			}
			byDate[seg.Day] = day
			order = append(order, seg.Day)
		}

		if day.IsSunday {
			day.SundayHours += morning + afternoon + evening
		} else {
			day.RegularHours += morning + afternoon
			day.OvertimeHours += evening
		}
	}

	days := make([]report.ClassifiedDay, 0, len(order))
	for _, date := range order {
		days = append(days, *byDate[date])
	}

	return days
}
