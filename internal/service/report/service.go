package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/absence"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/attendance"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
)

type ReportServiceImpl struct {
	attendance.ClockEventRepository
	absence.AbsenceRepository
	worker.WorkerRepository
	site.SiteRepository
	policies policy.Set
}

func NewReportService(
	eventRepo attendance.ClockEventRepository,
	absenceRepo absence.AbsenceRepository,
	workerRepo worker.WorkerRepository,
	siteRepo site.SiteRepository,
	policies policy.Set,
) report.ReportService {
	return &ReportServiceImpl{
		ClockEventRepository: eventRepo,
		AbsenceRepository:    absenceRepo,
		WorkerRepository:     workerRepo,
		SiteRepository:       siteRepo,
		policies:             policies,
	}
}

// ComputeHoursReport implements report.ReportService.
func (s *ReportServiceImpl) ComputeHoursReport(ctx context.Context, query report.HoursReportQuery) (report.HoursReport, error) {
	if err := query.Validate(); err != nil {
		return report.HoursReport{}, err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, query.WorkerID); err != nil {
		return report.HoursReport{}, err
	}

	st, err := s.SiteRepository.GetByID(ctx, query.SiteID)
	if err != nil {
		return report.HoursReport{}, err
	}

	events, err := s.ClockEventRepository.ListByWorkerAndRange(ctx, query.WorkerID, query.SiteID, query.From, query.To)
	if err != nil {
		return report.HoursReport{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	absences, err := s.AbsenceRepository.ListByWorkerAndRange(ctx, query.WorkerID, query.SiteID, query.From, query.To)
	if err != nil {
		return report.HoursReport{}, fmt.Errorf("failed to list absences: %w", err)
	}

	pol := s.policies.For(st.ID)
	loc := pol.Location()

	var segments []report.DaySegment
	for _, iv := range buildIntervals(events) {
		segments = append(segments, splitIntoDaySegments(iv, loc)...)
	}

	rep := report.HoursReport{
		WorkerID: query.WorkerID,
		SiteID:   query.SiteID,
		From:     query.From,
		To:       query.To,
		Policy:   string(pol.Kind),
		Days:     []report.DayDetail{},
		Weeks:    []report.WeekDetail{},
	}

	switch pol.Kind {
	case policy.KindDailyBlock:
		for _, day := range classifyDailyBlock(segments, pol.DailyBlock, loc) {
			rep.RegularHours += day.RegularHours
			rep.OvertimeHours += day.OvertimeHours
			rep.SundayHours += day.SundayHours
			rep.Days = append(rep.Days, report.DayDetail{
				Date:          day.Date,
				IsSunday:      day.IsSunday,
				RegularHours:  round2(day.RegularHours),
				OvertimeHours: round2(day.OvertimeHours),
				SundayHours:   round2(day.SundayHours),
			})
		}
		rep.TotalHours = rep.RegularHours + rep.OvertimeHours + rep.SundayHours
	case policy.KindWeeklyCap:
		for _, week := range classifyWeeklyCap(segments, pol.WeeklyCap, loc) {
			rep.TotalHours += week.TotalHours
			rep.NightHours += week.NightHours
			rep.RegularHours += week.RegularHours
			rep.OvertimeHours += week.OvertimeHours
			rep.Weeks = append(rep.Weeks, report.WeekDetail{
				WeekStart:     week.WeekStart,
				WeekEnd:       week.WeekEnd,
				TotalHours:    round2(week.TotalHours),
				NightHours:    round2(week.NightHours),
				RegularHours:  round2(week.RegularHours),
				OvertimeHours: round2(week.OvertimeHours),
			})
		}
	}

	// Permisos are informational: summed next to the totals, never
	// subtracted from them
	for _, a := range absences {
		rep.AbsenceHours += a.Hours
	}

	rep.RegularHours = round2(rep.RegularHours)
	rep.OvertimeHours = round2(rep.OvertimeHours)
	rep.SundayHours = round2(rep.SundayHours)
	rep.NightHours = round2(rep.NightHours)
	rep.AbsenceHours = round2(rep.AbsenceHours)
	rep.TotalHours = round2(rep.TotalHours)

	return rep, nil
}

// round2 rounds to 2 decimals, halves away from zero.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
