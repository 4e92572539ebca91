package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
)

const exportSheet = "Reporte"

// ExportHoursReport implements report.ReportService.
func (s *ReportServiceImpl) ExportHoursReport(ctx context.Context, query report.HoursReportQuery) ([]byte, string, error) {
	rep, err := s.ComputeHoursReport(ctx, query)
	if err != nil {
		return nil, "", err
	}

	w, err := s.WorkerRepository.GetByID(ctx, query.WorkerID)
	if err != nil {
		return nil, "", err
	}

	st, err := s.SiteRepository.GetByID(ctx, query.SiteID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name report sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Trabajador", w.FullName},
		{"RUT", w.RUT},
		{"Obra", st.Name},
		{"Desde", rep.From},
		{"Hasta", rep.To},
		{"Política", rep.Policy},
		{},
		{"Horas normales", rep.RegularHours},
		{"Horas extra", rep.OvertimeHours},
		{"Horas dominicales", rep.SundayHours},
		{"Horas nocturnas", rep.NightHours},
		{"Horas permiso", rep.AbsenceHours},
		{"Total horas", rep.TotalHours},
		{},
	}

	switch rep.Policy {
	case string(policy.KindDailyBlock):
		rows = append(rows, []interface{}{"Fecha", "Domingo", "Horas normales", "Horas extra", "Horas dominicales"})
		for _, day := range rep.Days {
			sunday := "No"
			if day.IsSunday {
				sunday = "Sí"
			}
			rows = append(rows, []interface{}{day.Date, sunday, day.RegularHours, day.OvertimeHours, day.SundayHours})
		}
	case string(policy.KindWeeklyCap):
		rows = append(rows, []interface{}{"Semana inicio", "Semana fin", "Total horas", "Horas nocturnas", "Horas normales", "Horas extra"})
		for _, week := range rep.Weeks {
			rows = append(rows, []interface{}{week.WeekStart, week.WeekEnd, week.TotalHours, week.NightHours, week.RegularHours, week.OvertimeHours})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write report row: %w", err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "F", 18); err != nil {
		return nil, "", fmt.Errorf("failed to size report columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("horas_%s_%s_%s.xlsx", w.RUT, rep.From, rep.To)

	return buf.Bytes(), filename, nil
}
