package http

import (
	"net/http"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
	"github.com/terrenohq/asistencia-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	// Labor-hour report
	GetHoursReport(w http.ResponseWriter, r *http.Request)

	// Labor-hour report as XLSX download
	ExportHoursReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetHoursReport handles GET /reportes/horas
func (h *reportHandlerImpl) GetHoursReport(w http.ResponseWriter, r *http.Request) {
	query := report.HoursReportQuery{
		WorkerID: r.URL.Query().Get("trabajadorId"),
		SiteID:   r.URL.Query().Get("obraId"),
		From:     r.URL.Query().Get("desde"),
		To:       r.URL.Query().Get("hasta"),
	}

	result, err := h.reportService.ComputeHoursReport(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportHoursReport handles GET /reportes/horas/export
func (h *reportHandlerImpl) ExportHoursReport(w http.ResponseWriter, r *http.Request) {
	query := report.HoursReportQuery{
		WorkerID: r.URL.Query().Get("trabajadorId"),
		SiteID:   r.URL.Query().Get("obraId"),
		From:     r.URL.Query().Get("desde"),
		To:       r.URL.Query().Get("hasta"),
	}

	content, filename, err := h.reportService.ExportHoursReport(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, xlsxContentType, content)
}
