package report

import "context"

// ReportService defines the interface for labor-hour report generation
type ReportService interface {
	// ComputeHoursReport classifies the worker's clock events at a site
	// under the site's policy and merges in absence hours
	ComputeHoursReport(ctx context.Context, query HoursReportQuery) (HoursReport, error)

	// ExportHoursReport renders the same report as an XLSX workbook,
	// returning the file contents and a suggested filename
	ExportHoursReport(ctx context.Context, query HoursReportQuery) ([]byte, string, error)
}
