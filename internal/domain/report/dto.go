package report

import (
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

type HoursReportQuery struct {
	WorkerID string `json:"trabajadorId"`
	SiteID   string `json:"obraId"`
	From     string `json:"desde"` // YYYY-MM-DD
	To       string `json:"hasta"` // YYYY-MM-DD
}

func (q *HoursReportQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "trabajadorId",
			Message: "trabajadorId is required",
		})
	}

	if validator.IsEmpty(q.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "obraId",
			Message: "obraId is required",
		})
	}

	fromValid, toValid := false, false
	if validator.IsEmpty(q.From) {
		errs = append(errs, validator.ValidationError{
			Field:   "desde",
			Message: "desde is required",
		})
	} else if _, fromValid = validator.IsValidDate(q.From); !fromValid {
		errs = append(errs, validator.ValidationError{
			Field:   "desde",
			Message: "desde must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(q.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "hasta",
			Message: "hasta is required",
		})
	} else if _, toValid = validator.IsValidDate(q.To); !toValid {
		errs = append(errs, validator.ValidationError{
			Field:   "hasta",
			Message: "hasta must be in YYYY-MM-DD format",
		})
	}

	// Canonical YYYY-MM-DD compares lexicographically
	if fromValid && toValid && q.From > q.To {
		errs = append(errs, validator.ValidationError{
			Field:   "desde",
			Message: "desde must not be after hasta",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HoursReport is the payroll-grade outcome for one worker at one site over
// a date range. Exactly one of Days/Weeks carries detail, depending on the
// site's policy; the other stays empty. All numbers are rounded to 2
// decimals. Recomputed per request, never persisted.
type HoursReport struct {
	WorkerID      string       `json:"trabajadorId"`
	SiteID        string       `json:"obraId"`
	From          string       `json:"desde"`
	To            string       `json:"hasta"`
	Policy        string       `json:"politica"`
	RegularHours  float64      `json:"horasNormales"`
	OvertimeHours float64      `json:"horasExtra"`
	SundayHours   float64      `json:"horasDominicales"`
	NightHours    float64      `json:"horasNocturnas"`
	AbsenceHours  float64      `json:"horasPermiso"`
	TotalHours    float64      `json:"totalHoras"`
	Days          []DayDetail  `json:"dias"`
	Weeks         []WeekDetail `json:"semanas"`
}

type DayDetail struct {
	Date          string  `json:"fecha"`
	IsSunday      bool    `json:"esDomingo"`
	RegularHours  float64 `json:"horasNormales"`
	OvertimeHours float64 `json:"horasExtra"`
	SundayHours   float64 `json:"horasDominicales"`
}

type WeekDetail struct {
	WeekStart     string  `json:"semanaInicio"`
	WeekEnd       string  `json:"semanaFin"`
	TotalHours    float64 `json:"totalHoras"`
	NightHours    float64 `json:"horasNocturnas"`
	RegularHours  float64 `json:"horasNormales"`
	OvertimeHours float64 `json:"horasExtra"`
}
