package absence

import (
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	WorkerID string  `json:"trabajadorId"`
	SiteID   string  `json:"obraId"`
	Date     string  `json:"fecha"` // YYYY-MM-DD
	Hours    float64 `json:"horas"`
	Reason   string  `json:"motivo"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "trabajadorId",
			Message: "trabajadorId is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "obraId",
			Message: "obraId is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha must be in YYYY-MM-DD format",
		})
	}

	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "horas",
			Message: "horas must be greater than 0 and at most 24",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "motivo",
			Message: "motivo is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"trabajadorId"`
	WorkerName *string `json:"trabajadorNombre,omitempty"`
	SiteID     string  `json:"obraId"`
	SiteName   *string `json:"obraNombre,omitempty"`
	Date       string  `json:"fecha"`
	Hours      float64 `json:"horas"`
	Reason     string  `json:"motivo"`
	CreatedAt  string  `json:"createdAt"`
}

type AbsenceFilter struct {
	WorkerID *string `json:"trabajadorId,omitempty"`
	SiteID   *string `json:"obraId,omitempty"`
	From     *string `json:"desde,omitempty"` // YYYY-MM-DD
	To       *string `json:"hasta,omitempty"` // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AbsenceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.From != nil && *f.From != "" {
		if _, valid := validator.IsValidDate(*f.From); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "desde",
				Message: "desde must be in YYYY-MM-DD format",
			})
		}
	}

	if f.To != nil && *f.To != "" {
		if _, valid := validator.IsValidDate(*f.To); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hasta",
				Message: "hasta must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
