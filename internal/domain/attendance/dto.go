package attendance

import (
	"strings"

	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	WorkerID  string  `json:"trabajadorId"`
	SiteID    string  `json:"obraId"`
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
	Shift     *string `json:"turno,omitempty"`
}

func (r *ClockInRequest) Validate() error {
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

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitud",
			Message: "latitud must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitud",
			Message: "longitud must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	WorkerID      string  `json:"trabajadorId"`
	SiteID        string  `json:"obraId"`
	Latitude      float64 `json:"latitud"`
	Longitude     float64 `json:"longitud"`
	Shift         *string `json:"turno,omitempty"`
	Justification *string `json:"justificacion,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
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

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitud",
			Message: "latitud must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitud",
			Message: "longitud must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockEventResponse struct {
	ID             string  `json:"id"`
	WorkerID       string  `json:"trabajadorId"`
	WorkerName     *string `json:"trabajadorNombre,omitempty"`
	SiteID         string  `json:"obraId"`
	SiteName       *string `json:"obraNombre,omitempty"`
	Kind           string  `json:"tipo"`
	Timestamp      string  `json:"timestamp"`
	Day            string  `json:"fecha"`
	Latitude       float64 `json:"latitud"`
	Longitude      float64 `json:"longitud"`
	DistanceMeters float64 `json:"distanciaMetros"`
	WithinFence    bool    `json:"dentroDeRadio"`
	Shift          *string `json:"turno,omitempty"`
	Justification  *string `json:"justificacion,omitempty"`
}

type EventFilter struct {
	WorkerID *string `json:"trabajadorId,omitempty"`
	SiteID   *string `json:"obraId,omitempty"`
	Kind     *string `json:"tipo,omitempty"`
	From     *string `json:"desde,omitempty"` // YYYY-MM-DD
	To       *string `json:"hasta,omitempty"` // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EventFilter) Validate() error {
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
		f.Limit = 50 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if f.Kind != nil && *f.Kind != "" {
		kinds := []string{string(EventCheckIn), string(EventCheckOut)}
		if !validator.IsInSlice(strings.ToLower(*f.Kind), kinds) {
			errs = append(errs, validator.ValidationError{
				Field:   "tipo",
				Message: "tipo must be one of: entrada, salida",
			})
		}
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
