package site

import (
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	Name         string  `json:"nombre"`
	Latitude     float64 `json:"latitud"`
	Longitude    float64 `json:"longitud"`
	RadiusMeters float64 `json:"radioMetros"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre is required",
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

	// Radius 0 means the site does not enforce its geofence
	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radioMetros",
			Message: "radioMetros must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSiteRequest struct {
	ID           string   `json:"-"`
	Name         *string  `json:"nombre,omitempty"`
	Latitude     *float64 `json:"latitud,omitempty"`
	Longitude    *float64 `json:"longitud,omitempty"`
	RadiusMeters *float64 `json:"radioMetros,omitempty"`
	Active       *bool    `json:"activo,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre must not be empty",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitud",
			Message: "latitud must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitud",
			Message: "longitud must be between -180 and 180",
		})
	}

	if r.RadiusMeters != nil && *r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radioMetros",
			Message: "radioMetros must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SiteResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"nombre"`
	Latitude     float64 `json:"latitud"`
	Longitude    float64 `json:"longitud"`
	RadiusMeters float64 `json:"radioMetros"`
	Policy       string  `json:"politica"`
	Active       bool    `json:"activo"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type SiteFilter struct {
	Name   *string `json:"nombre,omitempty"`
	Active *bool   `json:"activo,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *SiteFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
