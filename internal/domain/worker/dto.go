package worker

import (
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	RUT      string  `json:"rut"`
	FullName string  `json:"nombre"`
	Phone    *string `json:"telefono,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RUT) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is required",
		})
	} else if !validator.IsValidRUT(r.RUT) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is not valid",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"nombre,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
	Active   *bool   `json:"activo,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID        string  `json:"id"`
	RUT       string  `json:"rut"`
	FullName  string  `json:"nombre"`
	Phone     *string `json:"telefono,omitempty"`
	Active    bool    `json:"activo"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type WorkerFilter struct {
	Name   *string `json:"nombre,omitempty"`
	Active *bool   `json:"activo,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *WorkerFilter) Validate() error {
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
