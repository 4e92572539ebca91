package response

import (
	"errors"
	"net/http"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/absence"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/attendance"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrRUTExists):
		Conflict(w, "A worker with this RUT already exists")
	case errors.Is(err, worker.ErrWorkerInactive):
		UnprocessableEntity(w, "WORKER_INACTIVE", "Worker is inactive")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Worker already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Worker already checked out today")
	case errors.Is(err, attendance.ErrOutsideGeofence):
		UnprocessableEntity(w, "OUTSIDE_GEOFENCE", "Location is outside the site's allowed radius")
	case errors.Is(err, attendance.ErrJustificationRequired):
		UnprocessableEntity(w, "JUSTIFICATION_REQUIRED", "A justification is required for late check-outs")
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Clock event not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
