package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn      = errors.New("worker already has a check-in for this day")
	ErrAlreadyCheckedOut     = errors.New("worker already has a check-out for this day")
	ErrOutsideGeofence       = errors.New("location is outside the site's allowed radius")
	ErrJustificationRequired = errors.New("a justification is required for check-outs at or after the overtime cutoff")
	ErrEventNotFound         = errors.New("clock event not found")
)
