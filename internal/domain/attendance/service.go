package attendance

import (
	"context"
)

// AttendanceService defines business logic for clock registrations
type AttendanceService interface {
	// ClockIn registers a check-in after geofence and duplicate checks
	ClockIn(ctx context.Context, req ClockInRequest) (ClockEventResponse, error)

	// ClockOut registers a check-out; enforces the late-checkout
	// justification rule on daily-block sites
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockEventResponse, error)

	// ListEvents retrieves clock events with filters (supervisor view)
	ListEvents(ctx context.Context, filter EventFilter) ([]ClockEventResponse, int64, error)
}
