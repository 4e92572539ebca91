package attendance

import (
	"context"
)

// ClockEventRepository defines data access for clock events. Events are
// append-only; there is no update path.
type ClockEventRepository interface {
	// Create persists a new clock event
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// HasEventForDay reports whether the worker already registered an event
	// of the given kind on the given site-local day. Backs the one-event-of-
	// each-kind-per-day guard.
	HasEventForDay(ctx context.Context, workerID string, day string, kind EventKind) (bool, error)

	// ListByWorkerAndRange returns the worker's events at a site whose
	// site-local day falls in [from, to], ordered by timestamp ascending.
	// This is the sequence the hours engine consumes.
	ListByWorkerAndRange(ctx context.Context, workerID, siteID, from, to string) ([]ClockEvent, error)

	// List retrieves clock events with filters and pagination
	List(ctx context.Context, filter EventFilter) ([]ClockEvent, int64, error)
}
