package absence

import (
	"context"
)

// AbsenceRepository defines data access methods for absence records.
type AbsenceRepository interface {
	// Create creates a new absence record
	Create(ctx context.Context, a Absence) (Absence, error)

	// GetByID retrieves an absence record by ID
	GetByID(ctx context.Context, id string) (Absence, error)

	// Delete removes an absence record
	Delete(ctx context.Context, id string) error

	// ListByWorkerAndRange returns the worker's absences at a site with
	// date in [from, to], ordered by date ascending. Input to the report
	// engine's absence sum.
	ListByWorkerAndRange(ctx context.Context, workerID, siteID, from, to string) ([]Absence, error)

	// List retrieves absence records with filters and pagination
	List(ctx context.Context, filter AbsenceFilter) ([]Absence, int64, error)
}
