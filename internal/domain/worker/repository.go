package worker

import (
	"context"
)

// WorkerRepository defines data access methods for workers.
type WorkerRepository interface {
	// Create creates a new worker
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves a worker by ID
	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByRUT retrieves a worker by normalized RUT
	GetByRUT(ctx context.Context, rut string) (Worker, error)

	// Update applies a partial update
	Update(ctx context.Context, req UpdateWorkerRequest) error

	// List retrieves workers with filters and pagination
	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)
}
