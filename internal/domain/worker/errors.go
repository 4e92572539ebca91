package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrRUTExists      = errors.New("a worker with this RUT already exists")
	ErrWorkerInactive = errors.New("worker is inactive")
)
