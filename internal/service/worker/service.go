package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
	"github.com/terrenohq/asistencia-backend-go/internal/repository/postgresql"
)

type WorkerServiceImpl struct {
	db *database.DB
	worker.WorkerRepository
}

func NewWorkerService(db *database.DB, workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		db:               db,
		WorkerRepository: workerRepo,
	}
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	rut := validator.NormalizeRUT(req.RUT)

	var created worker.Worker
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, err := s.WorkerRepository.GetByRUT(txCtx, rut)
		if err == nil {
			return worker.ErrRUTExists
		}
		if !errors.Is(err, worker.ErrWorkerNotFound) {
			return fmt.Errorf("failed to check existing RUT: %w", err)
		}

		created, err = s.WorkerRepository.Create(txCtx, worker.Worker{
			RUT:      rut,
			FullName: req.FullName,
			Phone:    req.Phone,
			Active:   true,
		})
		if err != nil {
			return fmt.Errorf("failed to create worker: %w", err)
		}

		return nil
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(created), nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(w), nil
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.WorkerRepository.Update(ctx, req); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(w), nil
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	workers, total, err := s.WorkerRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toWorkerResponse(w))
	}

	return responses, total, nil
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:        w.ID,
		RUT:       w.RUT,
		FullName:  w.FullName,
		Phone:     w.Phone,
		Active:    w.Active,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
