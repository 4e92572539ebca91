package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/absence"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
	worker.WorkerRepository
	site.SiteRepository
}

func NewAbsenceService(
	absenceRepo absence.AbsenceRepository,
	workerRepo worker.WorkerRepository,
	siteRepo site.SiteRepository,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		AbsenceRepository: absenceRepo,
		WorkerRepository:  workerRepo,
		SiteRepository:    siteRepo,
	}
}

// CreateAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) CreateAbsence(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	if _, err := s.SiteRepository.GetByID(ctx, req.SiteID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	created, err := s.AbsenceRepository.Create(ctx, absence.Absence{
		WorkerID: req.WorkerID,
		SiteID:   req.SiteID,
		Date:     req.Date,
		Hours:    req.Hours,
		Reason:   req.Reason,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return toAbsenceResponse(created), nil
}

// DeleteAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	return s.AbsenceRepository.Delete(ctx, id)
}

// ListAbsences implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsences(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	absences, total, err := s.AbsenceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, toAbsenceResponse(a))
	}

	return responses, total, nil
}

func toAbsenceResponse(a absence.Absence) absence.AbsenceResponse {
	return absence.AbsenceResponse{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		WorkerName: a.WorkerName,
		SiteID:     a.SiteID,
		SiteName:   a.SiteName,
		Date:       a.Date,
		Hours:      a.Hours,
		Reason:     a.Reason,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
