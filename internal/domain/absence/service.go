package absence

import (
	"context"
)

// AbsenceService defines business logic for absence records
type AbsenceService interface {
	CreateAbsence(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	DeleteAbsence(ctx context.Context, id string) error
	ListAbsences(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, int64, error)
}
