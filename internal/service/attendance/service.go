package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/attendance"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/utils"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.ClockEventRepository
	worker.WorkerRepository
	site.SiteRepository
	policies policy.Set
	now      func() time.Time
}

func NewAttendanceService(
	eventRepo attendance.ClockEventRepository,
	workerRepo worker.WorkerRepository,
	siteRepo site.SiteRepository,
	policies policy.Set,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		ClockEventRepository: eventRepo,
		WorkerRepository:     workerRepo,
		SiteRepository:       siteRepo,
		policies:             policies,
		now:                  time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	event, err := s.registerEvent(ctx, registration{
		workerID:  req.WorkerID,
		siteID:    req.SiteID,
		kind:      attendance.EventCheckIn,
		latitude:  req.Latitude,
		longitude: req.Longitude,
		shift:     req.Shift,
	})
	if err != nil {
		return attendance.ClockEventResponse{}, err
	}

	return toEventResponse(event), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	event, err := s.registerEvent(ctx, registration{
		workerID:      req.WorkerID,
		siteID:        req.SiteID,
		kind:          attendance.EventCheckOut,
		latitude:      req.Latitude,
		longitude:     req.Longitude,
		shift:         req.Shift,
		justification: req.Justification,
	})
	if err != nil {
		return attendance.ClockEventResponse{}, err
	}

	return toEventResponse(event), nil
}

// ListEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.ClockEventResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	events, total, err := s.ClockEventRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clock events: %w", err)
	}

	responses := make([]attendance.ClockEventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, toEventResponse(ev))
	}

	return responses, total, nil
}

// registration carries the validated fields shared by both event kinds.
type registration struct {
	workerID      string
	siteID        string
	kind          attendance.EventKind
	latitude      float64
	longitude     float64
	shift         *string
	justification *string
}

func (s *AttendanceServiceImpl) registerEvent(ctx context.Context, reg registration) (attendance.ClockEvent, error) {
	nowUTC := s.now().UTC()

	w, err := s.WorkerRepository.GetByID(ctx, reg.workerID)
	if err != nil {
		return attendance.ClockEvent{}, err
	}
	if !w.Active {
		return attendance.ClockEvent{}, worker.ErrWorkerInactive
	}

	st, err := s.SiteRepository.GetByID(ctx, reg.siteID)
	if err != nil {
		return attendance.ClockEvent{}, err
	}

	pol := s.policies.For(st.ID)

	distance := utils.HaversineDistanceMeters(reg.latitude, reg.longitude, st.Latitude, st.Longitude)
	// Radius 0 means the site does not enforce its fence
	withinFence := st.RadiusMeters > 0 && distance <= st.RadiusMeters
	if st.RadiusMeters > 0 && !withinFence {
		return attendance.ClockEvent{}, attendance.ErrOutsideGeofence
	}

	localNow := nowUTC.In(pol.Location())
	day := localNow.Format("2006-01-02")

	if reg.kind == attendance.EventCheckOut && pol.Kind == policy.KindDailyBlock {
		localClock := policy.ClockTime(localNow.Hour()*60 + localNow.Minute())
		if localClock >= pol.DailyBlock.EveningCutoff &&
			(reg.justification == nil || validator.IsEmpty(*reg.justification)) {
			return attendance.ClockEvent{}, attendance.ErrJustificationRequired
		}
	}

	exists, err := s.ClockEventRepository.HasEventForDay(ctx, reg.workerID, day, reg.kind)
	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to check existing clock events: %w", err)
	}
	if exists {
		if reg.kind == attendance.EventCheckIn {
			return attendance.ClockEvent{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.ClockEvent{}, attendance.ErrAlreadyCheckedOut
	}

	event := attendance.ClockEvent{
		WorkerID:       reg.workerID,
		SiteID:         reg.siteID,
		Kind:           reg.kind,
		Timestamp:      nowUTC,
		Latitude:       reg.latitude,
		Longitude:      reg.longitude,
		DistanceMeters: distance,
		WithinFence:    withinFence,
		Day:            day,
		Justification:  reg.justification,
		Shift:          reg.shift,
	}

	created, err := s.ClockEventRepository.Create(ctx, event)
	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return created, nil
}

func toEventResponse(ev attendance.ClockEvent) attendance.ClockEventResponse {
	return attendance.ClockEventResponse{
		ID:             ev.ID,
		WorkerID:       ev.WorkerID,
		WorkerName:     ev.WorkerName,
		SiteID:         ev.SiteID,
		SiteName:       ev.SiteName,
		Kind:           string(ev.Kind),
		Timestamp:      ev.Timestamp.UTC().Format(time.RFC3339),
		Day:            ev.Day,
		Latitude:       ev.Latitude,
		Longitude:      ev.Longitude,
		DistanceMeters: ev.DistanceMeters,
		WithinFence:    ev.WithinFence,
		Shift:          ev.Shift,
		Justification:  ev.Justification,
	}
}
