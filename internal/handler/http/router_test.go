package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrenohq/asistencia-backend-go/internal/config"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/absence"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/attendance"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/report"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/validator"
)

// Stub services with overridable behavior per test. The handlers only see
// the domain interfaces, so these are enough to drive every route.

type stubWorkerService struct {
	create func(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error)
	get    func(ctx context.Context, id string) (worker.WorkerResponse, error)
	update func(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error)
	list   func(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, int64, error)
}

func (s *stubWorkerService) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if s.create == nil {
		return worker.WorkerResponse{}, nil
	}
	return s.create(ctx, req)
}

func (s *stubWorkerService) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	if s.get == nil {
		return worker.WorkerResponse{}, nil
	}
	return s.get(ctx, id)
}

func (s *stubWorkerService) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if s.update == nil {
		return worker.WorkerResponse{}, nil
	}
	return s.update(ctx, req)
}

func (s *stubWorkerService) ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, int64, error) {
	if s.list == nil {
		return nil, 0, nil
	}
	return s.list(ctx, filter)
}

type stubSiteService struct {
	create func(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error)
	get    func(ctx context.Context, id string) (site.SiteResponse, error)
	update func(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error)
	list   func(ctx context.Context, filter site.SiteFilter) ([]site.SiteResponse, int64, error)
}

func (s *stubSiteService) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if s.create == nil {
		return site.SiteResponse{}, nil
	}
	return s.create(ctx, req)
}

func (s *stubSiteService) GetSite(ctx context.Context, id string) (site.SiteResponse, error) {
	if s.get == nil {
		return site.SiteResponse{}, nil
	}
	return s.get(ctx, id)
}

func (s *stubSiteService) UpdateSite(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if s.update == nil {
		return site.SiteResponse{}, nil
	}
	return s.update(ctx, req)
}

func (s *stubSiteService) ListSites(ctx context.Context, filter site.SiteFilter) ([]site.SiteResponse, int64, error) {
	if s.list == nil {
		return nil, 0, nil
	}
	return s.list(ctx, filter)
}

type stubAttendanceService struct {
	clockIn  func(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockEventResponse, error)
	clockOut func(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockEventResponse, error)
	list     func(ctx context.Context, filter attendance.EventFilter) ([]attendance.ClockEventResponse, int64, error)
}

func (s *stubAttendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockEventResponse, error) {
	if s.clockIn == nil {
		return attendance.ClockEventResponse{}, nil
	}
	return s.clockIn(ctx, req)
}

func (s *stubAttendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockEventResponse, error) {
	if s.clockOut == nil {
		return attendance.ClockEventResponse{}, nil
	}
	return s.clockOut(ctx, req)
}

func (s *stubAttendanceService) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.ClockEventResponse, int64, error) {
	if s.list == nil {
		return nil, 0, nil
	}
	return s.list(ctx, filter)
}

type stubAbsenceService struct {
	create func(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error)
	delete func(ctx context.Context, id string) error
	list   func(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceResponse, int64, error)
}

func (s *stubAbsenceService) CreateAbsence(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if s.create == nil {
		return absence.AbsenceResponse{}, nil
	}
	return s.create(ctx, req)
}

func (s *stubAbsenceService) DeleteAbsence(ctx context.Context, id string) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(ctx, id)
}

func (s *stubAbsenceService) ListAbsences(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceResponse, int64, error) {
	if s.list == nil {
		return nil, 0, nil
	}
	return s.list(ctx, filter)
}

type stubReportService struct {
	compute func(ctx context.Context, query report.HoursReportQuery) (report.HoursReport, error)
	export  func(ctx context.Context, query report.HoursReportQuery) ([]byte, string, error)
}

func (s *stubReportService) ComputeHoursReport(ctx context.Context, query report.HoursReportQuery) (report.HoursReport, error) {
	if s.compute == nil {
		return report.HoursReport{}, nil
	}
	return s.compute(ctx, query)
}

func (s *stubReportService) ExportHoursReport(ctx context.Context, query report.HoursReportQuery) ([]byte, string, error) {
	if s.export == nil {
		return nil, "", nil
	}
	return s.export(ctx, query)
}

type routerFixture struct {
	workers    *stubWorkerService
	sites      *stubSiteService
	attendance *stubAttendanceService
	absences   *stubAbsenceService
	reports    *stubReportService
	router     http.Handler
}

func setupRouterTest(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		workers:    &stubWorkerService{},
		sites:      &stubSiteService{},
		attendance: &stubAttendanceService{},
		absences:   &stubAbsenceService{},
		reports:    &stubReportService{},
	}

	cfg := &config.Config{
		App: config.AppConfig{
			Env:            "test",
			LogLevel:       "error", // keep request logs out of test output
			AllowedOrigins: []string{"*"},
		},
	}

	f.router = NewRouter(cfg,
		NewWorkerHandler(f.workers),
		NewSiteHandler(f.sites),
		NewAttendanceHandler(f.attendance),
		NewAbsenceHandler(f.absences),
		NewReportHandler(f.reports),
	)
	return f
}

func (f *routerFixture) do(t *testing.T, method, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

func envelopeError(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()

	require.NotNil(t, resp["error"])
	return resp["error"].(map[string]interface{})
}

func TestRouter_Health(t *testing.T) {
	f := setupRouterTest(t)

	// Act
	w := f.do(t, http.MethodGet, "/health", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAttendanceHandler_ClockIn_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured attendance.ClockInRequest
	f.attendance.clockIn = func(_ context.Context, req attendance.ClockInRequest) (attendance.ClockEventResponse, error) {
		captured = req
		return attendance.ClockEventResponse{
			ID:          "ev-1",
			WorkerID:    req.WorkerID,
			SiteID:      req.SiteID,
			Kind:        "entrada",
			Timestamp:   "2025-03-12T11:32:05Z",
			Day:         "2025-03-12",
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			WithinFence: true,
		}, nil
	}

	payload := map[string]interface{}{
		"trabajadorId": "w-1",
		"obraId":       "s-1",
		"latitud":      -33.4489,
		"longitud":     -70.6693,
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/marcas/entrada", payload)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	assert.Equal(t, "Clock in successful", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ev-1", data["id"])
	assert.Equal(t, "entrada", data["tipo"])
	assert.Equal(t, "2025-03-12", data["fecha"])
	assert.Equal(t, true, data["dentroDeRadio"])

	assert.Equal(t, "w-1", captured.WorkerID)
	assert.Equal(t, "s-1", captured.SiteID)
	assert.InDelta(t, -33.4489, captured.Latitude, 1e-9)
	assert.InDelta(t, -70.6693, captured.Longitude, 1e-9)
}

func TestAttendanceHandler_ClockIn_OutsideGeofence(t *testing.T) {
	f := setupRouterTest(t)

	f.attendance.clockIn = func(_ context.Context, _ attendance.ClockInRequest) (attendance.ClockEventResponse, error) {
		return attendance.ClockEventResponse{}, attendance.ErrOutsideGeofence
	}

	payload := map[string]interface{}{
		"trabajadorId": "w-1",
		"obraId":       "s-1",
		"latitud":      -33.5,
		"longitud":     -70.7,
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/marcas/entrada", payload)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))

	errDetail := envelopeError(t, resp)
	assert.Equal(t, "OUTSIDE_GEOFENCE", errDetail["code"])
}

func TestAttendanceHandler_ClockIn_MalformedJSON(t *testing.T) {
	f := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/marcas/entrada", bytes.NewReader([]byte(`{"trabajadorId":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	f.router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "BAD_REQUEST", errDetail["code"])
}

func TestAttendanceHandler_ClockOut_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured attendance.ClockOutRequest
	f.attendance.clockOut = func(_ context.Context, req attendance.ClockOutRequest) (attendance.ClockEventResponse, error) {
		captured = req
		return attendance.ClockEventResponse{
			ID:            "ev-2",
			WorkerID:      req.WorkerID,
			SiteID:        req.SiteID,
			Kind:          "salida",
			Timestamp:     "2025-03-12T21:12:40Z",
			Day:           "2025-03-12",
			WithinFence:   true,
			Justification: req.Justification,
		}, nil
	}

	payload := map[string]interface{}{
		"trabajadorId":  "w-1",
		"obraId":        "s-1",
		"latitud":       -33.4489,
		"longitud":      -70.6693,
		"justificacion": "Hormigonado de losa hasta tarde",
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/marcas/salida", payload)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Clock out successful", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "salida", data["tipo"])
	assert.Equal(t, "Hormigonado de losa hasta tarde", data["justificacion"])

	require.NotNil(t, captured.Justification)
	assert.Equal(t, "Hormigonado de losa hasta tarde", *captured.Justification)
}

func TestAttendanceHandler_ClockOut_JustificationRequired(t *testing.T) {
	f := setupRouterTest(t)

	f.attendance.clockOut = func(_ context.Context, _ attendance.ClockOutRequest) (attendance.ClockEventResponse, error) {
		return attendance.ClockEventResponse{}, attendance.ErrJustificationRequired
	}

	payload := map[string]interface{}{
		"trabajadorId": "w-1",
		"obraId":       "s-1",
		"latitud":      -33.4489,
		"longitud":     -70.6693,
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/marcas/salida", payload)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "JUSTIFICATION_REQUIRED", errDetail["code"])
}

func TestAttendanceHandler_List_Filters(t *testing.T) {
	f := setupRouterTest(t)

	var captured attendance.EventFilter
	f.attendance.list = func(_ context.Context, filter attendance.EventFilter) ([]attendance.ClockEventResponse, int64, error) {
		captured = filter
		return []attendance.ClockEventResponse{
			{ID: "ev-1", Kind: "entrada", Day: "2025-03-12"},
		}, 1, nil
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/marcas?trabajadorId=w-1&tipo=entrada&desde=2025-03-10&hasta=2025-03-16", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, captured.WorkerID)
	assert.Equal(t, "w-1", *captured.WorkerID)
	require.NotNil(t, captured.Kind)
	assert.Equal(t, "entrada", *captured.Kind)
	require.NotNil(t, captured.From)
	assert.Equal(t, "2025-03-10", *captured.From)
	assert.Nil(t, captured.SiteID)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 50, captured.Limit)

	resp := decodeEnvelope(t, w)
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestWorkerHandler_Create_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured worker.CreateWorkerRequest
	f.workers.create = func(_ context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
		captured = req
		return worker.WorkerResponse{
			ID:       "w-1",
			RUT:      req.RUT,
			FullName: req.FullName,
			Phone:    req.Phone,
			Active:   true,
		}, nil
	}

	payload := map[string]interface{}{
		"rut":      "12345678-5",
		"nombre":   "Pedro Soto",
		"telefono": "+56911112222",
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/trabajadores", payload)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	assert.Equal(t, "Worker created successfully", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "12345678-5", data["rut"])
	assert.Equal(t, "Pedro Soto", data["nombre"])
	assert.Equal(t, true, data["activo"])

	assert.Equal(t, "12345678-5", captured.RUT)
	require.NotNil(t, captured.Phone)
	assert.Equal(t, "+56911112222", *captured.Phone)
}

func TestWorkerHandler_Create_DuplicateRUT(t *testing.T) {
	f := setupRouterTest(t)

	f.workers.create = func(_ context.Context, _ worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
		return worker.WorkerResponse{}, worker.ErrRUTExists
	}

	payload := map[string]interface{}{
		"rut":    "12345678-5",
		"nombre": "Pedro Soto",
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/trabajadores", payload)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "CONFLICT", errDetail["code"])
	assert.Equal(t, "A worker with this RUT already exists", errDetail["message"])
}

func TestWorkerHandler_Create_ValidationError(t *testing.T) {
	f := setupRouterTest(t)

	f.workers.create = func(_ context.Context, _ worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
		return worker.WorkerResponse{}, validator.ValidationErrors{
			{Field: "rut", Message: "rut is not a valid RUT"},
		}
	}

	payload := map[string]interface{}{
		"rut":    "12345678-4",
		"nombre": "Pedro Soto",
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/trabajadores", payload)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])

	details := errDetail["details"].(map[string]interface{})
	assert.Equal(t, "rut is not a valid RUT", details["rut"])
}

func TestWorkerHandler_Get_NotFound(t *testing.T) {
	f := setupRouterTest(t)

	var capturedID string
	f.workers.get = func(_ context.Context, id string) (worker.WorkerResponse, error) {
		capturedID = id
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/trabajadores/w-404", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "w-404", capturedID)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestWorkerHandler_Update_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured worker.UpdateWorkerRequest
	f.workers.update = func(_ context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
		captured = req
		return worker.WorkerResponse{ID: req.ID, RUT: "12345678-5", FullName: *req.FullName, Active: true}, nil
	}

	payload := map[string]interface{}{
		"nombre": "Pedro Soto Rojas",
	}

	// Act
	w := f.do(t, http.MethodPut, "/api/v1/trabajadores/w-1", payload)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Worker updated successfully", resp["message"])

	assert.Equal(t, "w-1", captured.ID)
	require.NotNil(t, captured.FullName)
	assert.Equal(t, "Pedro Soto Rojas", *captured.FullName)
	assert.Nil(t, captured.Active)
}

func TestWorkerHandler_List_Pagination(t *testing.T) {
	f := setupRouterTest(t)

	var captured worker.WorkerFilter
	f.workers.list = func(_ context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, int64, error) {
		captured = filter
		return []worker.WorkerResponse{
			{ID: "w-21", RUT: "11111111-1", FullName: "Rosa Díaz", Active: true},
			{ID: "w-22", RUT: "7654321-6", FullName: "Juan Pérez", Active: true},
		}, 45, nil
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/trabajadores?page=2&limit=20&activo=true", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 20, captured.Limit)
	require.NotNil(t, captured.Active)
	assert.True(t, *captured.Active)

	resp := decodeEnvelope(t, w)
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)

	meta := resp["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(20), meta["limit"])
	assert.Equal(t, float64(45), meta["total_items"])
	assert.Equal(t, float64(3), meta["total_pages"])
}

func TestSiteHandler_Create_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured site.CreateSiteRequest
	f.sites.create = func(_ context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
		captured = req
		return site.SiteResponse{
			ID:           "s-1",
			Name:         req.Name,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			RadiusMeters: req.RadiusMeters,
			Policy:       "daily_block",
			Active:       true,
		}, nil
	}

	payload := map[string]interface{}{
		"nombre":      "Obra Central",
		"latitud":     -33.4489,
		"longitud":    -70.6693,
		"radioMetros": 150,
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/obras", payload)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Site created successfully", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Obra Central", data["nombre"])
	assert.Equal(t, "daily_block", data["politica"])

	assert.Equal(t, "Obra Central", captured.Name)
	assert.InDelta(t, 150, captured.RadiusMeters, 1e-9)
}

func TestAbsenceHandler_Create_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured absence.CreateAbsenceRequest
	f.absences.create = func(_ context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
		captured = req
		return absence.AbsenceResponse{
			ID:       "ab-1",
			WorkerID: req.WorkerID,
			SiteID:   req.SiteID,
			Date:     req.Date,
			Hours:    req.Hours,
			Reason:   req.Reason,
		}, nil
	}

	payload := map[string]interface{}{
		"trabajadorId": "w-1",
		"obraId":       "s-1",
		"fecha":        "2025-03-14",
		"horas":        4,
		"motivo":       "Control médico",
	}

	// Act
	w := f.do(t, http.MethodPost, "/api/v1/permisos", payload)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Absence created successfully", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2025-03-14", data["fecha"])
	assert.Equal(t, float64(4), data["horas"])

	assert.Equal(t, "Control médico", captured.Reason)
	assert.InDelta(t, 4, captured.Hours, 1e-9)
}

func TestAbsenceHandler_Delete_Success(t *testing.T) {
	f := setupRouterTest(t)

	var capturedID string
	f.absences.delete = func(_ context.Context, id string) error {
		capturedID = id
		return nil
	}

	// Act
	w := f.do(t, http.MethodDelete, "/api/v1/permisos/ab-1", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ab-1", capturedID)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	assert.Equal(t, "Absence deleted successfully", resp["message"])
	assert.Nil(t, resp["data"])
}

func TestAbsenceHandler_Delete_NotFound(t *testing.T) {
	f := setupRouterTest(t)

	f.absences.delete = func(_ context.Context, _ string) error {
		return absence.ErrAbsenceNotFound
	}

	// Act
	w := f.do(t, http.MethodDelete, "/api/v1/permisos/ab-404", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestReportHandler_GetHoursReport_Success(t *testing.T) {
	f := setupRouterTest(t)

	var captured report.HoursReportQuery
	f.reports.compute = func(_ context.Context, query report.HoursReportQuery) (report.HoursReport, error) {
		captured = query
		return report.HoursReport{
			WorkerID:      query.WorkerID,
			SiteID:        query.SiteID,
			From:          query.From,
			To:            query.To,
			Policy:        "weekly_cap",
			RegularHours:  45,
			OvertimeHours: 4,
			NightHours:    3,
			AbsenceHours:  2.5,
			TotalHours:    49,
		}, nil
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/reportes/horas?trabajadorId=w-1&obraId=s-1&desde=2025-03-10&hasta=2025-03-16", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "w-1", captured.WorkerID)
	assert.Equal(t, "s-1", captured.SiteID)
	assert.Equal(t, "2025-03-10", captured.From)
	assert.Equal(t, "2025-03-16", captured.To)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "weekly_cap", data["politica"])
	assert.Equal(t, float64(45), data["horasNormales"])
	assert.Equal(t, float64(4), data["horasExtra"])
	assert.Equal(t, float64(3), data["horasNocturnas"])
	assert.Equal(t, 2.5, data["horasPermiso"])
	assert.Equal(t, float64(49), data["totalHoras"])
}

func TestReportHandler_GetHoursReport_WorkerNotFound(t *testing.T) {
	f := setupRouterTest(t)

	f.reports.compute = func(_ context.Context, _ report.HoursReportQuery) (report.HoursReport, error) {
		return report.HoursReport{}, worker.ErrWorkerNotFound
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/reportes/horas?trabajadorId=w-404&obraId=s-1&desde=2025-03-10&hasta=2025-03-16", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestReportHandler_GetHoursReport_InvalidRange(t *testing.T) {
	f := setupRouterTest(t)

	f.reports.compute = func(_ context.Context, _ report.HoursReportQuery) (report.HoursReport, error) {
		return report.HoursReport{}, validator.ValidationErrors{
			{Field: "desde", Message: "desde must not be after hasta"},
		}
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/reportes/horas?trabajadorId=w-1&obraId=s-1&desde=2025-03-16&hasta=2025-03-10", nil)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	errDetail := envelopeError(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])

	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "desde")
}

func TestReportHandler_ExportHoursReport_Success(t *testing.T) {
	f := setupRouterTest(t)

	content := []byte("PK\x03\x04 workbook bytes")
	f.reports.export = func(_ context.Context, query report.HoursReportQuery) ([]byte, string, error) {
		assert.Equal(t, "w-1", query.WorkerID)
		return content, "horas_12345678-5_2025-03-10_2025-03-16.xlsx", nil
	}

	// Act
	w := f.do(t, http.MethodGet, "/api/v1/reportes/horas/export?trabajadorId=w-1&obraId=s-1&desde=2025-03-10&hasta=2025-03-16", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="horas_12345678-5_2025-03-10_2025-03-16.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, content, w.Body.Bytes())
}
