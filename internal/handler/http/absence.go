package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/absence"
	"github.com/terrenohq/asistencia-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{
		absenceService: absenceService,
	}
}

// Create implements AbsenceHandler.
func (h *absenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.absenceService.CreateAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence created successfully", result)
}

// Delete implements AbsenceHandler.
func (h *absenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.absenceService.DeleteAbsence(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}

// List implements AbsenceHandler.
func (h *absenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := absence.AbsenceFilter{}

	if workerID := r.URL.Query().Get("trabajadorId"); workerID != "" {
		filter.WorkerID = &workerID
	}

	if siteID := r.URL.Query().Get("obraId"); siteID != "" {
		filter.SiteID = &siteID
	}

	if from := r.URL.Query().Get("desde"); from != "" {
		filter.From = &from
	}

	if to := r.URL.Query().Get("hasta"); to != "" {
		filter.To = &to
	}

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	filter.Page = page

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	filter.Limit = limit

	results, total, err := h.absenceService.ListAbsences(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	})
}
