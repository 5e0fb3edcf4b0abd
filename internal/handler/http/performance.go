package http

import (
	"encoding/json"
	"net/http"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	RecordActivity(w http.ResponseWriter, r *http.Request)
	GetDailyStat(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// RecordActivity implements PerformanceHandler.
func (h *performanceHandlerImpl) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req performance.RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.RecordActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity recorded successfully", result)
}

// GetDailyStat implements PerformanceHandler.
func (h *performanceHandlerImpl) GetDailyStat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	filter := performance.DailyStatFilter{EmployeeID: id}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.GetDailyStat(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
