package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/sale"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SaleHandler interface {
	CreateSale(w http.ResponseWriter, r *http.Request)
	AddPayment(w http.ResponseWriter, r *http.Request)
	GetSale(w http.ResponseWriter, r *http.Request)
	ListSales(w http.ResponseWriter, r *http.Request)
	GetTargetStatus(w http.ResponseWriter, r *http.Request)
}

type saleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &saleHandlerImpl{
		saleService: saleService,
	}
}

// CreateSale implements SaleHandler.
func (h *saleHandlerImpl) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.saleService.CreateSale(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale created successfully", result)
}

// AddPayment implements SaleHandler.
func (h *saleHandlerImpl) AddPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sale ID is required", nil)
		return
	}

	var req sale.AddPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SaleID = id

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.saleService.AddPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment applied successfully", result)
}

// GetSale implements SaleHandler.
func (h *saleHandlerImpl) GetSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sale ID is required", nil)
		return
	}

	result, err := h.saleService.GetSale(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSales implements SaleHandler.
func (h *saleHandlerImpl) ListSales(w http.ResponseWriter, r *http.Request) {
	filter := sale.SaleFilter{}

	// Filters
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}

	// Pagination
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

	// Sorting
	if sortBy := r.URL.Query().Get("sort_by"); sortBy != "" {
		filter.SortBy = sortBy
	}
	if sortOrder := r.URL.Query().Get("sort_order"); sortOrder != "" {
		filter.SortOrder = sortOrder
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.saleService.ListSales(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetTargetStatus implements SaleHandler.
func (h *saleHandlerImpl) GetTargetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	req := sale.TargetStatusRequest{EmployeeID: id}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.saleService.GetTargetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
