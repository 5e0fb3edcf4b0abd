package http

import (
	"net/http"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/payroll"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetSalaryBreakdown(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetSalaryBreakdown implements PayrollHandler.
func (h *payrollHandlerImpl) GetSalaryBreakdown(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	req := payroll.GetBreakdownRequest{EmployeeID: id}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetSalaryBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
