package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/handler/http/response"
	payrollService "github.com/clockwise-hr/payroll-backend-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GenerateAggregate(w http.ResponseWriter, r *http.Request)
	PayslipDetails(w http.ResponseWriter, r *http.Request)
	ListPendingPayslips(w http.ResponseWriter, r *http.Request)
	ApprovePayslip(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	GetState(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	svc payrollService.PayrollService
}

func NewPayrollHandler(svc payrollService.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{svc: svc}
}

// GenerateAggregate rolls the month's biweekly summaries into one aggregate.
// Pending outcomes are 200 responses carrying a discriminator, not errors.
func (h *payrollHandlerImpl) GenerateAggregate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateAggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.svc.GenerateMonthlyAggregate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) PayslipDetails(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")
	if employeeID == "" || month == "" {
		response.BadRequest(w, "employee_id and month are required", nil)
		return
	}

	result, err := h.svc.PayslipDetails(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPendingPayslips(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month is required", nil)
		return
	}

	result, err := h.svc.ListPendingPayslips(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ApprovePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.ApprovePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.svc.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip approved", result)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	month := chi.URLParam(r, "month")
	if employeeID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	result, err := h.svc.GetPayslip(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.svc.ListPayslips(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetState(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")
	if employeeID == "" || month == "" {
		response.BadRequest(w, "employee_id and month are required", nil)
		return
	}

	result, err := h.svc.State(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
