package response

import (
	"errors"
	"net/http"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/bank"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/leave"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in yyyy-MM format", nil)
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "No salary record effective for this month")
	case errors.Is(err, payroll.ErrAggregateNotFound):
		NotFound(w, "Monthly aggregate not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyApproved):
		Conflict(w, "Payslip already approved for this month")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidOnboardDate):
		BadRequest(w, "Employee onboarding date cannot be parsed", nil)

	// Bank domain errors
	case errors.Is(err, bank.ErrBankDetailsNotFound):
		NotFound(w, "Bank details not found for employee")

	// Leave domain errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
