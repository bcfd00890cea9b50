package payroll

import (
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// AggregateOutcome discriminates the result of a monthly aggregation run.
// Pending outcomes are successful responses, not errors: the caller is told the
// month cannot be processed yet and may retry after the next submission.
type AggregateOutcome string

const (
	OutcomeGenerated         AggregateOutcome = "generated"
	OutcomePendingSubmission AggregateOutcome = "pending_submission"
	OutcomeAwaitingApproval  AggregateOutcome = "awaiting_approval"
)

type GenerateAggregateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r GenerateAggregateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in yyyy-MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyAggregateResponse struct {
	EmployeeID       string  `json:"employee_id"`
	Month            string  `json:"month"`
	CasualLeaveDays  float64 `json:"casual_leave_days"`
	SickLeaveDays    float64 `json:"sick_leave_days"`
	TotalAbsences    float64 `json:"total_absences"`
	TotalLOPDays     float64 `json:"total_lop_days"`
	TotalWorkingDays float64 `json:"total_working_days"`
	PayslipGenerated bool    `json:"payslip_generated"`
}

type AggregateResult struct {
	Outcome   AggregateOutcome          `json:"outcome"`
	Message   string                    `json:"message"`
	Aggregate *MonthlyAggregateResponse `json:"aggregate,omitempty"`
}

// PayslipDetailResponse carries the computed pay figures for a not-yet-approved
// payslip, plus the employee display fields the slip is rendered with.
type PayslipDetailResponse struct {
	StandardDays float64         `json:"stddays"`
	TotalWorked  float64         `json:"totalworked"`
	TotalLeaves  float64         `json:"totalleaves"`
	LOPDays      float64         `json:"lop"`
	BasicSalary  decimal.Decimal `json:"basicSalary"`
	Deduction    decimal.Decimal `json:"deduction"`
	NetPay       decimal.Decimal `json:"netPay"`

	Name        string `json:"name"`
	OnboardDate string `json:"onboardDate"`
	Designation string `json:"designation"`

	// Proration context. payroll_start is the later of the onboarding date and
	// the salary record's effective date; proration_applies reports whether it
	// falls inside the target month. The payable-day count above does not yet
	// apply it (see the gross pay note in service/payroll).
	PayrollStart     string `json:"payroll_start"`
	ProrationApplies bool   `json:"proration_applies"`
	OnRollDays       int    `json:"on_roll_days"`
}

type ApprovePayslipRequest struct {
	EmployeeID   string          `json:"employee_id"`
	Month        string          `json:"month"`
	EmployeeName string          `json:"employee_name"`
	Designation  string          `json:"designation"`
	StandardDays float64         `json:"stddays"`
	TotalWorked  float64         `json:"totalworked"`
	TotalLeaves  float64         `json:"totalleaves"`
	LOPDays      float64         `json:"lop"`
	BasicSalary  decimal.Decimal `json:"basicSalary"`
	Deduction    decimal.Decimal `json:"deduction"`
	NetPay       decimal.Decimal `json:"netPay"`
}

func (r ApprovePayslipRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in yyyy-MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipSnapshotResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	Month             string          `json:"month"`
	EmployeeName      string          `json:"employee_name"`
	Designation       string          `json:"designation"`
	StandardDays      float64         `json:"stddays"`
	TotalWorked       float64         `json:"totalworked"`
	TotalLeaves       float64         `json:"totalleaves"`
	LOPDays           float64         `json:"lop"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	Deduction         decimal.Decimal `json:"deduction"`
	NetPay            decimal.Decimal `json:"netPay"`
	AccountHolder     string          `json:"account_holder"`
	BankName          string          `json:"bank_name"`
	AccountNumber     string          `json:"account_number"`
	WorkLocation      string          `json:"work_location"`
	ApprovedAt        string          `json:"approved_at"`
	SalaryProcessedAt string          `json:"salary_processed_at"`
}

// PendingPayslipResponse is one employee whose aggregate for the month exists
// but has no approved payslip yet.
type PendingPayslipResponse struct {
	EmployeeID string `json:"employee_id"`
	Display    string `json:"display"` // "name - designation"
}

type WorkflowStateResponse struct {
	EmployeeID string        `json:"employee_id"`
	Month      string        `json:"month"`
	State      WorkflowState `json:"state"`
}
