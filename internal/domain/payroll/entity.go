package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAggregate is the per-(employee, month) roll-up of the two biweekly
// attendance summaries. It exists only after every required sub-period has been
// approved, and its derived fields are recomputable from the source summaries.
type MonthlyAggregate struct {
	ID               string
	EmployeeID       string
	Month            string // yyyy-MM
	CasualLeaveDays  float64
	SickLeaveDays    float64
	TotalAbsences    float64 // in days
	TotalLOPDays     float64
	TotalWorkingDays float64
	PayslipGenerated bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SalaryRecord is one row of an employee's salary history. Multiple records may
// coexist; the one effective for a month is the latest EffectiveFrom that does
// not fall after that month.
type SalaryRecord struct {
	ID            string
	EmployeeID    string
	MonthlyAmount decimal.Decimal
	EffectiveFrom time.Time
	CreatedAt     time.Time
}

// PayslipSnapshot is the finalized approved-pay record for one employee-month.
// Immutable once created; there is no update path.
type PayslipSnapshot struct {
	ID                string
	EmployeeID        string
	Month             string // yyyy-MM
	EmployeeName      string
	Designation       string
	StandardDays      float64
	TotalWorked       float64
	TotalLeaves       float64
	LOPDays           float64
	BasicSalary       decimal.Decimal
	Deduction         decimal.Decimal
	NetPay            decimal.Decimal
	AccountHolder     string
	BankName          string
	AccountNumber     string
	WorkLocation      string
	ApprovedAt        string // yyyy-MM-dd: HH:mm, fixed payroll timezone
	SalaryProcessedAt string
	CreatedAt         time.Time
}

// WorkflowState is the approval state of an (employee, month).
type WorkflowState string

const (
	StateSummaryPending  WorkflowState = "SUMMARY_PENDING"
	StateSummaryComplete WorkflowState = "SUMMARY_COMPLETE"
	StatePayslipApproved WorkflowState = "PAYSLIP_APPROVED"
)
