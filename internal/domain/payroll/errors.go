package payroll

import "errors"

var (
	ErrSalaryNotFound         = errors.New("no valid salary record for selected month")
	ErrAggregateNotFound      = errors.New("monthly aggregate not found")
	ErrPayslipNotFound        = errors.New("payslip not found")
	ErrPayslipAlreadyApproved = errors.New("payslip already approved for this month")
	ErrInvalidMonth           = errors.New("invalid month format, expected yyyy-MM")
)
