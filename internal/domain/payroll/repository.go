package payroll

import "context"

// AggregateRepository stores monthly aggregates. Upsert must be atomic per
// (employee, month): concurrent duplicate runs may overwrite derived fields but
// can never produce a second row, and never touch PayslipGenerated.
type AggregateRepository interface {
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (MonthlyAggregate, error)
	Upsert(ctx context.Context, aggregate MonthlyAggregate) (MonthlyAggregate, error)
	// MarkPayslipGenerated flips PayslipGenerated false→true. Returns
	// ErrPayslipAlreadyApproved when the flag is already set and
	// ErrAggregateNotFound when no aggregate exists for the key.
	MarkPayslipGenerated(ctx context.Context, employeeID, month string) error
	ListPendingByMonth(ctx context.Context, month string) ([]MonthlyAggregate, error)
}

// SalaryRepository reads the salary history. Records are external, read-only
// input to the payroll core.
type SalaryRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)
}

// PayslipRepository stores approved payslip snapshots. Create-only: snapshots
// are immutable and a second create for the same (employee, month) fails with
// ErrPayslipAlreadyApproved.
type PayslipRepository interface {
	Create(ctx context.Context, snapshot PayslipSnapshot) (PayslipSnapshot, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (PayslipSnapshot, error)
	List(ctx context.Context, month string) ([]PayslipSnapshot, error)
}
