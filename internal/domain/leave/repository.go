package leave

import "context"

// BalanceRepository reads yearly leave balances. Read-only in this service.
type BalanceRepository interface {
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (Balance, error)
}
