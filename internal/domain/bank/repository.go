package bank

import "context"

// BankDetailRepository reads employee payout details.
type BankDetailRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (BankDetail, error)
}
