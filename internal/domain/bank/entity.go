package bank

import "time"

// BankDetail is the payout destination for one employee. Approval cannot
// proceed without it.
type BankDetail struct {
	ID            string
	EmployeeID    string
	AccountHolder string
	BankName      string
	AccountNumber string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
