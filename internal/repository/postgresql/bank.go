package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/bank"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type bankDetailRepository struct {
	db *database.DB
}

func NewBankDetailRepository(db *database.DB) bank.BankDetailRepository {
	return &bankDetailRepository{db: db}
}

func (r *bankDetailRepository) GetByEmployeeID(ctx context.Context, employeeID string) (bank.BankDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, account_holder, bank_name, account_number, created_at, updated_at
		FROM bank_details
		WHERE employee_id = $1
	`

	var b bank.BankDetail
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.ID, &b.EmployeeID, &b.AccountHolder, &b.BankName, &b.AccountNumber, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return bank.BankDetail{}, bank.ErrBankDetailsNotFound
		}
		return bank.BankDetail{}, fmt.Errorf("failed to get bank details: %w", err)
	}

	return b, nil
}
