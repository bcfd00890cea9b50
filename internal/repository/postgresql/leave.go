package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/leave"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepository{db: db}
}

func (r *leaveBalanceRepository) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year,
			   casual_allowed, casual_taken,
			   sick_allowed, sick_taken,
			   floating_allowed, floating_taken,
			   earned_allowed, earned_taken,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.Year,
		&b.CasualAllowed, &b.CasualTaken,
		&b.SickAllowed, &b.SickTaken,
		&b.FloatingAllowed, &b.FloatingTaken,
		&b.EarnedAllowed, &b.EarnedTaken,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}
