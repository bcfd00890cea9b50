package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, monthly_amount, effective_from, created_at
		FROM salary_records
		WHERE employee_id = $1
		ORDER BY effective_from
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var s payroll.SalaryRecord
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.MonthlyAmount, &s.EffectiveFrom, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary records: %w", err)
	}

	return records, nil
}
