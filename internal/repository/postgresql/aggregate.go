package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type aggregateRepository struct {
	db *database.DB
}

func NewAggregateRepository(db *database.DB) payroll.AggregateRepository {
	return &aggregateRepository{db: db}
}

func (r *aggregateRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payroll.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, casual_leave_days, sick_leave_days,
			   total_absences, total_lop_days, total_working_days,
			   payslip_generated, created_at, updated_at
		FROM monthly_aggregates
		WHERE employee_id = $1 AND month = $2
	`

	var a payroll.MonthlyAggregate
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&a.ID, &a.EmployeeID, &a.Month, &a.CasualLeaveDays, &a.SickLeaveDays,
		&a.TotalAbsences, &a.TotalLOPDays, &a.TotalWorkingDays,
		&a.PayslipGenerated, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.MonthlyAggregate{}, payroll.ErrAggregateNotFound
		}
		return payroll.MonthlyAggregate{}, fmt.Errorf("failed to get monthly aggregate: %w", err)
	}

	return a, nil
}

func (r *aggregateRepository) Upsert(ctx context.Context, aggregate payroll.MonthlyAggregate) (payroll.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	// The unique key on (employee_id, month) makes concurrent duplicate runs
	// safe: both land on the same row and payslip_generated is never touched.
	query := `
		INSERT INTO monthly_aggregates (
			id, employee_id, month, casual_leave_days, sick_leave_days,
			total_absences, total_lop_days, total_working_days
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			casual_leave_days = EXCLUDED.casual_leave_days,
			sick_leave_days = EXCLUDED.sick_leave_days,
			total_absences = EXCLUDED.total_absences,
			total_lop_days = EXCLUDED.total_lop_days,
			total_working_days = EXCLUDED.total_working_days,
			updated_at = NOW()
		RETURNING id, employee_id, month, casual_leave_days, sick_leave_days,
			total_absences, total_lop_days, total_working_days,
			payslip_generated, created_at, updated_at
	`

	var a payroll.MonthlyAggregate
	err := q.QueryRow(ctx, query,
		aggregate.EmployeeID, aggregate.Month, aggregate.CasualLeaveDays, aggregate.SickLeaveDays,
		aggregate.TotalAbsences, aggregate.TotalLOPDays, aggregate.TotalWorkingDays,
	).Scan(
		&a.ID, &a.EmployeeID, &a.Month, &a.CasualLeaveDays, &a.SickLeaveDays,
		&a.TotalAbsences, &a.TotalLOPDays, &a.TotalWorkingDays,
		&a.PayslipGenerated, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return payroll.MonthlyAggregate{}, fmt.Errorf("failed to upsert monthly aggregate: %w", err)
	}

	return a, nil
}

func (r *aggregateRepository) MarkPayslipGenerated(ctx context.Context, employeeID, month string) error {
	q := GetQuerier(ctx, r.db)

	// Guarded flip: a second approval for the same key matches zero rows and
	// is reported as already approved instead of double-writing.
	query := `
		UPDATE monthly_aggregates
		SET payslip_generated = true, updated_at = NOW()
		WHERE employee_id = $1 AND month = $2 AND payslip_generated = false
	`

	tag, err := q.Exec(ctx, query, employeeID, month)
	if err != nil {
		return fmt.Errorf("failed to mark payslip generated: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByEmployeeAndMonth(ctx, employeeID, month); err != nil {
			return err
		}
		return payroll.ErrPayslipAlreadyApproved
	}

	return nil
}

func (r *aggregateRepository) ListPendingByMonth(ctx context.Context, month string) ([]payroll.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, casual_leave_days, sick_leave_days,
			   total_absences, total_lop_days, total_working_days,
			   payslip_generated, created_at, updated_at
		FROM monthly_aggregates
		WHERE month = $1 AND payslip_generated = false
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending aggregates: %w", err)
	}
	defer rows.Close()

	var aggregates []payroll.MonthlyAggregate
	for rows.Next() {
		var a payroll.MonthlyAggregate
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Month, &a.CasualLeaveDays, &a.SickLeaveDays,
			&a.TotalAbsences, &a.TotalLOPDays, &a.TotalWorkingDays,
			&a.PayslipGenerated, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly aggregate: %w", err)
		}
		aggregates = append(aggregates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly aggregates: %w", err)
	}

	return aggregates, nil
}
