package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) attendance.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (attendance.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	// The numeric columns are nullable; a submission omits fields the employee
	// had no entries for, and those read as zero.
	query := `
		SELECT id, employee_id, period, status,
			   COALESCE(total_hours, 0),
			   COALESCE(casual_leave_days, 0),
			   COALESCE(sick_leave_days, 0),
			   COALESCE(paid_leave_days, 0),
			   COALESCE(total_absences, 0),
			   created_at, updated_at
		FROM period_summaries
		WHERE employee_id = $1 AND period = $2
	`

	var s attendance.PeriodSummary
	err := q.QueryRow(ctx, query, employeeID, period).Scan(
		&s.ID, &s.EmployeeID, &s.Period, &s.Status,
		&s.Figures.TotalHours,
		&s.Figures.CasualLeaveDays,
		&s.Figures.SickLeaveDays,
		&s.Figures.PaidLeaveDays,
		&s.Figures.TotalAbsences,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.PeriodSummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.PeriodSummary{}, fmt.Errorf("failed to get period summary: %w", err)
	}

	return s, nil
}
