package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

func (r *payslipRepository) Create(ctx context.Context, snapshot payroll.PayslipSnapshot) (payroll.PayslipSnapshot, error) {
	q := GetQuerier(ctx, r.db)

	// Create-only: snapshots are immutable, so a duplicate key means the month
	// was already approved.
	query := `
		INSERT INTO payslip_snapshots (
			id, employee_id, month, employee_name, designation,
			standard_days, total_worked, total_leaves, lop_days,
			basic_salary, deduction, net_pay,
			account_holder, bank_name, account_number, work_location,
			approved_at, salary_processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, employee_id, month, employee_name, designation,
			standard_days, total_worked, total_leaves, lop_days,
			basic_salary, deduction, net_pay,
			account_holder, bank_name, account_number, work_location,
			approved_at, salary_processed_at, created_at
	`

	var s payroll.PayslipSnapshot
	err := q.QueryRow(ctx, query,
		uuid.NewString(), snapshot.EmployeeID, snapshot.Month, snapshot.EmployeeName, snapshot.Designation,
		snapshot.StandardDays, snapshot.TotalWorked, snapshot.TotalLeaves, snapshot.LOPDays,
		snapshot.BasicSalary, snapshot.Deduction, snapshot.NetPay,
		snapshot.AccountHolder, snapshot.BankName, snapshot.AccountNumber, snapshot.WorkLocation,
		snapshot.ApprovedAt, snapshot.SalaryProcessedAt,
	).Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.EmployeeName, &s.Designation,
		&s.StandardDays, &s.TotalWorked, &s.TotalLeaves, &s.LOPDays,
		&s.BasicSalary, &s.Deduction, &s.NetPay,
		&s.AccountHolder, &s.BankName, &s.AccountNumber, &s.WorkLocation,
		&s.ApprovedAt, &s.SalaryProcessedAt, &s.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payslip_snapshot_employee_month") {
			return payroll.PayslipSnapshot{}, payroll.ErrPayslipAlreadyApproved
		}
		return payroll.PayslipSnapshot{}, fmt.Errorf("failed to create payslip snapshot: %w", err)
	}

	return s, nil
}

func (r *payslipRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payroll.PayslipSnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, employee_name, designation,
			   standard_days, total_worked, total_leaves, lop_days,
			   basic_salary, deduction, net_pay,
			   account_holder, bank_name, account_number, work_location,
			   approved_at, salary_processed_at, created_at
		FROM payslip_snapshots
		WHERE employee_id = $1 AND month = $2
	`

	var s payroll.PayslipSnapshot
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.EmployeeName, &s.Designation,
		&s.StandardDays, &s.TotalWorked, &s.TotalLeaves, &s.LOPDays,
		&s.BasicSalary, &s.Deduction, &s.NetPay,
		&s.AccountHolder, &s.BankName, &s.AccountNumber, &s.WorkLocation,
		&s.ApprovedAt, &s.SalaryProcessedAt, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayslipSnapshot{}, payroll.ErrPayslipNotFound
		}
		return payroll.PayslipSnapshot{}, fmt.Errorf("failed to get payslip snapshot: %w", err)
	}

	return s, nil
}

func (r *payslipRepository) List(ctx context.Context, month string) ([]payroll.PayslipSnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, employee_name, designation,
			   standard_days, total_worked, total_leaves, lop_days,
			   basic_salary, deduction, net_pay,
			   account_holder, bank_name, account_number, work_location,
			   approved_at, salary_processed_at, created_at
		FROM payslip_snapshots
	`
	args := []interface{}{}
	if month != "" {
		query += " WHERE month = $1"
		args = append(args, month)
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []payroll.PayslipSnapshot
	for rows.Next() {
		var s payroll.PayslipSnapshot
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Month, &s.EmployeeName, &s.Designation,
			&s.StandardDays, &s.TotalWorked, &s.TotalLeaves, &s.LOPDays,
			&s.BasicSalary, &s.Deduction, &s.NetPay,
			&s.AccountHolder, &s.BankName, &s.AccountNumber, &s.WorkLocation,
			&s.ApprovedAt, &s.SalaryProcessedAt, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslip snapshots: %w", err)
	}

	return snapshots, nil
}
