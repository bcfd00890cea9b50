package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/payroll-backend-go/internal/config"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/bank"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAggregateRepo struct {
	rows map[string]payroll.MonthlyAggregate
}

func newFakeAggregateRepo() *fakeAggregateRepo {
	return &fakeAggregateRepo{rows: make(map[string]payroll.MonthlyAggregate)}
}

func aggKey(employeeID, month string) string { return employeeID + "|" + month }

func (r *fakeAggregateRepo) GetByEmployeeAndMonth(_ context.Context, employeeID, month string) (payroll.MonthlyAggregate, error) {
	a, ok := r.rows[aggKey(employeeID, month)]
	if !ok {
		return payroll.MonthlyAggregate{}, payroll.ErrAggregateNotFound
	}
	return a, nil
}

func (r *fakeAggregateRepo) Upsert(_ context.Context, aggregate payroll.MonthlyAggregate) (payroll.MonthlyAggregate, error) {
	key := aggKey(aggregate.EmployeeID, aggregate.Month)
	if existing, ok := r.rows[key]; ok {
		// Derived fields are replaced; the approval flag is never touched.
		aggregate.ID = existing.ID
		aggregate.PayslipGenerated = existing.PayslipGenerated
	} else {
		aggregate.ID = key
	}
	r.rows[key] = aggregate
	return aggregate, nil
}

func (r *fakeAggregateRepo) MarkPayslipGenerated(_ context.Context, employeeID, month string) error {
	key := aggKey(employeeID, month)
	a, ok := r.rows[key]
	if !ok {
		return payroll.ErrAggregateNotFound
	}
	if a.PayslipGenerated {
		return payroll.ErrPayslipAlreadyApproved
	}
	a.PayslipGenerated = true
	r.rows[key] = a
	return nil
}

func (r *fakeAggregateRepo) ListPendingByMonth(_ context.Context, month string) ([]payroll.MonthlyAggregate, error) {
	var pending []payroll.MonthlyAggregate
	for _, a := range r.rows {
		if a.Month == month && !a.PayslipGenerated {
			pending = append(pending, a)
		}
	}
	return pending, nil
}

type fakeSalaryRepo struct {
	records map[string][]payroll.SalaryRecord
}

func (r *fakeSalaryRepo) ListByEmployee(_ context.Context, employeeID string) ([]payroll.SalaryRecord, error) {
	return r.records[employeeID], nil
}

type fakePayslipRepo struct {
	rows map[string]payroll.PayslipSnapshot
}

func newFakePayslipRepo() *fakePayslipRepo {
	return &fakePayslipRepo{rows: make(map[string]payroll.PayslipSnapshot)}
}

func (r *fakePayslipRepo) Create(_ context.Context, snapshot payroll.PayslipSnapshot) (payroll.PayslipSnapshot, error) {
	key := aggKey(snapshot.EmployeeID, snapshot.Month)
	if _, ok := r.rows[key]; ok {
		return payroll.PayslipSnapshot{}, payroll.ErrPayslipAlreadyApproved
	}
	snapshot.ID = key
	r.rows[key] = snapshot
	return snapshot, nil
}

func (r *fakePayslipRepo) GetByEmployeeAndMonth(_ context.Context, employeeID, month string) (payroll.PayslipSnapshot, error) {
	s, ok := r.rows[aggKey(employeeID, month)]
	if !ok {
		return payroll.PayslipSnapshot{}, payroll.ErrPayslipNotFound
	}
	return s, nil
}

func (r *fakePayslipRepo) List(_ context.Context, month string) ([]payroll.PayslipSnapshot, error) {
	var out []payroll.PayslipSnapshot
	for _, s := range r.rows {
		if month == "" || s.Month == month {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeSummaryRepo struct {
	summaries map[string]attendance.PeriodSummary // keyed employee|period
}

func (r *fakeSummaryRepo) GetByEmployeeAndPeriod(_ context.Context, employeeID, period string) (attendance.PeriodSummary, error) {
	s, ok := r.summaries[employeeID+"|"+period]
	if !ok {
		return attendance.PeriodSummary{}, attendance.ErrSummaryNotFound
	}
	return s, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if e, ok := r.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *fakeHolidayRepo) GetByYear(_ context.Context, _ int) ([]holiday.Holiday, error) {
	return r.holidays, nil
}

type fakeBankRepo struct {
	details map[string]bank.BankDetail
}

func (r *fakeBankRepo) GetByEmployeeID(_ context.Context, employeeID string) (bank.BankDetail, error) {
	d, ok := r.details[employeeID]
	if !ok {
		return bank.BankDetail{}, bank.ErrBankDetailsNotFound
	}
	return d, nil
}

type fakeNotifier struct {
	events chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan string, 10)}
}

func (n *fakeNotifier) PayslipApproved(_ context.Context, emp employee.Employee, month string) {
	n.events <- "payslip_approved:" + emp.ID + ":" + month
}

func (n *fakeNotifier) await(t *testing.T) string {
	t.Helper()
	select {
	case e := <-n.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification")
		return ""
	}
}

type serviceFixture struct {
	svc       *payrollService
	aggregate *fakeAggregateRepo
	salary    *fakeSalaryRepo
	payslip   *fakePayslipRepo
	summary   *fakeSummaryRepo
	employee  *fakeEmployeeRepo
	holiday   *fakeHolidayRepo
	bank      *fakeBankRepo
	notifier  *fakeNotifier
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		aggregate: newFakeAggregateRepo(),
		salary:    &fakeSalaryRepo{records: make(map[string][]payroll.SalaryRecord)},
		payslip:   newFakePayslipRepo(),
		summary:   &fakeSummaryRepo{summaries: make(map[string]attendance.PeriodSummary)},
		employee:  &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		holiday:   &fakeHolidayRepo{},
		bank:      &fakeBankRepo{details: make(map[string]bank.BankDetail)},
		notifier:  newFakeNotifier(),
	}
	cfg := config.PayrollConfig{
		Timezone:     time.FixedZone("IST", 5*3600+1800),
		WorkLocation: "Salem",
	}
	inTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	svc := NewPayrollService(
		f.aggregate, f.salary, f.payslip, f.summary,
		f.employee, f.holiday, f.bank,
		inTx, f.notifier, cfg,
	)
	f.svc = svc.(*payrollService)
	return f
}

func (f *serviceFixture) addEmployee(id, name, designation, onboard string) {
	f.employee.employees[id] = employee.Employee{
		ID:          id,
		FullName:    name,
		Designation: designation,
		Email:       id + "@clockwise.test",
		OnboardDate: onboard,
	}
}

func (f *serviceFixture) addSummary(employeeID, period, status string, figures attendance.SummaryFigures) {
	f.summary.summaries[employeeID+"|"+period] = attendance.PeriodSummary{
		EmployeeID: employeeID,
		Period:     period,
		Status:     status,
		Figures:    figures,
	}
}

// ===== AGGREGATION TESTS =====

func TestGenerateMonthlyAggregate_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")

	f.addSummary("emp-1", "01/04/2025 - 15/04/2025", "Approved", attendance.SummaryFigures{
		TotalHours: 90, CasualLeaveDays: 1, TotalAbsences: 9,
	})
	f.addSummary("emp-1", "16/04/2025 - 30/04/2025", "approved", attendance.SummaryFigures{
		TotalHours: 108, SickLeaveDays: 0.5, PaidLeaveDays: 2,
	})

	result, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	require.NoError(t, err)
	require.Equal(t, payroll.OutcomeGenerated, result.Outcome)
	require.NotNil(t, result.Aggregate)

	assert.InDelta(t, 22.0, result.Aggregate.TotalWorkingDays, 1e-9) // 198 hours / 9
	assert.InDelta(t, 1.0, result.Aggregate.TotalAbsences, 1e-9)     // 9 hours / 9
	assert.InDelta(t, 1.0, result.Aggregate.CasualLeaveDays, 1e-9)
	assert.InDelta(t, 0.5, result.Aggregate.SickLeaveDays, 1e-9)
	// Loss-of-pay days pass through without conversion.
	assert.InDelta(t, 2.0, result.Aggregate.TotalLOPDays, 1e-9)
	assert.False(t, result.Aggregate.PayslipGenerated)

	// Aggregation's only side effect is the upsert; nothing is dispatched.
	assert.Empty(t, f.notifier.events)
}

func TestGenerateMonthlyAggregate_PendingSubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")

	// Only the first half was submitted.
	f.addSummary("emp-1", "01/04/2025 - 15/04/2025", "Approved", attendance.SummaryFigures{TotalHours: 90})

	result, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.OutcomePendingSubmission, result.Outcome)
	assert.Contains(t, result.Message, "16/04/2025 - 30/04/2025")
	assert.Nil(t, result.Aggregate)

	// Nothing was stored.
	_, err = f.aggregate.GetByEmployeeAndMonth(ctx, "emp-1", "2025-04")
	assert.ErrorIs(t, err, payroll.ErrAggregateNotFound)
}

func TestGenerateMonthlyAggregate_MissingSubmissionReportedBeforeApprovalGate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")

	// First half submitted but unapproved, second half never submitted: the
	// missing submission wins the discriminator.
	f.addSummary("emp-1", "01/04/2025 - 15/04/2025", "Submitted", attendance.SummaryFigures{TotalHours: 90})

	result, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.OutcomePendingSubmission, result.Outcome)
	assert.Contains(t, result.Message, "16/04/2025 - 30/04/2025")
}

func TestGenerateMonthlyAggregate_AwaitingApproval(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")

	f.addSummary("emp-1", "01/04/2025 - 15/04/2025", "Submitted", attendance.SummaryFigures{TotalHours: 90})
	f.addSummary("emp-1", "16/04/2025 - 30/04/2025", "Approved", attendance.SummaryFigures{TotalHours: 108})

	result, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.OutcomeAwaitingApproval, result.Outcome)
	assert.Contains(t, result.Message, "01/04/2025 - 15/04/2025")
}

func TestGenerateMonthlyAggregate_StatusCaseAndWhitespace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")

	f.addSummary("emp-1", "01/04/2025 - 15/04/2025", "  APPROVED ", attendance.SummaryFigures{TotalHours: 90})
	f.addSummary("emp-1", "16/04/2025 - 30/04/2025", "aPpRoVeD", attendance.SummaryFigures{TotalHours: 90})

	result, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.OutcomeGenerated, result.Outcome)
}

func TestGenerateMonthlyAggregate_SinglePeriodOnboarding(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	// Onboarded on the 20th: no first-half submission can exist.
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2025-04-20")

	f.addSummary("emp-1", "16/04/2025 - 30/04/2025", "Approved", attendance.SummaryFigures{TotalHours: 72})

	result, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	require.NoError(t, err)
	require.Equal(t, payroll.OutcomeGenerated, result.Outcome)
	assert.InDelta(t, 8.0, result.Aggregate.TotalWorkingDays, 1e-9)
}

func TestGenerateMonthlyAggregate_RerunPreservesApprovalFlag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.addSummary("emp-1", "01/04/2025 - 15/04/2025", "Approved", attendance.SummaryFigures{TotalHours: 90})
	f.addSummary("emp-1", "16/04/2025 - 30/04/2025", "Approved", attendance.SummaryFigures{TotalHours: 108})

	req := payroll.GenerateAggregateRequest{EmployeeID: "emp-1", Month: "2025-04"}

	_, err := f.svc.GenerateMonthlyAggregate(ctx, req)
	require.NoError(t, err)
	require.NoError(t, f.aggregate.MarkPayslipGenerated(ctx, "emp-1", "2025-04"))

	// A rerun recomputes the figures but never resets the approval flag.
	result, err := f.svc.GenerateMonthlyAggregate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, payroll.OutcomeGenerated, result.Outcome)
	assert.True(t, result.Aggregate.PayslipGenerated)
	assert.Len(t, f.aggregate.rows, 1)
}

func TestGenerateMonthlyAggregate_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()

	_, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "", Month: "April 2025",
	})
	assert.Error(t, err)
}

func TestGenerateMonthlyAggregate_UnparsableOnboardDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "June 2024")

	_, err := f.svc.GenerateMonthlyAggregate(ctx, payroll.GenerateAggregateRequest{
		EmployeeID: "emp-1", Month: "2025-04",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidOnboardDate)
}

// ===== PAYSLIP DETAIL TESTS =====

func TestPayslipDetails_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "01/06/2024")
	f.salary.records["emp-1"] = []payroll.SalaryRecord{
		{MonthlyAmount: decimal.NewFromInt(30000), EffectiveFrom: date(2024, time.June, 1)},
	}
	f.holiday.holidays = []holiday.Holiday{{Date: "14/04/2025", Name: "Tamil New Year"}}
	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04",
		TotalWorkingDays: 22, TotalAbsences: 2, TotalLOPDays: 2,
	}

	got, err := f.svc.PayslipDetails(ctx, "emp-1", "2025-04")
	require.NoError(t, err)

	// 22 working + 4 Sundays + 1 holiday.
	assert.InDelta(t, 27.0, got.StandardDays, 1e-9)
	assert.InDelta(t, 25.0, got.TotalWorked, 1e-9)
	assert.True(t, got.BasicSalary.Equal(decimal.NewFromInt(27000)), got.BasicSalary.String())
	assert.True(t, got.Deduction.Equal(decimal.NewFromInt(2000)))
	assert.True(t, got.NetPay.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, "Priya Raman", got.Name)
	assert.Equal(t, "01/06/2024", got.OnboardDate)
	assert.False(t, got.ProrationApplies)
}

func TestPayslipDetails_NoAggregate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")

	_, err := f.svc.PayslipDetails(ctx, "emp-1", "2025-04")
	assert.ErrorIs(t, err, payroll.ErrAggregateNotFound)
}

func TestPayslipDetails_NoSalaryRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04", TotalWorkingDays: 22,
	}

	_, err := f.svc.PayslipDetails(ctx, "emp-1", "2025-04")
	assert.ErrorIs(t, err, payroll.ErrSalaryNotFound)
}

// ===== APPROVAL TESTS =====

func approveRequest() payroll.ApprovePayslipRequest {
	return payroll.ApprovePayslipRequest{
		EmployeeID:   "emp-1",
		Month:        "2025-04",
		EmployeeName: "Priya Raman",
		Designation:  "Engineer",
		StandardDays: 27,
		TotalWorked:  25,
		TotalLeaves:  2,
		LOPDays:      2,
		BasicSalary:  decimal.NewFromInt(27000),
		Deduction:    decimal.NewFromInt(2000),
		NetPay:       decimal.NewFromInt(25000),
	}
}

func TestApprove_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.bank.details["emp-1"] = bank.BankDetail{
		EmployeeID: "emp-1", AccountHolder: "Priya Raman",
		BankName: "State Bank", AccountNumber: "0012345678",
	}
	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04", TotalWorkingDays: 22,
	}
	f.svc.now = func() time.Time {
		return time.Date(2025, time.May, 2, 4, 30, 0, 0, time.UTC) // 10:00 IST
	}

	got, err := f.svc.Approve(ctx, approveRequest())
	require.NoError(t, err)

	assert.Equal(t, "Priya Raman", got.EmployeeName)
	assert.Equal(t, "State Bank", got.BankName)
	assert.Equal(t, "Salem", got.WorkLocation)
	assert.Equal(t, "2025-05-02: 10:00", got.ApprovedAt)
	assert.Equal(t, got.ApprovedAt, got.SalaryProcessedAt)
	assert.True(t, got.NetPay.Equal(decimal.NewFromInt(25000)))

	// The aggregate is now marked approved.
	a, err := f.aggregate.GetByEmployeeAndMonth(ctx, "emp-1", "2025-04")
	require.NoError(t, err)
	assert.True(t, a.PayslipGenerated)

	assert.Contains(t, f.notifier.await(t), "payslip_approved:emp-1:2025-04")
}

func TestApprove_Twice_Conflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.bank.details["emp-1"] = bank.BankDetail{EmployeeID: "emp-1", BankName: "State Bank"}
	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04",
	}

	_, err := f.svc.Approve(ctx, approveRequest())
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, approveRequest())
	assert.ErrorIs(t, err, payroll.ErrPayslipAlreadyApproved)
}

func TestApprove_NoAggregate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.bank.details["emp-1"] = bank.BankDetail{EmployeeID: "emp-1"}

	_, err := f.svc.Approve(ctx, approveRequest())
	assert.ErrorIs(t, err, payroll.ErrAggregateNotFound)

	// No snapshot may exist after a failed approval.
	_, err = f.payslip.GetByEmployeeAndMonth(ctx, "emp-1", "2025-04")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestApprove_MissingBankDetails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04",
	}

	_, err := f.svc.Approve(ctx, approveRequest())
	assert.ErrorIs(t, err, bank.ErrBankDetailsNotFound)
}

// ===== PENDING LIST AND STATE TESTS =====

func TestListPendingPayslips(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()
	f.addEmployee("emp-1", "Priya Raman", "Engineer", "2024-06-01")
	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04",
	}
	f.aggregate.rows[aggKey("emp-2", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-2", Month: "2025-04", PayslipGenerated: true,
	}
	f.aggregate.rows[aggKey("emp-3", "2025-03")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-3", Month: "2025-03",
	}

	pending, err := f.svc.ListPendingPayslips(ctx, "2025-04")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "emp-1", pending[0].EmployeeID)
	assert.Equal(t, "Priya Raman - Engineer", pending[0].Display)
}

func TestState_Transitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newServiceFixture()

	got, err := f.svc.State(ctx, "emp-1", "2025-04")
	require.NoError(t, err)
	assert.Equal(t, payroll.StateSummaryPending, got.State)

	f.aggregate.rows[aggKey("emp-1", "2025-04")] = payroll.MonthlyAggregate{
		EmployeeID: "emp-1", Month: "2025-04",
	}
	got, err = f.svc.State(ctx, "emp-1", "2025-04")
	require.NoError(t, err)
	assert.Equal(t, payroll.StateSummaryComplete, got.State)

	require.NoError(t, f.aggregate.MarkPayslipGenerated(ctx, "emp-1", "2025-04"))
	got, err = f.svc.State(ctx, "emp-1", "2025-04")
	require.NoError(t, err)
	assert.Equal(t, payroll.StatePayslipApproved, got.State)
}
