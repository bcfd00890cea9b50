package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/payroll-backend-go/internal/config"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/bank"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/validator"
)

// hoursPerWorkingDay converts submitted attendance hours into day counts.
const hoursPerWorkingDay = 9.0

// stampLayout is the fixed textual form of approval timestamps, rendered in
// the configured payroll timezone.
const stampLayout = "2006-01-02: 15:04"

// Notifier delivers the best-effort approval notification. Delivery failures
// must never surface to the caller.
type Notifier interface {
	PayslipApproved(ctx context.Context, emp employee.Employee, month string)
}

// TxRunner executes fn atomically; repository calls made with the context fn
// receives join the same transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// PayrollService is the payroll computation and approval surface.
type PayrollService interface {
	GenerateMonthlyAggregate(ctx context.Context, req payroll.GenerateAggregateRequest) (payroll.AggregateResult, error)
	PayslipDetails(ctx context.Context, employeeID, month string) (payroll.PayslipDetailResponse, error)
	ListPendingPayslips(ctx context.Context, month string) ([]payroll.PendingPayslipResponse, error)
	Approve(ctx context.Context, req payroll.ApprovePayslipRequest) (payroll.PayslipSnapshotResponse, error)
	State(ctx context.Context, employeeID, month string) (payroll.WorkflowStateResponse, error)
	GetPayslip(ctx context.Context, employeeID, month string) (payroll.PayslipSnapshotResponse, error)
	ListPayslips(ctx context.Context, month string) ([]payroll.PayslipSnapshotResponse, error)
}

type payrollService struct {
	aggregateRepo payroll.AggregateRepository
	salaryRepo    payroll.SalaryRepository
	payslipRepo   payroll.PayslipRepository
	summaryRepo   attendance.SummaryRepository
	employeeRepo  employee.EmployeeRepository
	holidayRepo   holiday.HolidayRepository
	bankRepo      bank.BankDetailRepository
	inTx          TxRunner
	notifier      Notifier
	cfg           config.PayrollConfig
	now           func() time.Time
}

func NewPayrollService(
	aggregateRepo payroll.AggregateRepository,
	salaryRepo payroll.SalaryRepository,
	payslipRepo payroll.PayslipRepository,
	summaryRepo attendance.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	bankRepo bank.BankDetailRepository,
	inTx TxRunner,
	notifier Notifier,
	cfg config.PayrollConfig,
) PayrollService {
	return &payrollService{
		aggregateRepo: aggregateRepo,
		salaryRepo:    salaryRepo,
		payslipRepo:   payslipRepo,
		summaryRepo:   summaryRepo,
		employeeRepo:  employeeRepo,
		holidayRepo:   holidayRepo,
		bankRepo:      bankRepo,
		inTx:          inTx,
		notifier:      notifier,
		cfg:           cfg,
		now:           time.Now,
	}
}

func (s *payrollService) GenerateMonthlyAggregate(ctx context.Context, req payroll.GenerateAggregateRequest) (payroll.AggregateResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.AggregateResult{}, err
	}

	monthStart, err := validator.ParseMonth(req.Month)
	if err != nil {
		return payroll.AggregateResult{}, payroll.ErrInvalidMonth
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.AggregateResult{}, err
	}
	onboard, err := validator.ParseFlexibleDate(emp.OnboardDate)
	if err != nil {
		return payroll.AggregateResult{}, employee.ErrInvalidOnboardDate
	}

	first, second := ResolvePeriods(monthStart)
	required := []Period{first, second}
	if SinglePeriodMode(onboard, monthStart) {
		// No first-half submission can exist in the onboarding month when the
		// employee joined after the 15th.
		required = []Period{second}
	}

	// Fetch every required summary before gating on approval, so a missing
	// submission is always reported ahead of an unapproved one.
	summaries := make([]attendance.PeriodSummary, 0, len(required))
	for _, period := range required {
		summary, err := s.summaryRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, period.Key())
		if err != nil {
			if errors.Is(err, attendance.ErrSummaryNotFound) {
				return payroll.AggregateResult{
					Outcome: payroll.OutcomePendingSubmission,
					Message: fmt.Sprintf("attendance summary for %s has not been submitted", period.Key()),
				}, nil
			}
			return payroll.AggregateResult{}, err
		}
		summaries = append(summaries, summary)
	}

	var total attendance.SummaryFigures
	for _, summary := range summaries {
		if !summary.IsApproved() {
			return payroll.AggregateResult{
				Outcome: payroll.OutcomeAwaitingApproval,
				Message: fmt.Sprintf("attendance summary for %s is awaiting approval", summary.Period),
			}, nil
		}
		total = total.Add(summary.Figures)
	}

	aggregate := payroll.MonthlyAggregate{
		EmployeeID:      req.EmployeeID,
		Month:           req.Month,
		CasualLeaveDays: total.CasualLeaveDays,
		SickLeaveDays:   total.SickLeaveDays,
		// Absences arrive in hours; loss-of-pay days arrive pre-converted by
		// the leave system and pass through unchanged.
		TotalAbsences:    total.TotalAbsences / hoursPerWorkingDay,
		TotalLOPDays:     total.PaidLeaveDays,
		TotalWorkingDays: total.TotalHours / hoursPerWorkingDay,
	}

	// The upsert is the aggregation run's only side effect; notifications
	// happen at approval, never here.
	saved, err := s.aggregateRepo.Upsert(ctx, aggregate)
	if err != nil {
		return payroll.AggregateResult{}, err
	}

	return payroll.AggregateResult{
		Outcome:   payroll.OutcomeGenerated,
		Message:   "monthly aggregate generated",
		Aggregate: toAggregateResponse(saved),
	}, nil
}

func (s *payrollService) PayslipDetails(ctx context.Context, employeeID, month string) (payroll.PayslipDetailResponse, error) {
	monthStart, err := validator.ParseMonth(month)
	if err != nil {
		return payroll.PayslipDetailResponse{}, payroll.ErrInvalidMonth
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}
	onboard, err := validator.ParseFlexibleDate(emp.OnboardDate)
	if err != nil {
		return payroll.PayslipDetailResponse{}, employee.ErrInvalidOnboardDate
	}

	aggregate, err := s.aggregateRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}

	holidays, err := s.holidayRepo.GetByYear(ctx, monthStart.Year())
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}

	records, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}
	salary, err := SelectSalaryForMonth(records, monthStart)
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}

	sundays := CountQualifyingSundays(monthStart, onboard)
	holidayCount := CountQualifyingHolidays(holidays, monthStart, onboard)

	figures := ComputeFigures(aggregate, sundays, holidayCount, salary, monthStart, onboard)

	return payroll.PayslipDetailResponse{
		StandardDays:     figures.StandardDays,
		TotalWorked:      figures.TotalWorked,
		TotalLeaves:      figures.TotalLeaves,
		LOPDays:          figures.LOPDays,
		BasicSalary:      figures.GrossPay,
		Deduction:        figures.Deduction,
		NetPay:           figures.NetPay,
		Name:             emp.FullName,
		OnboardDate:      emp.OnboardDate,
		Designation:      emp.Designation,
		PayrollStart:     figures.PayrollStart.Format("2006-01-02"),
		ProrationApplies: figures.ProrationApplies,
		OnRollDays:       figures.OnRollDays,
	}, nil
}

func (s *payrollService) ListPendingPayslips(ctx context.Context, month string) ([]payroll.PendingPayslipResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	aggregates, err := s.aggregateRepo.ListPendingByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(aggregates))
	for _, a := range aggregates {
		ids = append(ids, a.EmployeeID)
	}
	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	pending := make([]payroll.PendingPayslipResponse, 0, len(aggregates))
	for _, a := range aggregates {
		display := a.EmployeeID
		if e, ok := byID[a.EmployeeID]; ok {
			display = e.Display()
		}
		pending = append(pending, payroll.PendingPayslipResponse{
			EmployeeID: a.EmployeeID,
			Display:    display,
		})
	}
	return pending, nil
}

func (s *payrollService) Approve(ctx context.Context, req payroll.ApprovePayslipRequest) (payroll.PayslipSnapshotResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipSnapshotResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipSnapshotResponse{}, err
	}

	details, err := s.bankRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipSnapshotResponse{}, err
	}

	name := req.EmployeeName
	if validator.IsEmpty(name) {
		name = emp.FullName
	}
	designation := req.Designation
	if validator.IsEmpty(designation) {
		designation = emp.Designation
	}

	stamp := s.now().In(s.cfg.Timezone).Format(stampLayout)

	snapshot := payroll.PayslipSnapshot{
		EmployeeID:        req.EmployeeID,
		Month:             req.Month,
		EmployeeName:      name,
		Designation:       designation,
		StandardDays:      req.StandardDays,
		TotalWorked:       req.TotalWorked,
		TotalLeaves:       req.TotalLeaves,
		LOPDays:           req.LOPDays,
		BasicSalary:       req.BasicSalary,
		Deduction:         req.Deduction,
		NetPay:            req.NetPay,
		AccountHolder:     details.AccountHolder,
		BankName:          details.BankName,
		AccountNumber:     details.AccountNumber,
		WorkLocation:      s.cfg.WorkLocation,
		ApprovedAt:        stamp,
		SalaryProcessedAt: stamp,
	}

	var created payroll.PayslipSnapshot
	err = s.inTx(ctx, func(ctx context.Context) error {
		// Flipping the flag first surfaces the missing-aggregate and
		// double-approve cases before a snapshot row is written.
		if err := s.aggregateRepo.MarkPayslipGenerated(ctx, req.EmployeeID, req.Month); err != nil {
			return err
		}
		created, err = s.payslipRepo.Create(ctx, snapshot)
		return err
	})
	if err != nil {
		return payroll.PayslipSnapshotResponse{}, err
	}

	s.notifyDetached(ctx, func(ctx context.Context) {
		s.notifier.PayslipApproved(ctx, emp, req.Month)
	})

	return toSnapshotResponse(created), nil
}

func (s *payrollService) State(ctx context.Context, employeeID, month string) (payroll.WorkflowStateResponse, error) {
	if !validator.IsValidMonth(month) {
		return payroll.WorkflowStateResponse{}, payroll.ErrInvalidMonth
	}

	resp := payroll.WorkflowStateResponse{EmployeeID: employeeID, Month: month}

	aggregate, err := s.aggregateRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	switch {
	case errors.Is(err, payroll.ErrAggregateNotFound):
		resp.State = payroll.StateSummaryPending
	case err != nil:
		return payroll.WorkflowStateResponse{}, err
	case aggregate.PayslipGenerated:
		resp.State = payroll.StatePayslipApproved
	default:
		resp.State = payroll.StateSummaryComplete
	}
	return resp, nil
}

func (s *payrollService) GetPayslip(ctx context.Context, employeeID, month string) (payroll.PayslipSnapshotResponse, error) {
	if !validator.IsValidMonth(month) {
		return payroll.PayslipSnapshotResponse{}, payroll.ErrInvalidMonth
	}
	snapshot, err := s.payslipRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.PayslipSnapshotResponse{}, err
	}
	return toSnapshotResponse(snapshot), nil
}

func (s *payrollService) ListPayslips(ctx context.Context, month string) ([]payroll.PayslipSnapshotResponse, error) {
	if month != "" && !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}
	snapshots, err := s.payslipRepo.List(ctx, month)
	if err != nil {
		return nil, err
	}
	responses := make([]payroll.PayslipSnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, toSnapshotResponse(snapshot))
	}
	return responses, nil
}

// notifyDetached runs fn on a context detached from the request so delivery
// outlives the HTTP response. Best-effort; fn must swallow its own errors.
func (s *payrollService) notifyDetached(ctx context.Context, fn func(ctx context.Context)) {
	if s.notifier == nil {
		return
	}
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	go func() {
		defer cancel()
		fn(detached)
	}()
}

func toAggregateResponse(a payroll.MonthlyAggregate) *payroll.MonthlyAggregateResponse {
	return &payroll.MonthlyAggregateResponse{
		EmployeeID:       a.EmployeeID,
		Month:            a.Month,
		CasualLeaveDays:  a.CasualLeaveDays,
		SickLeaveDays:    a.SickLeaveDays,
		TotalAbsences:    a.TotalAbsences,
		TotalLOPDays:     a.TotalLOPDays,
		TotalWorkingDays: a.TotalWorkingDays,
		PayslipGenerated: a.PayslipGenerated,
	}
}

func toSnapshotResponse(s payroll.PayslipSnapshot) payroll.PayslipSnapshotResponse {
	return payroll.PayslipSnapshotResponse{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		Month:             s.Month,
		EmployeeName:      s.EmployeeName,
		Designation:       s.Designation,
		StandardDays:      s.StandardDays,
		TotalWorked:       s.TotalWorked,
		TotalLeaves:       s.TotalLeaves,
		LOPDays:           s.LOPDays,
		BasicSalary:       s.BasicSalary,
		Deduction:         s.Deduction,
		NetPay:            s.NetPay,
		AccountHolder:     s.AccountHolder,
		BankName:          s.BankName,
		AccountNumber:     s.AccountNumber,
		WorkLocation:      s.WorkLocation,
		ApprovedAt:        s.ApprovedAt,
		SalaryProcessedAt: s.SalaryProcessedAt,
	}
}
