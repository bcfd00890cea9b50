package payroll

import (
	"time"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PayslipFigures are the computed pay numbers for one employee-month, before
// approval stamps anything onto them.
type PayslipFigures struct {
	StandardDays float64
	TotalWorked  float64
	TotalLeaves  float64
	LOPDays      float64

	PerCalendarDayRate decimal.Decimal
	GrossPay           decimal.Decimal
	Deduction          decimal.Decimal
	NetPay             decimal.Decimal

	// PayrollStart is the later of the onboarding date and the salary record's
	// effective date. ProrationApplies reports whether it falls inside the
	// target month; OnRollDays counts payroll-start through month end
	// inclusive when it does.
	PayrollStart     time.Time
	ProrationApplies bool
	OnRollDays       int
}

// CountQualifyingSundays counts the Sundays of the month containing `month`.
// In the employee's onboarding month, Sundays before the onboarding date do
// not qualify; in every other month all Sundays do.
func CountQualifyingSundays(month, onboardDate time.Time) int {
	onboardMonth := validator.SameMonth(onboardDate, month)
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC)

	count := 0
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday && (!onboardMonth || !d.Before(onboardDate)) {
			count++
		}
	}
	return count
}

// CountQualifyingHolidays counts calendar holidays falling in the month
// containing `month`, applying the same onboarding cutoff as Sundays.
// Unparsable calendar entries are skipped, never fatal.
func CountQualifyingHolidays(holidays []holiday.Holiday, month, onboardDate time.Time) int {
	onboardMonth := validator.SameMonth(onboardDate, month)

	count := 0
	for _, h := range holidays {
		d, err := time.Parse(periodDateLayout, h.Date)
		if err != nil {
			continue
		}
		if d.Month() != month.Month() {
			continue
		}
		if onboardMonth && d.Before(onboardDate) {
			continue
		}
		count++
	}
	return count
}

// ComputeFigures derives the payslip numbers from a monthly aggregate, the
// qualifying Sunday/holiday counts, and the selected salary record. Pure
// arithmetic; the order of operations below is fixed so decimal rounding stays
// stable.
//
// Gross pay is perCalendarDayRate * standardDays even when payroll starts
// mid-month: prorationApplies and the on-roll day count are computed and
// surfaced, but the payable-day count deliberately does not use them. That
// matches the payroll owner's current rule; do not change it without them.
func ComputeFigures(
	aggregate payroll.MonthlyAggregate,
	sundays, holidays int,
	salary payroll.SalaryRecord,
	month, onboardDate time.Time,
) PayslipFigures {
	standardDays := aggregate.TotalWorkingDays + float64(sundays) + float64(holidays)
	totalWorked := (aggregate.TotalWorkingDays - aggregate.TotalAbsences) + float64(sundays) + float64(holidays)

	monthEnd := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthEnd.Day()

	perCalDay := salary.MonthlyAmount.Div(decimal.NewFromInt(int64(daysInMonth)))

	payrollStart := onboardDate
	if salary.EffectiveFrom.After(onboardDate) {
		payrollStart = salary.EffectiveFrom
	}
	prorationApplies := validator.SameMonth(payrollStart, month)

	onRollDays := daysInMonth
	if prorationApplies {
		// Both the start and end dates are on the rolls.
		onRollDays = int(monthEnd.Sub(payrollStart).Hours()/24) + 1
	}

	grossPay := perCalDay.Mul(decimal.NewFromFloat(standardDays))
	deduction := perCalDay.Mul(decimal.NewFromFloat(aggregate.TotalLOPDays))
	netPay := grossPay.Sub(deduction)

	return PayslipFigures{
		StandardDays:       standardDays,
		TotalWorked:        totalWorked,
		TotalLeaves:        aggregate.TotalAbsences,
		LOPDays:            aggregate.TotalLOPDays,
		PerCalendarDayRate: perCalDay,
		GrossPay:           grossPay,
		Deduction:          deduction,
		NetPay:             netPay,
		PayrollStart:       payrollStart,
		ProrationApplies:   prorationApplies,
		OnRollDays:         onRollDays,
	}
}
