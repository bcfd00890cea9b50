package payroll

import (
	"time"

	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/validator"
)

// periodDateLayout is the dd/MM/yyyy form the attendance system writes into
// its period keys.
const periodDateLayout = "02/01/2006"

// Period is one fixed half of a calendar month: day 1 through 15, or day 16
// through the last day.
type Period struct {
	Start time.Time
	End   time.Time
}

// Key renders the period as the exact lookup key used against submitted
// attendance summaries, e.g. "16/04/2025 - 30/04/2025". The attendance system
// generated these keys originally, so formatting must match byte-for-byte.
func (p Period) Key() string {
	return p.Start.Format(periodDateLayout) + " - " + p.End.Format(periodDateLayout)
}

// ResolvePeriods splits the month containing t into its two submission
// sub-periods. The second period's end respects month length, including leap
// Februaries.
func ResolvePeriods(t time.Time) (first, second Period) {
	year, month := t.Year(), t.Month()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	monthEnd := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	first = Period{
		Start: monthStart,
		End:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
	}
	second = Period{
		Start: time.Date(year, month, 16, 0, 0, 0, 0, time.UTC),
		End:   monthEnd,
	}
	return first, second
}

// SinglePeriodMode reports whether only the second sub-period is required for
// the month: true when the month is the employee's onboarding month and the
// onboarding day falls after the 15th, so no first-half submission can exist.
func SinglePeriodMode(onboardDate, month time.Time) bool {
	return validator.SameMonth(onboardDate, month) && onboardDate.Day() > 15
}
