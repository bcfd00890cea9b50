package payroll

import (
	"time"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/payroll"
)

// SelectSalaryForMonth picks the salary record effective for the target month:
// the latest effectiveFrom whose year-month is not after the target's. Records
// taking effect mid-month qualify for that whole month, and a tie on
// year-month resolves to the later exact date. Returns ErrSalaryNotFound when
// no record qualifies; pay must never silently default to zero.
func SelectSalaryForMonth(records []payroll.SalaryRecord, month time.Time) (payroll.SalaryRecord, error) {
	var selected *payroll.SalaryRecord
	for i := range records {
		eff := records[i].EffectiveFrom
		if afterMonth(eff, month) {
			continue
		}
		if selected == nil || eff.After(selected.EffectiveFrom) {
			selected = &records[i]
		}
	}
	if selected == nil {
		return payroll.SalaryRecord{}, payroll.ErrSalaryNotFound
	}
	return *selected, nil
}

// afterMonth reports whether t's year-month is strictly after m's.
func afterMonth(t, m time.Time) bool {
	if t.Year() != m.Year() {
		return t.Year() > m.Year()
	}
	return t.Month() > m.Month()
}
