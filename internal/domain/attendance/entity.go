package attendance

import (
	"strings"
	"time"
)

// StatusApproved is the submission status an attendance summary must carry
// before it can feed a monthly aggregate. Comparison is case-insensitive.
const StatusApproved = "Approved"

// SummaryFigures are the named numeric fields of one biweekly submission.
// Absent fields are zero, never an error: the submission tool omits fields the
// employee had no entries for.
type SummaryFigures struct {
	TotalHours      float64
	CasualLeaveDays float64
	SickLeaveDays   float64
	PaidLeaveDays   float64
	TotalAbsences   float64
}

// Add returns the field-wise sum of two figure sets.
func (f SummaryFigures) Add(other SummaryFigures) SummaryFigures {
	return SummaryFigures{
		TotalHours:      f.TotalHours + other.TotalHours,
		CasualLeaveDays: f.CasualLeaveDays + other.CasualLeaveDays,
		SickLeaveDays:   f.SickLeaveDays + other.SickLeaveDays,
		PaidLeaveDays:   f.PaidLeaveDays + other.PaidLeaveDays,
		TotalAbsences:   f.TotalAbsences + other.TotalAbsences,
	}
}

// PeriodSummary is one employee's submitted attendance for one sub-period.
// Keyed by (employee, period key); read-only to the payroll core.
type PeriodSummary struct {
	ID         string
	EmployeeID string
	Period     string // "dd/MM/yyyy - dd/MM/yyyy"
	Status     string // free-form submission status
	Figures    SummaryFigures
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsApproved reports whether the submission has been approved. The status field
// is free-form text, so any casing of "approved" counts.
func (s PeriodSummary) IsApproved() bool {
	return strings.EqualFold(strings.TrimSpace(s.Status), StatusApproved)
}
