package attendance

import "context"

// SummaryRepository reads biweekly attendance submissions.
type SummaryRepository interface {
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (PeriodSummary, error)
}
