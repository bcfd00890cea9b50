package leave

import "time"

// Balance holds the per-(employee, year) allowed/taken counters for each leave
// class. The payroll core only reads it; accrual and deduction policy live in
// the leave management system.
type Balance struct {
	ID         string
	EmployeeID string
	Year       int

	CasualAllowed   float64
	CasualTaken     float64
	SickAllowed     float64
	SickTaken       float64
	FloatingAllowed float64
	FloatingTaken   float64
	EarnedAllowed   float64
	EarnedTaken     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BalanceResponse struct {
	EmployeeID      string  `json:"employee_id"`
	Year            int     `json:"year"`
	CasualAllowed   float64 `json:"casual_allowed"`
	CasualTaken     float64 `json:"casual_taken"`
	SickAllowed     float64 `json:"sick_allowed"`
	SickTaken       float64 `json:"sick_taken"`
	FloatingAllowed float64 `json:"floating_allowed"`
	FloatingTaken   float64 `json:"floating_taken"`
	EarnedAllowed   float64 `json:"earned_allowed"`
	EarnedTaken     float64 `json:"earned_taken"`
}
