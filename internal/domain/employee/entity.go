package employee

import "time"

// Employee is the directory record the payroll core reads. The directory is
// owned elsewhere; this service never writes it.
type Employee struct {
	ID          string
	FullName    string
	Designation string
	Email       string
	// OnboardDate is kept as raw text because the directory contains mixed
	// formats (yyyy-MM-dd and dd/MM/yyyy). Parse with validator.ParseFlexibleDate.
	OnboardDate string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Display renders the listing label used by the payslip screens.
func (e Employee) Display() string {
	return e.FullName + " - " + e.Designation
}
