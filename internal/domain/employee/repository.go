package employee

import "context"

// EmployeeRepository is the narrow read contract against the employee directory.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDs returns the records that exist; missing IDs are simply absent
	// from the result, not an error.
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
}
