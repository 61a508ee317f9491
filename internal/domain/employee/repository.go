package employee

import "context"

// EmployeeRepository defines directory lookups. The employee management
// screens live elsewhere; this service only resolves identities.
type EmployeeRepository interface {
	// GetByName retrieves an employee by exact display name. Returns
	// ErrEmployeeNotFound when no record matches.
	GetByName(ctx context.Context, fullName string) (Employee, error)

	// GetByID retrieves an employee by ID. Returns ErrEmployeeNotFound when
	// no record matches.
	GetByID(ctx context.Context, id string) (Employee, error)
}
