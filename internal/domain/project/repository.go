package project

import (
	"context"
	"time"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	// ListByLeadAssigneeInRange retrieves projects where the employee is one
	// of the lead assignees and the assignment timestamp falls inside
	// [start, end].
	ListByLeadAssigneeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Project, error)

	// GetNameByID resolves a project reference to its display name. Returns
	// ErrProjectNotFound when the reference does not resolve.
	GetNameByID(ctx context.Context, id string) (string, error)
}
