package task

import "context"

// TaskRepository defines data access for live tasks and archived completions.
type TaskRepository interface {
	// ListByAssignee retrieves every non-deleted task assigned to the
	// employee, directly or via the multi-assignee set. Outcome and period
	// filtering happen in the service layer.
	ListByAssignee(ctx context.Context, employeeID string) ([]Task, error)

	// ListCompletionsByApproval retrieves archived completions whose approval
	// status is one of the given values.
	ListCompletionsByApproval(ctx context.Context, statuses []ApprovalStatus) ([]Completion, error)
}
