package postgresql

import (
	"context"
	"fmt"

	"github.com/worklane/incentive-backend-go/internal/domain/task"
	"github.com/worklane/incentive-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// ListByAssignee implements task.TaskRepository. Assignee filtering is pushed
// into the query; outcome and period filtering stay in the service layer.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, employeeID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, kind, assignee_ids, approval_status, status, not_applicable,
			bonus_points, bonus_currency, penalty_points, penalty_currency,
			deadline_date, deadline_time, due_date, due_time,
			assigned_at, ticked_at, completed_at, approved_at, project_id,
			created_at, updated_at, deleted_at
		FROM tasks
		WHERE $1 = ANY(assignee_ids) AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by assignee: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.Title, &t.Kind, &t.AssigneeIDs, &t.ApprovalStatus, &t.Status, &t.NotApplicable,
			&t.BonusPoints, &t.BonusCurrency, &t.PenaltyPoints, &t.PenaltyCurrency,
			&t.DeadlineDate, &t.DeadlineTime, &t.DueDate, &t.DueTime,
			&t.AssignedAt, &t.TickedAt, &t.CompletedAt, &t.ApprovedAt, &t.ProjectID,
			&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task rows: %w", err)
	}
	return tasks, nil
}

// ListCompletionsByApproval implements task.TaskRepository.
func (r *taskRepositoryImpl) ListCompletionsByApproval(ctx context.Context, statuses []task.ApprovalStatus) ([]task.Completion, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, task_id, title, kind, completed_by, assignee_ids, approval_status, status, not_applicable,
			bonus_points, bonus_currency, penalty_points, penalty_currency,
			deadline_date, deadline_time, due_date, due_time,
			assigned_at, ticked_at, completed_at, approved_at, project_id, created_at
		FROM task_completions
		WHERE approval_status = ANY($1)
		ORDER BY created_at
	`

	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}

	rows, err := q.Query(ctx, query, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to list task completions: %w", err)
	}
	defer rows.Close()

	var comps []task.Completion
	for rows.Next() {
		var c task.Completion
		err := rows.Scan(
			&c.ID, &c.TaskID, &c.Title, &c.Kind, &c.CompletedBy, &c.AssigneeIDs, &c.ApprovalStatus, &c.Status, &c.NotApplicable,
			&c.BonusPoints, &c.BonusCurrency, &c.PenaltyPoints, &c.PenaltyCurrency,
			&c.DeadlineDate, &c.DeadlineTime, &c.DueDate, &c.DueTime,
			&c.AssignedAt, &c.TickedAt, &c.CompletedAt, &c.ApprovedAt, &c.ProjectID, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task completion row: %w", err)
		}
		comps = append(comps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task completion rows: %w", err)
	}
	return comps, nil
}
