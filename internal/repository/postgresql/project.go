package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklane/incentive-backend-go/internal/domain/project"
	"github.com/worklane/incentive-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// ListByLeadAssigneeInRange implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListByLeadAssigneeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, client_id, lead_assignee_ids, assigned_at,
			bonus_points, bonus_currency, penalty_points, penalty_currency,
			created_at, updated_at, deleted_at
		FROM projects
		WHERE $1 = ANY(lead_assignee_ids)
			AND assigned_at >= $2 AND assigned_at <= $3
			AND deleted_at IS NULL
		ORDER BY assigned_at
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by lead assignee: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.ClientID, &p.LeadAssigneeIDs, &p.AssignedAt,
			&p.BonusPoints, &p.BonusCurrency, &p.PenaltyPoints, &p.PenaltyCurrency,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project rows: %w", err)
	}
	return projects, nil
}

// GetNameByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetNameByID(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT name FROM projects WHERE id = $1`

	var name string
	err := q.QueryRow(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", project.ErrProjectNotFound
		}
		return "", fmt.Errorf("failed to resolve project name: %w", err)
	}
	return name, nil
}
