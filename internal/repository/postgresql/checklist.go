package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/worklane/incentive-backend-go/internal/domain/checklist"
	"github.com/worklane/incentive-backend-go/internal/pkg/database"
)

type checklistRepositoryImpl struct {
	db *database.DB
}

func NewChecklistRepository(db *database.DB) checklist.ChecklistRepository {
	return &checklistRepositoryImpl{db: db}
}

// GetActiveConfig implements checklist.ChecklistRepository. There is at most
// one active configuration at a time.
func (r *checklistRepositoryImpl) GetActiveConfig(ctx context.Context) ([]checklist.ConfigItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.label, i.bonus, i.bonus_currency, i.fine, i.fine_currency
		FROM checklist_config_items i
		JOIN checklist_configs c ON c.id = i.config_id
		WHERE c.is_active
		ORDER BY i.sort_order, i.label
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load active checklist config: %w", err)
	}
	defer rows.Close()

	var items []checklist.ConfigItem
	for rows.Next() {
		var it checklist.ConfigItem
		err := rows.Scan(&it.ID, &it.Label, &it.Bonus, &it.BonusCurrency, &it.Fine, &it.FineCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist config row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checklist config rows: %w", err)
	}
	return items, nil
}

// ListApprovedUpdatesInRange implements checklist.ChecklistRepository. The
// checklist array is stored as JSONB and decoded here so the service layer
// sees only the typed shape.
func (r *checklistRepositoryImpl) ListApprovedUpdatesInRange(ctx context.Context, employeeID string, start, end time.Time) ([]checklist.DailyUpdate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, admin_approved, items, created_at, updated_at
		FROM daily_updates
		WHERE employee_id = $1 AND admin_approved AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily updates: %w", err)
	}
	defer rows.Close()

	var updates []checklist.DailyUpdate
	for rows.Next() {
		var u checklist.DailyUpdate
		var rawItems []byte
		err := rows.Scan(&u.ID, &u.EmployeeID, &u.Date, &u.AdminApproved, &rawItems, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily update row: %w", err)
		}
		if len(rawItems) > 0 {
			if err := json.Unmarshal(rawItems, &u.Items); err != nil {
				return nil, fmt.Errorf("failed to decode daily update checklist: %w", err)
			}
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily update rows: %w", err)
	}
	return updates, nil
}
