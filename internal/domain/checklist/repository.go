package checklist

import (
	"context"
	"time"
)

// ChecklistRepository defines data access for checklist configuration and
// daily updates.
type ChecklistRepository interface {
	// GetActiveConfig retrieves the items of the single active checklist
	// configuration.
	GetActiveConfig(ctx context.Context) ([]ConfigItem, error)

	// ListApprovedUpdatesInRange retrieves the employee's admin-approved
	// daily updates whose date falls inside [start, end].
	ListApprovedUpdatesInRange(ctx context.Context, employeeID string, start, end time.Time) ([]DailyUpdate, error)
}
