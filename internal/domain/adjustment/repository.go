package adjustment

import "context"

// AdjustmentRepository defines data access for manual bonus/fine records.
type AdjustmentRepository interface {
	// ListByDateKeyRange retrieves the employee's records whose date key
	// falls inside [startKey, endKey] (lexicographic comparison on the
	// YYYY-MM-DD key). Returned records are already normalized: legacy fine
	// fields have been folded into typed entries.
	ListByDateKeyRange(ctx context.Context, employeeID, startKey, endKey string) ([]Record, error)
}
