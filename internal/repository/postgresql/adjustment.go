package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/worklane/incentive-backend-go/internal/domain/adjustment"
	"github.com/worklane/incentive-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

// ListByDateKeyRange implements adjustment.AdjustmentRepository. Records come
// out normalized: rows still carrying the legacy flat fine fields have them
// folded into typed entries before they leave this layer.
func (r *adjustmentRepositoryImpl) ListByDateKeyRange(ctx context.Context, employeeID, startKey, endKey string) ([]adjustment.Record, error) {
	q := GetQuerier(ctx, r.db)

	// date_key is a YYYY-MM-DD text column; the range predicate is the same
	// lexicographic comparison the service contract specifies.
	query := `
		SELECT id, employee_id, date_key, bonus_entries, fine_entries,
			COALESCE(legacy_fine_points, 0), COALESCE(legacy_fine_currency, 0),
			created_at, updated_at
		FROM bonus_fine_adjustments
		WHERE employee_id = $1 AND date_key >= $2 AND date_key <= $3
		ORDER BY date_key
	`

	rows, err := q.Query(ctx, query, employeeID, startKey, endKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var records []adjustment.Record
	for rows.Next() {
		var rec adjustment.Record
		var rawBonus, rawFine []byte
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.DateKey, &rawBonus, &rawFine,
			&rec.LegacyFinePoints, &rec.LegacyFineCurrency,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment row: %w", err)
		}
		if len(rawBonus) > 0 {
			if err := json.Unmarshal(rawBonus, &rec.BonusEntries); err != nil {
				return nil, fmt.Errorf("failed to decode bonus entries: %w", err)
			}
		}
		if len(rawFine) > 0 {
			if err := json.Unmarshal(rawFine, &rec.FineEntries); err != nil {
				return nil, fmt.Errorf("failed to decode fine entries: %w", err)
			}
		}
		rec.NormalizeLegacy()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read adjustment rows: %w", err)
	}
	return records, nil
}
