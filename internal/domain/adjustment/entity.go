package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tags a manual entry as points- or currency-valued.
type EntryKind string

const (
	KindPoints   EntryKind = "points"
	KindCurrency EntryKind = "currency"
)

// Entry is one manual bonus or fine line.
type Entry struct {
	Kind        EntryKind       `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

// Record holds all manual bonus/fine entries for one employee on one day.
// Records are keyed by a YYYY-MM-DD date key, not a timestamp; range matching
// is string comparison on that key.
type Record struct {
	ID           string
	EmployeeID   string
	DateKey      string
	BonusEntries []Entry
	FineEntries  []Entry

	// Legacy shape: older rows carry flat numeric fine fields instead of
	// typed entries. NormalizeLegacy folds them into FineEntries.
	LegacyFinePoints   decimal.Decimal
	LegacyFineCurrency decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateKeyFormat is the layout of Record.DateKey.
const DateKeyFormat = "2006-01-02"

// ToDateKey renders a timestamp as a date key in its own location.
func ToDateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// NormalizeLegacy converts the flat legacy fine fields into typed fine
// entries, one per non-zero field, and clears them. Rows already in the typed
// shape pass through unchanged. Called once at ingestion so the payout logic
// never sees the legacy shape.
func (r *Record) NormalizeLegacy() {
	if r.LegacyFinePoints.IsPositive() {
		r.FineEntries = append(r.FineEntries, Entry{
			Kind:        KindPoints,
			Value:       r.LegacyFinePoints,
			Description: "Fine",
		})
	}
	if r.LegacyFineCurrency.IsPositive() {
		r.FineEntries = append(r.FineEntries, Entry{
			Kind:        KindCurrency,
			Value:       r.LegacyFineCurrency,
			Description: "Fine",
		})
	}
	r.LegacyFinePoints = decimal.Zero
	r.LegacyFineCurrency = decimal.Zero
}
