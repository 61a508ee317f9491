package checklist

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ConfigItem is one row of the active checklist configuration. Labels are
// matched case-insensitively after trimming.
type ConfigItem struct {
	ID            string
	Label         string
	Bonus         decimal.Decimal
	BonusCurrency decimal.Decimal
	Fine          decimal.Decimal
	FineCurrency  decimal.Decimal
}

// NormalizeLabel produces the lookup key for config matching.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ItemCheck is one entry of a daily update's checklist array.
type ItemCheck struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// DailyUpdate is one employee's update for one calendar date. Only updates
// with AdminApproved set participate in payout computation.
type DailyUpdate struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	AdminApproved bool
	Items         []ItemCheck
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
