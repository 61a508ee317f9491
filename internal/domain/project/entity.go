package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID              string
	Name            string
	Description     *string
	ClientID        *string
	LeadAssigneeIDs []string
	AssignedAt      *time.Time

	// Awarded once per assignment window to the lead assignee(s).
	BonusPoints     decimal.Decimal
	BonusCurrency   decimal.Decimal
	PenaltyPoints   decimal.Decimal
	PenaltyCurrency decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
