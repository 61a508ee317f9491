package task

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindOneTime   Kind = "one_time"
	KindDaily     Kind = "daily"
	KindWeekly    Kind = "weekly"
	KindMonthly   Kind = "monthly"
	KindCustom    Kind = "custom"
	KindRecurring Kind = "recurring"
)

// IsRecurring reports whether the task repeats on a fixed cadence. Only the
// cadenced kinds reset their deadline from the assignment/current day.
func (k Kind) IsRecurring() bool {
	return k == KindDaily || k == KindWeekly || k == KindMonthly
}

type ApprovalStatus string

const (
	ApprovalPending        ApprovalStatus = "pending"
	ApprovalApproved       ApprovalStatus = "approved"
	ApprovalRejected       ApprovalStatus = "rejected"
	ApprovalDeadlinePassed ApprovalStatus = "deadline_passed"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Task struct {
	ID             string
	Title          string
	Kind           Kind
	AssigneeIDs    []string
	ApprovalStatus ApprovalStatus
	Status         Status
	NotApplicable  bool

	BonusPoints     decimal.Decimal
	BonusCurrency   decimal.Decimal
	PenaltyPoints   decimal.Decimal
	PenaltyCurrency decimal.Decimal

	// Deadline is spread across four optional fields. DeadlineTime and
	// DueTime are wall-clock strings in "HH:MM" form.
	DeadlineDate *time.Time
	DeadlineTime *string
	DueDate      *time.Time
	DueTime      *string

	AssignedAt  *time.Time
	TickedAt    *time.Time
	CompletedAt *time.Time
	ApprovedAt  *time.Time
	ProjectID   *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Completion is an immutable snapshot of a Task taken when the task was
// finalized or reset (recurring tasks archive here before their next cycle).
// The original task row may no longer exist, so the snapshot carries every
// field the payout computation needs.
type Completion struct {
	ID             string
	TaskID         string
	Title          string
	Kind           Kind
	CompletedBy    *string
	AssigneeIDs    []string
	ApprovalStatus ApprovalStatus
	Status         Status
	NotApplicable  bool

	BonusPoints     decimal.Decimal
	BonusCurrency   decimal.Decimal
	PenaltyPoints   decimal.Decimal
	PenaltyCurrency decimal.Decimal

	DeadlineDate *time.Time
	DeadlineTime *string
	DueDate      *time.Time
	DueTime      *string

	AssignedAt  *time.Time
	TickedAt    *time.Time
	CompletedAt *time.Time
	ApprovedAt  *time.Time
	ProjectID   *string

	CreatedAt time.Time
}

// AssignedTo reports whether the task is assigned to the given employee,
// either directly or through the multi-assignee set.
func (t Task) AssignedTo(employeeID string) bool {
	for _, id := range t.AssigneeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// BelongsTo reports whether the archived completion concerns the given
// employee, matching the explicit completer first and the assignee set second.
func (c Completion) BelongsTo(employeeID string) bool {
	if c.CompletedBy != nil && *c.CompletedBy == employeeID {
		return true
	}
	for _, id := range c.AssigneeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
