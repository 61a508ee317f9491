package earnings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/worklane/incentive-backend-go/internal/domain/task"
)

type outcomeKind int

const (
	outcomeNone outcomeKind = iota
	outcomeReward
	outcomePenalty
)

// ruleRecord is the normalized view the classifier operates on. Live tasks
// and archived completions both adapt into it.
type ruleRecord struct {
	Schedule      schedule
	Approval      task.ApprovalStatus
	Status        task.Status
	NotApplicable bool

	BonusPoints     decimal.Decimal
	BonusCurrency   decimal.Decimal
	PenaltyPoints   decimal.Decimal
	PenaltyCurrency decimal.Decimal

	TickedAt    *time.Time
	CompletedAt *time.Time
	ApprovedAt  *time.Time
	UpdatedAt   *time.Time
	CreatedAt   time.Time
}

func taskRule(t task.Task) ruleRecord {
	updated := t.UpdatedAt
	return ruleRecord{
		Schedule:        taskSchedule(t),
		Approval:        t.ApprovalStatus,
		Status:          t.Status,
		NotApplicable:   t.NotApplicable,
		BonusPoints:     t.BonusPoints,
		BonusCurrency:   t.BonusCurrency,
		PenaltyPoints:   t.PenaltyPoints,
		PenaltyCurrency: t.PenaltyCurrency,
		TickedAt:        t.TickedAt,
		CompletedAt:     t.CompletedAt,
		ApprovedAt:      t.ApprovedAt,
		UpdatedAt:       &updated,
		CreatedAt:       t.CreatedAt,
	}
}

func completionRule(c task.Completion) ruleRecord {
	return ruleRecord{
		Schedule:        completionSchedule(c),
		Approval:        c.ApprovalStatus,
		Status:          c.Status,
		NotApplicable:   c.NotApplicable,
		BonusPoints:     c.BonusPoints,
		BonusCurrency:   c.BonusCurrency,
		PenaltyPoints:   c.PenaltyPoints,
		PenaltyCurrency: c.PenaltyCurrency,
		TickedAt:        c.TickedAt,
		CompletedAt:     c.CompletedAt,
		ApprovedAt:      c.ApprovedAt,
		CreatedAt:       c.CreatedAt,
	}
}

// outcome is one classified occurrence. EventAt is the qualifying event the
// period filter tests; DeadlineAt is set only for late-completion penalties,
// where the resolved deadline is a second in-window candidate.
type outcome struct {
	Kind       outcomeKind
	EventAt    time.Time
	DeadlineAt *time.Time

	BonusPoints     decimal.Decimal
	BonusCurrency   decimal.Decimal
	PenaltyPoints   decimal.Decimal
	PenaltyCurrency decimal.Decimal
}

// classify runs the approval-status state machine over one record. A record
// yields at most one of reward or penalty per occurrence, never both.
func classify(rec ruleRecord, now time.Time) outcome {
	if rec.NotApplicable {
		return outcome{}
	}

	switch rec.Approval {
	case task.ApprovalApproved:
		if rec.Status == task.StatusCompleted {
			return classifyCompleted(rec, now)
		}
		return classifyOpen(rec, now)
	case task.ApprovalRejected, task.ApprovalDeadlinePassed:
		return classifyRejected(rec)
	default:
		// Pending approval: not actionable yet.
		return outcome{}
	}
}

// classifyCompleted judges an approved, finished record. The recurring
// deadline attaches to the day the task was assigned.
func classifyCompleted(rec ruleRecord, now time.Time) outcome {
	base := rec.CreatedAt
	if rec.Schedule.AssignedAt != nil {
		base = *rec.Schedule.AssignedAt
	}
	deadline := resolveDeadline(rec.Schedule, base, now)

	done := now
	if at := coalesceTime(rec.TickedAt, rec.CompletedAt, rec.UpdatedAt); at != nil {
		done = *at
	}

	if deadline != nil && done.After(*deadline) {
		return penaltyOutcome(rec, done, deadline)
	}
	if rec.BonusPoints.IsPositive() || rec.BonusCurrency.IsPositive() {
		return outcome{
			Kind:          outcomeReward,
			EventAt:       done,
			BonusPoints:   rec.BonusPoints,
			BonusCurrency: rec.BonusCurrency,
		}
	}
	return outcome{}
}

// classifyOpen judges an approved record that is not finished. The recurring
// deadline attaches to today: an open daily task is only overdue once today's
// instance of its deadline has passed.
func classifyOpen(rec ruleRecord, now time.Time) outcome {
	deadline := resolveDeadline(rec.Schedule, now, now)
	if deadline != nil && now.After(*deadline) {
		return penaltyOutcome(rec, *deadline, nil)
	}
	return outcome{}
}

// classifyRejected judges rejected and deadline_passed records, which carry a
// penalty only when one is configured.
func classifyRejected(rec ruleRecord) outcome {
	if !rec.PenaltyPoints.IsPositive() && !rec.PenaltyCurrency.IsPositive() {
		return outcome{}
	}
	event := rec.CreatedAt
	if at := coalesceTime(rec.ApprovedAt, rec.UpdatedAt); at != nil {
		event = *at
	}
	return penaltyOutcome(rec, event, nil)
}

func penaltyOutcome(rec ruleRecord, event time.Time, deadline *time.Time) outcome {
	return outcome{
		Kind:            outcomePenalty,
		EventAt:         event,
		DeadlineAt:      deadline,
		PenaltyPoints:   rec.PenaltyPoints,
		PenaltyCurrency: fallbackCurrency(rec.PenaltyCurrency, rec.PenaltyPoints),
	}
}

// fallbackCurrency implements the source-level compatibility shim: when no
// currency magnitude is configured, the points magnitude doubles as currency.
func fallbackCurrency(currency, points decimal.Decimal) decimal.Decimal {
	if currency.IsPositive() {
		return currency
	}
	return points
}

// coalesceTime returns the first non-nil, non-zero timestamp.
func coalesceTime(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}
