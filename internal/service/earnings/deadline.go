package earnings

import (
	"time"

	"github.com/worklane/incentive-backend-go/internal/domain/task"
	"github.com/worklane/incentive-backend-go/internal/pkg/validator"
)

// schedule is the deadline-bearing view of a record. Each aggregator adapts
// its own record shape into it before classification, so the resolver never
// branches on where a record came from.
type schedule struct {
	DeadlineDate *time.Time
	DeadlineTime *string
	DueDate      *time.Time
	DueTime      *string
	AssignedAt   *time.Time
	Recurring    bool
}

func taskSchedule(t task.Task) schedule {
	return schedule{
		DeadlineDate: t.DeadlineDate,
		DeadlineTime: t.DeadlineTime,
		DueDate:      t.DueDate,
		DueTime:      t.DueTime,
		AssignedAt:   t.AssignedAt,
		Recurring:    t.Kind.IsRecurring(),
	}
}

func completionSchedule(c task.Completion) schedule {
	return schedule{
		DeadlineDate: c.DeadlineDate,
		DeadlineTime: c.DeadlineTime,
		DueDate:      c.DueDate,
		DueTime:      c.DueTime,
		AssignedAt:   c.AssignedAt,
		Recurring:    c.Kind.IsRecurring(),
	}
}

// resolveDeadline derives the single effective deadline from the record's
// optional date/time fields. recurringBase is the day a recurring task's
// wall-clock deadline attaches to: the assignment day when judging a finished
// task, today when judging one that is still open. Returns nil when the
// record carries no deadline at all.
//
// Resolution order, first match wins:
//  1. DeadlineTime ("HH:MM") overlaid on the recurring base day, else on
//     DeadlineDate, else on today.
//  2. DeadlineDate at end of day.
//  3. DueDate with DueTime overlaid when present, else at end of day.
func resolveDeadline(s schedule, recurringBase, now time.Time) *time.Time {
	if s.DeadlineTime != nil && validator.IsValidClockTime(*s.DeadlineTime) {
		base := startOfDay(now)
		switch {
		case s.Recurring:
			base = startOfDay(recurringBase)
		case s.DeadlineDate != nil:
			base = startOfDay(*s.DeadlineDate)
		}
		dl := overlayClockTime(base, *s.DeadlineTime)
		return &dl
	}

	if s.DeadlineDate != nil {
		dl := endOfDay(*s.DeadlineDate)
		return &dl
	}

	if s.DueDate != nil {
		var dl time.Time
		if s.DueTime != nil && validator.IsValidClockTime(*s.DueTime) {
			dl = overlayClockTime(startOfDay(*s.DueDate), *s.DueTime)
		} else {
			dl = endOfDay(*s.DueDate)
		}
		return &dl
	}

	return nil
}

// overlayClockTime places an "HH:MM" wall-clock time onto the given day.
// The caller has already validated the clock string.
func overlayClockTime(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return endOfDay(day)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
