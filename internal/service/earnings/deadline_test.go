package earnings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func TestResolveDeadline_ClockTimeOnRecurringBase(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	base := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

	s := schedule{
		DeadlineTime: strPtr("18:00"),
		DeadlineDate: timePtr(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
		Recurring:    true,
	}

	got := resolveDeadline(s, base, now)
	require.NotNil(t, got)
	// Recurring wins over DeadlineDate: the clock attaches to the base day.
	assert.Equal(t, time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), *got)
}

func TestResolveDeadline_ClockTimeOnDeadlineDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	s := schedule{
		DeadlineTime: strPtr("18:00"),
		DeadlineDate: timePtr(time.Date(2024, 3, 12, 10, 11, 12, 0, time.UTC)),
	}

	got := resolveDeadline(s, now, now)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC), *got)
}

func TestResolveDeadline_ClockTimeFallsBackToToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	s := schedule{DeadlineTime: strPtr("09:30")}

	got := resolveDeadline(s, now, now)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), *got)
}

func TestResolveDeadline_DeadlineDateEndOfDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	s := schedule{DeadlineDate: timePtr(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))}

	got := resolveDeadline(s, now, now)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 12, 23, 59, 59, 999000000, time.UTC), *got)
}

func TestResolveDeadline_DueDateWithAndWithoutTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	due := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	withTime := resolveDeadline(schedule{DueDate: timePtr(due), DueTime: strPtr("12:15")}, now, now)
	require.NotNil(t, withTime)
	assert.Equal(t, time.Date(2024, 3, 14, 12, 15, 0, 0, time.UTC), *withTime)

	withoutTime := resolveDeadline(schedule{DueDate: timePtr(due)}, now, now)
	require.NotNil(t, withoutTime)
	assert.Equal(t, time.Date(2024, 3, 14, 23, 59, 59, 999000000, time.UTC), *withoutTime)
}

func TestResolveDeadline_NoFieldsYieldsNil(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	assert.Nil(t, resolveDeadline(schedule{}, now, now))
}

func TestResolveDeadline_InvalidClockStringFallsThrough(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	s := schedule{
		DeadlineTime: strPtr("25:99"),
		DeadlineDate: timePtr(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
	}

	got := resolveDeadline(s, now, now)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 12, 23, 59, 59, 999000000, time.UTC), *got)
}
