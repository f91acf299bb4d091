package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

func TestNewTask(t *testing.T) {
	t.Run("creates a task with defaults", func(t *testing.T) {
		tk, err := NewTask("buy milk")
		require.NoError(t, err)

		assert.Equal(t, int64(0), tk.ID())
		assert.False(t, tk.IsPersisted())
		assert.Equal(t, "buy milk", tk.Title())
		assert.Equal(t, value_objects.BasePriorityMedium, tk.BasePriority())
		assert.Equal(t, DefaultEloRating, tk.EloRating())
		assert.Zero(t, tk.ComparisonCount())
		assert.Nil(t, tk.DueDate())
		assert.False(t, tk.IsDone())
	})

	t.Run("trims the title", func(t *testing.T) {
		tk, err := NewTask("  buy milk  ")
		require.NoError(t, err)
		assert.Equal(t, "buy milk", tk.Title())
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		_, err := NewTask("   ")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}

func TestTask_SetDueDate(t *testing.T) {
	tk, err := NewTask("file taxes")
	require.NoError(t, err)

	t.Run("truncates to the calendar day", func(t *testing.T) {
		due := time.Date(2026, time.April, 15, 18, 30, 12, 0, time.UTC)
		tk.SetDueDate(&due)

		require.NotNil(t, tk.DueDate())
		assert.Equal(t, time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC), *tk.DueDate())
	})

	t.Run("clears the due date", func(t *testing.T) {
		tk.SetDueDate(nil)
		assert.Nil(t, tk.DueDate())
	})
}

func TestTask_SetBasePriority(t *testing.T) {
	tk, err := NewTask("water plants")
	require.NoError(t, err)

	require.NoError(t, tk.SetBasePriority(value_objects.BasePriorityHigh))
	assert.Equal(t, value_objects.BasePriorityHigh, tk.BasePriority())

	err = tk.SetBasePriority(value_objects.BasePriority(7))
	assert.ErrorIs(t, err, value_objects.ErrInvalidBasePriority)
	assert.Equal(t, value_objects.BasePriorityHigh, tk.BasePriority())
}

func TestTask_RecordComparison(t *testing.T) {
	tk, err := NewTask("review pull request")
	require.NoError(t, err)

	tk.RecordComparison(1516.0)
	tk.RecordComparison(1530.5)

	assert.Equal(t, 1530.5, tk.EloRating())
	assert.Equal(t, 2, tk.ComparisonCount())
}

func TestTask_Complete(t *testing.T) {
	tk, err := NewTask("ship release")
	require.NoError(t, err)

	require.NoError(t, tk.Complete())
	assert.True(t, tk.IsDone())
	require.NotNil(t, tk.CompletedAt())

	assert.ErrorIs(t, tk.Complete(), ErrTaskAlreadyComplete)

	tk.Reopen()
	assert.False(t, tk.IsDone())
	assert.Nil(t, tk.CompletedAt())
}

func TestRehydrate(t *testing.T) {
	due := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)

	tk := Rehydrate(42, "plan offsite", "book venue first", value_objects.BasePriorityHigh,
		1620.5, 3, &due, false, nil, created, created)

	assert.Equal(t, int64(42), tk.ID())
	assert.True(t, tk.IsPersisted())
	assert.Equal(t, "plan offsite", tk.Title())
	assert.Equal(t, "book venue first", tk.Notes())
	assert.Equal(t, 1620.5, tk.EloRating())
	assert.Equal(t, 3, tk.ComparisonCount())
	assert.Equal(t, due, *tk.DueDate())
	assert.Equal(t, created, tk.CreatedAt())
}
