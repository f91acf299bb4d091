package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskelo/taskelo/internal/productivity/application/services"
	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestListRankedHandler_Handle(t *testing.T) {
	ctx := context.Background()
	reference := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	t.Run("orders by importance with set-relative urgency", func(t *testing.T) {
		tasks := []*task.Task{
			storedTask(3, "someday", value_objects.BasePriorityLow, 1500, datePtr(2026, time.March, 15)),
			storedTask(1, "fire", value_objects.BasePriorityHigh, 1500, datePtr(2026, time.March, 11)),
			storedTask(4, "backlog", value_objects.BasePriorityMedium, 1500, nil),
			storedTask(2, "review", value_objects.BasePriorityMedium, 1500, datePtr(2026, time.March, 13)),
		}

		repo := new(mockTaskRepo)
		repo.On("FindOpen", mock.Anything).Return(tasks, nil)

		handler := NewListRankedHandler(repo, services.NewScoringEngine())
		result, err := handler.Handle(ctx, ListRankedQuery{ReferenceDate: reference})

		require.NoError(t, err)
		require.Len(t, result.Tasks, 4)

		ids := []int64{result.Tasks[0].ID, result.Tasks[1].ID, result.Tasks[2].ID, result.Tasks[3].ID}
		assert.Equal(t, []int64{1, 2, 4, 3}, ids)

		// Earliest due date in the set gets the full urgency multiplier.
		assert.InDelta(t, 7.5, result.Tasks[0].Importance, 1e-9)
		assert.InDelta(t, 3.0, result.Tasks[1].Importance, 1e-9)
		assert.InDelta(t, 1.5, result.Tasks[2].Importance, 1e-9)
		assert.InDelta(t, 0.5, result.Tasks[3].Importance, 1e-9)

		assert.Equal(t, "2026-03-11", result.Tasks[0].DueDate)
		assert.Equal(t, "", result.Tasks[2].DueDate)
		assert.Equal(t, "high", result.Tasks[0].BasePriority)

		for _, row := range result.Tasks {
			assert.False(t, row.Tied)
		}
	})

	t.Run("flags equal importance as tied", func(t *testing.T) {
		tasks := []*task.Task{
			storedTask(2, "b", value_objects.BasePriorityMedium, 1500, nil),
			storedTask(1, "a", value_objects.BasePriorityMedium, 1500, nil),
			storedTask(3, "c", value_objects.BasePriorityHigh, 1500, nil),
		}

		repo := new(mockTaskRepo)
		repo.On("FindOpen", mock.Anything).Return(tasks, nil)

		handler := NewListRankedHandler(repo, services.NewScoringEngine())
		result, err := handler.Handle(ctx, ListRankedQuery{ReferenceDate: reference})

		require.NoError(t, err)
		require.Len(t, result.Tasks, 3)
		assert.Equal(t, int64(3), result.Tasks[0].ID)
		assert.False(t, result.Tasks[0].Tied)
		// Tied rows keep ascending ID order.
		assert.Equal(t, int64(1), result.Tasks[1].ID)
		assert.True(t, result.Tasks[1].Tied)
		assert.Equal(t, int64(2), result.Tasks[2].ID)
		assert.True(t, result.Tasks[2].Tied)
	})

	t.Run("returns an empty list when nothing is open", func(t *testing.T) {
		repo := new(mockTaskRepo)
		repo.On("FindOpen", mock.Anything).Return([]*task.Task{}, nil)

		handler := NewListRankedHandler(repo, services.NewScoringEngine())
		result, err := handler.Handle(ctx, ListRankedQuery{ReferenceDate: reference})

		require.NoError(t, err)
		assert.Empty(t, result.Tasks)
	})
}
