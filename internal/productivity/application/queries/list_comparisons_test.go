package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

func TestListComparisonsHandler_Handle(t *testing.T) {
	ctx := context.Background()

	comparison := func(winnerID, loserID int64) task.Comparison {
		return task.Comparison{
			ID:           uuid.New(),
			WinnerID:     winnerID,
			LoserID:      loserID,
			WinnerBefore: 1500,
			WinnerAfter:  1516,
			LoserBefore:  1500,
			LoserAfter:   1484,
			CreatedAt:    time.Date(2026, time.March, 9, 18, 0, 0, 0, time.UTC),
		}
	}

	t.Run("resolves titles and memoizes lookups", func(t *testing.T) {
		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(1)).
			Return(storedTask(1, "alpha", value_objects.BasePriorityMedium, 1516, nil), nil).Once()
		repo.On("FindByID", mock.Anything, int64(2)).
			Return(storedTask(2, "beta", value_objects.BasePriorityMedium, 1484, nil), nil).Once()

		comparisonRepo := new(mockComparisonRepo)
		comparisonRepo.On("ListRecent", mock.Anything, 20).
			Return([]task.Comparison{comparison(1, 2), comparison(2, 1)}, nil)

		handler := NewListComparisonsHandler(repo, comparisonRepo)
		dtos, err := handler.Handle(ctx, ListComparisonsQuery{})

		require.NoError(t, err)
		require.Len(t, dtos, 2)
		assert.Equal(t, "alpha", dtos[0].WinnerTitle)
		assert.Equal(t, "beta", dtos[0].LoserTitle)
		assert.Equal(t, "beta", dtos[1].WinnerTitle)
		assert.Equal(t, 1516.0, dtos[0].WinnerAfter)
		repo.AssertExpectations(t)
	})

	t.Run("leaves titles of deleted tasks empty", func(t *testing.T) {
		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(1)).
			Return(storedTask(1, "alpha", value_objects.BasePriorityMedium, 1516, nil), nil)
		repo.On("FindByID", mock.Anything, int64(2)).Return(nil, task.ErrTaskNotFound)

		comparisonRepo := new(mockComparisonRepo)
		comparisonRepo.On("ListRecent", mock.Anything, 20).
			Return([]task.Comparison{comparison(1, 2)}, nil)

		handler := NewListComparisonsHandler(repo, comparisonRepo)
		dtos, err := handler.Handle(ctx, ListComparisonsQuery{})

		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "alpha", dtos[0].WinnerTitle)
		assert.Equal(t, "", dtos[0].LoserTitle)
	})

	t.Run("passes an explicit limit through", func(t *testing.T) {
		comparisonRepo := new(mockComparisonRepo)
		comparisonRepo.On("ListRecent", mock.Anything, 5).Return([]task.Comparison{}, nil)

		handler := NewListComparisonsHandler(new(mockTaskRepo), comparisonRepo)
		dtos, err := handler.Handle(ctx, ListComparisonsQuery{Limit: 5})

		require.NoError(t, err)
		assert.Empty(t, dtos)
		comparisonRepo.AssertExpectations(t)
	})
}
