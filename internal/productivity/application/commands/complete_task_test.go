package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

func TestCompleteTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("completes and saves the task", func(t *testing.T) {
		tk := rehydratedTask(5, "ship release", 1500)

		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(5)).Return(tk, nil)
		repo.On("Save", mock.Anything, tk).Return(nil)

		handler := NewCompleteTaskHandler(repo)
		require.NoError(t, handler.Handle(ctx, CompleteTaskCommand{TaskID: 5}))

		assert.True(t, tk.IsDone())
		repo.AssertExpectations(t)
	})

	t.Run("fails for an already completed task", func(t *testing.T) {
		tk := rehydratedTask(5, "ship release", 1500)
		require.NoError(t, tk.Complete())

		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(5)).Return(tk, nil)

		handler := NewCompleteTaskHandler(repo)
		err := handler.Handle(ctx, CompleteTaskCommand{TaskID: 5})
		assert.ErrorIs(t, err, task.ErrTaskAlreadyComplete)
	})

	t.Run("fails for a missing task", func(t *testing.T) {
		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(9)).Return(nil, task.ErrTaskNotFound)

		handler := NewCompleteTaskHandler(repo)
		err := handler.Handle(ctx, CompleteTaskCommand{TaskID: 9})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}

func TestUpdateTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		tk := rehydratedTask(3, "old title", 1500)

		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(3)).Return(tk, nil)
		repo.On("Save", mock.Anything, tk).Return(nil)

		title := "new title"
		priority := "low"
		handler := NewUpdateTaskHandler(repo)
		require.NoError(t, handler.Handle(ctx, UpdateTaskCommand{
			TaskID:   3,
			Title:    &title,
			Priority: &priority,
		}))

		assert.Equal(t, "new title", tk.Title())
		assert.Equal(t, "low", tk.BasePriority().String())
		assert.Equal(t, "", tk.Notes())
	})

	t.Run("clears the due date", func(t *testing.T) {
		tk := rehydratedTask(3, "dated", 1500)
		due := tk.CreatedAt()
		tk.SetDueDate(&due)

		repo := new(mockTaskRepo)
		repo.On("FindByID", mock.Anything, int64(3)).Return(tk, nil)
		repo.On("Save", mock.Anything, tk).Return(nil)

		handler := NewUpdateTaskHandler(repo)
		require.NoError(t, handler.Handle(ctx, UpdateTaskCommand{TaskID: 3, ClearDueDate: true}))

		assert.Nil(t, tk.DueDate())
	})
}

func TestDeleteTaskHandler_Handle(t *testing.T) {
	repo := new(mockTaskRepo)
	repo.On("Delete", mock.Anything, int64(11)).Return(nil)

	handler := NewDeleteTaskHandler(repo)
	require.NoError(t, handler.Handle(context.Background(), DeleteTaskCommand{TaskID: 11}))
	repo.AssertExpectations(t)
}
