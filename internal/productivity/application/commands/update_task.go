package commands

import (
	"context"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

// UpdateTaskCommand changes task attributes. Nil pointer fields are left
// untouched; ClearDueDate removes an existing due date.
type UpdateTaskCommand struct {
	TaskID       int64
	Title        *string
	Notes        *string
	Priority     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return err
		}
	}

	if cmd.Notes != nil {
		t.SetNotes(*cmd.Notes)
	}

	if cmd.Priority != nil {
		priority, err := value_objects.ParseBasePriority(*cmd.Priority)
		if err != nil {
			return err
		}
		if err := t.SetBasePriority(priority); err != nil {
			return err
		}
	}

	switch {
	case cmd.ClearDueDate:
		t.SetDueDate(nil)
	case cmd.DueDate != nil:
		t.SetDueDate(cmd.DueDate)
	}

	return h.taskRepo.Save(ctx, t)
}
