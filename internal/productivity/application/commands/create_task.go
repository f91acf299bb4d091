// Package commands contains the write-side application handlers for the
// productivity context.
package commands

import (
	"context"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title    string
	Notes    string
	Priority string
	DueDate  *time.Time
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID int64
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	t, err := task.NewTask(cmd.Title)
	if err != nil {
		return nil, err
	}

	if cmd.Notes != "" {
		t.SetNotes(cmd.Notes)
	}

	if cmd.Priority != "" {
		priority, err := value_objects.ParseBasePriority(cmd.Priority)
		if err != nil {
			return nil, err
		}
		if err := t.SetBasePriority(priority); err != nil {
			return nil, err
		}
	}

	if cmd.DueDate != nil {
		t.SetDueDate(cmd.DueDate)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return &CreateTaskResult{TaskID: t.ID()}, nil
}
