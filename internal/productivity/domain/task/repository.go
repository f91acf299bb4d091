package task

import (
	"context"
	"errors"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// Repository defines persistence operations for tasks.
type Repository interface {
	// Save inserts the task if it has no ID yet, otherwise updates it.
	// On insert the generated ID is assigned to the task.
	Save(ctx context.Context, t *Task) error

	// FindByID retrieves a single task. Returns ErrTaskNotFound if absent.
	FindByID(ctx context.Context, id int64) (*Task, error)

	// FindOpen retrieves all tasks that are not completed, the candidate
	// set for ranking.
	FindOpen(ctx context.Context) ([]*Task, error)

	// FindAll retrieves every task, including completed ones.
	FindAll(ctx context.Context) ([]*Task, error)

	// Delete removes a task. Deleting an absent task is not an error.
	Delete(ctx context.Context, id int64) error
}

// ComparisonRepository defines persistence for the pairwise comparison
// audit log.
type ComparisonRepository interface {
	Append(ctx context.Context, c Comparison) error
	ListRecent(ctx context.Context, limit int) ([]Comparison, error)
}
