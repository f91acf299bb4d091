package task

import (
	"errors"
	"strings"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

var (
	ErrEmptyTitle          = errors.New("task title cannot be empty")
	ErrTaskAlreadyComplete = errors.New("task is already completed")
)

// DefaultEloRating is the rating assigned to every new task before any
// pairwise comparison has been recorded.
const DefaultEloRating = 1500.0

// Task represents a unit of work to be done.
type Task struct {
	id              int64
	title           string
	notes           string
	basePriority    value_objects.BasePriority
	eloRating       float64
	comparisonCount int
	dueDate         *time.Time
	done            bool
	completedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTask creates a new task with the given title. The task has no ID until
// it is persisted; unsaved tasks are skipped by the batch scoring maps.
func NewTask(title string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now().UTC()
	return &Task{
		title:        title,
		basePriority: value_objects.BasePriorityMedium,
		eloRating:    DefaultEloRating,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Rehydrate reconstructs a task from persisted state. Used only by
// repositories.
func Rehydrate(
	id int64,
	title, notes string,
	basePriority value_objects.BasePriority,
	eloRating float64,
	comparisonCount int,
	dueDate *time.Time,
	done bool,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		id:              id,
		title:           title,
		notes:           notes,
		basePriority:    basePriority,
		eloRating:       eloRating,
		comparisonCount: comparisonCount,
		dueDate:         dueDate,
		done:            done,
		completedAt:     completedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Getters

func (t *Task) ID() int64                                { return t.id }
func (t *Task) Title() string                            { return t.title }
func (t *Task) Notes() string                            { return t.notes }
func (t *Task) BasePriority() value_objects.BasePriority { return t.basePriority }
func (t *Task) EloRating() float64                       { return t.eloRating }
func (t *Task) ComparisonCount() int                     { return t.comparisonCount }
func (t *Task) DueDate() *time.Time                      { return t.dueDate }
func (t *Task) CompletedAt() *time.Time                  { return t.completedAt }
func (t *Task) CreatedAt() time.Time                     { return t.createdAt }
func (t *Task) UpdatedAt() time.Time                     { return t.updatedAt }
func (t *Task) IsDone() bool                             { return t.done }
func (t *Task) IsPersisted() bool                        { return t.id != 0 }

// SetID assigns the persisted identifier. Repositories call this once after
// the initial insert.
func (t *Task) SetID(id int64) {
	t.id = id
}

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.touch()
	return nil
}

// SetNotes updates the free-form notes.
func (t *Task) SetNotes(notes string) {
	t.notes = strings.TrimSpace(notes)
	t.touch()
}

// SetBasePriority updates the coarse priority tier.
func (t *Task) SetBasePriority(p value_objects.BasePriority) error {
	if !p.IsValid() {
		return value_objects.ErrInvalidBasePriority
	}
	t.basePriority = p
	t.touch()
	return nil
}

// SetEloRating replaces the pairwise-comparison rating. Values outside the
// nominal 1000-2000 domain are stored as-is; the scoring engine clamps.
func (t *Task) SetEloRating(rating float64) {
	t.eloRating = rating
	t.touch()
}

// RecordComparison applies a new rating from a pairwise comparison and bumps
// the comparison counter.
func (t *Task) RecordComparison(newRating float64) {
	t.eloRating = newRating
	t.comparisonCount++
	t.touch()
}

// SetDueDate updates the due date. The time component is discarded; due
// dates are calendar days.
func (t *Task) SetDueDate(due *time.Time) {
	if due != nil {
		day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
		t.dueDate = &day
	} else {
		t.dueDate = nil
	}
	t.touch()
}

// Complete marks the task as done.
func (t *Task) Complete() error {
	if t.done {
		return ErrTaskAlreadyComplete
	}
	now := time.Now().UTC()
	t.done = true
	t.completedAt = &now
	t.touch()
	return nil
}

// Reopen clears the done flag so the task ranks again.
func (t *Task) Reopen() {
	t.done = false
	t.completedAt = nil
	t.touch()
}

func (t *Task) touch() {
	t.updatedAt = time.Now().UTC()
}
