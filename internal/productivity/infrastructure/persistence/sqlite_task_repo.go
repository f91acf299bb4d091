// Package persistence provides SQL-backed implementations of the
// productivity repositories for both SQLite and PostgreSQL.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

const (
	dateLayout = "2006-01-02"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save persists a task, inserting when it has no ID yet.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	dueDate := nullDate(t.DueDate())
	completedAt := nullTimestamp(t.CompletedAt())

	if !t.IsPersisted() {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO tasks (title, notes, base_priority, elo_rating, comparison_count,
				due_date, done, completed_at, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Title(), t.Notes(), t.BasePriority().Weight(), t.EloRating(), t.ComparisonCount(),
			dueDate, boolToInt(t.IsDone()), completedAt,
			t.CreatedAt().Format(time.RFC3339), t.UpdatedAt().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading inserted task id: %w", err)
		}
		t.SetID(id)
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, notes = ?, base_priority = ?, elo_rating = ?,
			comparison_count = ?, due_date = ?, done = ?, completed_at = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title(), t.Notes(), t.BasePriority().Weight(), t.EloRating(), t.ComparisonCount(),
		dueDate, boolToInt(t.IsDone()), completedAt, t.UpdatedAt().Format(time.RFC3339),
		t.ID(),
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTaskSQLite+` WHERE id = ?`, id)
	t, err := scanSQLiteTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// FindOpen retrieves all tasks that are not completed.
func (r *SQLiteTaskRepository) FindOpen(ctx context.Context) ([]*task.Task, error) {
	return r.findWhere(ctx, ` WHERE done = 0 ORDER BY id`)
}

// FindAll retrieves every task.
func (r *SQLiteTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	return r.findWhere(ctx, ` ORDER BY id`)
}

// Delete removes a task.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func (r *SQLiteTaskRepository) findWhere(ctx context.Context, clause string) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTaskSQLite+clause)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanSQLiteTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

const selectTaskSQLite = `SELECT id, title, notes, base_priority, elo_rating, comparison_count,
	due_date, done, completed_at, created_at, updated_at FROM tasks`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTask(row rowScanner) (*task.Task, error) {
	var (
		id              int64
		title, notes    string
		basePriority    int
		eloRating       float64
		comparisonCount int
		dueDate         sql.NullString
		done            int
		completedAt     sql.NullString
		createdAt       string
		updatedAt       string
	)

	if err := row.Scan(&id, &title, &notes, &basePriority, &eloRating, &comparisonCount,
		&dueDate, &done, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var due *time.Time
	if dueDate.Valid {
		d, err := time.ParseInLocation(dateLayout, dueDate.String, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date in database: %w", err)
		}
		due = &d
	}

	var completed *time.Time
	if completedAt.Valid {
		c, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid completed_at in database: %w", err)
		}
		completed = &c
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at in database: %w", err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at in database: %w", err)
	}

	return task.Rehydrate(id, title, notes, value_objects.BasePriority(basePriority),
		eloRating, comparisonCount, due, done != 0, completed, created, updated), nil
}

func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

func nullTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
