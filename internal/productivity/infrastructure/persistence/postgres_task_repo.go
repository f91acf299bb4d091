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

// PostgresTaskRepository implements task.Repository using PostgreSQL via
// the pgx stdlib driver.
type PostgresTaskRepository struct {
	db *sql.DB
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

// Save persists a task, inserting when it has no ID yet.
func (r *PostgresTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if !t.IsPersisted() {
		var id int64
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO tasks (title, notes, base_priority, elo_rating, comparison_count,
				due_date, done, completed_at, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			t.Title(), t.Notes(), t.BasePriority().Weight(), t.EloRating(), t.ComparisonCount(),
			t.DueDate(), t.IsDone(), t.CompletedAt(), t.CreatedAt(), t.UpdatedAt(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		t.SetID(id)
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = $1, notes = $2, base_priority = $3, elo_rating = $4,
			comparison_count = $5, due_date = $6, done = $7, completed_at = $8, updated_at = $9
		 WHERE id = $10`,
		t.Title(), t.Notes(), t.BasePriority().Weight(), t.EloRating(), t.ComparisonCount(),
		t.DueDate(), t.IsDone(), t.CompletedAt(), t.UpdatedAt(),
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
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTaskPostgres+` WHERE id = $1`, id)
	t, err := scanPostgresTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// FindOpen retrieves all tasks that are not completed.
func (r *PostgresTaskRepository) FindOpen(ctx context.Context) ([]*task.Task, error) {
	return r.findWhere(ctx, ` WHERE NOT done ORDER BY id`)
}

// FindAll retrieves every task.
func (r *PostgresTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	return r.findWhere(ctx, ` ORDER BY id`)
}

// Delete removes a task.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *PostgresTaskRepository) findWhere(ctx context.Context, clause string) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTaskPostgres+clause)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanPostgresTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

const selectTaskPostgres = `SELECT id, title, notes, base_priority, elo_rating, comparison_count,
	due_date, done, completed_at, created_at, updated_at FROM tasks`

func scanPostgresTask(row rowScanner) (*task.Task, error) {
	var (
		id              int64
		title, notes    string
		basePriority    int
		eloRating       float64
		comparisonCount int
		dueDate         sql.NullTime
		done            bool
		completedAt     sql.NullTime
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	if err := row.Scan(&id, &title, &notes, &basePriority, &eloRating, &comparisonCount,
		&dueDate, &done, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var due, completed *time.Time
	if dueDate.Valid {
		d := dueDate.Time.UTC()
		due = &d
	}
	if completedAt.Valid {
		c := completedAt.Time.UTC()
		completed = &c
	}

	return task.Rehydrate(id, title, notes, value_objects.BasePriority(basePriority),
		eloRating, comparisonCount, due, done, completed,
		createdAt.Time.UTC(), updatedAt.Time.UTC()), nil
}
