package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

// SQLiteComparisonRepository implements task.ComparisonRepository using
// SQLite.
type SQLiteComparisonRepository struct {
	db *sql.DB
}

// NewSQLiteComparisonRepository creates a new SQLite comparison repository.
func NewSQLiteComparisonRepository(db *sql.DB) *SQLiteComparisonRepository {
	return &SQLiteComparisonRepository{db: db}
}

// Append stores one comparison audit record.
func (r *SQLiteComparisonRepository) Append(ctx context.Context, c task.Comparison) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comparisons (id, winner_id, loser_id, winner_before, winner_after,
			loser_before, loser_after, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.WinnerID, c.LoserID, c.WinnerBefore, c.WinnerAfter,
		c.LoserBefore, c.LoserAfter, c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting comparison: %w", err)
	}
	return nil
}

// ListRecent returns the most recent comparisons, newest first.
func (r *SQLiteComparisonRepository) ListRecent(ctx context.Context, limit int) ([]task.Comparison, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, winner_id, loser_id, winner_before, winner_after,
			loser_before, loser_after, created_at
		 FROM comparisons ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparisons []task.Comparison
	for rows.Next() {
		var (
			c         task.Comparison
			id        string
			createdAt string
		)
		if err := rows.Scan(&id, &c.WinnerID, &c.LoserID, &c.WinnerBefore, &c.WinnerAfter,
			&c.LoserBefore, &c.LoserAfter, &createdAt); err != nil {
			return nil, err
		}
		c.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid comparison id in database: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at in database: %w", err)
		}
		comparisons = append(comparisons, c)
	}
	return comparisons, rows.Err()
}
