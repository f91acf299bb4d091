package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

// PostgresComparisonRepository implements task.ComparisonRepository using
// PostgreSQL.
type PostgresComparisonRepository struct {
	db *sql.DB
}

// NewPostgresComparisonRepository creates a new PostgreSQL comparison
// repository.
func NewPostgresComparisonRepository(db *sql.DB) *PostgresComparisonRepository {
	return &PostgresComparisonRepository{db: db}
}

// Append stores one comparison audit record.
func (r *PostgresComparisonRepository) Append(ctx context.Context, c task.Comparison) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comparisons (id, winner_id, loser_id, winner_before, winner_after,
			loser_before, loser_after, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID.String(), c.WinnerID, c.LoserID, c.WinnerBefore, c.WinnerAfter,
		c.LoserBefore, c.LoserAfter, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting comparison: %w", err)
	}
	return nil
}

// ListRecent returns the most recent comparisons, newest first.
func (r *PostgresComparisonRepository) ListRecent(ctx context.Context, limit int) ([]task.Comparison, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, winner_id, loser_id, winner_before, winner_after,
			loser_before, loser_after, created_at
		 FROM comparisons ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparisons []task.Comparison
	for rows.Next() {
		var (
			c  task.Comparison
			id string
		)
		if err := rows.Scan(&id, &c.WinnerID, &c.LoserID, &c.WinnerBefore, &c.WinnerAfter,
			&c.LoserBefore, &c.LoserAfter, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid comparison id in database: %w", err)
		}
		comparisons = append(comparisons, c)
	}
	return comparisons, rows.Err()
}
