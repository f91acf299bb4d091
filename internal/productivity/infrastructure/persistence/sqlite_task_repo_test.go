package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
	"github.com/taskelo/taskelo/internal/shared/infrastructure/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, database.DriverSQLite))
	return db
}

func TestSQLiteTaskRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteTaskRepository(openTestDB(t))

	t.Run("insert assigns an ID", func(t *testing.T) {
		tk, err := task.NewTask("write design doc")
		require.NoError(t, err)
		require.False(t, tk.IsPersisted())

		require.NoError(t, repo.Save(ctx, tk))
		assert.True(t, tk.IsPersisted())
	})

	t.Run("round-trips every field", func(t *testing.T) {
		tk, err := task.NewTask("prepare demo")
		require.NoError(t, err)
		require.NoError(t, tk.SetBasePriority(value_objects.BasePriorityHigh))
		tk.SetNotes("use the staging environment")
		tk.SetEloRating(1612.5)
		due := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		tk.SetDueDate(&due)

		require.NoError(t, repo.Save(ctx, tk))

		got, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)

		assert.Equal(t, tk.ID(), got.ID())
		assert.Equal(t, "prepare demo", got.Title())
		assert.Equal(t, "use the staging environment", got.Notes())
		assert.Equal(t, value_objects.BasePriorityHigh, got.BasePriority())
		assert.Equal(t, 1612.5, got.EloRating())
		require.NotNil(t, got.DueDate())
		assert.Equal(t, due, *got.DueDate())
		assert.False(t, got.IsDone())
	})

	t.Run("update persists rating and completion", func(t *testing.T) {
		tk, err := task.NewTask("migrate database")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tk))

		tk.RecordComparison(1532.0)
		require.NoError(t, tk.Complete())
		require.NoError(t, repo.Save(ctx, tk))

		got, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, 1532.0, got.EloRating())
		assert.Equal(t, 1, got.ComparisonCount())
		assert.True(t, got.IsDone())
		assert.NotNil(t, got.CompletedAt())
	})

	t.Run("missing task returns ErrTaskNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}

func TestSQLiteTaskRepository_FindOpen(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteTaskRepository(openTestDB(t))

	open, err := task.NewTask("open task")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, open))

	done, err := task.NewTask("done task")
	require.NoError(t, err)
	require.NoError(t, done.Complete())
	require.NoError(t, repo.Save(ctx, done))

	openTasks, err := repo.FindOpen(ctx)
	require.NoError(t, err)
	require.Len(t, openTasks, 1)
	assert.Equal(t, open.ID(), openTasks[0].ID())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteTaskRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteTaskRepository(openTestDB(t))

	tk, err := task.NewTask("temporary")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err = repo.FindByID(ctx, tk.ID())
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	// Deleting an absent task is not an error.
	assert.NoError(t, repo.Delete(ctx, tk.ID()))
}

func TestSQLiteComparisonRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	taskRepo := NewSQLiteTaskRepository(db)
	repo := NewSQLiteComparisonRepository(db)

	a, err := task.NewTask("task a")
	require.NoError(t, err)
	require.NoError(t, taskRepo.Save(ctx, a))
	b, err := task.NewTask("task b")
	require.NoError(t, err)
	require.NoError(t, taskRepo.Save(ctx, b))

	c := task.NewComparison(a.ID(), b.ID(), 1500, 1516, 1500, 1484)
	require.NoError(t, repo.Append(ctx, c))

	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, c.ID, recent[0].ID)
	assert.Equal(t, a.ID(), recent[0].WinnerID)
	assert.Equal(t, 1516.0, recent[0].WinnerAfter)
}
