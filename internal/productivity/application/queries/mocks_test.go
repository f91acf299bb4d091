package queries

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

// mockTaskRepo is a mock implementation of task.Repository.
type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *mockTaskRepo) FindOpen(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) FindAll(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockComparisonRepo is a mock implementation of task.ComparisonRepository.
type mockComparisonRepo struct {
	mock.Mock
}

func (m *mockComparisonRepo) Append(ctx context.Context, c task.Comparison) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockComparisonRepo) ListRecent(ctx context.Context, limit int) ([]task.Comparison, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Comparison), args.Error(1)
}

func storedTask(id int64, title string, priority value_objects.BasePriority, elo float64, due *time.Time) *task.Task {
	now := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	return task.Rehydrate(id, title, "", priority, elo, 0, due, false, nil, now, now)
}
