// Package app wires configuration, storage, and application handlers into
// one container consumed by the CLI.
package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/taskelo/taskelo/internal/productivity/application/commands"
	"github.com/taskelo/taskelo/internal/productivity/application/queries"
	"github.com/taskelo/taskelo/internal/productivity/application/services"
	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/infrastructure/persistence"
	"github.com/taskelo/taskelo/internal/shared/infrastructure/database"
	"github.com/taskelo/taskelo/pkg/config"
)

// Container holds every initialized dependency.
type Container struct {
	DB     *sql.DB
	Driver database.Driver

	TaskRepository       task.Repository
	ComparisonRepository task.ComparisonRepository

	ScoringEngine *services.ScoringEngine

	// Command Handlers
	CreateTaskHandler       *commands.CreateTaskHandler
	CompleteTaskHandler     *commands.CompleteTaskHandler
	UpdateTaskHandler       *commands.UpdateTaskHandler
	DeleteTaskHandler       *commands.DeleteTaskHandler
	RecordComparisonHandler *commands.RecordComparisonHandler

	// Query Handlers
	ListRankedHandler      *queries.ListRankedHandler
	GetBreakdownHandler    *queries.GetBreakdownHandler
	NextDuelHandler        *queries.NextDuelHandler
	ListComparisonsHandler *queries.ListComparisonsHandler

	// Services
	TransferService *services.TransferService
}

// NewContainer opens the task store and builds all handlers.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	db, driver, err := database.Open(ctx, database.Config{
		Driver:     database.Driver(cfg.DBDriver),
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.DBPath,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("database opened", "driver", driver.String())

	var taskRepo task.Repository
	var comparisonRepo task.ComparisonRepository
	switch driver {
	case database.DriverPostgres:
		taskRepo = persistence.NewPostgresTaskRepository(db)
		comparisonRepo = persistence.NewPostgresComparisonRepository(db)
	default:
		taskRepo = persistence.NewSQLiteTaskRepository(db)
		comparisonRepo = persistence.NewSQLiteComparisonRepository(db)
	}

	engine := services.NewScoringEngine()

	return &Container{
		DB:                   db,
		Driver:               driver,
		TaskRepository:       taskRepo,
		ComparisonRepository: comparisonRepo,
		ScoringEngine:        engine,

		CreateTaskHandler:       commands.NewCreateTaskHandler(taskRepo),
		CompleteTaskHandler:     commands.NewCompleteTaskHandler(taskRepo),
		UpdateTaskHandler:       commands.NewUpdateTaskHandler(taskRepo),
		DeleteTaskHandler:       commands.NewDeleteTaskHandler(taskRepo),
		RecordComparisonHandler: commands.NewRecordComparisonHandler(taskRepo, comparisonRepo),

		ListRankedHandler:      queries.NewListRankedHandler(taskRepo, engine),
		GetBreakdownHandler:    queries.NewGetBreakdownHandler(taskRepo, engine),
		NextDuelHandler:        queries.NewNextDuelHandler(taskRepo, engine),
		ListComparisonsHandler: queries.NewListComparisonsHandler(taskRepo, comparisonRepo),

		TransferService: services.NewTransferService(taskRepo),
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
