package cli

import (
	"github.com/taskelo/taskelo/internal/productivity/application/commands"
	"github.com/taskelo/taskelo/internal/productivity/application/queries"
	"github.com/taskelo/taskelo/internal/productivity/application/services"
)

// App holds the CLI application dependencies.
type App struct {
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

	// Settings
	EloKFactor   float64
	HistoryLimit int
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	createTaskHandler *commands.CreateTaskHandler,
	completeTaskHandler *commands.CompleteTaskHandler,
	updateTaskHandler *commands.UpdateTaskHandler,
	deleteTaskHandler *commands.DeleteTaskHandler,
	recordComparisonHandler *commands.RecordComparisonHandler,
	listRankedHandler *queries.ListRankedHandler,
	getBreakdownHandler *queries.GetBreakdownHandler,
	nextDuelHandler *queries.NextDuelHandler,
	listComparisonsHandler *queries.ListComparisonsHandler,
	transferService *services.TransferService,
) *App {
	return &App{
		CreateTaskHandler:       createTaskHandler,
		CompleteTaskHandler:     completeTaskHandler,
		UpdateTaskHandler:       updateTaskHandler,
		DeleteTaskHandler:       deleteTaskHandler,
		RecordComparisonHandler: recordComparisonHandler,
		ListRankedHandler:       listRankedHandler,
		GetBreakdownHandler:     getBreakdownHandler,
		NextDuelHandler:         nextDuelHandler,
		ListComparisonsHandler:  listComparisonsHandler,
		TransferService:         transferService,
	}
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
