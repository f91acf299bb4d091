package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskelo/taskelo/adapter/cli"
	"github.com/taskelo/taskelo/internal/app"
	"github.com/taskelo/taskelo/pkg/config"
	"github.com/taskelo/taskelo/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open the task store", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cliApp := cli.NewApp(
		container.CreateTaskHandler,
		container.CompleteTaskHandler,
		container.UpdateTaskHandler,
		container.DeleteTaskHandler,
		container.RecordComparisonHandler,
		container.ListRankedHandler,
		container.GetBreakdownHandler,
		container.NextDuelHandler,
		container.ListComparisonsHandler,
		container.TransferService,
	)
	cliApp.EloKFactor = cfg.EloKFactor
	cliApp.HistoryLimit = cfg.HistoryLimit
	cli.SetApp(cliApp)

	cli.Execute()
}
