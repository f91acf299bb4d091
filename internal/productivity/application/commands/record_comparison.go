package commands

import (
	"context"
	"errors"

	"github.com/taskelo/taskelo/internal/productivity/application/services"
	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

var (
	ErrSelfComparison = errors.New("a task cannot be compared against itself")
)

// RecordComparisonCommand records the outcome of a pairwise "which task
// first?" duel. A non-positive KFactor uses the default.
type RecordComparisonCommand struct {
	WinnerID int64
	LoserID  int64
	KFactor  float64
}

// RecordComparisonResult reports the rating movement.
type RecordComparisonResult struct {
	WinnerRating float64
	LoserRating  float64
}

// RecordComparisonHandler handles the RecordComparisonCommand.
type RecordComparisonHandler struct {
	taskRepo       task.Repository
	comparisonRepo task.ComparisonRepository
}

// NewRecordComparisonHandler creates a new RecordComparisonHandler.
func NewRecordComparisonHandler(taskRepo task.Repository, comparisonRepo task.ComparisonRepository) *RecordComparisonHandler {
	return &RecordComparisonHandler{
		taskRepo:       taskRepo,
		comparisonRepo: comparisonRepo,
	}
}

// Handle executes the RecordComparisonCommand: it applies the Elo update to
// both tasks, persists the new ratings, and appends an audit record. The
// next ranking pass reflects the movement deterministically.
func (h *RecordComparisonHandler) Handle(ctx context.Context, cmd RecordComparisonCommand) (*RecordComparisonResult, error) {
	if cmd.WinnerID == cmd.LoserID {
		return nil, ErrSelfComparison
	}

	winner, err := h.taskRepo.FindByID(ctx, cmd.WinnerID)
	if err != nil {
		return nil, err
	}
	loser, err := h.taskRepo.FindByID(ctx, cmd.LoserID)
	if err != nil {
		return nil, err
	}

	winnerBefore, loserBefore := winner.EloRating(), loser.EloRating()
	winnerAfter, loserAfter := services.ApplyComparison(winnerBefore, loserBefore, cmd.KFactor)

	winner.RecordComparison(winnerAfter)
	loser.RecordComparison(loserAfter)

	if err := h.taskRepo.Save(ctx, winner); err != nil {
		return nil, err
	}
	if err := h.taskRepo.Save(ctx, loser); err != nil {
		return nil, err
	}

	audit := task.NewComparison(cmd.WinnerID, cmd.LoserID, winnerBefore, winnerAfter, loserBefore, loserAfter)
	if err := h.comparisonRepo.Append(ctx, audit); err != nil {
		return nil, err
	}

	return &RecordComparisonResult{
		WinnerRating: winnerAfter,
		LoserRating:  loserAfter,
	}, nil
}
