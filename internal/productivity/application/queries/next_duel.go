package queries

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/application/services"
	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

var (
	// ErrNotEnoughTasks is returned when fewer than two open tasks exist,
	// so no pairwise comparison is possible.
	ErrNotEnoughTasks = errors.New("at least two open tasks are needed for a comparison")
)

// NextDuelQuery asks for the most informative next pairwise comparison.
// A zero ReferenceDate means today.
type NextDuelQuery struct {
	ReferenceDate time.Time
}

// DuelCandidateDTO is one side of a suggested comparison.
type DuelCandidateDTO struct {
	ID         int64
	Title      string
	EloRating  float64
	Importance float64
}

// NextDuelResult contains the suggested pair. Tied is true when both tasks
// have exactly equal importance, the case the ranking cannot resolve
// without user input.
type NextDuelResult struct {
	A    DuelCandidateDTO
	B    DuelCandidateDTO
	Tied bool
}

// NextDuelHandler handles the NextDuelQuery.
type NextDuelHandler struct {
	taskRepo task.Repository
	engine   *services.ScoringEngine
}

// NewNextDuelHandler creates a new NextDuelHandler.
func NewNextDuelHandler(taskRepo task.Repository, engine *services.ScoringEngine) *NextDuelHandler {
	return &NextDuelHandler{taskRepo: taskRepo, engine: engine}
}

// Handle executes the NextDuelQuery: it picks the open pair with the
// smallest importance gap, preferring exact ties. Comparing near-equals
// moves the ranking the most per answer.
func (h *NextDuelHandler) Handle(ctx context.Context, q NextDuelQuery) (*NextDuelResult, error) {
	tasks, err := h.taskRepo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]services.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		if t.ID() == 0 {
			continue
		}
		refs = append(refs, services.NewTaskRef(t))
	}
	if len(refs) < 2 {
		return nil, ErrNotEnoughTasks
	}

	importance, err := h.engine.ImportanceBatch(refs, q.ReferenceDate)
	if err != nil {
		return nil, err
	}

	bestI, bestJ := -1, -1
	bestGap := math.Inf(1)
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			gap := math.Abs(importance[refs[i].ID] - importance[refs[j].ID])
			if gap < bestGap {
				bestGap = gap
				bestI, bestJ = i, j
			}
		}
	}

	a, b := refs[bestI], refs[bestJ]
	return &NextDuelResult{
		A: DuelCandidateDTO{
			ID:         a.ID,
			Title:      a.Title,
			EloRating:  a.EloRating,
			Importance: importance[a.ID],
		},
		B: DuelCandidateDTO{
			ID:         b.ID,
			Title:      b.Title,
			EloRating:  b.EloRating,
			Importance: importance[b.ID],
		},
		Tied: bestGap == 0,
	}, nil
}
