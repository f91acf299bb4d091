package queries

import (
	"context"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/application/services"
	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

// GetBreakdownQuery requests the full score breakdown for one task.
// A zero ReferenceDate means today.
type GetBreakdownQuery struct {
	TaskID        int64
	ReferenceDate time.Time
}

// GetBreakdownHandler handles the GetBreakdownQuery.
type GetBreakdownHandler struct {
	taskRepo task.Repository
	engine   *services.ScoringEngine
}

// NewGetBreakdownHandler creates a new GetBreakdownHandler.
func NewGetBreakdownHandler(taskRepo task.Repository, engine *services.ScoringEngine) *GetBreakdownHandler {
	return &GetBreakdownHandler{taskRepo: taskRepo, engine: engine}
}

// Handle executes the GetBreakdownQuery. Urgency is set-relative, so the
// whole open set is scored to obtain the target task's urgency; a completed
// task no longer belongs to any candidate set and is scored alone.
func (h *GetBreakdownHandler) Handle(ctx context.Context, q GetBreakdownQuery) (*services.ScoreBreakdown, error) {
	target, err := h.taskRepo.FindByID(ctx, q.TaskID)
	if err != nil {
		return nil, err
	}

	candidates, err := h.taskRepo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]services.TaskRef, 0, len(candidates)+1)
	found := false
	for _, t := range candidates {
		if t.ID() == target.ID() {
			found = true
		}
		refs = append(refs, services.NewTaskRef(t))
	}
	if !found {
		refs = append(refs, services.NewTaskRef(target))
	}

	urgency := h.engine.UrgencyBatch(refs, q.ReferenceDate)

	b, err := h.engine.Breakdown(services.NewTaskRef(target), urgency[target.ID()])
	if err != nil {
		return nil, err
	}
	return &b, nil
}
