// Package queries contains the read-side application handlers for the
// productivity context.
package queries

import (
	"context"
	"sort"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/application/services"
	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

// ListRankedQuery requests the open task list ordered by importance.
// A zero ReferenceDate means today.
type ListRankedQuery struct {
	ReferenceDate time.Time
}

// RankedTaskDTO is one row of the ranked list.
type RankedTaskDTO struct {
	ID                int64
	Title             string
	BasePriority      string
	EloRating         float64
	ComparisonCount   int
	EffectivePriority float64
	Urgency           float64
	Importance        float64
	DueDate           string // ISO date, empty when undated
	Tied              bool   // shares its importance with another task
}

// ListRankedResult contains the ranked tasks, highest importance first.
type ListRankedResult struct {
	Tasks []RankedTaskDTO
}

// ListRankedHandler handles the ListRankedQuery.
type ListRankedHandler struct {
	taskRepo task.Repository
	engine   *services.ScoringEngine
}

// NewListRankedHandler creates a new ListRankedHandler.
func NewListRankedHandler(taskRepo task.Repository, engine *services.ScoringEngine) *ListRankedHandler {
	return &ListRankedHandler{taskRepo: taskRepo, engine: engine}
}

// Handle executes the ListRankedQuery. The full open set is scored in one
// batch so every urgency is normalized against the same candidates; ties in
// importance are flagged as candidates for a pairwise comparison.
func (h *ListRankedHandler) Handle(ctx context.Context, q ListRankedQuery) (*ListRankedResult, error) {
	tasks, err := h.taskRepo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]services.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		refs = append(refs, services.NewTaskRef(t))
	}

	urgency := h.engine.UrgencyBatch(refs, q.ReferenceDate)

	rows := make([]RankedTaskDTO, 0, len(refs))
	importanceCount := make(map[float64]int, len(refs))
	for i, ref := range refs {
		if ref.ID == 0 {
			continue
		}
		b, err := h.engine.Breakdown(ref, urgency[ref.ID])
		if err != nil {
			return nil, err
		}
		rows = append(rows, RankedTaskDTO{
			ID:                b.TaskID,
			Title:             b.Title,
			BasePriority:      tasks[i].BasePriority().String(),
			EloRating:         b.EloRating,
			ComparisonCount:   b.ComparisonCount,
			EffectivePriority: b.EffectivePriority,
			Urgency:           b.Urgency,
			Importance:        b.Importance,
			DueDate:           b.DueDate,
		})
		importanceCount[b.Importance]++
	}

	for i := range rows {
		rows[i].Tied = importanceCount[rows[i].Importance] > 1
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Importance != rows[j].Importance {
			return rows[i].Importance > rows[j].Importance
		}
		// Stable tiebreaker so ties keep insertion order across runs.
		return rows[i].ID < rows[j].ID
	})

	return &ListRankedResult{Tasks: rows}, nil
}
