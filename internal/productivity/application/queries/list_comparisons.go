package queries

import (
	"context"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
)

// ListComparisonsQuery requests the most recent comparison audit records.
type ListComparisonsQuery struct {
	Limit int
}

// ComparisonDTO is one audit record with resolved task titles.
type ComparisonDTO struct {
	WinnerID     int64
	WinnerTitle  string
	LoserID      int64
	LoserTitle   string
	WinnerBefore float64
	WinnerAfter  float64
	LoserBefore  float64
	LoserAfter   float64
	CreatedAt    time.Time
}

// ListComparisonsHandler handles the ListComparisonsQuery.
type ListComparisonsHandler struct {
	taskRepo       task.Repository
	comparisonRepo task.ComparisonRepository
}

// NewListComparisonsHandler creates a new ListComparisonsHandler.
func NewListComparisonsHandler(taskRepo task.Repository, comparisonRepo task.ComparisonRepository) *ListComparisonsHandler {
	return &ListComparisonsHandler{taskRepo: taskRepo, comparisonRepo: comparisonRepo}
}

// Handle executes the ListComparisonsQuery. Titles of deleted tasks come
// back empty rather than failing the listing.
func (h *ListComparisonsHandler) Handle(ctx context.Context, q ListComparisonsQuery) ([]ComparisonDTO, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	comparisons, err := h.comparisonRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	titles := make(map[int64]string)
	titleOf := func(id int64) string {
		if title, ok := titles[id]; ok {
			return title
		}
		t, err := h.taskRepo.FindByID(ctx, id)
		if err != nil {
			titles[id] = ""
			return ""
		}
		titles[id] = t.Title()
		return t.Title()
	}

	dtos := make([]ComparisonDTO, 0, len(comparisons))
	for _, c := range comparisons {
		dtos = append(dtos, ComparisonDTO{
			WinnerID:     c.WinnerID,
			WinnerTitle:  titleOf(c.WinnerID),
			LoserID:      c.LoserID,
			LoserTitle:   titleOf(c.LoserID),
			WinnerBefore: c.WinnerBefore,
			WinnerAfter:  c.WinnerAfter,
			LoserBefore:  c.LoserBefore,
			LoserAfter:   c.LoserAfter,
			CreatedAt:    c.CreatedAt,
		})
	}
	return dtos, nil
}
