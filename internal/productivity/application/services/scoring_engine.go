// Package services contains the productivity application services, chief
// among them the scoring engine that turns base priority, Elo rating, and
// due-date pressure into the importance value used to rank tasks.
package services

import (
	"fmt"
	"time"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

const (
	// EloMin and EloMax bound the reference rating interval. Ratings are
	// clamped into this interval before mapping.
	EloMin = 1000.0
	EloMax = 2000.0

	// UrgencyMin and UrgencyMax bound the urgency scale. Undated tasks sit
	// at the floor; the earliest-due task in a batch sits at the ceiling.
	UrgencyMin = 1.0
	UrgencyMax = 3.0
)

// TaskRef is the read-only view of a task consumed by the scoring engine.
type TaskRef struct {
	ID              int64
	Title           string
	BasePriority    int
	EloRating       float64
	ComparisonCount int
	DueDate         *time.Time
}

// NewTaskRef projects a domain task into its scoring view.
func NewTaskRef(t *task.Task) TaskRef {
	return TaskRef{
		ID:              t.ID(),
		Title:           t.Title(),
		BasePriority:    t.BasePriority().Weight(),
		EloRating:       t.EloRating(),
		ComparisonCount: t.ComparisonCount(),
		DueDate:         t.DueDate(),
	}
}

// ScoreBreakdown exposes every intermediate scoring value for a single task,
// for display and debugging.
type ScoreBreakdown struct {
	TaskID            int64   `json:"task_id"`
	Title             string  `json:"title"`
	BasePriority      int     `json:"base_priority"`
	EloRating         float64 `json:"elo_rating"`
	ComparisonCount   int     `json:"comparison_count"`
	EffectivePriority float64 `json:"effective_priority"`
	Urgency           float64 `json:"urgency"`
	Importance        float64 `json:"importance"`
	DueDate           string  `json:"due_date,omitempty"`
}

// ScoringEngine computes effective priority, urgency, and importance. All
// methods are pure and safe for concurrent use.
type ScoringEngine struct{}

// NewScoringEngine creates a new scoring engine.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// EffectivePriority maps a base priority tier and an Elo rating into a
// scalar confined to the tier's band: high [2,3], medium [1,2], low [0,1].
// The rating is clamped to [EloMin, EloMax] and interpolated linearly, so
// the mapping is strictly monotonic inside the clamp range. Band boundaries
// touch: the worst high (elo 1000 -> 2.0) equals the best medium (elo
// 2000 -> 2.0). That tie is intentional; the bands are closed intervals.
func (e *ScoringEngine) EffectivePriority(basePriority int, eloRating float64) (float64, error) {
	if basePriority < int(value_objects.BasePriorityLow) || basePriority > int(value_objects.BasePriorityHigh) {
		return 0, fmt.Errorf("%w: got %d, valid tiers are 1 (low), 2 (medium), 3 (high)",
			value_objects.ErrInvalidBasePriority, basePriority)
	}

	clamped := eloRating
	if clamped < EloMin {
		clamped = EloMin
	}
	if clamped > EloMax {
		clamped = EloMax
	}
	t := (clamped - EloMin) / (EloMax - EloMin)

	return float64(basePriority-1) + t, nil
}

// UrgencyBatch assigns an urgency in [UrgencyMin, UrgencyMax] to every
// persisted task in the batch, keyed by task ID. Urgency is set-relative:
// days remaining until each due date are min-max normalized across the
// dated subset, mapping the earliest due date to 3.0 and the latest to 1.0.
// Undated tasks always get 1.0. A lone dated task, or a dated subset whose
// members all share the same days remaining, gets 3.0 (nothing to normalize
// against). Overdue tasks simply occupy the "earliest" end of the scale.
//
// Tasks without an ID (not yet persisted) are skipped, never an error. The
// batch must be the full candidate set: scoring a subset changes every
// member's urgency.
//
// A zero reference time means "today", read from the wall clock once per
// call so the whole batch sees one consistent snapshot.
func (e *ScoringEngine) UrgencyBatch(tasks []TaskRef, reference time.Time) map[int64]float64 {
	if reference.IsZero() {
		reference = time.Now()
	}
	refDay := truncateToDay(reference)

	urgency := make(map[int64]float64, len(tasks))

	type datedTask struct {
		id            int64
		daysRemaining int
	}
	var dated []datedTask

	for _, t := range tasks {
		if t.ID == 0 {
			continue
		}
		if t.DueDate == nil {
			urgency[t.ID] = UrgencyMin
			continue
		}
		days := daysBetween(refDay, truncateToDay(*t.DueDate))
		dated = append(dated, datedTask{id: t.ID, daysRemaining: days})
	}

	if len(dated) == 0 {
		return urgency
	}

	minDays, maxDays := dated[0].daysRemaining, dated[0].daysRemaining
	for _, d := range dated[1:] {
		if d.daysRemaining < minDays {
			minDays = d.daysRemaining
		}
		if d.daysRemaining > maxDays {
			maxDays = d.daysRemaining
		}
	}

	if minDays == maxDays {
		// Single dated task, or every due date equidistant: all maximally
		// urgent.
		for _, d := range dated {
			urgency[d.id] = UrgencyMax
		}
		return urgency
	}

	span := float64(maxDays - minDays)
	for _, d := range dated {
		position := float64(d.daysRemaining-minDays) / span
		urgency[d.id] = UrgencyMax - position*(UrgencyMax-UrgencyMin)
	}

	return urgency
}

// ImportanceBatch computes the final ranking key, effective priority times
// urgency, for every persisted task in the batch. Callers sort by descending
// importance; an exact tie is the signal that a pairwise comparison is
// warranted. Urgency defaults to UrgencyMin for any task missing from the
// urgency map, which cannot happen when both maps come from the same batch.
func (e *ScoringEngine) ImportanceBatch(tasks []TaskRef, reference time.Time) (map[int64]float64, error) {
	urgency := e.UrgencyBatch(tasks, reference)

	importance := make(map[int64]float64, len(tasks))
	for _, t := range tasks {
		if t.ID == 0 {
			continue
		}
		effective, err := e.EffectivePriority(t.BasePriority, t.EloRating)
		if err != nil {
			return nil, err
		}
		u, ok := urgency[t.ID]
		if !ok {
			u = UrgencyMin
		}
		importance[t.ID] = effective * u
	}

	return importance, nil
}

// Breakdown produces the diagnostic record for a single task given its
// precomputed, set-relative urgency. It re-derives effective priority and
// importance; it performs no other computation.
func (e *ScoringEngine) Breakdown(t TaskRef, urgency float64) (ScoreBreakdown, error) {
	effective, err := e.EffectivePriority(t.BasePriority, t.EloRating)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	b := ScoreBreakdown{
		TaskID:            t.ID,
		Title:             t.Title,
		BasePriority:      t.BasePriority,
		EloRating:         t.EloRating,
		ComparisonCount:   t.ComparisonCount,
		EffectivePriority: effective,
		Urgency:           urgency,
		Importance:        effective * urgency,
	}
	if t.DueDate != nil {
		b.DueDate = t.DueDate.Format("2006-01-02")
	}
	return b, nil
}

// truncateToDay drops the time component, keeping the calendar day.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b, negative when b
// precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
