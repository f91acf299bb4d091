package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/taskelo/taskelo/internal/productivity/domain/task"
	"github.com/taskelo/taskelo/internal/productivity/domain/value_objects"
)

// snapshotVersion guards against importing snapshots written by an
// incompatible release.
const snapshotVersion = 1

// Snapshot is the JSON export format for the whole task store.
type Snapshot struct {
	Version    int            `json:"version"`
	SnapshotID uuid.UUID      `json:"snapshot_id"`
	ExportedAt time.Time      `json:"exported_at"`
	Tasks      []SnapshotTask `json:"tasks"`
}

// SnapshotTask is one exported task.
type SnapshotTask struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Notes           string  `json:"notes,omitempty"`
	BasePriority    int     `json:"base_priority"`
	EloRating       float64 `json:"elo_rating"`
	ComparisonCount int     `json:"comparison_count"`
	DueDate         string  `json:"due_date,omitempty"` // ISO date
	Done            bool    `json:"done"`
	CompletedAt     string  `json:"completed_at,omitempty"` // RFC3339
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ImportResult reports what an import changed.
type ImportResult struct {
	Imported int
	Skipped  int
}

// TransferService exports the task store to JSON and imports it back.
type TransferService struct {
	taskRepo task.Repository
}

// NewTransferService creates a new TransferService.
func NewTransferService(taskRepo task.Repository) *TransferService {
	return &TransferService{taskRepo: taskRepo}
}

// Export writes a versioned JSON snapshot of every task to w.
func (s *TransferService) Export(ctx context.Context, w io.Writer) (*Snapshot, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		Version:    snapshotVersion,
		SnapshotID: uuid.New(),
		ExportedAt: time.Now().UTC(),
		Tasks:      make([]SnapshotTask, 0, len(tasks)),
	}
	for _, t := range tasks {
		st := SnapshotTask{
			ID:              t.ID(),
			Title:           t.Title(),
			Notes:           t.Notes(),
			BasePriority:    t.BasePriority().Weight(),
			EloRating:       t.EloRating(),
			ComparisonCount: t.ComparisonCount(),
			Done:            t.IsDone(),
			CreatedAt:       t.CreatedAt().Format(time.RFC3339),
			UpdatedAt:       t.UpdatedAt().Format(time.RFC3339),
		}
		if t.DueDate() != nil {
			st.DueDate = t.DueDate().Format("2006-01-02")
		}
		if t.CompletedAt() != nil {
			st.CompletedAt = t.CompletedAt().Format(time.RFC3339)
		}
		snapshot.Tasks = append(snapshot.Tasks, st)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return &snapshot, nil
}

// Import reads a snapshot from r and inserts its tasks as new records.
// Exported IDs are not preserved; the store assigns fresh ones. Tasks with
// an empty title or an invalid priority tier are skipped, not fatal.
func (s *TransferService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snapshot.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	result := &ImportResult{}
	for _, st := range snapshot.Tasks {
		t, err := snapshotToTask(st)
		if err != nil {
			result.Skipped++
			continue
		}
		if err := s.taskRepo.Save(ctx, t); err != nil {
			return result, err
		}
		result.Imported++
	}
	return result, nil
}

func snapshotToTask(st SnapshotTask) (*task.Task, error) {
	t, err := task.NewTask(st.Title)
	if err != nil {
		return nil, err
	}

	priority := value_objects.BasePriority(st.BasePriority)
	if err := t.SetBasePriority(priority); err != nil {
		return nil, err
	}

	if st.Notes != "" {
		t.SetNotes(st.Notes)
	}
	if st.EloRating != 0 {
		t.SetEloRating(st.EloRating)
	}
	for i := 0; i < st.ComparisonCount; i++ {
		// Comparison counts survive the round trip; the ratings already
		// include their effect.
		t.RecordComparison(t.EloRating())
	}
	if st.DueDate != "" {
		due, err := time.ParseInLocation("2006-01-02", st.DueDate, time.UTC)
		if err != nil {
			return nil, err
		}
		t.SetDueDate(&due)
	}
	if st.Done {
		if err := t.Complete(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
