package task

import (
	"time"

	"github.com/google/uuid"
)

// Comparison is an audit record of a single pairwise "which task first?"
// choice and the rating movement it caused.
type Comparison struct {
	ID            uuid.UUID
	WinnerID      int64
	LoserID       int64
	WinnerBefore  float64
	WinnerAfter   float64
	LoserBefore   float64
	LoserAfter    float64
	CreatedAt     time.Time
}

// NewComparison creates an audit record for a decided comparison.
func NewComparison(winnerID, loserID int64, winnerBefore, winnerAfter, loserBefore, loserAfter float64) Comparison {
	return Comparison{
		ID:           uuid.New(),
		WinnerID:     winnerID,
		LoserID:      loserID,
		WinnerBefore: winnerBefore,
		WinnerAfter:  winnerAfter,
		LoserBefore:  loserBefore,
		LoserAfter:   loserAfter,
		CreatedAt:    time.Now().UTC(),
	}
}
