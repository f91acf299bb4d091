package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	t.Run("gives even odds for equal ratings", func(t *testing.T) {
		assert.Equal(t, 0.5, ExpectedScore(1500, 1500))
	})

	t.Run("favours the higher rating", func(t *testing.T) {
		assert.Greater(t, ExpectedScore(1600, 1400), 0.5)
		assert.Less(t, ExpectedScore(1400, 1600), 0.5)
	})

	t.Run("is complementary", func(t *testing.T) {
		assert.InDelta(t, 1.0, ExpectedScore(1700, 1450)+ExpectedScore(1450, 1700), 1e-12)
	})
}

func TestApplyComparison(t *testing.T) {
	t.Run("moves equal ratings by half the K factor", func(t *testing.T) {
		winner, loser := ApplyComparison(1500, 1500, 32)

		assert.Equal(t, 1516.0, winner)
		assert.Equal(t, 1484.0, loser)
	})

	t.Run("conserves total rating", func(t *testing.T) {
		winner, loser := ApplyComparison(1620, 1480, 32)
		assert.InDelta(t, 1620+1480, winner+loser, 1e-9)
	})

	t.Run("rewards an upset more than an expected win", func(t *testing.T) {
		upsetWinner, _ := ApplyComparison(1400, 1600, 32)
		expectedWinner, _ := ApplyComparison(1600, 1400, 32)

		assert.Greater(t, upsetWinner-1400, expectedWinner-1600)
	})

	t.Run("falls back to the default K factor", func(t *testing.T) {
		winner, _ := ApplyComparison(1500, 1500, 0)
		assert.Equal(t, 1500+DefaultKFactor/2, winner)
	})

	t.Run("composes with the band mapper", func(t *testing.T) {
		engine := NewScoringEngine()

		rating := 1990.0
		for i := 0; i < 10; i++ {
			rating, _ = ApplyComparison(rating, 1500, 32)
		}

		// The rating escaped the nominal domain; the mapper saturates the
		// band instead of letting importance escape its bound.
		effective, err := engine.EffectivePriority(3, rating)
		assert.NoError(t, err)
		assert.Equal(t, 3.0, effective)
	})
}
