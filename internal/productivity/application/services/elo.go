package services

import "math"

// DefaultKFactor controls how far a single comparison moves the ratings.
const DefaultKFactor = 32.0

// ExpectedScore returns the probability that a rating of a beats a rating
// of b under the standard Elo logistic curve.
func ExpectedScore(a, b float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (b-a)/400.0))
}

// ApplyComparison returns the updated winner and loser ratings after a
// pairwise comparison. A non-positive k falls back to DefaultKFactor.
// Ratings are not clamped here; EffectivePriority clamps to the reference
// interval on the read side, so a long win streak saturates the band
// instead of escaping it.
func ApplyComparison(winner, loser, k float64) (newWinner, newLoser float64) {
	if k <= 0 {
		k = DefaultKFactor
	}
	expected := ExpectedScore(winner, loser)
	delta := k * (1.0 - expected)
	return winner + delta, loser - delta
}
