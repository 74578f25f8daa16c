// Package match grades free-text answers against expected answers
// using an edit-distance similarity ratio.
package match

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"
)

// Tier is the three-way correctness classification of a graded answer.
type Tier int

const (
	TierIncorrect Tier = iota
	TierPartial
	TierCorrect
)

func (t Tier) String() string {
	switch t {
	case TierCorrect:
		return "correct"
	case TierPartial:
		return "partial"
	default:
		return "incorrect"
	}
}

// Similarity thresholds. A partial match counts as incorrect for
// scoring but yields different feedback.
const (
	CorrectThreshold   = 85
	IncorrectThreshold = 70
)

// AttemptResult is the outcome of grading a single answer.
type AttemptResult struct {
	// Similarity is the edit-distance ratio in [0, 100].
	Similarity int

	// Tier classifies Similarity against the thresholds.
	Tier Tier
}

// Grade normalizes both answers (trim, lowercase) and scores their
// similarity. Pure: identical inputs always produce identical results,
// and Grade(x, x) is always TierCorrect with similarity 100.
func Grade(submitted, expected string) AttemptResult {
	sub := normalize(submitted)
	exp := normalize(expected)

	sim := similarity(sub, exp)

	var tier Tier
	switch {
	case sim >= CorrectThreshold:
		tier = TierCorrect
	case sim > IncorrectThreshold:
		tier = TierPartial
	default:
		tier = TierIncorrect
	}

	return AttemptResult{Similarity: sim, Tier: tier}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// similarity returns a symmetric edit-distance ratio scaled to [0, 100].
func similarity(a, b string) int {
	if a == b {
		return 100
	}
	r := levenshtein.Similarity(a, b, levenshtein.NewParams())
	return int(math.Round(r * 100))
}
