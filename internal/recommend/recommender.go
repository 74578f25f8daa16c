// Package recommend turns the difficulty predictor's binary signal
// into an advisory next-level suggestion.
package recommend

import "github.com/abhisek/adaptutor/internal/predict"

// Recommender steps through an ordered level list one level at a time.
// The recommendation is display text only; it never changes the active
// session's level.
type Recommender struct {
	levels []string
	index  map[string]int
}

// New creates a Recommender over levels ordered ascending by
// difficulty.
func New(levels []string) *Recommender {
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		index[l] = i
	}
	return &Recommender{levels: levels, index: index}
}

// Recommend returns the level one step in the given direction from
// current, clamped at the extremes. An unknown current level is
// returned unchanged.
func (r *Recommender) Recommend(current string, dir predict.Direction) string {
	i, ok := r.index[current]
	if !ok {
		return current
	}
	switch dir {
	case predict.Advance:
		if i < len(r.levels)-1 {
			return r.levels[i+1]
		}
	case predict.Regress:
		if i > 0 {
			return r.levels[i-1]
		}
	}
	return current
}
