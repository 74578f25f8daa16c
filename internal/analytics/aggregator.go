// Package analytics computes aggregate views over the progress
// history: lifetime per-topic accuracy and the session score series.
package analytics

import (
	"sort"
	"time"

	"github.com/abhisek/adaptutor/internal/progress"
)

// WeakThreshold is the accuracy percentage below which a topic is
// flagged as weak.
const WeakThreshold = 50.0

// ScorePoint is one session's score at its completion time.
type ScorePoint struct {
	Timestamp time.Time
	Score     int
}

// PerTopicAccuracy sums correct/total across all summaries and returns
// the percentage per topic. A topic with zero total reports 0.
func PerTopicAccuracy(history []progress.Summary) map[string]float64 {
	correct := make(map[string]int)
	total := make(map[string]int)
	for _, sum := range history {
		for topic, tally := range sum.Topics {
			correct[topic] += tally.Correct
			total[topic] += tally.Total
		}
	}

	acc := make(map[string]float64, len(total))
	for topic, n := range total {
		if n > 0 {
			acc[topic] = 100 * float64(correct[topic]) / float64(n)
		} else {
			acc[topic] = 0
		}
	}
	return acc
}

// ScoreSeries returns (timestamp, score) pairs sorted ascending by
// timestamp.
func ScoreSeries(history []progress.Summary) []ScorePoint {
	series := make([]ScorePoint, 0, len(history))
	for _, sum := range history {
		series = append(series, ScorePoint{Timestamp: sum.Timestamp, Score: sum.Score})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
	return series
}

// WeakTopics returns the topics attempted at least once whose lifetime
// accuracy falls below WeakThreshold, sorted alphabetically.
func WeakTopics(history []progress.Summary) []string {
	total := make(map[string]int)
	for _, sum := range history {
		for topic, tally := range sum.Topics {
			total[topic] += tally.Total
		}
	}

	acc := PerTopicAccuracy(history)
	var weak []string
	for topic, pct := range acc {
		if total[topic] > 0 && pct < WeakThreshold {
			weak = append(weak, topic)
		}
	}
	sort.Strings(weak)
	return weak
}
