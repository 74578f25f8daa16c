// Package progress persists completed-session summaries to an
// append-only CSV log whose column set grows with the topics
// encountered.
package progress

import "time"

// Tally is a per-topic correct/total pair.
type Tally struct {
	Correct int
	Total   int
}

// Summary is the immutable record of one completed session.
type Summary struct {
	Timestamp time.Time
	Score     int
	Topics    map[string]Tally
}
