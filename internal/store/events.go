package store

import (
	"context"
	"fmt"
	"time"
)

// AttemptEvent records one graded answer.
type AttemptEvent struct {
	SessionID  string
	Topic      string
	Level      string
	Problem    string
	Expected   string
	Submitted  string
	Similarity int
	Tier       string
	Correct    bool
}

// SessionEvent records a session boundary.
type SessionEvent struct {
	SessionID string
	Action    string // "start" or "complete"
	Topic     string
	Level     string
	Questions int
	Score     int
}

// SessionRecord is a completed session as read back for statistics.
type SessionRecord struct {
	SessionID string
	Topic     string
	Level     string
	Questions int
	Score     int
	CreatedAt time.Time
}

// EventRecorder is the append-side contract the quiz UI uses.
// Satisfied by *Store; tests swap in a stub.
type EventRecorder interface {
	AppendAttempt(ctx context.Context, ev AttemptEvent) error
	AppendSession(ctx context.Context, ev SessionEvent) error
}

var _ EventRecorder = (*Store)(nil)

// AppendAttempt logs one graded answer.
func (s *Store) AppendAttempt(ctx context.Context, ev AttemptEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempt_events
			(session_id, topic, level, problem, expected, submitted, similarity, tier, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Topic, ev.Level, ev.Problem, ev.Expected, ev.Submitted,
		ev.Similarity, ev.Tier, ev.Correct)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

// AppendSession logs a session start or completion.
func (s *Store) AppendSession(ctx context.Context, ev SessionEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_events (session_id, action, topic, level, questions, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Action, ev.Topic, ev.Level, ev.Questions, ev.Score)
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

// TopicAccuracy returns the lifetime per-topic accuracy percentage
// over all logged attempts.
func (s *Store) TopicAccuracy(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, SUM(correct), COUNT(*) FROM attempt_events GROUP BY topic`)
	if err != nil {
		return nil, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	acc := make(map[string]float64)
	for rows.Next() {
		var topic string
		var correct, total int
		if err := rows.Scan(&topic, &correct, &total); err != nil {
			return nil, fmt.Errorf("scan topic accuracy: %w", err)
		}
		if total > 0 {
			acc[topic] = 100 * float64(correct) / float64(total)
		}
	}
	return acc, rows.Err()
}

// RecentSessions returns up to limit completed sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, topic, level, questions, score, created_at
		 FROM session_events
		 WHERE action = 'complete'
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var created string
		if err := rows.Scan(&r.SessionID, &r.Topic, &r.Level, &r.Questions, &r.Score, &created); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		r.CreatedAt = parseSQLiteTime(created)
		records = append(records, r)
	}
	return records, rows.Err()
}

// parseSQLiteTime reads the formats CURRENT_TIMESTAMP may produce.
func parseSQLiteTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
