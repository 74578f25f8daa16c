package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen_CreatesSchema(t *testing.T) {
	st := openTestStore(t)

	var n int
	err := st.DB().QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'
		 AND name IN ('session_events', 'attempt_events')`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAppendAttempt_TopicAccuracy(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	attempts := []AttemptEvent{
		{SessionID: "s1", Topic: "algebra", Level: "Level 1", Problem: "x+1=2", Expected: "1", Submitted: "1", Similarity: 100, Tier: "correct", Correct: true},
		{SessionID: "s1", Topic: "algebra", Level: "Level 1", Problem: "x+2=3", Expected: "1", Submitted: "4", Similarity: 0, Tier: "incorrect", Correct: false},
		{SessionID: "s1", Topic: "geometry", Level: "Level 1", Problem: "3x4", Expected: "12", Submitted: "12", Similarity: 100, Tier: "correct", Correct: true},
	}
	for _, ev := range attempts {
		require.NoError(t, st.AppendAttempt(ctx, ev))
	}

	acc, err := st.TopicAccuracy(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, acc["algebra"])
	assert.Equal(t, 100.0, acc["geometry"])
}

func TestAppendSession_RecentSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	// Starts are excluded from the recent list.
	require.NoError(t, st.AppendSession(ctx, SessionEvent{
		SessionID: "s1", Action: "start", Topic: "algebra", Level: "Level 1", Questions: 5,
	}))
	require.NoError(t, st.AppendSession(ctx, SessionEvent{
		SessionID: "s1", Action: "complete", Topic: "algebra", Level: "Level 1", Questions: 5, Score: 4,
	}))
	require.NoError(t, st.AppendSession(ctx, SessionEvent{
		SessionID: "s2", Action: "complete", Topic: "geometry", Level: "Level 2", Questions: 10, Score: 7,
	}))

	recent, err := st.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	assert.Equal(t, "s2", recent[0].SessionID)
	assert.Equal(t, 7, recent[0].Score)
	assert.Equal(t, "s1", recent[1].SessionID)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestAppendSession_BadActionRejected(t *testing.T) {
	st := openTestStore(t)

	err := st.AppendSession(context.Background(), SessionEvent{
		SessionID: "s1", Action: "pause", Topic: "algebra", Level: "Level 1",
	})
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.AppendAttempt(ctx, AttemptEvent{
		SessionID: "s1", Topic: "algebra", Level: "Level 1",
		Problem: "p", Expected: "1", Submitted: "1", Similarity: 100, Tier: "correct", Correct: true,
	}))
	require.NoError(t, st.AppendSession(ctx, SessionEvent{
		SessionID: "s1", Action: "complete", Topic: "algebra", Level: "Level 1",
	}))

	require.NoError(t, st.Reset(ctx))

	acc, err := st.TopicAccuracy(ctx)
	require.NoError(t, err)
	assert.Empty(t, acc)

	recent, err := st.RecentSessions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
