package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/adaptutor/internal/match"
	"github.com/abhisek/adaptutor/internal/pool"
	"github.com/abhisek/adaptutor/internal/predict"
	"github.com/abhisek/adaptutor/internal/progress"
)

func testPool(t *testing.T) *pool.Pool {
	t.Helper()
	p, err := pool.New([]pool.Question{
		{Problem: "2+2", Answer: "4", Solution: "2+2 = 4", Level: "Level 1", Topic: "arithmetic"},
		{Problem: "3+5", Answer: "8", Solution: "3+5 = 8", Level: "Level 1", Topic: "arithmetic"},
		{Problem: "7-4", Answer: "3", Solution: "7-4 = 3", Level: "Level 1", Topic: "arithmetic"},
		{Problem: "x+1=2", Answer: "1", Solution: "x = 1", Level: "Level 2", Topic: "algebra"},
		{Problem: "x*2=6", Answer: "3", Solution: "x = 3", Level: "Level 2", Topic: "algebra"},
	})
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	return p
}

// memorySink collects appended summaries in memory.
type memorySink struct {
	appended []progress.Summary
	err      error
}

func (m *memorySink) Append(sum progress.Summary) error {
	if m.err != nil {
		return m.err
	}
	m.appended = append(m.appended, sum)
	return nil
}

func TestStart(t *testing.T) {
	e := NewEngine(testPool(t))

	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if s.Phase != PhasePresenting {
		t.Errorf("Phase = %v, want presenting", s.Phase)
	}
	if s.Length() != 3 {
		t.Errorf("Length() = %d, want 3", s.Length())
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
	if s.Current() == nil {
		t.Fatal("Current() = nil at start")
	}

	// Tallies are seeded for every pool topic, not just the chosen one.
	for _, topic := range []string{"algebra", "arithmetic"} {
		if s.TopicTally[topic] == nil {
			t.Errorf("TopicTally[%q] not seeded", topic)
		}
	}
}

func TestStart_Insufficient(t *testing.T) {
	e := NewEngine(testPool(t))

	_, err := e.Start("algebra", "Level 2", 10)
	var ierr *pool.InsufficientQuestionsError
	if !errors.As(err, &ierr) {
		t.Fatalf("Start = %v, want *pool.InsufficientQuestionsError", err)
	}
}

func TestStart_FixedSeedReproducible(t *testing.T) {
	e := NewEngine(testPool(t))

	a, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	b, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := range a.Questions {
		if a.Questions[i].Problem != b.Questions[i].Problem {
			t.Fatalf("question %d differs across sessions with the default seed", i)
		}
	}
}

func TestSubmitAnswer_Correct(t *testing.T) {
	e := NewEngine(testPool(t))
	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	fb, err := e.SubmitAnswer(s, s.Current().Answer)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if fb.Result.Tier != match.TierCorrect {
		t.Errorf("Tier = %v, want correct", fb.Result.Tier)
	}
	if fb.Message != "Correct!" {
		t.Errorf("Message = %q, want Correct!", fb.Message)
	}
	if fb.Solution != "" {
		t.Errorf("Solution = %q, want empty for a correct answer", fb.Solution)
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, want 1", s.Score)
	}
	if s.Phase != PhaseFeedback {
		t.Errorf("Phase = %v, want feedback", s.Phase)
	}

	tally := s.TopicTally["arithmetic"]
	if tally.Correct != 1 || tally.Total != 1 {
		t.Errorf("tally = %+v, want 1/1", tally)
	}
}

func TestSubmitAnswer_Incorrect(t *testing.T) {
	e := NewEngine(testPool(t))
	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	q := s.Current()
	fb, err := e.SubmitAnswer(s, "definitely wrong")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if fb.Result.Tier != match.TierIncorrect {
		t.Errorf("Tier = %v, want incorrect", fb.Result.Tier)
	}
	if fb.Solution != q.Solution {
		t.Errorf("Solution = %q, want %q", fb.Solution, q.Solution)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}

	tally := s.TopicTally["arithmetic"]
	if tally.Correct != 0 || tally.Total != 1 {
		t.Errorf("tally = %+v, want 0/1", tally)
	}
}

func TestSubmitAnswer_InvalidPhase(t *testing.T) {
	e := NewEngine(testPool(t))
	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := e.SubmitAnswer(s, s.Current().Answer); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	// Second submission without acknowledging feedback.
	_, err = e.SubmitAnswer(s, "again")
	var serr *InvalidStateError
	if !errors.As(err, &serr) {
		t.Fatalf("SubmitAnswer = %v, want *InvalidStateError", err)
	}
	if serr.Op != "submit_answer" {
		t.Errorf("Op = %q, want submit_answer", serr.Op)
	}
}

func TestAdvance_InvalidPhase(t *testing.T) {
	e := NewEngine(testPool(t))
	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, _, err = e.Advance(s)
	var serr *InvalidStateError
	if !errors.As(err, &serr) {
		t.Fatalf("Advance = %v, want *InvalidStateError", err)
	}
}

func TestFullSession(t *testing.T) {
	sink := &memorySink{}
	e := NewEngine(testPool(t), WithSummarySink(sink))

	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Answer the first two correctly, the last wrong.
	for i := 0; i < 3; i++ {
		text := s.Current().Answer
		if i == 2 {
			text = "wrong"
		}

		if _, err := e.SubmitAnswer(s, text); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}

		// The score/index invariant holds at every step.
		if s.Score > s.Index+1 || s.Index > s.Length() {
			t.Fatalf("invariant violated: score=%d index=%d length=%d", s.Score, s.Index, s.Length())
		}

		next, done, err := e.Advance(s)
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
		if i < 2 {
			if done || next == nil {
				t.Fatalf("Advance %d: done=%v next=%v, want another question", i, done, next)
			}
		} else if !done || next != nil {
			t.Fatalf("final Advance: done=%v next=%v, want completion", done, next)
		}
	}

	if s.Phase != PhaseCompleted {
		t.Errorf("Phase = %v, want completed", s.Phase)
	}
	if s.Score != 2 {
		t.Errorf("Score = %d, want 2", s.Score)
	}

	// Exactly one summary reached the sink.
	if len(sink.appended) != 1 {
		t.Fatalf("sink received %d summaries, want 1", len(sink.appended))
	}
	sum := sink.appended[0]
	if sum.Score != 2 {
		t.Errorf("summary score = %d, want 2", sum.Score)
	}
	if got := sum.Topics["arithmetic"]; got.Correct != 2 || got.Total != 3 {
		t.Errorf("summary arithmetic tally = %+v, want 2/3", got)
	}

	got, err := e.Summary(s)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.Score != 2 {
		t.Errorf("Summary().Score = %d, want 2", got.Score)
	}
}

func TestSummary_BeforeCompletion(t *testing.T) {
	e := NewEngine(testPool(t))
	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, err = e.Summary(s)
	var serr *InvalidStateError
	if !errors.As(err, &serr) {
		t.Fatalf("Summary = %v, want *InvalidStateError", err)
	}
}

func TestPersistFailureNotFatal(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	e := NewEngine(testPool(t), WithSummarySink(sink))

	s, err := e.Start("algebra", "Level 2", 2)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := e.SubmitAnswer(s, s.Current().Answer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if _, _, err := e.Advance(s); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if s.Phase != PhaseCompleted {
		t.Errorf("Phase = %v, want completed despite sink failure", s.Phase)
	}
	if s.PersistErr == nil {
		t.Error("PersistErr not recorded")
	}
}

func TestRecommendation(t *testing.T) {
	p := testPool(t)

	advance := predict.New(predict.StaticClassifier{Label: 1}, p)
	e := NewEngine(p, WithPredictor(advance))

	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	fb, err := e.SubmitAnswer(s, s.Current().Answer)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if fb.RecommendedLevel != "Level 2" {
		t.Errorf("RecommendedLevel = %q, want Level 2", fb.RecommendedLevel)
	}
	if fb.Warning != "" {
		t.Errorf("Warning = %q, want empty", fb.Warning)
	}
}

func TestRecommendation_Degrades(t *testing.T) {
	p := testPool(t)

	broken := predict.New(predict.StaticClassifier{Err: errors.New("model gone")}, p)
	e := NewEngine(p, WithPredictor(broken))

	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	fb, err := e.SubmitAnswer(s, s.Current().Answer)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if fb.RecommendedLevel != "" {
		t.Errorf("RecommendedLevel = %q, want empty", fb.RecommendedLevel)
	}
	if fb.Warning == "" {
		t.Error("Warning is empty, want degraded notice")
	}
}

func TestRecommendation_NoPredictor(t *testing.T) {
	e := NewEngine(testPool(t))

	s, err := e.Start("arithmetic", "Level 1", 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	fb, err := e.SubmitAnswer(s, s.Current().Answer)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if fb.RecommendedLevel != "" || fb.Warning != "" {
		t.Errorf("got recommendation %q warning %q, want neither without a predictor",
			fb.RecommendedLevel, fb.Warning)
	}
}
