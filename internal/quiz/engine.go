package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/match"
	"github.com/abhisek/adaptutor/internal/pool"
	"github.com/abhisek/adaptutor/internal/predict"
	"github.com/abhisek/adaptutor/internal/progress"
	"github.com/abhisek/adaptutor/internal/recommend"
)

// SummarySink receives the summary of a completed session.
// Satisfied by *progress.Store.
type SummarySink interface {
	Append(progress.Summary) error
}

// Engine drives quiz sessions. Each state transition is a discrete,
// synchronous step; the engine holds no per-session state of its own,
// so one engine serves any number of sequential sessions.
type Engine struct {
	pool        *pool.Pool
	predictor   *predict.DifficultyPredictor
	recommender *recommend.Recommender
	sink        SummarySink
	log         *zap.Logger

	// seed produces the sampling seed for each new session.
	seed func() int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithPredictor installs the difficulty predictor. Without one,
// sessions run with recommendations omitted.
func WithPredictor(p *predict.DifficultyPredictor) Option {
	return func(e *Engine) { e.predictor = p }
}

// WithSummarySink installs the progress store that receives completed
// session summaries.
func WithSummarySink(s SummarySink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithLogger installs the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithSeed sets the sampling seed policy. The default reuses a fixed
// seed so identical parameters reproduce identical draws.
func WithSeed(seed func() int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// FixedSeed is the default sampling seed.
const FixedSeed int64 = 1

// NewEngine creates an Engine over the given question pool.
func NewEngine(p *pool.Pool, opts ...Option) *Engine {
	e := &Engine{
		pool:        p,
		recommender: recommend.New(p.Levels()),
		log:         zap.NewNop(),
		seed:        func() int64 { return FixedSeed },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Pool returns the engine's question pool.
func (e *Engine) Pool() *pool.Pool { return e.pool }

// Start draws count questions for (topic, level) and returns a fresh
// session in PhasePresenting. Fails with *pool.InsufficientQuestionsError
// when the pool cannot satisfy the draw.
func (e *Engine) Start(topic, level string, count int) (*Session, error) {
	questions, err := e.pool.Sample(topic, level, count, e.seed())
	if err != nil {
		return nil, err
	}

	tally := make(map[string]*Tally, len(e.pool.Topics()))
	for _, t := range e.pool.Topics() {
		tally[t] = &Tally{}
	}

	s := &Session{
		ID:         uuid.New().String(),
		Topic:      topic,
		Level:      level,
		Questions:  questions,
		Phase:      PhasePresenting,
		TopicTally: tally,
		StartedAt:  time.Now(),
	}

	e.log.Info("session started",
		zap.String("session_id", s.ID),
		zap.String("topic", topic),
		zap.String("level", level),
		zap.Int("count", count))

	return s, nil
}

// SubmitAnswer grades text against the current question, updates score
// and tallies, computes the difficulty recommendation, and moves the
// session to PhaseFeedback. The question index does not advance here.
func (e *Engine) SubmitAnswer(s *Session, text string) (*Feedback, error) {
	if s.Phase != PhasePresenting {
		return nil, &InvalidStateError{Op: "submit_answer", Phase: s.Phase}
	}
	s.Phase = PhaseGrading

	q := s.Current()
	result := match.Grade(text, q.Answer)

	tally := s.TopicTally[q.Topic]
	if tally == nil {
		tally = &Tally{}
		s.TopicTally[q.Topic] = tally
	}
	tally.Total++
	if result.Tier == match.TierCorrect {
		tally.Correct++
		s.Score++
	}

	fb := &Feedback{Result: result}
	switch result.Tier {
	case match.TierCorrect:
		fb.Message = "Correct!"
	case match.TierPartial:
		fb.Message = fmt.Sprintf("Almost correct! Match: %d%%", result.Similarity)
		fb.Solution = q.Solution
	default:
		fb.Message = "Incorrect."
		fb.Solution = q.Solution
	}

	e.recommendLevel(s, q, fb)

	s.Pending = fb
	s.Phase = PhaseFeedback
	return fb, nil
}

// recommendLevel fills in the advisory next level. Predictor failure
// degrades to no recommendation plus a warning; it never fails the
// submission.
func (e *Engine) recommendLevel(s *Session, q *pool.Question, fb *Feedback) {
	if e.predictor == nil {
		return
	}

	dir, err := e.predictor.Predict(q.Level, q.Topic, q.Problem)
	if err != nil {
		fb.Warning = "difficulty recommendation unavailable"
		e.log.Warn("predictor failed",
			zap.String("session_id", s.ID),
			zap.Error(err))
		return
	}
	fb.RecommendedLevel = e.recommender.Recommend(s.Level, dir)
}

// Advance acknowledges the pending feedback and moves on. It returns
// the next question, or done=true once the session completes. On
// completion the summary is appended to the progress store exactly
// once; a failed append is recorded on the session and reported, not
// fatal.
func (e *Engine) Advance(s *Session) (next *pool.Question, done bool, err error) {
	if s.Phase != PhaseFeedback {
		return nil, false, &InvalidStateError{Op: "advance", Phase: s.Phase}
	}

	s.Pending = nil
	s.Index++

	if s.Index < len(s.Questions) {
		s.Phase = PhasePresenting
		return s.Current(), false, nil
	}

	s.Phase = PhaseCompleted
	e.emitSummary(s)
	return nil, true, nil
}

// Summary returns the completed session's summary record. Valid only
// in PhaseCompleted.
func (e *Engine) Summary(s *Session) (progress.Summary, error) {
	if s.Phase != PhaseCompleted {
		return progress.Summary{}, &InvalidStateError{Op: "get_summary", Phase: s.Phase}
	}
	return buildSummary(s), nil
}

func (e *Engine) emitSummary(s *Session) {
	if s.emitted {
		return
	}
	s.emitted = true

	sum := buildSummary(s)
	e.log.Info("session completed",
		zap.String("session_id", s.ID),
		zap.Int("score", sum.Score),
		zap.Int("questions", s.Length()))

	if e.sink == nil {
		return
	}
	if err := e.sink.Append(sum); err != nil {
		s.PersistErr = err
		e.log.Error("failed to persist session summary",
			zap.String("session_id", s.ID),
			zap.Error(err))
	}
}

func buildSummary(s *Session) progress.Summary {
	topics := make(map[string]progress.Tally, len(s.TopicTally))
	for topic, t := range s.TopicTally {
		topics[topic] = progress.Tally{Correct: t.Correct, Total: t.Total}
	}
	return progress.Summary{
		Timestamp: time.Now(),
		Score:     s.Score,
		Topics:    topics,
	}
}
