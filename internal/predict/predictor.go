// Package predict wraps a trained binary classifier that suggests
// whether a learner should advance or regress in difficulty. The model
// is an opaque artifact trained offline; this package only knows its
// feature contract.
package predict

import (
	"errors"
	"fmt"

	"github.com/abhisek/adaptutor/internal/pool"
)

// ErrUnavailable wraps any classifier failure. Callers degrade to a
// "no change" recommendation instead of aborting the session.
var ErrUnavailable = errors.New("difficulty predictor unavailable")

// Features is the 3-feature vector the classifier was trained on.
type Features struct {
	LevelCode     int
	TopicCode     int
	ProblemLength int
}

func (f Features) vector() [3]float64 {
	return [3]float64{float64(f.LevelCode), float64(f.TopicCode), float64(f.ProblemLength)}
}

// Classifier is the black-box trained model: features in, binary label
// out. The concrete artifact is injected; tests swap in a stub.
type Classifier interface {
	Predict(f Features) (int, error)
}

// Direction is the classifier's output mapped to a difficulty signal.
type Direction int

const (
	Regress Direction = iota
	Advance
)

func (d Direction) String() string {
	if d == Advance {
		return "advance"
	}
	return "regress"
}

// TopicEncoder supplies the stable integer encoding of topics.
// Satisfied by *pool.Pool.
type TopicEncoder interface {
	TopicRank(topic string) int
}

// DifficultyPredictor encodes question attributes into the model's
// feature space and maps its binary label to a Direction.
type DifficultyPredictor struct {
	clf    Classifier
	topics TopicEncoder
}

// New creates a DifficultyPredictor over the given classifier and
// topic encoding.
func New(clf Classifier, topics TopicEncoder) *DifficultyPredictor {
	return &DifficultyPredictor{clf: clf, topics: topics}
}

// Predict returns the suggested direction for the question the learner
// just attempted. Any failure is reported as ErrUnavailable.
func (p *DifficultyPredictor) Predict(level, topic, problem string) (Direction, error) {
	if p == nil || p.clf == nil {
		return Regress, ErrUnavailable
	}

	levelCode, err := pool.LevelCode(level)
	if err != nil {
		return Regress, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	f := Features{
		LevelCode:     levelCode,
		TopicCode:     p.topics.TopicRank(topic),
		ProblemLength: len(problem),
	}

	label, err := p.clf.Predict(f)
	if err != nil {
		return Regress, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if label == 1 {
		return Advance, nil
	}
	return Regress, nil
}
