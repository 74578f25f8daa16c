package pool

import (
	"fmt"
	"math/rand"
	"sort"
)

// Pool holds the validated question bank and exposes deterministic
// sampling over it. The level list is ordered by each label's embedded
// integer; the topic list is ordered lexicographically and provides the
// stable integer encoding consumed by the difficulty predictor.
type Pool struct {
	questions []Question
	levels    []string
	topics    []string
	topicRank map[string]int
}

// New builds a Pool from validated questions. It derives the ordered
// level and topic sets and fails with *LevelParseError if any level
// label lacks an embedded digit.
func New(questions []Question) (*Pool, error) {
	levelSet := make(map[string]int)
	topicSet := make(map[string]bool)

	for _, q := range questions {
		if _, ok := levelSet[q.Level]; !ok {
			code, err := LevelCode(q.Level)
			if err != nil {
				return nil, err
			}
			levelSet[q.Level] = code
		}
		topicSet[q.Topic] = true
	}

	levels := make([]string, 0, len(levelSet))
	for l := range levelSet {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levelSet[levels[i]] < levelSet[levels[j]]
	})

	topics := make([]string, 0, len(topicSet))
	for t := range topicSet {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	rank := make(map[string]int, len(topics))
	for i, t := range topics {
		rank[t] = i
	}

	return &Pool{
		questions: questions,
		levels:    levels,
		topics:    topics,
		topicRank: rank,
	}, nil
}

// Levels returns the level labels in ascending difficulty order.
func (p *Pool) Levels() []string {
	return p.levels
}

// Topics returns the topic labels in lexicographic order.
func (p *Pool) Topics() []string {
	return p.topics
}

// TopicRank returns the lexicographic rank of topic among all known
// topics. Unknown topics encode to 0; this is a defined fallback for
// the predictor, not an error.
func (p *Pool) TopicRank(topic string) int {
	return p.topicRank[topic]
}

// Size returns the number of questions in the bank.
func (p *Pool) Size() int {
	return len(p.questions)
}

// Count returns how many questions match the given topic and level.
func (p *Pool) Count(topic, level string) int {
	n := 0
	for _, q := range p.questions {
		if q.Topic == topic && q.Level == level {
			n++
		}
	}
	return n
}

// Sample draws count distinct questions matching topic and level,
// without replacement. The draw is fully determined by seed: the same
// (topic, level, count, seed) always yields the same ordered sequence.
func (p *Pool) Sample(topic, level string, count int, seed int64) ([]Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", count)
	}

	var matched []Question
	for _, q := range p.questions {
		if q.Topic == topic && q.Level == level {
			matched = append(matched, q)
		}
	}

	if len(matched) < count {
		return nil, &InsufficientQuestionsError{
			Topic:     topic,
			Level:     level,
			Requested: count,
			Available: len(matched),
		}
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(matched))

	drawn := make([]Question, count)
	for i := 0; i < count; i++ {
		drawn[i] = matched[perm[i]]
	}
	return drawn, nil
}
