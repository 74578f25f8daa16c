package pool

import (
	"errors"
	"reflect"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{Problem: "2+2", Answer: "4", Level: "Level 1", Topic: "arithmetic"},
		{Problem: "3+5", Answer: "8", Level: "Level 1", Topic: "arithmetic"},
		{Problem: "7-4", Answer: "3", Level: "Level 1", Topic: "arithmetic"},
		{Problem: "x+1=2", Answer: "1", Level: "Level 2", Topic: "algebra"},
		{Problem: "x*2=6", Answer: "3", Level: "Level 2", Topic: "algebra"},
		{Problem: "area of 3x4", Answer: "12", Level: "Level 10", Topic: "geometry"},
	}
}

func TestNew_OrdersLevelsAndTopics(t *testing.T) {
	p, err := New(testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// "Level 10" sorts after "Level 2" numerically, not lexically.
	wantLevels := []string{"Level 1", "Level 2", "Level 10"}
	if !reflect.DeepEqual(p.Levels(), wantLevels) {
		t.Errorf("Levels() = %v, want %v", p.Levels(), wantLevels)
	}

	wantTopics := []string{"algebra", "arithmetic", "geometry"}
	if !reflect.DeepEqual(p.Topics(), wantTopics) {
		t.Errorf("Topics() = %v, want %v", p.Topics(), wantTopics)
	}
}

func TestNew_BadLevelLabel(t *testing.T) {
	_, err := New([]Question{
		{Problem: "p", Answer: "a", Level: "Level ?", Topic: "t"},
	})

	var perr *LevelParseError
	if !errors.As(err, &perr) {
		t.Fatalf("New = %v, want *LevelParseError", err)
	}
	if perr.Label != "Level ?" {
		t.Errorf("Label = %q, want %q", perr.Label, "Level ?")
	}
}

func TestTopicRank(t *testing.T) {
	p, err := New(testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		topic string
		want  int
	}{
		{"algebra", 0},
		{"arithmetic", 1},
		{"geometry", 2},
		{"unknown", 0},
	}
	for _, tc := range tests {
		if got := p.TopicRank(tc.topic); got != tc.want {
			t.Errorf("TopicRank(%q) = %d, want %d", tc.topic, got, tc.want)
		}
	}
}

func TestSample_Deterministic(t *testing.T) {
	p, err := New(testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := p.Sample("arithmetic", "Level 1", 3, 42)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	second, err := p.Sample("arithmetic", "Level 1", 3, 42)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed gave different draws:\n%v\n%v", first, second)
	}
}

func TestSample_Distinct(t *testing.T) {
	p, err := New(testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	drawn, err := p.Sample("arithmetic", "Level 1", 3, 7)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range drawn {
		if seen[q.Problem] {
			t.Errorf("question %q drawn twice", q.Problem)
		}
		seen[q.Problem] = true
	}
}

func TestSample_Insufficient(t *testing.T) {
	p, err := New(testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = p.Sample("algebra", "Level 2", 5, 1)
	var ierr *InsufficientQuestionsError
	if !errors.As(err, &ierr) {
		t.Fatalf("Sample = %v, want *InsufficientQuestionsError", err)
	}
	if ierr.Requested != 5 || ierr.Available != 2 {
		t.Errorf("got requested=%d available=%d, want 5 and 2", ierr.Requested, ierr.Available)
	}
}

func TestSample_BadCount(t *testing.T) {
	p, err := New(testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.Sample("algebra", "Level 2", 0, 1); err == nil {
		t.Error("Sample with count 0 should fail")
	}
}

func TestLevelCode(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"Level 1", 1, false},
		{"Level 12", 12, false},
		{" Level 3 ", 3, false},
		{"L7-advanced", 7, false},
		{"Level ?", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := LevelCode(tc.label)
		if tc.wantErr {
			if err == nil {
				t.Errorf("LevelCode(%q) = %d, want error", tc.label, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("LevelCode(%q): %v", tc.label, err)
			continue
		}
		if got != tc.want {
			t.Errorf("LevelCode(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}
