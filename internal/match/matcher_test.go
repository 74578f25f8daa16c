package match

import (
	"strings"
	"testing"
)

func TestGrade_ExactMatch(t *testing.T) {
	tests := []string{"42", "x = 3", "", "  padded  ", "MixedCase"}
	for _, s := range tests {
		res := Grade(s, s)
		if res.Similarity != 100 {
			t.Errorf("Grade(%q, %q).Similarity = %d, want 100", s, s, res.Similarity)
		}
		if res.Tier != TierCorrect {
			t.Errorf("Grade(%q, %q).Tier = %v, want correct", s, s, res.Tier)
		}
	}
}

func TestGrade_Normalization(t *testing.T) {
	tests := []struct {
		submitted string
		expected  string
	}{
		{"  42  ", "42"},
		{"FOUR", "four"},
		{"X = 3", "x = 3"},
	}
	for _, tc := range tests {
		res := Grade(tc.submitted, tc.expected)
		if res.Tier != TierCorrect || res.Similarity != 100 {
			t.Errorf("Grade(%q, %q) = %+v, want correct/100", tc.submitted, tc.expected, res)
		}
	}
}

func TestGrade_Symmetric(t *testing.T) {
	a, b := "triangle", "triangel"
	if Grade(a, b).Similarity != Grade(b, a).Similarity {
		t.Errorf("Grade(%q, %q) and Grade(%q, %q) differ", a, b, b, a)
	}
}

func TestGrade_Tiers(t *testing.T) {
	// Similarity is 1 - distance/length scaled to [0, 100], so an
	// 8-char expected answer with 1 edit scores ~88 and with 2 edits
	// scores 75.
	tests := []struct {
		submitted string
		expected  string
		want      Tier
	}{
		{"triangle", "triangle", TierCorrect},
		{"triangl", "triangle", TierCorrect},
		{"trianbl", "triangle", TierPartial},
		{"completely off", "42", TierIncorrect},
		{"", "42", TierIncorrect},
	}
	for _, tc := range tests {
		res := Grade(tc.submitted, tc.expected)
		if res.Tier != tc.want {
			t.Errorf("Grade(%q, %q) = %v (sim %d), want %v",
				tc.submitted, tc.expected, res.Tier, res.Similarity, tc.want)
		}
	}
}

func TestGrade_TierBoundaries(t *testing.T) {
	// With equal-length 100-char strings, each substitution costs one
	// similarity point, so the edit count pins the score exactly.
	expected := strings.Repeat("a", 100)
	grade := func(edits int) AttemptResult {
		submitted := strings.Repeat("b", edits) + strings.Repeat("a", 100-edits)
		return Grade(submitted, expected)
	}

	tests := []struct {
		edits   int
		wantSim int
		want    Tier
	}{
		{15, 85, TierCorrect},
		{16, 84, TierPartial},
		{29, 71, TierPartial},
		{30, 70, TierIncorrect},
	}
	for _, tc := range tests {
		res := grade(tc.edits)
		if res.Similarity != tc.wantSim {
			t.Errorf("%d edits: Similarity = %d, want %d", tc.edits, res.Similarity, tc.wantSim)
		}
		if res.Tier != tc.want {
			t.Errorf("%d edits: Tier = %v, want %v", tc.edits, res.Tier, tc.want)
		}
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierCorrect, "correct"},
		{TierPartial, "partial"},
		{TierIncorrect, "incorrect"},
	}
	for _, tc := range tests {
		if got := tc.tier.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.tier, got, tc.want)
		}
	}
}
