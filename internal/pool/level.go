package pool

import (
	"fmt"
	"strconv"
	"strings"
)

// LevelParseError indicates a level label with no embedded digit.
// This is fatal to pool construction: it means the upstream cleaning
// step produced bad data.
type LevelParseError struct {
	Label string
}

func (e *LevelParseError) Error() string {
	return fmt.Sprintf("level label %q contains no digit", e.Label)
}

// LevelCode extracts the integer embedded in a level label.
// All digits in the label are concatenated, so "Level 3" yields 3
// and "Level 12" yields 12.
func LevelCode(label string) (int, error) {
	var b strings.Builder
	for _, r := range label {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, &LevelParseError{Label: label}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, &LevelParseError{Label: label}
	}
	return n, nil
}
