package pool

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Required columns in a question bank file.
var bankColumns = []string{"problem", "answer", "solution", "level", "type"}

// LoadFile reads a question bank CSV from path and builds a Pool.
func LoadFile(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load question bank %s: %w", path, err)
	}
	return p, nil
}

// Load reads a question bank CSV with columns
// problem, answer, solution, level, type. Rows with an empty answer or
// the "Level ?" placeholder are skipped; level and type labels are
// trimmed. Any remaining level label without a digit fails with
// *LevelParseError.
func Load(r io.Reader) (*Pool, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range bankColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("question bank missing column %q", name)
		}
	}

	var questions []Question
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		field := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		q := Question{
			Problem:  field("problem"),
			Answer:   field("answer"),
			Solution: field("solution"),
			Level:    strings.TrimSpace(field("level")),
			Topic:    strings.TrimSpace(field("type")),
		}

		if q.Answer == "" || q.Level == "Level ?" {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank has no usable rows")
	}
	return New(questions)
}
