package progress

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNoHistory is returned when the progress log is absent or empty.
// Recoverable: callers report "no data yet".
var ErrNoHistory = errors.New("no progress history")

// WriteError wraps a failed append. The in-progress quiz must not be
// aborted for it; the summary is lost and the failure reported.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write progress log: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

const (
	colTimestamp = "timestamp"
	colScore     = "score"

	suffixCorrect = "_correct"
	suffixTotal   = "_total"
)

// Store is an append-only CSV log of session summaries. Appends from
// independent processes are serialized through a lock file next to the
// log, so concurrent writers cannot corrupt it.
type Store struct {
	path string
}

// NewStore creates a Store writing to path. The file is created on
// first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file location.
func (s *Store) Path() string { return s.path }

// Append writes one summary row. A header row is written first if the
// log does not exist or is empty. When the summary introduces topics
// the existing header lacks, the whole file is rewritten with the
// merged column set before the new row is appended.
func (s *Store) Append(sum Summary) error {
	unlock, err := s.lock()
	if err != nil {
		return &WriteError{Err: err}
	}
	defer unlock()

	if err := s.appendLocked(sum); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

func (s *Store) appendLocked(sum Summary) error {
	header, rows, err := s.readRaw()
	if err != nil && !errors.Is(err, ErrNoHistory) {
		return err
	}

	merged := mergeHeader(header, sum)

	if headerEqual(header, merged) {
		// Fast path: columns unchanged, append a single row.
		f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return err
		}
		w := csv.NewWriter(f)
		if err := w.Write(formatRow(merged, sum)); err != nil {
			f.Close()
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	// Schema grew: rewrite the log with the merged header, padding
	// prior rows, then add the new row. The rename keeps readers from
	// ever seeing a half-written file.
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".progress-*.csv")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	werr := w.Write(merged)
	for _, row := range rows {
		if werr != nil {
			break
		}
		werr = w.Write(remapRow(header, merged, row))
	}
	if werr == nil {
		werr = w.Write(formatRow(merged, sum))
	}
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return werr
	}
	return os.Rename(tmpName, s.path)
}

// ReadAll returns all summaries in file order (chronological).
func (s *Store) ReadAll() ([]Summary, error) {
	header, rows, err := s.readRaw()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, parseRow(header, row))
	}
	return summaries, nil
}

func (s *Store) readRaw() (header []string, rows [][]string, err error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNoHistory
		}
		return nil, nil, fmt.Errorf("open progress log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err = r.Read()
	if err == io.EOF {
		return nil, nil, ErrNoHistory
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read progress header: %w", err)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read progress row: %w", err)
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

// mergeHeader unions the existing header with the summary's topic
// columns: timestamp and score first, existing topic columns in file
// order, new topic columns sorted.
func mergeHeader(existing []string, sum Summary) []string {
	merged := []string{colTimestamp, colScore}
	seen := map[string]bool{colTimestamp: true, colScore: true}

	for _, c := range existing {
		if !seen[c] {
			merged = append(merged, c)
			seen[c] = true
		}
	}

	topics := make([]string, 0, len(sum.Topics))
	for t := range sum.Topics {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	for _, t := range topics {
		for _, col := range []string{t + suffixCorrect, t + suffixTotal} {
			if !seen[col] {
				merged = append(merged, col)
				seen[col] = true
			}
		}
	}
	return merged
}

func headerEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatRow(header []string, sum Summary) []string {
	row := make([]string, len(header))
	for i, col := range header {
		switch {
		case col == colTimestamp:
			row[i] = sum.Timestamp.Format(time.RFC3339)
		case col == colScore:
			row[i] = strconv.Itoa(sum.Score)
		case strings.HasSuffix(col, suffixCorrect):
			t := sum.Topics[strings.TrimSuffix(col, suffixCorrect)]
			row[i] = strconv.Itoa(t.Correct)
		case strings.HasSuffix(col, suffixTotal):
			t := sum.Topics[strings.TrimSuffix(col, suffixTotal)]
			row[i] = strconv.Itoa(t.Total)
		}
	}
	return row
}

// remapRow pads an old row out to the merged header. Cells absent in
// the old schema stay blank; readers treat blank as zero.
func remapRow(oldHeader, newHeader []string, row []string) []string {
	byCol := make(map[string]string, len(oldHeader))
	for i, col := range oldHeader {
		if i < len(row) {
			byCol[col] = row[i]
		}
	}
	out := make([]string, len(newHeader))
	for i, col := range newHeader {
		out[i] = byCol[col]
	}
	return out
}

func parseRow(header []string, row []string) Summary {
	sum := Summary{Topics: make(map[string]Tally)}
	for i, col := range header {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])
		switch {
		case col == colTimestamp:
			sum.Timestamp = parseTimestamp(cell)
		case col == colScore:
			sum.Score = parseCell(cell)
		case strings.HasSuffix(col, suffixCorrect):
			topic := strings.TrimSuffix(col, suffixCorrect)
			t := sum.Topics[topic]
			t.Correct = parseCell(cell)
			sum.Topics[topic] = t
		case strings.HasSuffix(col, suffixTotal):
			topic := strings.TrimSuffix(col, suffixTotal)
			t := sum.Topics[topic]
			t.Total = parseCell(cell)
			sum.Topics[topic] = t
		}
	}
	return sum
}

// parseCell reads an integer cell, treating blank or malformed cells
// as zero.
func parseCell(cell string) int {
	if cell == "" {
		return 0
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return 0
	}
	return n
}

// parseTimestamp accepts RFC 3339 as written by Append, plus the bare
// ISO-8601 form older logs may carry.
func parseTimestamp(cell string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, cell); err == nil {
			return t
		}
	}
	return time.Time{}
}
