package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockRetries  = 100
	lockInterval = 10 * time.Millisecond

	// A lock older than this is assumed to be left over from a
	// crashed process and is broken.
	lockStaleAfter = 5 * time.Second
)

// lock serializes writers across processes with an exclusive-create
// lock file next to the log. Returns the release function.
func (s *Store) lock() (func(), error) {
	lockPath := s.path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, err
	}

	for i := 0; i < lockRetries; i++ {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			f.Close()
			return func() { os.Remove(lockPath) }, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}

		if info, serr := os.Stat(lockPath); serr == nil && time.Since(info.ModTime()) > lockStaleAfter {
			os.Remove(lockPath)
			continue
		}
		time.Sleep(lockInterval)
	}
	return nil, fmt.Errorf("progress log locked by another writer: %s", lockPath)
}
