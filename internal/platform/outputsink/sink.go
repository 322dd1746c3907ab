// Package outputsink implements the crawler's single append-only output
// file (C9): one "school_id|url\n" line per discovered candidate, written
// under a process-wide lock shared by every concurrent school worker.
package outputsink

import (
	"fmt"
	"os"
	"sync"
)

// Sink is an append-truncate output file guarded by a mutex. Write is
// safe for concurrent use; the lock is held only for the duration of one
// write call, never across a suspension point.
type Sink struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates (truncating) the file at path and returns a Sink ready for
// concurrent writes.
func Open(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening output file %s: %w", path, err)
	}
	return &Sink{file: f}, nil
}

// Write appends one "schoolID|url\n" record atomically with respect to
// other concurrent Write calls.
func (s *Sink) Write(schoolID int32, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.file, "%d|%s\n", schoolID, url)
	return err
}

// Close flushes and closes the underlying file.
func (s *Sink) Close() error {
	return s.file.Close()
}
