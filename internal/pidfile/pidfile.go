// Package pidfile manages the durable PID records the lifecycle orchestrator
// keeps per managed daemon.
//
// A record is a single text file containing one process id. Presence of the
// file means "role believed running". Writes go through a temp file and a
// rename so a concurrent reader never observes a partially written id.
package pidfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotFound indicates no record exists for the requested daemon.
var ErrNotFound = errors.New("pid file not found")

// Store manages PID records in a run directory.
type Store struct {
	runDir string
}

// NewStore creates a store rooted at runDir.
func NewStore(runDir string) *Store {
	return &Store{runDir: runDir}
}

// Path returns the record path for a daemon name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.runDir, name+".pid")
}

// EnsureDir creates the run directory if it does not exist.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.runDir, 0755)
}

// Write records a process id for the given daemon name. The record is
// written to a temp file first and renamed into place.
func (s *Store) Write(name string, pid int) error {
	if err := s.EnsureDir(); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(pid)+"\n"), 0644); err != nil {
		return fmt.Errorf("write pid record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit pid record: %w", err)
	}
	return nil
}

// Read returns the recorded process id for the given daemon name.
// A missing file yields ErrNotFound. A file that does not parse as a
// positive integer is reported as an error with the offending content.
func (s *Store) Read(name string) (int, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	text := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(text)
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("malformed pid record %q in %s", text, s.Path(name))
	}
	return pid, nil
}

// Remove deletes the record for the given daemon name. A missing record is
// not an error.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether a record is present for the given daemon name.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}
