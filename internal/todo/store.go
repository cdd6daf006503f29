// Package todo implements the line-based task engine: an ordered store
// of raw file lines, a classifier for the "- [ ]" / "- [x]" markers,
// and the mutations the CLI applies to them.
package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

const filePerms = 0o600

// Line is one raw line of the task file, terminator included. The
// final line of a file may lack a terminator; it is kept as read.
type Line struct {
	Raw string
}

// Store holds the ordered lines of one task file. It replaces the
// shared filename/lines globals of earlier designs: one Store per
// invocation, loaded once, mutated by at most one command, then saved.
type Store struct {
	path      string
	lines     []Line
	populated bool
}

// NewStore returns an empty store bound to path. Nothing is read until Load.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of lines currently held.
func (s *Store) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the raw lines in order.
func (s *Store) Lines() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = line.Raw
	}

	return out
}

// Load reads the task file into the store, preserving every line's
// terminator exactly as found (including a final line without one).
// A missing file is not an error: the store stays empty and
// unpopulated, and Save remains a no-op.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)

	for {
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			s.lines = append(s.lines, Line{Raw: raw})
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return fmt.Errorf("read %s: %w", s.path, readErr)
		}
	}

	s.populated = len(s.lines) > 0

	return nil
}

// Save overwrites the task file with the store's lines, atomically.
// A store that never read a line has nothing to say about the file
// and leaves it untouched; a store emptied by removals still writes
// the now empty file.
func (s *Store) Save() error {
	if !s.populated {
		return nil
	}

	var content strings.Builder
	for _, line := range s.lines {
		content.WriteString(line.Raw)
	}

	err := atomic.WriteFile(s.path, strings.NewReader(content.String()))
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	return nil
}

// Append writes a new unfinished task directly to the end of the file,
// creating it if needed. The in-memory lines are not updated; callers
// that need the new state must Load again. If the loaded file's last
// line lacks a terminator, one is written first so the new task does
// not merge with it.
func (s *Store) Append(text string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerms)
	if err != nil {
		return fmt.Errorf("open %s for appending: %w", s.path, err)
	}

	var entry strings.Builder

	if n := len(s.lines); n > 0 && !strings.HasSuffix(s.lines[n-1].Raw, "\n") {
		entry.WriteString("\n")
	}

	entry.WriteString(markerUnfinished + " " + text + "\n")

	_, writeErr := f.WriteString(entry.String())
	if writeErr != nil {
		_ = f.Close()

		return fmt.Errorf("append to %s: %w", s.path, writeErr)
	}

	closeErr := f.Close()
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", s.path, closeErr)
	}

	return nil
}
