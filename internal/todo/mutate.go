package todo

import "slices"

// Check marks the nth unfinished task finished. Only the five marker
// bytes change; indentation, text, and terminator stay byte-for-byte.
// The store is not persisted; Save is the caller's follow-up.
func (s *Store) Check(n int) error {
	if n <= 0 {
		return &IndexError{Index: n}
	}

	positions := s.Positions(ClassUnfinished)
	if len(positions) == 0 {
		return ErrNoUnfinished
	}

	if n > len(positions) {
		return &IndexError{Index: n, Count: len(positions)}
	}

	pos := positions[n-1]
	raw := s.lines[pos].Raw
	off := trimOffset(raw)

	s.lines[pos].Raw = raw[:off] + markerFinished + raw[off+markerLen:]

	return nil
}

// Remove deletes the nth unfinished task's line, shifting the tail up.
// Positions computed before this call are stale afterwards.
func (s *Store) Remove(n int) error {
	if n <= 0 {
		return &IndexError{Index: n}
	}

	positions := s.Positions(ClassUnfinished)
	if len(positions) == 0 {
		return ErrNoUnfinished
	}

	if n > len(positions) {
		return &IndexError{Index: n, Count: len(positions)}
	}

	pos := positions[n-1]
	s.lines = slices.Delete(s.lines, pos, pos+1)

	return nil
}

// Clean deletes every finished line and reports how many were removed.
// Deletion runs from the highest position down so earlier deletions
// never shift a pending target.
func (s *Store) Clean() (int, error) {
	positions := s.Positions(ClassFinished)
	if len(positions) == 0 {
		return 0, ErrNoFinished
	}

	for i := len(positions) - 1; i >= 0; i-- {
		s.lines = slices.Delete(s.lines, positions[i], positions[i]+1)
	}

	return len(positions), nil
}
