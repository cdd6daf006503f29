package todo

import (
	"strings"
	"unicode"
)

// Class is the classification of one line.
type Class int

const (
	// ClassOther marks lines that are not tasks: blank, prose, or
	// malformed markers. They are preserved verbatim and never indexed.
	ClassOther Class = iota

	// ClassUnfinished marks lines whose trimmed text starts with "- [ ]".
	ClassUnfinished

	// ClassFinished marks lines whose trimmed text starts with "- [x]".
	ClassFinished
)

// Task markers. Exactly five bytes wide; the classifier and Check
// both depend on that width.
const (
	markerUnfinished = "- [ ]"
	markerFinished   = "- [x]"
	markerLen        = 5
)

// Classify maps a raw line to its class. Leading whitespace (spaces,
// tabs) is skipped before the marker test; nothing else is normalized.
func Classify(raw string) Class {
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)

	switch {
	case strings.HasPrefix(trimmed, markerUnfinished):
		return ClassUnfinished
	case strings.HasPrefix(trimmed, markerFinished):
		return ClassFinished
	default:
		return ClassOther
	}
}

// trimOffset returns the byte offset of the first non-whitespace
// character of raw, which is where a task line's marker starts.
func trimOffset(raw string) int {
	return len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
}

// Positions returns the zero-based line positions of every line in the
// store matching class, in document order. The result is recomputed on
// every call: positions are invalidated by any structural mutation and
// must never be cached across one.
func (s *Store) Positions(class Class) []int {
	var positions []int

	for i, line := range s.lines {
		if Classify(line.Raw) == class {
			positions = append(positions, i)
		}
	}

	return positions
}

// DisplayText returns the task text of a raw line for listing: leading
// whitespace, the marker, and the one separator byte after it are
// dropped, along with the line terminator.
func DisplayText(raw string) string {
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	trimmed = strings.TrimRight(trimmed, "\r\n")

	if len(trimmed) <= markerLen+1 {
		return ""
	}

	return trimmed[markerLen+1:]
}
