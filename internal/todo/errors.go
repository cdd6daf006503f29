package todo

import (
	"errors"
	"fmt"
)

// Error variables for engine and CLI operations.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrFileEmpty          = errors.New("file cannot be empty")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrTaskTextRequired   = errors.New("task text is required")
	ErrIndexRequired      = errors.New("at least one index is required")
	ErrNoUnfinished       = errors.New("no unfinished tasks")
	ErrNoFinished         = errors.New("no finished tasks")
)

// IndexError reports an index outside the current unfinished subset.
// Count is the subset size at the time of the failed call; it is zero
// when the index itself was non-positive and the subset never counted.
type IndexError struct {
	Index int
	Count int
}

// Error renders the message the tool has always printed for bad indexes.
func (e *IndexError) Error() string {
	if e.Index <= 0 {
		return fmt.Sprintf("Invalid index: %d", e.Index)
	}

	return fmt.Sprintf("Invalid index: %d (only %d unfinished tasks)", e.Index, e.Count)
}
