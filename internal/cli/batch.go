package cli

import (
	"errors"
	"slices"
	"strconv"

	"github.com/calvinalkan/todo-md/internal/todo"
)

// batchOp is the closed set of per-index mutations the batch runner
// can apply.
type batchOp int

const (
	opCheck batchOp = iota
	opRemove
)

// execBatch loads the store, applies one mutation per index token, and
// saves only when at least one application succeeded.
func execBatch(o *IO, cfg *todo.Config, op batchOp, args []string) error {
	if len(args) == 0 {
		return todo.ErrIndexRequired
	}

	store := todo.NewStore(cfg.FileAbs)

	err := store.Load()
	if err != nil {
		return err
	}

	if applyIndexes(o, store, op, args) == 0 {
		return nil
	}

	return store.Save()
}

// applyIndexes runs op once per parsed index, each against freshly
// computed positions. Soft failures are printed and the batch
// continues; the return value is the number of successful
// applications.
func applyIndexes(o *IO, store *todo.Store, op batchOp, tokens []string) int {
	applied := 0

	for _, n := range parseIndexes(o, tokens) {
		var err error

		switch op {
		case opCheck:
			err = store.Check(n)
		case opRemove:
			err = store.Remove(n)
		}

		if err != nil {
			o.ErrPrintln(softMessage(err))

			continue
		}

		applied++
	}

	return applied
}

// parseIndexes converts tokens to a descending, de-duplicated index
// list. Non-numeric and non-positive tokens are skipped with a
// warning; they never abort the batch. Highest-first ordering means a
// removal can never shift the position of a pending lower index.
func parseIndexes(o *IO, tokens []string) []int {
	var indexes []int

	seen := make(map[int]bool, len(tokens))

	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			o.ErrPrintln("Skipping invalid index:", tok)

			continue
		}

		if seen[n] {
			continue
		}

		seen[n] = true
		indexes = append(indexes, n)
	}

	slices.SortFunc(indexes, func(a, b int) int { return b - a })

	return indexes
}

// softMessage renders engine outcomes in the wording the tool has
// always used.
func softMessage(err error) string {
	switch {
	case errors.Is(err, todo.ErrNoUnfinished):
		return "No unfinished tasks found."
	case errors.Is(err, todo.ErrNoFinished):
		return "No finished tasks found."
	default:
		return err.Error()
	}
}
