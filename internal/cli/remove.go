package cli

import (
	"context"

	"github.com/calvinalkan/todo-md/internal/todo"
)

// RemoveCmd returns the remove command.
func RemoveCmd(cfg *todo.Config) *Command {
	return &Command{
		Usage: "remove <index>...",
		Short: "Remove the <index>th unfinished task",
		Long: "Delete unfinished tasks by their list index.\n" +
			"Indexes are applied highest first; invalid ones are skipped\n" +
			"with a warning and the rest of the batch still runs.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execBatch(o, cfg, opRemove, args)
		},
	}
}
