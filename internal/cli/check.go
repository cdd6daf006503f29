package cli

import (
	"context"

	"github.com/calvinalkan/todo-md/internal/todo"
)

// CheckCmd returns the check command.
func CheckCmd(cfg *todo.Config) *Command {
	return &Command{
		Usage: "check <index>...",
		Short: "Mark the <index>th unfinished task as finished",
		Long: "Mark unfinished tasks as finished by their list index.\n" +
			"Indexes are applied highest first; invalid ones are skipped\n" +
			"with a warning and the rest of the batch still runs.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execBatch(o, cfg, opCheck, args)
		},
	}
}
