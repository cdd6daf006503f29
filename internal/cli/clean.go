package cli

import (
	"context"

	"github.com/calvinalkan/todo-md/internal/todo"

	flag "github.com/spf13/pflag"
)

// CleanCmd returns the clean command.
func CleanCmd(cfg *todo.Config) *Command {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "clean",
		Short: "Remove all finished tasks",
		Long:  "Delete every finished task line. Other lines are kept verbatim.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execClean(o, cfg)
		},
	}
}

func execClean(o *IO, cfg *todo.Config) error {
	store := todo.NewStore(cfg.FileAbs)

	err := store.Load()
	if err != nil {
		return err
	}

	_, cleanErr := store.Clean()
	if cleanErr != nil {
		// Nothing to clean is an outcome, not a failure.
		o.Println(softMessage(cleanErr))

		return nil
	}

	return store.Save()
}
