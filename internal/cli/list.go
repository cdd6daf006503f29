package cli

import (
	"context"

	"github.com/calvinalkan/todo-md/internal/todo"

	flag "github.com/spf13/pflag"
)

// ListCmd returns the list command.
func ListCmd(cfg *todo.Config) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.Bool("done", false, "List finished tasks instead of unfinished ones")

	return &Command{
		Flags: fs,
		Usage: "list [--done]",
		Short: "List unfinished tasks",
		Long:  "List unfinished tasks as \"N) text\", 1-based, in file order.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			done, _ := fs.GetBool("done")

			return execList(o, cfg, done)
		},
	}
}

func execList(o *IO, cfg *todo.Config, done bool) error {
	store := todo.NewStore(cfg.FileAbs)

	err := store.Load()
	if err != nil {
		return err
	}

	class := todo.ClassUnfinished
	if done {
		class = todo.ClassFinished
	}

	positions := store.Positions(class)
	if len(positions) == 0 {
		if done {
			o.Println("No finished tasks found.")
		} else {
			o.Println("No unfinished tasks found.")
		}

		return nil
	}

	lines := store.Lines()
	for i, pos := range positions {
		o.Printf("%d) %s\n", i+1, todo.DisplayText(lines[pos]))
	}

	return nil
}
