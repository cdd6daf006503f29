package cli

import (
	"context"
	"strings"

	"github.com/calvinalkan/todo-md/internal/todo"
)

// AddCmd returns the add command. It is also the default action: any
// argument that is not a known command adds a task.
func AddCmd(cfg *todo.Config) *Command {
	return &Command{
		Usage: "add \"<task text>\"",
		Short: "Add a new task",
		Long: "Append an unfinished task to the file.\n" +
			"This is also the default action: todo \"buy milk\" adds a task.\n" +
			"Multiple words are joined with single spaces.",
		Exec: func(_ context.Context, _ *IO, args []string) error {
			return execAdd(cfg, args)
		},
	}
}

func execAdd(cfg *todo.Config, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return todo.ErrTaskTextRequired
	}

	store := todo.NewStore(cfg.FileAbs)

	// Load first so a missing terminator on the last line is known.
	err := store.Load()
	if err != nil {
		return err
	}

	return store.Append(text)
}
