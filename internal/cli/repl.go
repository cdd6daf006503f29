package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/todo-md/internal/todo"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

// replCommands are the words the completer offers.
var replCommands = []string{
	"add", "list", "ls", "check", "remove", "rm", "clean", "help", "exit", "quit",
}

// ReplCmd returns the interactive prompt command.
func ReplCmd(cfg *todo.Config) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "repl",
		Short: "Interactive prompt",
		Long: "Start an interactive prompt against the task file. Every\n" +
			"command reloads the file first, so indexes are always current.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			r := &repl{cfg: cfg, out: o}

			return r.run()
		},
	}
}

type repl struct {
	cfg   *todo.Config
	out   *IO
	liner *liner.State
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".todo_history")
}

func (r *repl) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(func(line string) []string {
		var matches []string

		for _, cmd := range replCommands {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				matches = append(matches, cmd)
			}
		}

		return matches
	})

	// Load history
	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		f.Close()
	}

	r.out.Printf("todo - task file %s\n", r.cfg.FileAbs)
	r.out.Println("Type 'help' for available commands.")
	r.out.Println()

	for {
		line, err := r.liner.Prompt("todo> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.out.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			r.out.Println("Bye!")

			r.saveHistory()

			return nil

		case "help", "?":
			r.printHelp()

		case "add", "a":
			r.cmdAdd(args)

		case "list", "ls", "l":
			r.cmdList(args)

		case "check", "c":
			r.cmdBatch(opCheck, args)

		case "remove", "rm", "r":
			r.cmdBatch(opRemove, args)

		case "clean":
			r.cmdClean()

		default:
			r.out.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

// saveHistory persists command history to disk.
func (r *repl) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

// load reads the task file fresh; the prompt never reuses a store
// across commands.
func (r *repl) load() (*todo.Store, bool) {
	store := todo.NewStore(r.cfg.FileAbs)

	err := store.Load()
	if err != nil {
		r.out.ErrPrintln("error:", err)

		return nil, false
	}

	return store, true
}

func (r *repl) cmdAdd(args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		r.out.Println("Usage: add <task text>")

		return
	}

	store, ok := r.load()
	if !ok {
		return
	}

	err := store.Append(text)
	if err != nil {
		r.out.ErrPrintln("error:", err)

		return
	}

	r.out.Println("Added:", text)
}

func (r *repl) cmdList(args []string) {
	done := len(args) > 0 && (args[0] == "--done" || args[0] == "done")

	err := execList(r.out, r.cfg, done)
	if err != nil {
		r.out.ErrPrintln("error:", err)
	}
}

func (r *repl) cmdBatch(op batchOp, args []string) {
	if len(args) == 0 {
		r.out.Println("Usage: check|remove <index>...")

		return
	}

	store, ok := r.load()
	if !ok {
		return
	}

	applied := applyIndexes(r.out, store, op, args)
	if applied == 0 {
		return
	}

	err := store.Save()
	if err != nil {
		r.out.ErrPrintln("error:", err)

		return
	}

	if op == opCheck {
		r.out.Printf("Checked %d\n", applied)
	} else {
		r.out.Printf("Removed %d\n", applied)
	}
}

func (r *repl) cmdClean() {
	store, ok := r.load()
	if !ok {
		return
	}

	removed, err := store.Clean()
	if err != nil {
		r.out.Println(softMessage(err))

		return
	}

	saveErr := store.Save()
	if saveErr != nil {
		r.out.ErrPrintln("error:", saveErr)

		return
	}

	r.out.Printf("Removed %d finished task(s)\n", removed)
}

func (r *repl) printHelp() {
	r.out.Println(`Commands:
  add <task text>        Add a new task
  list [--done]          List unfinished (or finished) tasks
  check <index>...       Mark tasks finished
  remove <index>...      Remove tasks
  clean                  Remove all finished tasks
  help                   Show this help
  exit / quit / q        Exit`)
}
