package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/calvinalkan/todo-md/internal/todo"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// taskFileExts are the extensions recognized for the positional file
// argument, e.g. "todo work.md list".
var taskFileExts = []string{".md", ".markdown", ".txt"}

// Run is the main entry point. Returns exit code.
// The reader and signal channel are part of the entry contract but
// unused: every command is a single bounded read-mutate-write pass,
// and the REPL owns the terminal directly.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, _ <-chan os.Signal) int {
	if len(args) < minArgs {
		printUsage(errOut)

		return 1
	}

	// Parse global flags
	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	remaining := flags.remaining

	// A leading argument with a task-file extension selects the target
	// file, e.g. "todo work.md check 2".
	fileOverride := flags.file
	if len(remaining) > 0 && hasTaskFileExt(remaining[0]) {
		fileOverride = remaining[0]
		remaining = remaining[1:]
	}

	// A filename alone (or nothing at all) is not a command.
	if len(remaining) == 0 {
		printUsage(errOut)

		return 1
	}

	if remaining[0] == "-h" || remaining[0] == helpFlag {
		printUsage(out)

		return 0
	}

	// Load and validate config
	cfg, err := todo.LoadConfig(todo.LoadConfigInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		FileOverride:    fileOverride,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	o := NewIO(out, errOut)
	ctx := context.Background()

	if cmd, ok := commands(&cfg)[remaining[0]]; ok {
		return cmd.Run(ctx, o, remaining[1:])
	}

	// Default action: everything left is the text of a new task.
	return AddCmd(&cfg).Run(ctx, o, remaining)
}

// commands returns the command registry, abbreviations included.
func commands(cfg *todo.Config) map[string]*Command {
	add := AddCmd(cfg)
	list := ListCmd(cfg)
	check := CheckCmd(cfg)
	remove := RemoveCmd(cfg)
	clean := CleanCmd(cfg)
	repl := ReplCmd(cfg)
	printConfig := PrintConfigCmd(cfg)

	return map[string]*Command{
		"add":          add,
		"a":            add,
		"list":         list,
		"l":            list,
		"check":        check,
		"c":            check,
		"remove":       remove,
		"r":            remove,
		"clean":        clean,
		"repl":         repl,
		"i":            repl,
		"print-config": printConfig,
	}
}

func hasTaskFileExt(arg string) bool {
	ext := strings.ToLower(filepath.Ext(arg))

	// "len > ext" so a bare ".md" still counts as task text.
	return len(arg) > len(ext) && slices.Contains(taskFileExts, ext)
}

type globalFlags struct {
	workDir    string
	configPath string
	file       string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// "--" ends flag parsing; the rest is command or task text.
	if arg == "--" {
		flags.remaining = args[idx+1:]

		return len(args) - idx, nil
	}

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", todo.ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// -f/--file flag
	if arg == "-f" || arg == "--file" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", todo.ErrFlagRequiresArg, arg)
		}

		flags.file = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--file="); ok {
		flags.file = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", todo.ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(writer io.Writer) {
	fprintln(writer, `todo - checklist in a plain text file

Usage: todo [options] [<file.md>] <command|task text> [args]

Options:
  -C, --cwd <dir>      Run as if started in <dir>
  -c, --config <path>  Use specified config file
  -f, --file <path>    Use specified task file

Commands:
  "<task text>"          Add a new task (default action)
  add "<task text>"      Add a new task
  list [--done]          List unfinished tasks
  check <index>...       Mark the <index>th unfinished task as finished
  remove <index>...      Remove the <index>th unfinished task
  clean                  Remove all finished tasks
  repl                   Interactive prompt
  print-config           Show resolved configuration

Most commands have a single letter abbreviation: a, l, c, r, i.
You can pass multiple indexes to check and remove, i.e. todo check 1 2 3.`)
}
