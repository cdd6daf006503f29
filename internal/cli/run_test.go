package cli

import (
	"testing"
)

func TestRunNoArgs(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	_, stderr, code := r.Run()
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	AssertContains(t, stderr, "Usage: todo")
}

func TestRunHelpFlag(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout, _, code := r.Run("-h")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	AssertContains(t, stdout, "Usage: todo")
	AssertContains(t, stdout, "check <index>...")
}

func TestRunUnknownGlobalFlag(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("--bogus", "list")
	AssertContains(t, stderr, "unknown flag: --bogus")
}

func TestRunFilenameAloneIsUsageError(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	_, stderr, code := r.Run("work.md")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	AssertContains(t, stderr, "Usage: todo")
}

func TestRunPositionalFileArgument(t *testing.T) {
	t.Parallel()

	tests := []string{"work.md", "notes.markdown", "plain.txt"}

	for _, file := range tests {
		t.Run(file, func(t *testing.T) {
			t.Parallel()

			r := NewCLI(t)
			r.MustRun(file, "first task")

			content := r.ReadFile(file)
			if content != "- [ ] first task\n" {
				t.Errorf("file content = %q", content)
			}

			stdout := r.MustRun(file, "list")
			if stdout != "1) first task" {
				t.Errorf("list output = %q", stdout)
			}
		})
	}
}

func TestRunBareDotExtensionIsTaskText(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.MustRun(".md")

	AssertContains(t, r.ReadTaskFile(), "- [ ] .md\n")
}

func TestRunFileFlag(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.MustRun("-f", "alt.md", "add", "task via flag")

	AssertContains(t, r.ReadFile("alt.md"), "- [ ] task via flag\n")
}

func TestRunEnvFileOverride(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.Env["TODO_FILE"] = "env.md"
	r.MustRun("add", "task via env")

	AssertContains(t, r.ReadFile("env.md"), "- [ ] task via env\n")
}

func TestRunFileResolutionPrecedence(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteFile(".todo.json", `{"file": "cfg.md"}`)

	// Project config alone selects cfg.md.
	r.MustRun("add", "one")
	AssertContains(t, r.ReadFile("cfg.md"), "- [ ] one\n")

	// Environment beats project config.
	r.Env["TODO_FILE"] = "env.md"
	r.MustRun("add", "two")
	AssertContains(t, r.ReadFile("env.md"), "- [ ] two\n")

	// A positional file argument beats everything.
	r.MustRun("pos.md", "three")
	AssertContains(t, r.ReadFile("pos.md"), "- [ ] three\n")
}

func TestRunExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("-c", "nope.json", "list")
	AssertContains(t, stderr, "config file not found")
}

func TestRunConfigEmptyFileRejected(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteFile(".todo.json", `{"file": ""}`)

	stderr := r.MustFail("list")
	AssertContains(t, stderr, "file cannot be empty")
}

func TestRunConfigJSONC(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteFile(".todo.json", "{\n  // checklist for this project\n  \"file\": \"project.md\",\n}\n")

	r.MustRun("add", "commented config")
	AssertContains(t, r.ReadFile("project.md"), "- [ ] commented config\n")
}

func TestRunCommandHelp(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout := r.MustRun("list", "--help")
	AssertContains(t, stdout, "Usage: todo list [--done]")
	AssertContains(t, stdout, "--done")

	// check has no flag set; -h is still recognized.
	stdout = r.MustRun("check", "-h")
	AssertContains(t, stdout, "Usage: todo check <index>...")
}
