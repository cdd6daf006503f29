package cli

import (
	"os"
	"testing"
)

func TestClean(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTaskFile("- [ ] A\n- [x] B\n- [x] C\n")

	stdout, stderr, code := r.Run("clean")
	if code != 0 || stdout != "" || stderr != "" {
		t.Fatalf("clean should be silent, got code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}

	content := r.ReadTaskFile()
	if content != "- [ ] A\n" {
		t.Errorf("file content = %q", content)
	}
}

func TestCleanKeepsOtherLines(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTaskFile("# header\n- [x] done\nprose stays\n- [ ] open\n")

	r.MustRun("clean")

	content := r.ReadTaskFile()
	if content != "# header\nprose stays\n- [ ] open\n" {
		t.Errorf("file content = %q", content)
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTaskFile("- [ ] A\n- [x] B\n")

	r.MustRun("clean")
	first := r.ReadTaskFile()

	stdout := r.MustRun("clean")
	if stdout != "No finished tasks found." {
		t.Errorf("second clean output = %q", stdout)
	}

	if second := r.ReadTaskFile(); second != first {
		t.Errorf("second clean changed the file: %q -> %q", first, second)
	}
}

func TestCleanNothingFinished(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTaskFile("- [ ] A\n")

	stdout := r.MustRun("clean")
	if stdout != "No finished tasks found." {
		t.Errorf("clean output = %q", stdout)
	}
}

func TestCleanMissingFile(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout := r.MustRun("clean")
	if stdout != "No finished tasks found." {
		t.Errorf("clean output = %q", stdout)
	}

	if _, err := os.Stat(r.TaskFile()); !os.IsNotExist(err) {
		t.Errorf("task file should not exist, stat err = %v", err)
	}
}

func TestCleanRemovesEveryLineWhenAllFinished(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTaskFile("- [x] A\n- [x] B\n")

	r.MustRun("clean")

	if content := r.ReadTaskFile(); content != "" {
		t.Errorf("file content = %q, want empty file", content)
	}
}
