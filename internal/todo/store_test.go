package todo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// loadStore writes content to a fresh temp file and loads it.
func loadStore(t *testing.T, content string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todo.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store := NewStore(path)
	require.NoError(t, store.Load())

	return store
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todo.md")
	store := NewStore(path)

	require.NoError(t, store.Load())
	require.Equal(t, 0, store.Len())

	// Never populated: Save must not create the file.
	require.NoError(t, store.Save())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	store := loadStore(t, "")
	require.Equal(t, 0, store.Len())

	// Zero lines read counts as never populated.
	require.NoError(t, store.Save())
}

func TestLoadPreservesTerminators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "trailing newline",
			content: "- [ ] A\n- [x] B\n",
			want:    []string{"- [ ] A\n", "- [x] B\n"},
		},
		{
			name:    "final line unterminated",
			content: "- [ ] A\n- [ ] B",
			want:    []string{"- [ ] A\n", "- [ ] B"},
		},
		{
			name:    "crlf terminators",
			content: "- [ ] A\r\n- [ ] B\r\n",
			want:    []string{"- [ ] A\r\n", "- [ ] B\r\n"},
		},
		{
			name:    "blank lines kept",
			content: "- [ ] A\n\n\n- [ ] B\n",
			want:    []string{"- [ ] A\n", "\n", "\n", "- [ ] B\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := loadStore(t, tt.content)

			if diff := cmp.Diff(tt.want, store.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	contents := []string{
		"- [ ] A\n- [x] B\n- [ ] C\n",
		"# heading\n\n- [ ] task\nplain prose\n",
		"- [ ] no trailing newline",
		"\t- [x] tab indented\n  - [ ] space indented\n",
		"- [ ] A\r\nwindows line\r\n",
	}

	for _, content := range contents {
		store := loadStore(t, content)
		require.NoError(t, store.Save())

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		require.Equal(t, content, string(data), "save(load(x)) must reproduce x byte-for-byte")
	}
}

func TestSaveAfterRemovingEverything(t *testing.T) {
	t.Parallel()

	store := loadStore(t, "- [ ] only\n")

	require.NoError(t, store.Remove(1))
	require.Equal(t, 0, store.Len())

	// Populated then emptied: the empty file must be written.
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Empty(t, string(data))
}

func TestAppendCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todo.md")
	store := NewStore(path)

	require.NoError(t, store.Load())
	require.NoError(t, store.Append("buy milk"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "- [ ] buy milk\n", string(data))
}

func TestAppendAfterUnterminatedLastLine(t *testing.T) {
	t.Parallel()

	store := loadStore(t, "- [ ] A")

	require.NoError(t, store.Append("B"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, "- [ ] A\n- [ ] B\n", string(data))
}

func TestAppendDoesNotTouchLoadedLines(t *testing.T) {
	t.Parallel()

	store := loadStore(t, "- [ ] A\n")

	require.NoError(t, store.Append("B"))
	require.Equal(t, 1, store.Len(), "append writes the file, not the in-memory lines")

	reloaded := NewStore(store.Path())
	require.NoError(t, reloaded.Load())
	require.Equal(t, 2, reloaded.Len())
}
