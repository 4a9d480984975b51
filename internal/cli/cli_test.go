package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/progress"
	"todolist/internal/repository/memory"
	"todolist/internal/repository/sqlite"
	"todolist/internal/store"
)

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

type testEnv struct {
	dir    string
	dbPath string
}

func setupCLI(t *testing.T) *testEnv {
	t.Helper()

	origNow := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = origNow })

	dir := t.TempDir()
	return &testEnv{
		dir:    dir,
		dbPath: filepath.Join(dir, "todo.db"),
	}
}

// resetFlags puts every flag back to its default; cobra keeps flag values
// between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func (e *testEnv) runWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(e.dir, "config.yaml"),
		"--db", e.dbPath,
	}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func (e *testEnv) run(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := e.runWithInput(t, "", args...)
	require.NoError(t, err, "todo %v", args)
	return out
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	e.run(t, "add", "Read book", "-p", "low")
	e.run(t, "add", "Pay rent", "--due", "2026-11-01", "-p", "high")
	e.run(t, "add", "Water", "plants", "--due", "tomorrow", "-d", "balcony too")
}

func TestAddAndList(t *testing.T) {
	env := setupCLI(t)

	out := env.run(t, "add", "Pay rent", "--due", "2026-11-01", "-p", "high")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "2026-11-01")

	env.run(t, "add", "Read book", "-p", "low")
	env.run(t, "add", "Water", "plants", "--due", "tomorrow")

	out = env.run(t, "list")
	water := strings.Index(out, "Water plants")
	rent := strings.Index(out, "Pay rent")
	book := strings.Index(out, "Read book")

	require.True(t, water >= 0 && rent >= 0 && book >= 0, out)
	assert.Less(t, water, rent)
	assert.Less(t, rent, book)
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "Total: 3 tasks, 0 completed")
}

func TestList_WideTitlesKeepColumnsAligned(t *testing.T) {
	env := setupCLI(t)

	env.run(t, "add", "買い物リストを作成して牛乳とパンと卵を買う予定を立てる")
	env.run(t, "add", "Buy milk")

	out := env.run(t, "list")

	var wide, plain string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "買い物"):
			wide = line
		case strings.Contains(line, "Buy milk"):
			plain = line
		}
	}

	require.NotEmpty(t, wide, out)
	require.NotEmpty(t, plain, out)
	assert.Contains(t, wide, "...")
	assert.Equal(t, lipgloss.Width(plain), lipgloss.Width(wide))
}

func TestAdd_Validation(t *testing.T) {
	env := setupCLI(t)

	_, _, err := env.runWithInput(t, "", "add", "Task", "-p", "urgent")
	assert.ErrorContains(t, err, "invalid priority")

	_, _, err = env.runWithInput(t, "", "add", "Task", "--due", "someday")
	assert.ErrorContains(t, err, "invalid due date")

	_, _, err = env.runWithInput(t, "", "add", "   ")
	assert.ErrorContains(t, err, "validation failed")

	out := env.run(t, "list")
	assert.Contains(t, out, "No tasks found.")
}

func TestList_Search(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	out := env.run(t, "list", "--search", "BOOK")
	assert.Contains(t, out, "Read book")
	assert.NotContains(t, out, "Pay rent")
	assert.Contains(t, out, "Showing 1 of 3 tasks")

	out = env.run(t, "list", "-s", "2026-11")
	assert.Contains(t, out, "Pay rent")
	assert.NotContains(t, out, "Read book")

	out = env.run(t, "list", "-s", "nothing like this")
	assert.Contains(t, out, "No tasks match")
}

func TestDone_ByPositionAndSearch(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	// #1 in the full list is the task due tomorrow
	out := env.run(t, "done", "#1")
	assert.Contains(t, out, "Completed: Water plants")

	// #1 within the search results is the book
	out = env.run(t, "done", "#1", "--search", "book")
	assert.Contains(t, out, "Completed: Read book")

	out = env.run(t, "list")
	assert.Contains(t, out, "2 completed")

	out = env.run(t, "done", "#1")
	assert.Contains(t, out, "Reopened: Water plants")
}

func TestDone_UnknownReference(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	_, _, err := env.runWithInput(t, "", "done", "#9")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, _, err = env.runWithInput(t, "", "done", "no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, _, err = env.runWithInput(t, "", "done", "#one")
	assert.ErrorContains(t, err, "invalid position")
}

func TestDelete_Confirmation(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	out, _, err := env.runWithInput(t, "n\n", "delete", "#2")
	require.NoError(t, err)
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "Deletion cancelled.")
	assert.Contains(t, env.run(t, "list"), "Pay rent")

	out, _, err = env.runWithInput(t, "y\n", "delete", "#2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 task")

	out = env.run(t, "list")
	assert.NotContains(t, out, "Pay rent")
	assert.Contains(t, out, "Total: 2 tasks")
}

func TestDelete_ForceMultiple(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	// repeated references to one task are deleted once
	out := env.run(t, "delete", "#1", "#3", "#1", "--force")
	assert.Contains(t, out, "Deleted 2 tasks")

	out = env.run(t, "list")
	assert.Contains(t, out, "Pay rent")
	assert.NotContains(t, out, "Water plants")
	assert.NotContains(t, out, "Read book")
}

func TestPurge(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	out := env.run(t, "purge", "--force")
	assert.Contains(t, out, "No completed tasks")

	env.run(t, "done", "#1", "#3")

	out, _, err := env.runWithInput(t, "yes\n", "purge")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 completed tasks")

	out = env.run(t, "list")
	assert.Contains(t, out, "Total: 1 task,")
	assert.Contains(t, out, "Pay rent")
}

func TestProgress(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)
	env.run(t, "done", "#2") // pay rent, due 2026-11-01

	out := env.run(t, "progress", "--start", "2026-10-01", "--end", "2026-11-30")
	assert.Contains(t, out, "33.33%")
	assert.Contains(t, out, "66.67%")

	// end of range is inclusive
	out = env.run(t, "progress", "--start", "2026-10-01", "--end", "2026-11-01")
	assert.Contains(t, out, "33.33%")

	out = env.run(t, "progress", "--start", "today", "--end", "+1w")
	assert.Contains(t, out, "0.00%")
	assert.Contains(t, out, "100.00%")

	out = env.run(t, "progress", "--start", "2026-10-01", "--end", "2026-11-30", "--json")
	assert.Contains(t, out, `"completed_in_range": 1`)
	assert.Contains(t, out, `"total_tasks": 3`)
}

func TestProgress_InvalidRange(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	_, _, err := env.runWithInput(t, "", "progress", "--start", "2026-10-01")
	assert.ErrorIs(t, err, progress.ErrInvalidRange)

	_, _, err = env.runWithInput(t, "", "progress", "--start", "soon", "--end", "2026-10-01")
	assert.ErrorIs(t, err, progress.ErrInvalidRange)

	out, _, err := env.runWithInput(t, "", "progress", "--start", "2026-12-01", "--end", "2026-10-01")
	require.NoError(t, err)
	assert.Contains(t, out, "0.00%")
	assert.Contains(t, out, "100.00%")
}

func TestProgress_EmptyList(t *testing.T) {
	env := setupCLI(t)

	out := env.run(t, "progress", "--start", "2026-10-01", "--end", "2026-10-31")
	assert.Contains(t, out, "No tasks yet.")
	assert.NotContains(t, out, "NaN")
}

func TestExportImport(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)
	env.run(t, "done", "#2")

	backup := filepath.Join(env.dir, "out", "backup.json")
	out := env.run(t, "export", "--output", backup)
	assert.Contains(t, out, "Exported 3 tasks")

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "1.0"`)

	out = env.run(t, "import", backup, "--key", "work", "--dry-run")
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, env.run(t, "list", "--key", "work"), "No tasks found.")

	out = env.run(t, "import", backup, "--key", "work")
	assert.Contains(t, out, "Added 3, updated 0, skipped 0")

	out = env.run(t, "list", "--key", "work")
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "1 completed")

	// same ids again: skip keeps the list as is
	out = env.run(t, "import", backup, "--key", "work", "--strategy", "skip")
	assert.Contains(t, out, "Added 0, updated 0, skipped 3")
	assert.Contains(t, out, "List now has 3 tasks")
}

type failingCloseWriter struct {
	bytes.Buffer
}

func (w *failingCloseWriter) Close() error {
	return errors.New("disk full")
}

func TestExport_CloseErrorIsReported(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	orig := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return &failingCloseWriter{}, nil }
	t.Cleanup(func() { createOutput = orig })

	out, _, err := env.runWithInput(t, "", "export", "--output", filepath.Join(env.dir, "backup.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.NotContains(t, out, "Exported")
}

func TestExport_Formats(t *testing.T) {
	env := setupCLI(t)
	env.seed(t)

	out := env.run(t, "export", "--format", "csv")
	assert.True(t, strings.HasPrefix(out, "Position,ID,Title,Priority,Due Date,Description,Completed"))

	out = env.run(t, "export", "--format", "md")
	assert.Contains(t, out, "- [ ] Water plants")

	_, _, err := env.runWithInput(t, "", "export", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestCorruptDataWarns(t *testing.T) {
	env := setupCLI(t)

	db, err := sqlite.NewDB(sqlite.Config{Path: env.dbPath})
	require.NoError(t, err)
	require.NoError(t, sqlite.NewSlotRepository(db).Set(context.Background(), store.DefaultKey, "{not json"))
	require.NoError(t, db.Close())

	out, errOut, err := env.runWithInput(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, "could not be read")
	assert.Contains(t, out, "No tasks found.")
}

func TestReset_ClearsCorruptData(t *testing.T) {
	env := setupCLI(t)

	db, err := sqlite.NewDB(sqlite.Config{Path: env.dbPath})
	require.NoError(t, err)
	require.NoError(t, sqlite.NewSlotRepository(db).Set(context.Background(), store.DefaultKey, "{not json"))
	require.NoError(t, db.Close())

	out, errOut, err := env.runWithInput(t, "y\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, errOut, "todo reset")
	assert.Contains(t, out, "unreadable data")
	assert.Contains(t, out, "Cleared the list")

	out, errOut, err = env.runWithInput(t, "", "list")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "No tasks found.")
}

func TestReset(t *testing.T) {
	env := setupCLI(t)

	out := env.run(t, "reset")
	assert.Contains(t, out, "No tasks to clear.")

	env.seed(t)

	out, _, err := env.runWithInput(t, "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete all 3 tasks")
	assert.Contains(t, out, "Reset cancelled.")
	assert.Contains(t, env.run(t, "list"), "Total: 3 tasks")

	out = env.run(t, "reset", "--force")
	assert.Contains(t, out, "Cleared the list saved under \"tasks\"")
	assert.Contains(t, env.run(t, "list"), "No tasks found.")
}

func TestThemeSetAndList(t *testing.T) {
	env := setupCLI(t)

	out := env.run(t, "theme", "set", "nord")
	assert.Contains(t, out, "Theme set to 'nord'")

	out = env.run(t, "theme", "list")
	assert.Contains(t, out, "nord (current)")

	_, _, err := env.runWithInput(t, "", "theme", "set", "solarized")
	assert.ErrorContains(t, err, "not found")
}

func TestResolveRefs(t *testing.T) {
	ctx := context.Background()
	st := store.New(memory.NewSlotRepository(), store.DefaultKey)

	rent, err := st.Add(ctx, store.NewTaskInput{Title: "Pay rent", Priority: domain.PriorityHigh, DueDate: "2026-11-01"})
	require.NoError(t, err)
	book, err := st.Add(ctx, store.NewTaskInput{Title: "Read book", Priority: domain.PriorityLow})
	require.NoError(t, err)

	t.Run("positions follow display order", func(t *testing.T) {
		got, err := resolveRefs(st, []string{"#2", "#1"}, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, book.ID, got[0].ID)
		assert.Equal(t, rent.ID, got[1].ID)
	})

	t.Run("positions within search", func(t *testing.T) {
		got, err := resolveRefs(st, []string{"#1"}, "book")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, book.ID, got[0].ID)
	})

	t.Run("id and prefix", func(t *testing.T) {
		got, err := resolveRefs(st, []string{rent.ID, book.ID[:8]}, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, rent.ID, got[0].ID)
		assert.Equal(t, book.ID, got[1].ID)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got, err := resolveRefs(st, []string{"#1", rent.ID, "#1"}, "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rent.ID, got[0].ID)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := resolveRefs(st, []string{"#3"}, "")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = resolveRefs(st, []string{"#0"}, "")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = resolveRefs(st, []string{"#2"}, "book")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invalid position", func(t *testing.T) {
		_, err := resolveRefs(st, []string{"#x"}, "")
		assert.ErrorContains(t, err, "invalid position")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := resolveRefs(st, []string{"zzzz"}, "")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
