package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/logging"
	"todolist/internal/repository/sqlite"
	"todolist/internal/store"
	"todolist/internal/theme"
	"todolist/internal/view"
)

// replaced in tests
var now = time.Now

// app bundles what every task command needs: config, styles, logger and
// a loaded store.
type app struct {
	cfg    *config.Config
	theme  *theme.Theme
	styles *theme.Styles
	logger *slog.Logger
	db     *sqlite.DB
	store  *store.Store

	// set when the saved list could not be read
	warning string

	closeLog func() error
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagKey != "" {
		cfg.StorageKey = flagKey
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	logger, closeLog := logging.New(cfg.LogFile, level)
	logger = logger.With("command", cmd.Name())

	th, styles := theme.ForTheme(cfg.ThemeName)

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := &app{
		cfg:      cfg,
		theme:    th,
		styles:   styles,
		logger:   logger,
		db:       db,
		store:    store.New(sqlite.NewSlotRepository(db), cfg.StorageKey, store.WithLogger(logger)),
		closeLog: closeLog,
	}

	if _, err := a.store.Load(cmd.Context()); err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			a.Close()
			return nil, err
		}
		a.warning = fmt.Sprintf("⚠  Saved tasks under %q could not be read; starting with an empty list. Run 'todo reset' to clear them.", a.store.Key())
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Warning.Render(a.warning))
	}

	return a, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
	a.closeLog()
}

// resolveRefs maps each reference to a task. "#N" is the N-th row of the
// list as displayed with search applied; anything else is an id or a
// unique id prefix. Repeated references to one task are collapsed.
func resolveRefs(st *store.Store, refs []string, search string) ([]domain.Task, error) {
	var rows []view.Row
	seen := make(map[string]bool, len(refs))
	tasks := make([]domain.Task, 0, len(refs))

	for _, ref := range refs {
		var task domain.Task

		if pos, ok := strings.CutPrefix(strings.TrimSpace(ref), "#"); ok {
			n, err := strconv.Atoi(pos)
			if err != nil {
				return nil, fmt.Errorf("invalid position: %s", ref)
			}
			if rows == nil {
				rows = view.Build(st.Tasks(), search)
			}
			row, ok := view.AtPosition(rows, n)
			if !ok {
				return nil, fmt.Errorf("%w: no task at position %d", store.ErrNotFound, n)
			}
			task = row.Task
		} else {
			t, err := st.Resolve(ref)
			if err != nil {
				return nil, err
			}
			task = t
		}

		if seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// confirm asks a yes/no question on the command's input. Anything but
// "y" or "yes" is a no.
func confirm(cmd *cobra.Command, styles *theme.Styles, question string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), styles.Subtitle.Render(question+" (y/N): "))

	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
