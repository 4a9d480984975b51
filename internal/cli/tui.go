package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todolist/internal/tui"
	"todolist/internal/watcher"
)

var (
	// tui flags
	tuiNoWatch bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI",
	Long: `Launch the interactive interface for managing tasks.

The list reloads on its own when another 'todo' process changes it.

Keyboard shortcuts:
    ↑/k ↓/j   Move
    /         Search title or due date
    esc       Clear search
    n         New task
    space/x   Toggle completed
    d         Delete task
    D         Delete all completed tasks
    p         Progress for a due-date range
    r         Reload
    ?         Toggle help
    q         Quit

On first launch you are asked to pick a theme.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiNoWatch, "no-watch", false, "Do not reload when the database changes")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if currentThemeName() == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome! Let's pick a theme first.")
		if _, err := runThemeSetup(cmd); err != nil {
			return err
		}
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := []tui.Option{tui.WithLogger(a.logger)}
	if a.warning != "" {
		opts = append(opts, tui.WithStatus(a.warning))
	}

	if !tuiNoWatch {
		w, err := watcher.New(a.db.Path(), watcher.WithOnError(func(err error) {
			a.logger.Warn("watcher error", "error", err)
		}))
		if err == nil {
			err = w.Start(cmd.Context())
		}
		if err != nil {
			a.logger.Warn("live reload disabled", "error", err)
		} else {
			defer w.Stop()
			opts = append(opts, tui.WithWatcher(w))
		}
	}

	model := tui.NewModel(cmd.Context(), a.store, a.theme, a.styles, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
