package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"todolist/internal/domain"
	"todolist/internal/progress"
	"todolist/internal/theme"
)

var (
	// progress flags
	progressStart string
	progressEnd   string
	progressJSON  bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completion for tasks due in a date range",
	Long: `Count completed tasks whose due date falls between --start and --end
(both inclusive) and report them as a share of all tasks.

"Not completed" is everything else in the list: open tasks, undated
tasks, and completed tasks due outside the range.

Dates accept YYYY-MM-DD and relative forms such as today, -1w, +3d.

Examples:
  todo progress --start 2026-10-01 --end 2026-10-31
  todo progress --start -1w --end today
  todo progress --start today --end +1M --json`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().StringVar(&progressStart, "start", "", "Start of the due-date range")
	progressCmd.Flags().StringVar(&progressEnd, "end", "", "End of the due-date range")
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "Print the result as JSON")
}

func runProgress(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := progress.Calculate(a.store.Tasks(), progressStart, progressEnd, now())
	if err != nil {
		a.logger.Info("progress rejected", "start", progressStart, "end", progressEnd, "error", err)
		return err
	}

	out := cmd.OutOrStdout()

	if progressJSON {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode progress: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	displayProgress(cmd, p, a.styles)
	return nil
}

func displayProgress(cmd *cobra.Command, p *domain.Progress, styles *theme.Styles) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Progress %s → %s ",
		p.Start.Format(domain.DueDateLayout), p.End.Format(domain.DueDateLayout))))
	fmt.Fprintln(out)

	if p.Empty {
		fmt.Fprintln(out, styles.Info.Render("No tasks yet."))
		fmt.Fprintln(out)
		return
	}

	fmt.Fprintf(out, "  %s %d\n", styles.Label.Render("Total tasks:"), p.TotalTasks)
	fmt.Fprintf(out, "  %s %s (%d)\n", styles.Label.Render("Completed:"),
		styles.Success.Render(p.FormatCompleted()), p.CompletedInRange)
	fmt.Fprintf(out, "  %s %s (%d)\n", styles.Label.Render("Not completed:"),
		styles.Warning.Render(p.FormatNotCompleted()), p.NotCompleted)
	fmt.Fprintln(out)
}
