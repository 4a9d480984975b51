package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/display"
	"todolist/internal/theme"
	"todolist/internal/view"
)

var (
	// list flags
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks soonest-due first; tasks without a due date follow,
ordered by priority from low to high.

The # column is the row position used by 'todo done #N' and
'todo delete #N'. Pass the same --search to those commands so the
positions line up.

Examples:
  todo list
  todo list --search rent
  todo list -s 2026-11`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show tasks whose title or due date contains this text")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	rows := view.Build(a.store.Tasks(), listSearch)

	if len(rows) == 0 {
		fmt.Fprintln(out)
		if listSearch != "" && a.store.Len() > 0 {
			fmt.Fprintln(out, a.styles.Info.Render(fmt.Sprintf("No tasks match %q.", listSearch)))
		} else {
			fmt.Fprintln(out, a.styles.Info.Render("No tasks found."))
		}
		fmt.Fprintln(out)
		return nil
	}

	displayTasksTable(out, rows, a.store.Len(), a.styles, now())
	return nil
}

func displayTasksTable(out io.Writer, rows []view.Row, total int, styles *theme.Styles, now time.Time) {
	fmt.Fprintln(out)

	headers := []string{
		styles.Header.Render(fmt.Sprintf("%-3s", "#")),
		styles.Header.Render(fmt.Sprintf("%-8s", "ID")),
		styles.Header.Render(fmt.Sprintf("%-4s", "Done")),
		styles.Header.Render(fmt.Sprintf("%-10s", "Priority")),
		styles.Header.Render(fmt.Sprintf("%-40s", "Title")),
		styles.Header.Render(fmt.Sprintf("%-18s", "Due Date")),
	}
	fmt.Fprintln(out, strings.Join(headers, " "))
	fmt.Fprintln(out, styles.Separator.Render(strings.Repeat("─", 100)))

	for _, row := range rows {
		printTaskRow(out, row, styles, now)
	}

	summary := view.Summarize(rows, total)
	fmt.Fprintln(out)
	if summary.Shown == summary.Total {
		fmt.Fprintf(out, "Total: %s, %d completed\n", plural(summary.Total, "task"), summary.Completed)
	} else {
		fmt.Fprintf(out, "Showing %d of %s, %d completed\n", summary.Shown, plural(summary.Total, "task"), summary.Completed)
	}
	fmt.Fprintln(out)
}

func printTaskRow(out io.Writer, row view.Row, styles *theme.Styles, now time.Time) {
	task := row.Task
	rowStyle := styles.GetRowStyle(task)

	cells := []string{
		styles.Cell.Render(fmt.Sprintf("%-3d", row.Position)),
		styles.Cell.Render(fmt.Sprintf("%-8s", task.ShortID())),
		rowStyle.Render(styles.Cell.Render(display.Fit(display.GetCompletionIcon(task.Completed), 4))),
		rowStyle.Render(styles.Cell.Render(display.Fit(display.FormatPriority(task.Priority), 10))),
		rowStyle.Render(styles.Cell.Render(display.Fit(task.Title, 40))),
		rowStyle.Render(styles.Cell.Render(display.Fit(display.FormatDueDate(task, now), 18))),
	}

	fmt.Fprintln(out, strings.Join(cells, " "))
}
