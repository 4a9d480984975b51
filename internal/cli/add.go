package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/dates"
	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/store"
	"todolist/internal/theme"
)

var (
	// add flags
	addPriority    string
	addDueDate     string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the list. Words after the command form the title.

Due dates accept YYYY-MM-DD and a few other layouts, or relative forms
such as today, tomorrow, +3d, 2w.

Examples:
  todo add "Pay rent" --due 2026-11-01 --priority high
  todo add Call the dentist --due tomorrow
  todo add "Read book" -p low -d "chapters 3 to 5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "normal", "Task priority (low, normal, high)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date (YYYY-MM-DD or relative: today, +3d, 2w)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
}

func runAdd(cmd *cobra.Command, args []string) error {
	priority, err := domain.ParsePriority(addPriority)
	if err != nil {
		return err
	}

	due, err := dates.NormalizeDue(addDueDate, now())
	if err != nil {
		return fmt.Errorf("invalid due date: %w", err)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := a.store.Add(cmd.Context(), store.NewTaskInput{
		Title:       strings.Join(args, " "),
		Priority:    priority,
		DueDate:     due,
		Description: addDescription,
	})
	if err != nil {
		return err
	}

	displayTaskCreated(cmd.OutOrStdout(), task, a.styles)
	return nil
}

func displayTaskCreated(out io.Writer, task domain.Task, styles *theme.Styles) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("✓ Task %s created", task.ShortID())))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %s %s\n", styles.Info.Render("Title:"), task.Title)
	fmt.Fprintf(out, "  %s %s\n", styles.Info.Render("Priority:"), display.FormatPriority(task.Priority))

	if task.DueDate != "" {
		fmt.Fprintf(out, "  %s %s\n", styles.Info.Render("Due Date:"), task.DueDate)
	}

	if task.Description != "" {
		fmt.Fprintf(out, "  %s %s\n", styles.Info.Render("Description:"), task.Description)
	}

	fmt.Fprintln(out)
}
