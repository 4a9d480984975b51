package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todolist/internal/export"
)

var (
	importStrategy string
	importDryRun   bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks from a JSON file",
	Long: `Import tasks from a file written by 'todo export', or from a bare JSON
array of task records.

Conflict strategies, applied to tasks whose id already exists:
  - merge: replace the existing task with the imported one (default)
  - skip: keep the existing task
  - overwrite: discard the current list and use the imported one

Imported tasks that fail validation (for example an empty title) are
rejected and reported.

Examples:
  todo import backup.json
  todo import backup.json --strategy skip
  todo import backup.json --strategy overwrite --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importStrategy, "strategy", "merge", "Conflict strategy (merge, skip, overwrite)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without saving")
}

func runImport(cmd *cobra.Command, args []string) error {
	strategy, err := export.ParseConflictStrategy(importStrategy)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	incoming, err := export.Decode(f)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	merged, result := export.Merge(a.store.Tasks(), incoming, strategy)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	if importDryRun {
		fmt.Fprintln(out, a.styles.Info.Render("Dry run, nothing saved."))
	} else {
		if err := a.store.Replace(cmd.Context(), merged); err != nil {
			return fmt.Errorf("failed to save imported tasks: %w", err)
		}
		a.logger.Info("tasks imported", "file", args[0], "strategy", strategy,
			"added", result.Added, "updated", result.Updated, "skipped", result.Skipped, "rejected", result.Rejected)
	}

	fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("✓ Added %d, updated %d, skipped %d", result.Added, result.Updated, result.Skipped)))
	if result.Rejected > 0 {
		fmt.Fprintln(out, a.styles.Warning.Render(fmt.Sprintf("⚠  Rejected %s that failed validation", plural(result.Rejected, "task"))))
	}
	if importDryRun {
		fmt.Fprintf(out, "  List would have %s\n", plural(len(merged), "task"))
	} else {
		fmt.Fprintf(out, "  List now has %s\n", plural(len(merged), "task"))
	}
	fmt.Fprintln(out)

	return nil
}
