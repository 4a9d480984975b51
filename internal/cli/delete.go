package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// delete flags
	deleteForce  bool
	deleteSearch string

	// purge flags
	purgeForce bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id|#N>...",
	Aliases: []string{"rm"},
	Short:   "Delete one or more tasks",
	Long: `Delete one or more tasks by id, unique id prefix, or #N position.
You will be prompted for confirmation unless you use the --force flag.

Examples:
  todo delete 3f2a9c1e
  todo delete #1 #3
  todo delete #2 --search rent --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all completed tasks",
	Long: `Remove every completed task from the list.

Examples:
  todo purge
  todo purge --force`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(purgeCmd)

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
	deleteCmd.Flags().StringVarP(&deleteSearch, "search", "s", "", "Search text the #N positions refer to")

	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, err := resolveRefs(a.store, args, deleteSearch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !deleteForce {
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.styles.Error.Render(fmt.Sprintf("⚠  You are about to delete %s:", plural(len(tasks), "task"))))
		for _, t := range tasks {
			fmt.Fprintln(out, a.styles.Info.Render(fmt.Sprintf("   %s  %s", t.ShortID(), t.Title)))
		}
		fmt.Fprintln(out)

		ok, err := confirm(cmd, a.styles, "   Are you sure?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out)
			fmt.Fprintln(out, a.styles.Info.Render("Deletion cancelled."))
			fmt.Fprintln(out)
			return nil
		}
	}

	var deleted int
	var failed []string

	for _, t := range tasks {
		if err := a.store.Delete(cmd.Context(), t.ID); err != nil {
			failed = append(failed, fmt.Sprintf("%s (%v)", t.ShortID(), err))
			continue
		}
		deleted++
	}

	fmt.Fprintln(out)

	if deleted > 0 {
		fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("✓ Deleted %s", plural(deleted, "task"))))
	}

	if len(failed) > 0 {
		fmt.Fprintln(out, a.styles.Error.Render(fmt.Sprintf("✗ Failed to delete %s:", plural(len(failed), "task"))))
		for _, f := range failed {
			fmt.Fprintln(out, a.styles.Error.Render(fmt.Sprintf("  %s", f)))
		}
		fmt.Fprintln(out)
		return fmt.Errorf("failed to delete %s", plural(len(failed), "task"))
	}

	fmt.Fprintln(out)
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	completed := 0
	for _, t := range a.store.Tasks() {
		if t.Completed {
			completed++
		}
	}

	if completed == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.styles.Info.Render("No completed tasks to delete."))
		fmt.Fprintln(out)
		return nil
	}

	if !purgeForce {
		fmt.Fprintln(out)
		ok, err := confirm(cmd, a.styles, fmt.Sprintf("Delete %s?", plural(completed, "completed task")))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out)
			fmt.Fprintln(out, a.styles.Info.Render("Purge cancelled."))
			fmt.Fprintln(out)
			return nil
		}
	}

	removed, err := a.store.DeleteCompleted(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("✓ Deleted %s", plural(removed, "completed task"))))
	fmt.Fprintln(out)
	return nil
}
