package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// done flags
	doneSearch string
)

var doneCmd = &cobra.Command{
	Use:     "done <id|#N>...",
	Aliases: []string{"toggle"},
	Short:   "Toggle tasks between completed and open",
	Long: `Flip the completion flag of one or more tasks.

Tasks are referenced by id (or a unique id prefix) or by their position
in 'todo list' as #N. Positions are taken from the list as filtered by
--search.

Examples:
  todo done 3f2a9c1e
  todo done #1 #2
  todo done #1 --search rent`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)

	doneCmd.Flags().StringVarP(&doneSearch, "search", "s", "", "Search text the #N positions refer to")
}

func runDone(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, err := resolveRefs(a.store, args, doneSearch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	for _, t := range tasks {
		toggled, err := a.store.Toggle(cmd.Context(), t.ID)
		if err != nil {
			return fmt.Errorf("failed to update task %s: %w", t.ShortID(), err)
		}

		if toggled.Completed {
			fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("✓ Completed: %s", toggled.Title)))
		} else {
			fmt.Fprintln(out, a.styles.Info.Render(fmt.Sprintf("○ Reopened: %s", toggled.Title)))
		}
	}

	fmt.Fprintln(out)
	return nil
}
