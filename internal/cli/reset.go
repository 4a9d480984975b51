package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// reset flags
	resetForce bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved task list",
	Long: `Delete everything saved under the storage key, completed or not.

Use this to recover when the saved list can no longer be read; the
unreadable data is removed and the next 'todo add' starts a fresh list.

Examples:
  todo reset
  todo reset --key work --force`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	corrupt := a.warning != ""

	if a.store.Len() == 0 && !corrupt {
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.styles.Info.Render("No tasks to clear."))
		fmt.Fprintln(out)
		return nil
	}

	if !resetForce {
		question := fmt.Sprintf("Delete all %s saved under %q?", plural(a.store.Len(), "task"), a.store.Key())
		if corrupt {
			question = fmt.Sprintf("Delete the unreadable data saved under %q?", a.store.Key())
		}

		fmt.Fprintln(out)
		ok, err := confirm(cmd, a.styles, question)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out)
			fmt.Fprintln(out, a.styles.Info.Render("Reset cancelled."))
			fmt.Fprintln(out)
			return nil
		}
	}

	if err := a.store.Clear(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("✓ Cleared the list saved under %q", a.store.Key())))
	fmt.Fprintln(out)
	return nil
}
