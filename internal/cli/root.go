package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/theme"
)

var (
	// global flags
	flagConfig  string
	flagDB      string
	flagKey     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a small, fast to-do list",
	Long: `todo keeps a single list of tasks with a title, priority, due date,
description and completion flag. Tasks are shown soonest-due first, with
undated tasks after them ordered by priority.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.SetConfigFile(flagConfig)
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.todolist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file, overrides db_path")
	rootCmd.PersistentFlags().StringVar(&flagKey, "key", "", "Storage key the list is saved under, overrides storage_key")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, styles := theme.ForTheme(currentThemeName())
		fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		os.Exit(1)
	}
}

func displayWelcome(cmd *cobra.Command) {
	_, styles := theme.ForTheme(currentThemeName())
	out := cmd.OutOrStdout()

	title := styles.Title.Render(`
		-----------------------------------

		           T O D O

		-----------------------------------
	`)
	subtitle := styles.Subtitle.Render("One list. Soonest first.")

	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, subtitle)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'todo --help' to see available commands.")
	fmt.Fprintln(out)
}

// currentThemeName reads the configured theme without failing; commands
// that cannot load config still render in the default theme.
func currentThemeName() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.ThemeName
}
