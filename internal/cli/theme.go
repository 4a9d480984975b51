package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/theme"
	"todolist/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage application theme",
	Long: `Manage application theme settings.

Run without arguments to launch the interactive theme selector.

Examples:
  todo theme              # Launch interactive selector
  todo theme set dracula  # Set theme directly
  todo theme list         # List available themes
  todo theme show         # Show current theme`,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set <theme-name>",
	Short: "Set application theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the currently selected theme and its color palette.`,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// runs the theme picker and reports what was chosen
func runThemeSetup(cmd *cobra.Command) (string, error) {
	p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run theme selector: %w", err)
	}

	setup, ok := final.(tui.SetupModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if err := setup.Err(); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}

	return setup.Selected(), nil
}

func runThemeTUI(cmd *cobra.Command, args []string) error {
	selected, err := runThemeSetup(cmd)
	if err != nil {
		return err
	}

	if selected != "" {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", selected)
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !theme.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found. Run 'todo theme list' to see available themes", themeName)
	}

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", themeName)
	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	current := theme.Resolve(currentThemeName())
	styles := theme.NewStyles(current)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(out)

	for _, name := range theme.ListThemes() {
		prefix := "  "
		label := name
		if name == current.Name {
			prefix = "▶ "
			label = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, label)
	}

	fmt.Fprintln(out)
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	themeObj, styles := theme.ForTheme(cfg.ThemeName)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", themeObj.Name)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Info.Render("Color Palette:"))
	fmt.Fprintln(out)

	colors := []struct {
		name  string
		value string
	}{
		{"Primary", themeObj.Primary},
		{"Success", themeObj.Success},
		{"Error", themeObj.Error},
		{"Warning", themeObj.Warning},
		{"High", themeObj.PriorityHigh},
		{"Normal", themeObj.PriorityNormal},
		{"Low", themeObj.PriorityLow},
		{"Completed", themeObj.Completed},
		{"Text", themeObj.TextPrimary},
		{"Border", themeObj.BorderColor},
	}

	for _, c := range colors {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.value)).
			Foreground(lipgloss.Color(c.value)).
			Render("  ████  ")
		fmt.Fprintf(out, "  %-12s %s %s\n", c.name+":", sample, c.value)
	}

	fmt.Fprintln(out)
	return nil
}
