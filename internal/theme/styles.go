package theme

import (
	"todolist/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// priority
	HighRow   lipgloss.Style
	NormalRow lipgloss.Style
	LowRow    lipgloss.Style

	// completion
	CompletedRow lipgloss.Style
	OpenText     lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	Panel       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Focused     lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		HighRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PriorityHigh)),

		NormalRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PriorityNormal)),

		LowRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PriorityLow)),

		CompletedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Completed)).
			Strikethrough(true),

		OpenText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Open)),

		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)),
	}
}

// ForTheme resolves name and builds its styles.
func ForTheme(name string) (*Theme, *Styles) {
	t := Resolve(name)
	return t, NewStyles(t)
}

func (s *Styles) GetPriorityStyle(priority domain.Priority) lipgloss.Style {
	switch priority {
	case domain.PriorityHigh:
		return s.HighRow
	case domain.PriorityNormal:
		return s.NormalRow
	case domain.PriorityLow:
		return s.LowRow
	default:
		return s.Cell
	}
}

// GetRowStyle colors a task row: completed rows are struck through,
// open rows take their priority color.
func (s *Styles) GetRowStyle(task domain.Task) lipgloss.Style {
	if task.Completed {
		return s.CompletedRow
	}
	return s.GetPriorityStyle(task.Priority)
}
