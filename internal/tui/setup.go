package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/config"
	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/theme"
)

// SetupModel is the theme picker shown on first run and by 'todo theme'.
type SetupModel struct {
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
	err           error
}

func NewSetupModel() SetupModel {
	themes := theme.ListThemes()

	return SetupModel{
		themes:       themes,
		currentTheme: theme.Resolve(themes[0]),
		width:        100,
		height:       30,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.currentTheme = theme.Resolve(m.themes[m.selectedIndex])
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				m.currentTheme = theme.Resolve(m.themes[m.selectedIndex])
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			m.err = config.UpdateTheme(m.themes[m.selectedIndex])
			m.confirmed = m.err == nil
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// Selected returns the chosen theme name, or "" if the picker was
// cancelled or saving failed.
func (m SetupModel) Selected() string {
	if !m.confirmed {
		return ""
	}
	return m.themes[m.selectedIndex]
}

// Err is the error from saving the selection, if any.
func (m SetupModel) Err() error {
	return m.err
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		if m.err != nil {
			return fmt.Sprintf("Failed to save theme: %v\n", m.err)
		}
		return "Setup cancelled.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	leftWidth := max(m.width/3, 30)
	rightWidth := max(m.width-leftWidth-4, 30)

	panel := func(width int) lipgloss.Style {
		return lipgloss.NewStyle().
			Width(width).
			Height(m.height - 4).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
			Padding(1)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(leftWidth).Render(m.renderThemeList(leftWidth)),
		panel(rightWidth).Render(m.renderPreview(styles, rightWidth)),
	)

	header := styles.TUITitle.Render("Choose a theme")
	subtitle := styles.TUISubtitle.Render("You can change it later with 'todo theme'")
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderThemeList(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Available Themes"))
	b.WriteString("\n\n")

	for i, name := range m.themes {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextSecondary)).
			Width(width - 4)
		prefix := "  "

		if i == m.selectedIndex {
			prefix = "▶ "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true).
				Width(width - 4)
		}

		b.WriteString(style.Render(prefix + name))
		b.WriteString("\n")
	}

	return b.String()
}

var previewTasks = []domain.Task{
	{Title: "Renew passport", Priority: domain.PriorityHigh, DueDate: "2026-11-02", Description: "photos first"},
	{Title: "Book dentist", Priority: domain.PriorityNormal},
	{Title: "Water plants", Priority: domain.PriorityLow, Completed: true},
}

func (m SetupModel) renderPreview(styles *theme.Styles, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Preview"))
	b.WriteString("\n\n")

	sep := strings.Repeat("─", max(width-4, 1))

	for i, task := range previewTasks {
		if i > 0 {
			b.WriteString(styles.Separator.Render(sep))
			b.WriteString("\n")
		}

		title := fmt.Sprintf("%s %s", display.GetCompletionIcon(task.Completed), task.Title)
		b.WriteString(styles.GetRowStyle(task).Bold(true).Render(title))
		b.WriteString("\n")

		info := "  " + styles.GetPriorityStyle(task.Priority).Render(display.FormatPriority(task.Priority))
		if task.DueDate != "" {
			info += styles.TUISubtitle.Render(" | due " + task.DueDate)
		}
		b.WriteString(info)
		b.WriteString("\n")

		if task.Description != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.TextMuted)).
				Render("  " + task.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
