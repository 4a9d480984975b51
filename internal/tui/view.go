package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/domain"
	"todolist/internal/view"
)

// renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TUITitle.Render("  To-Do List  "))
	b.WriteString("\n")

	switch m.uiMode {
	case confirmingMode:
		b.WriteString("\n")
		b.WriteString(m.renderConfirmDialog())
		b.WriteString("\n")
		return b.String()

	case addingMode:
		b.WriteString(m.renderAddForm())
		b.WriteString("\n")
		b.WriteString(m.renderHints(
			"Tab/Shift+Tab: navigate fields",
			"Enter/Ctrl+S: save",
			"Ctrl+P: cycle priority",
			"Esc: cancel",
		))
		return b.String()

	case progressMode:
		b.WriteString(m.renderProgressPanel())
		b.WriteString("\n")
		b.WriteString(m.renderHints(
			"Tab: switch field",
			"Enter: calculate",
			"Esc: back",
		))
		return b.String()
	}

	b.WriteString(m.renderTableView())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderTableView() string {
	var b strings.Builder

	if m.uiMode == searchingMode {
		b.WriteString(m.styles.Label.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if m.search != "" {
		b.WriteString(m.styles.Info.Render(fmt.Sprintf("Search: %s", m.search)))
		b.WriteString("\n\n")
	}

	if m.message != "" {
		b.WriteString(m.styles.Success.Render(m.message))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 {
		if m.search != "" {
			b.WriteString(m.styles.Info.Render("No tasks match the search."))
		} else {
			b.WriteString(m.styles.Info.Render("No tasks yet. Press n to add one."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(m.renderSelectedDetail())
	}

	return b.String()
}

// renderSelectedDetail shows the description of the task under the
// cursor, which does not fit in the table.
func (m Model) renderSelectedDetail() string {
	row, ok := m.selectedRow()
	if !ok || strings.TrimSpace(row.Task.Description) == "" {
		return ""
	}
	return m.styles.TUISubtitle.Render("  " + row.Task.Description)
}

func (m Model) renderConfirmDialog() string {
	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Bold(true).
		Render(m.confirm.message)

	prompt := m.styles.TUISubtitle.Render("Are you sure? (y/n)")

	content := lipgloss.JoinVertical(lipgloss.Left, message, "", prompt)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Warning)).
		Padding(1, 2).
		Render(content)
}

func (m Model) renderStatusBar() string {
	summary := view.Summarize(m.rows, m.store.Len())

	var items []string
	if summary.Shown == summary.Total {
		items = append(items, fmt.Sprintf("Total: %d task(s)", summary.Total))
	} else {
		items = append(items, fmt.Sprintf("Showing %d of %d", summary.Shown, summary.Total))
	}
	items = append(items, fmt.Sprintf("Completed: %d", summary.Completed))

	if m.watch != nil {
		items = append(items, "Live")
	}

	return m.styles.TUISubtitle.Render(strings.Join(items, " • "))
}

func (m Model) renderHelp() string {
	if m.showHelp {
		var lines []string
		for _, group := range m.keys.fullHelp() {
			lines = append(lines, m.formatBindings(group))
		}
		return m.styles.TUIHelp.Render(strings.Join(lines, "\n"))
	}
	return m.styles.TUIHelp.Render(m.formatBindings(m.keys.shortHelp()))
}

func (m Model) formatBindings(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " • ")
}

func (m Model) renderHints(hints ...string) string {
	return m.styles.TUIHelp.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderFieldLabel(label string, focused bool) string {
	if focused {
		return m.styles.Label.Render(m.styles.Success.Render("▶ " + label))
	}
	return m.styles.Label.Render("  " + label)
}

func (m Model) renderAddForm() string {
	var b strings.Builder

	b.WriteString(m.styles.TUISubtitle.Render("New Task"))
	b.WriteString("\n\n")

	if m.form.err != "" {
		b.WriteString(m.styles.Error.Render("Error: " + m.form.err))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFieldLabel("Title:", m.form.focusedField == fieldTitle))
	b.WriteString("\n  ")
	b.WriteString(m.form.titleInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Due Date:", m.form.focusedField == fieldDue))
	b.WriteString("\n  ")
	b.WriteString(m.form.dueInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Description:", m.form.focusedField == fieldDescription))
	b.WriteString("\n  ")
	b.WriteString(m.form.descInput.View())
	b.WriteString("\n\n")

	priority := m.form.priority()
	b.WriteString(m.styles.Label.Render("  Priority:"))
	b.WriteString(" ")
	b.WriteString(m.styles.GetPriorityStyle(priority).Render(string(priority)))
	b.WriteString(m.styles.TUIHelp.Render(" (Ctrl+P to cycle)"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderProgressPanel() string {
	var b strings.Builder

	b.WriteString(m.styles.TUISubtitle.Render("Progress by due date"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Start:", !m.progress.focusEnd))
	b.WriteString("\n  ")
	b.WriteString(m.progress.startInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("End:", m.progress.focusEnd))
	b.WriteString("\n  ")
	b.WriteString(m.progress.endInput.View())
	b.WriteString("\n\n")

	if m.progress.err != nil {
		b.WriteString(m.styles.Error.Render(m.progress.err.Error()))
		b.WriteString("\n\n")
	}

	if p := m.progress.result; p != nil {
		b.WriteString(m.styles.Panel.Render(m.renderProgressResult(p)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderProgressResult(p *domain.Progress) string {
	header := m.styles.Label.Render(fmt.Sprintf("%s → %s",
		p.Start.Format(domain.DueDateLayout), p.End.Format(domain.DueDateLayout)))

	if p.Empty {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.styles.Info.Render("No tasks yet."))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		fmt.Sprintf("%s %s (%d of %d)", m.styles.Label.Render("Completed:"),
			m.styles.Success.Render(p.FormatCompleted()), p.CompletedInRange, p.TotalTasks),
		fmt.Sprintf("%s %s (%d of %d)", m.styles.Label.Render("Not completed:"),
			m.styles.Warning.Render(p.FormatNotCompleted()), p.NotCompleted, p.TotalTasks),
	)
}
