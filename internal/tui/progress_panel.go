package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/domain"
)

type progressPanel struct {
	startInput textinput.Model
	endInput   textinput.Model
	focusEnd   bool

	// last successful calculation; kept when a later one fails
	result *domain.Progress
	err    error
}

func newProgressPanel() progressPanel {
	si := textinput.New()
	si.Placeholder = "start: YYYY-MM-DD or -1w"
	si.CharLimit = 32
	si.Width = 30

	ei := textinput.New()
	ei.Placeholder = "end: YYYY-MM-DD or today"
	ei.CharLimit = 32
	ei.Width = 30

	return progressPanel{
		startInput: si,
		endInput:   ei,
	}
}

func (p *progressPanel) open() tea.Cmd {
	p.focusEnd = false
	p.err = nil
	return p.updateFocus()
}

func (p *progressPanel) toggleFocus() tea.Cmd {
	p.focusEnd = !p.focusEnd
	return p.updateFocus()
}

func (p *progressPanel) updateFocus() tea.Cmd {
	if p.focusEnd {
		p.startInput.Blur()
		return p.endInput.Focus()
	}
	p.endInput.Blur()
	return p.startInput.Focus()
}

func (p *progressPanel) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if p.focusEnd {
		p.endInput, cmd = p.endInput.Update(msg)
	} else {
		p.startInput, cmd = p.startInput.Update(msg)
	}
	return cmd
}
