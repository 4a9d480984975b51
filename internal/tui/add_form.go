package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/dates"
	"todolist/internal/domain"
	"todolist/internal/store"
)

const (
	fieldTitle = iota
	fieldDue
	fieldDescription
	fieldCount
)

var priorities = []domain.Priority{
	domain.PriorityLow,
	domain.PriorityNormal,
	domain.PriorityHigh,
}

type addForm struct {
	titleInput   textinput.Model
	dueInput     textinput.Model
	descInput    textarea.Model
	focusedField int
	priorityIdx  int
	err          string
}

func newAddForm() addForm {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 0
	ti.Width = 50

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD, today, +3d (optional)"
	di.CharLimit = 32
	di.Width = 50

	da := textarea.New()
	da.Placeholder = "Description (optional)"
	da.CharLimit = 0
	da.SetWidth(50)
	da.SetHeight(3)

	return addForm{
		titleInput:  ti,
		dueInput:    di,
		descInput:   da,
		priorityIdx: 1, // normal
	}
}

// reset clears the form and focuses the title.
func (f *addForm) reset() tea.Cmd {
	*f = newAddForm()
	return f.updateFocus()
}

func (f *addForm) updateFocus() tea.Cmd {
	f.titleInput.Blur()
	f.dueInput.Blur()
	f.descInput.Blur()

	switch f.focusedField {
	case fieldTitle:
		return f.titleInput.Focus()
	case fieldDue:
		return f.dueInput.Focus()
	case fieldDescription:
		return f.descInput.Focus()
	}
	return nil
}

func (f *addForm) nextField() tea.Cmd {
	f.focusedField = (f.focusedField + 1) % fieldCount
	return f.updateFocus()
}

func (f *addForm) prevField() tea.Cmd {
	f.focusedField = (f.focusedField + fieldCount - 1) % fieldCount
	return f.updateFocus()
}

func (f *addForm) cyclePriority() {
	f.priorityIdx = (f.priorityIdx + 1) % len(priorities)
}

func (f *addForm) priority() domain.Priority {
	return priorities[f.priorityIdx]
}

// updateInput forwards msg to the focused input.
func (f *addForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focusedField {
	case fieldTitle:
		f.titleInput, cmd = f.titleInput.Update(msg)
	case fieldDue:
		f.dueInput, cmd = f.dueInput.Update(msg)
	case fieldDescription:
		f.descInput, cmd = f.descInput.Update(msg)
	}
	return cmd
}

// formInput turns the form into a store.NewTaskInput, resolving relative
// due dates against the model clock.
func (m *Model) formInput() (store.NewTaskInput, error) {
	due, err := dates.NormalizeDue(m.form.dueInput.Value(), m.now())
	if err != nil {
		return store.NewTaskInput{}, fmt.Errorf("invalid due date: %w", err)
	}

	return store.NewTaskInput{
		Title:       m.form.titleInput.Value(),
		Priority:    m.form.priority(),
		DueDate:     due,
		Description: strings.TrimSpace(m.form.descInput.Value()),
	}, nil
}
