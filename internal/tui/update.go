package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/progress"
	"todolist/internal/store"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-12, 5))
		return m, nil

	case storeChangedMsg:
		m.reload()
		return m, waitForChangeCmd(m.watch)
	}

	switch m.uiMode {
	case confirmingMode:
		return m.updateConfirmDialog(msg)
	case addingMode:
		return m.updateAddMode(msg)
	case progressMode:
		return m.updateProgressMode(msg)
	case searchingMode:
		return m.updateSearchMode(msg)
	}

	return m.updateNormalMode(msg)
}

func (m *Model) reload() {
	result, err := m.store.Load(m.ctx)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			m.setMessage("⚠ Saved tasks could not be read; showing an empty list")
		} else {
			m.setError(err)
		}
	}
	m.logger.Debug("store reloaded", "result", result.String(), "count", m.store.Len())
	m.refreshRows()
}

func (m Model) updateConfirmDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.uiMode = normalMode
			if m.confirm.onConfirm != nil {
				m.confirm.onConfirm(&m)
			}
			m.confirm = confirmDialog{}
			return m, nil

		case "n", "N", "esc":
			m.uiMode = normalMode
			m.confirm = confirmDialog{}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateSearchMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "enter":
			m.uiMode = normalMode
			m.searchInput.Blur()
			return m, nil

		case "esc":
			m.uiMode = normalMode
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.search = ""
			m.refreshRows()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// filter as the user types
	if m.searchInput.Value() != m.search {
		m.search = m.searchInput.Value()
		m.refreshRows()
	}

	return m, cmd
}

func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Search):
		m.uiMode = searchingMode
		m.searchInput.SetValue(m.search)
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(keyMsg, m.keys.ClearSearch):
		if m.search != "" {
			m.search = ""
			m.searchInput.SetValue("")
			m.refreshRows()
		}
		m.message = ""
		m.err = nil
		return m, nil

	case key.Matches(keyMsg, m.keys.New):
		m.uiMode = addingMode
		cmd := m.form.reset()
		return m, cmd

	case key.Matches(keyMsg, m.keys.Toggle):
		return m.handleToggle()

	case key.Matches(keyMsg, m.keys.Delete):
		return m.handleDelete()

	case key.Matches(keyMsg, m.keys.Purge):
		return m.handlePurge()

	case key.Matches(keyMsg, m.keys.Progress):
		m.uiMode = progressMode
		cmd := m.progress.open()
		return m, cmd

	case key.Matches(keyMsg, m.keys.Reload):
		m.reload()
		if m.err == nil {
			m.setMessage("Reloaded")
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Up), key.Matches(keyMsg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleToggle() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	task, err := m.store.Toggle(m.ctx, row.ID())
	if err != nil {
		m.setError(err)
		return m, nil
	}

	if task.Completed {
		m.setMessage(fmt.Sprintf("✓ Completed: %s", task.Title))
	} else {
		m.setMessage(fmt.Sprintf("○ Reopened: %s", task.Title))
	}
	m.refreshRows()
	return m, nil
}

func (m Model) handleDelete() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	id, title := row.ID(), row.Task.Title
	m.uiMode = confirmingMode
	m.confirm = confirmDialog{
		message: fmt.Sprintf("Delete task %q?", title),
		onConfirm: func(m *Model) {
			if err := m.store.Delete(m.ctx, id); err != nil {
				m.setError(err)
				return
			}
			m.setMessage(fmt.Sprintf("Deleted: %s", title))
			m.refreshRows()
		},
	}
	return m, nil
}

func (m Model) handlePurge() (tea.Model, tea.Cmd) {
	completed := 0
	for _, t := range m.store.Tasks() {
		if t.Completed {
			completed++
		}
	}
	if completed == 0 {
		m.setMessage("No completed tasks to delete")
		return m, nil
	}

	m.uiMode = confirmingMode
	m.confirm = confirmDialog{
		message: fmt.Sprintf("Delete %d completed task(s)?", completed),
		onConfirm: func(m *Model) {
			removed, err := m.store.DeleteCompleted(m.ctx)
			if err != nil {
				m.setError(err)
				return
			}
			m.setMessage(fmt.Sprintf("Deleted %d completed task(s)", removed))
			m.refreshRows()
		},
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.uiMode = normalMode
			return m, nil

		case "tab":
			cmd := m.form.nextField()
			return m, cmd

		case "shift+tab":
			cmd := m.form.prevField()
			return m, cmd

		case "ctrl+p":
			m.form.cyclePriority()
			return m, nil

		case "ctrl+s":
			return m.handleSaveTask()

		case "enter":
			if m.form.focusedField != fieldDescription {
				return m.handleSaveTask()
			}
		}
	}

	cmd := m.form.updateInput(msg)
	return m, cmd
}

func (m Model) handleSaveTask() (tea.Model, tea.Cmd) {
	in, err := m.formInput()
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	task, err := m.store.Add(m.ctx, in)
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.uiMode = normalMode
	m.setMessage(fmt.Sprintf("✓ Added: %s", task.Title))
	m.refreshRows()
	m.selectTask(task.ID)
	return m, nil
}

func (m *Model) selectTask(id string) {
	for i, row := range m.rows {
		if row.ID() == id {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m Model) updateProgressMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.uiMode = normalMode
			return m, nil

		case "tab", "shift+tab":
			cmd := m.progress.toggleFocus()
			return m, cmd

		case "enter":
			m.calculateProgress()
			return m, nil
		}
	}

	cmd := m.progress.updateInput(msg)
	return m, cmd
}

// calculateProgress runs the calculator on the panel inputs. On failure
// the previous result stays on screen next to the error.
func (m *Model) calculateProgress() {
	start := m.progress.startInput.Value()
	end := m.progress.endInput.Value()

	p, err := progress.Calculate(m.store.Tasks(), start, end, m.now())
	if err != nil {
		m.progress.err = err
		m.logger.Info("progress rejected", "start", start, "end", end, "error", err)
		return
	}

	m.progress.result = p
	m.progress.err = nil
}
