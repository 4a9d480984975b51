package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/watcher"
)

// storeChangedMsg is sent when the database was written, possibly by
// another process, and the list should be reloaded.
type storeChangedMsg struct{}

// waitForChangeCmd blocks until the watcher reports a change. It is
// reissued after every storeChangedMsg.
func waitForChangeCmd(w *watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return storeChangedMsg{}
	}
}
