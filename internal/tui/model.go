package tui

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/store"
	"todolist/internal/theme"
	"todolist/internal/view"
	"todolist/internal/watcher"
)

type uiMode int

const (
	normalMode uiMode = iota
	searchingMode
	addingMode
	progressMode
	confirmingMode
)

type confirmDialog struct {
	message   string
	onConfirm func(m *Model)
}

type Model struct {
	ctx    context.Context
	store  *store.Store
	watch  *watcher.Watcher
	logger *slog.Logger
	now    func() time.Time

	// rows as currently displayed; the table cursor indexes into it
	rows   []view.Row
	search string

	table       table.Model
	searchInput textinput.Model
	keys        keyMap
	uiMode      uiMode

	form     addForm
	progress progressPanel
	confirm  confirmDialog

	message  string
	err      error
	width    int
	height   int
	showHelp bool

	theme  *theme.Theme
	styles *theme.Styles
}

type Option func(*Model)

// WithWatcher reloads the list whenever w reports a change.
func WithWatcher(w *watcher.Watcher) Option {
	return func(m *Model) {
		m.watch = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets the time source used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithStatus shows msg as a warning when the program starts.
func WithStatus(msg string) Option {
	return func(m *Model) {
		m.message = msg
	}
}

// NewModel builds the main task table around an already loaded store.
func NewModel(ctx context.Context, st *store.Store, themeObj *theme.Theme, styles *theme.Styles, opts ...Option) Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Done", Width: 5},
		{Title: "Priority", Width: 10},
		{Title: "Title", Width: 45},
		{Title: "Due", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(themeObj.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(themeObj.SelectedFg)).
		Background(lipgloss.Color(themeObj.SelectedBg)).
		Bold(true)
	t.SetStyles(s)

	si := textinput.New()
	si.Placeholder = "Search title or due date..."
	si.CharLimit = 100
	si.Width = 50

	m := Model{
		ctx:         ctx,
		store:       st,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
		table:       t,
		searchInput: si,
		keys:        defaultKeyMap(),
		uiMode:      normalMode,
		form:        newAddForm(),
		progress:    newProgressPanel(),
		theme:       themeObj,
		styles:      styles,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.refreshRows()
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForChangeCmd(m.watch)
}

// refreshRows rebuilds the displayed rows from the store, keeping the
// cursor on the same task when it is still shown.
func (m *Model) refreshRows() {
	selectedID := ""
	if row, ok := m.selectedRow(); ok {
		selectedID = row.ID()
	}

	m.rows = view.Build(m.store.Tasks(), m.search)

	now := m.now()
	cursor := min(m.table.Cursor(), len(m.rows)-1)
	tableRows := make([]table.Row, 0, len(m.rows))
	for i, row := range m.rows {
		tableRows = append(tableRows, taskToRow(row, now))
		if selectedID != "" && row.ID() == selectedID {
			cursor = i
		}
	}

	m.table.SetRows(tableRows)
	if len(m.rows) > 0 {
		m.table.SetCursor(max(cursor, 0))
	}
}

func (m *Model) selectedRow() (view.Row, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return view.Row{}, false
	}
	return m.rows[cursor], true
}

func taskToRow(row view.Row, now time.Time) table.Row {
	task := row.Task
	return table.Row{
		strconv.Itoa(row.Position),
		display.GetCompletionIcon(task.Completed),
		display.FormatPriority(task.Priority),
		display.Truncate(task.Title, 45),
		display.FormatDueDate(task, now),
	}
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.err = nil
}

func (m *Model) setError(err error) {
	m.err = err
	m.message = ""
}

// Rows returns the rows currently displayed.
func (m Model) Rows() []view.Row {
	return m.rows
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (domain.Task, bool) {
	row, ok := m.selectedRow()
	return row.Task, ok
}
