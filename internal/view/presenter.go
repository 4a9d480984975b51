// Package view derives the presentation order of the task list. Nothing in
// here mutates the canonical list owned by the store.
package view

import (
	"slices"
	"strings"

	"todolist/internal/domain"
)

// Row is one displayed task. Position is 1-based within the displayed
// rows; actions must bind to Task.ID.
type Row struct {
	Position int
	Task     domain.Task
}

// ID of the task shown in this row.
func (r Row) ID() string {
	return r.Task.ID
}

// Compare orders tasks with a due date chronologically and before tasks
// without one. Undated tasks are ordered by priority rank.
func Compare(a, b domain.Task) int {
	aDue, aOK := a.Due()
	bDue, bOK := b.Due()

	switch {
	case aOK && bOK:
		return aDue.Compare(bDue)
	case aOK:
		return -1
	case bOK:
		return 1
	default:
		return a.Priority.Rank() - b.Priority.Rank()
	}
}

// Sort returns a sorted copy. Ties keep their canonical order.
func Sort(tasks []domain.Task) []domain.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// Matches reports whether the title or the due-date string contains search,
// ignoring case. The search text is used as typed, spaces included. An
// empty search matches everything.
func Matches(task domain.Task, search string) bool {
	search = strings.ToLower(search)
	if search == "" {
		return true
	}

	if strings.Contains(strings.ToLower(task.Title), search) {
		return true
	}

	return task.DueDate != "" && strings.Contains(strings.ToLower(task.DueDate), search)
}

// Filter keeps the tasks matching search, preserving order.
func Filter(tasks []domain.Task, search string) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, search) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Build sorts then filters the list into display rows.
func Build(tasks []domain.Task, search string) []Row {
	visible := Filter(Sort(tasks), search)

	rows := make([]Row, 0, len(visible))
	for i, t := range visible {
		rows = append(rows, Row{Position: i + 1, Task: t})
	}
	return rows
}

// AtPosition returns the row displayed at the 1-based position.
func AtPosition(rows []Row, position int) (Row, bool) {
	if position < 1 || position > len(rows) {
		return Row{}, false
	}
	return rows[position-1], true
}

// Summary counts for a set of rows.
type Summary struct {
	Shown     int
	Completed int
	Total     int
}

func Summarize(rows []Row, total int) Summary {
	s := Summary{Shown: len(rows), Total: total}
	for _, r := range rows {
		if r.Task.Completed {
			s.Completed++
		}
	}
	return s
}
