package display

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"todolist/internal/domain"
)

func GetCompletionIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}

func GetCheckbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func GetPriorityIcon(priority domain.Priority) string {
	switch priority {
	case domain.PriorityHigh:
		return "⬆"
	case domain.PriorityNormal:
		return "➡"
	case domain.PriorityLow:
		return "⬇"
	default:
		return "·"
	}
}

// FormatPriority renders the priority with its icon, or "-" when undefined.
func FormatPriority(priority domain.Priority) string {
	if priority == "" {
		return "-"
	}
	return fmt.Sprintf("%s %s", GetPriorityIcon(priority), priority)
}

// FormatDueDate renders a stored due date relative to now. Unparsable
// values are shown as stored.
func FormatDueDate(task domain.Task, now time.Time) string {
	if task.DueDate == "" {
		return "-"
	}

	due, ok := task.Due()
	if !ok {
		return task.DueDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		if task.Completed {
			return due.Format(domain.DueDateLayout)
		}
		return fmt.Sprintf("%s (-%dd)", due.Format(domain.DueDateLayout), -days)
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("%s (%dd)", due.Format(domain.DueDateLayout), days)
	}

	return due.Format(domain.DueDateLayout)
}

// Truncate shortens s to at most max terminal cells, ending with "...".
// Wide characters count as two cells.
func Truncate(s string, max int) string {
	if max < 4 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "...")
}

// Fit truncates s and pads it with spaces to exactly width cells, for
// fixed-width table columns.
func Fit(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}
