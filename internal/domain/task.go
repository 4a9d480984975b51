package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// DueDateLayout is the layout due dates are stored in.
const DueDateLayout = "2006-01-02"

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
}

// Validate checks what an added or imported task must satisfy: a title, a
// known or empty priority, and a due date that parses. Length is not
// limited, so anything the browser app stored still imports.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title cannot be empty")
	}

	if t.Priority != "" && !isValidPriority(t.Priority) {
		return errors.New("invalid priority: must be low, normal, or high")
	}

	if t.DueDate != "" {
		if _, err := ParseDueDate(t.DueDate); err != nil {
			return err
		}
	}

	return nil
}

// create a new task
func NewTask(title string) *Task {
	return &Task{
		ID:       NewID(),
		Title:    title,
		Priority: PriorityNormal,
	}
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.NewString()
}

// ShortID is the id prefix shown in listings.
func (t *Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// HasDueDate reports whether the due date is set and parses.
func (t *Task) HasDueDate() bool {
	_, ok := t.Due()
	return ok
}

// Due returns the parsed due date.
func (t *Task) Due() (time.Time, bool) {
	if strings.TrimSpace(t.DueDate) == "" {
		return time.Time{}, false
	}
	due, err := ParseDueDate(t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return *due, true
}

// Rank orders priorities low < normal < high; anything else sorts last.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityNormal:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 3
	}
}

func isValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority maps user input onto a priority. Empty input means normal.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PriorityNormal, nil
	}
	if !isValidPriority(p) {
		return "", errors.New("invalid priority: must be low, normal, or high")
	}
	return p, nil
}

// parses a date string in various formats
func ParseDueDate(dateStr string) (*time.Time, error) {
	formats := []string{
		DueDateLayout,
		"2006/01/02",
		"02-01-2006",
		"02/01/2006",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return &t, nil
		}
	}

	return nil, errors.New("unable to parse date: " + dateStr)
}
