package export

import (
	"fmt"
	"strings"
	"time"

	"todolist/internal/domain"
)

const Version = "1.0"

// TaskSource is anything that can hand out the canonical task list.
type TaskSource interface {
	Tasks() []domain.Task
}

type TaskExport struct {
	Version    string      `json:"version"`
	ExportedAt time.Time   `json:"exportedAt"`
	Tasks      []*TaskData `json:"tasks"`
}

// TaskData uses the same field names as the persisted slot, so a bare
// array copied out of the database imports cleanly.
type TaskData struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type ConflictStrategy string

const (
	ConflictStrategyMerge     ConflictStrategy = "merge"
	ConflictStrategySkip      ConflictStrategy = "skip"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch ConflictStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConflictStrategyMerge:
		return ConflictStrategyMerge, nil
	case ConflictStrategySkip:
		return ConflictStrategySkip, nil
	case ConflictStrategyOverwrite:
		return ConflictStrategyOverwrite, nil
	default:
		return "", fmt.Errorf("invalid conflict strategy: %s (must be merge, skip, or overwrite)", s)
	}
}

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, csv, or md)", s)
	}
}

func toTaskData(task domain.Task) *TaskData {
	return &TaskData{
		ID:          task.ID,
		Title:       task.Title,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

func (td *TaskData) toTask() domain.Task {
	return domain.Task{
		ID:          strings.TrimSpace(td.ID),
		Title:       strings.TrimSpace(td.Title),
		Priority:    domain.Priority(td.Priority),
		DueDate:     td.DueDate,
		Description: td.Description,
		Completed:   td.Completed,
	}
}
