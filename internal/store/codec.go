package store

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"todolist/internal/domain"
)

// wireTask is the persisted record. Field names match the browser app's
// localStorage format; id is optional on input.
type wireTask struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Encode serializes tasks as a JSON array.
func Encode(tasks []domain.Task) (string, error) {
	records := make([]wireTask, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, wireTask{
			ID:          t.ID,
			Title:       t.Title,
			Priority:    string(t.Priority),
			DueDate:     t.DueDate,
			Description: t.Description,
			Completed:   t.Completed,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON array of tasks. Records without an id, or with an id
// already seen, get a fresh one. The bool result reports whether any id was
// assigned.
func Decode(data string) ([]domain.Task, bool, error) {
	var records []wireTask
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, false, fmt.Errorf("failed to parse tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	assigned := false

	for _, r := range records {
		id := r.ID
		if id == "" || seen[id] {
			id = domain.NewID()
			assigned = true
		}
		seen[id] = true

		tasks = append(tasks, domain.Task{
			ID:          id,
			Title:       r.Title,
			Priority:    domain.Priority(r.Priority),
			DueDate:     r.DueDate,
			Description: r.Description,
			Completed:   r.Completed,
		})
	}

	return tasks, assigned, nil
}

// isBlank reports values the browser app would have treated as nothing
// stored: "", whitespace, or a JSON null.
func isBlank(data string) bool {
	trimmed := bytes.TrimSpace([]byte(data))
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
