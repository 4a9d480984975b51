package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"todolist/internal/domain"
)

type ImportResult struct {
	Added    int
	Updated  int
	Skipped  int
	Rejected int
}

// Decode reads either a full export document or a bare array of task
// records.
func Decode(r io.Reader) ([]domain.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("import is empty")
	}

	var records []*TaskData
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to decode task list: %w", err)
		}
	} else {
		var doc TaskExport
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode task export: %w", err)
		}
		records = doc.Tasks
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, td := range records {
		if td == nil {
			continue
		}
		tasks = append(tasks, td.toTask())
	}
	return tasks, nil
}

// Merge combines the current list with imported tasks. Tasks that fail
// validation are rejected. With overwrite the result is the valid imported
// tasks alone; otherwise imported tasks are appended, and a task whose id
// already exists either replaces it in place (merge) or is dropped (skip).
func Merge(existing, incoming []domain.Task, strategy ConflictStrategy) ([]domain.Task, ImportResult) {
	var result ImportResult

	valid := make([]domain.Task, 0, len(incoming))
	for _, task := range incoming {
		if err := task.Validate(); err != nil {
			result.Rejected++
			continue
		}
		valid = append(valid, task)
	}

	if strategy == ConflictStrategyOverwrite {
		result.Added = len(valid)
		return valid, result
	}

	merged := make([]domain.Task, len(existing), len(existing)+len(valid))
	copy(merged, existing)

	index := make(map[string]int, len(existing))
	for i, task := range existing {
		index[task.ID] = i
	}

	for _, task := range valid {
		i, ok := index[task.ID]
		if task.ID == "" || !ok {
			merged = append(merged, task)
			if task.ID != "" {
				index[task.ID] = len(merged) - 1
			}
			result.Added++
			continue
		}

		if strategy == ConflictStrategySkip {
			result.Skipped++
			continue
		}
		merged[i] = task
		result.Updated++
	}

	return merged, result
}
