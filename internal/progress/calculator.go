// Package progress computes completion percentages for tasks due in a
// date range.
package progress

import (
	"errors"
	"fmt"
	"time"

	"todolist/internal/dates"
	"todolist/internal/domain"
)

// ErrInvalidRange is returned when the start or end date does not parse.
var ErrInvalidRange = errors.New("please select valid start and end dates")

// Calculate parses start and end (relative to now) and reports how many
// tasks are completed with a due date inside the inclusive range.
func Calculate(tasks []domain.Task, start, end string, now time.Time) (*domain.Progress, error) {
	from, to, err := dates.ParseRange(start, end, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	return CalculateRange(tasks, from, to), nil
}

// CalculateRange counts against an already parsed [from, to] range.
func CalculateRange(tasks []domain.Task, from, to time.Time) *domain.Progress {
	completed := 0
	for _, t := range tasks {
		if t.Completed && InRange(t, from, to) {
			completed++
		}
	}

	return domain.NewProgress(from, to, len(tasks), completed)
}

// InRange reports whether the task's due date parses and falls inside
// [from, to].
func InRange(task domain.Task, from, to time.Time) bool {
	due, ok := task.Due()
	if !ok {
		return false
	}
	return !due.Before(from) && !due.After(to)
}
