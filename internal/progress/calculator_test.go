package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
)

var now = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func TestCalculate_SingleCompletedInRange(t *testing.T) {
	tasks := []domain.Task{
		{Title: "done", DueDate: "2026-10-10", Completed: true},
	}

	p, err := Calculate(tasks, "2026-10-01", "2026-10-31", now)
	require.NoError(t, err)

	assert.Equal(t, 1, p.TotalTasks)
	assert.Equal(t, 1, p.CompletedInRange)
	assert.Equal(t, "100.00%", p.FormatCompleted())
	assert.Equal(t, "0.00%", p.FormatNotCompleted())
	assert.False(t, p.Empty)
}

func TestCalculate(t *testing.T) {
	tasks := []domain.Task{
		{Title: "in range done", DueDate: "2026-10-05", Completed: true},
		{Title: "on start done", DueDate: "2026-10-01", Completed: true},
		{Title: "on end done", DueDate: "2026-10-31", Completed: true},
		{Title: "in range open", DueDate: "2026-10-06"},
		{Title: "out of range done", DueDate: "2026-11-05", Completed: true},
		{Title: "undated done", Completed: true},
		{Title: "garbage date done", DueDate: "soon", Completed: true},
		{Title: "undated open"},
	}

	p, err := Calculate(tasks, "2026-10-01", "2026-10-31", now)
	require.NoError(t, err)

	assert.Equal(t, 8, p.TotalTasks)
	assert.Equal(t, 3, p.CompletedInRange)
	// complement over the whole list, not open tasks inside the range
	assert.Equal(t, 5, p.NotCompleted)
	assert.Equal(t, "37.50%", p.FormatCompleted())
	assert.Equal(t, "62.50%", p.FormatNotCompleted())
}

func TestCalculate_RelativeRange(t *testing.T) {
	tasks := []domain.Task{
		{Title: "today", DueDate: "2026-10-18", Completed: true},
		{Title: "next week", DueDate: "2026-10-25", Completed: true},
	}

	p, err := Calculate(tasks, "today", "+3d", now)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CompletedInRange)
	assert.Equal(t, "50.00%", p.FormatCompleted())
}

func TestCalculate_EmptyList(t *testing.T) {
	p, err := Calculate(nil, "2026-10-01", "2026-10-31", now)
	require.NoError(t, err)

	assert.True(t, p.Empty)
	assert.Zero(t, p.CompletedPercent)
	assert.Zero(t, p.NotCompletedPercent)
	assert.Equal(t, "0.00%", p.FormatCompleted())
}

func TestCalculate_InvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"bad start", "not a date", "2026-10-31"},
		{"bad end", "2026-10-01", "31st"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Calculate([]domain.Task{{Title: "x", Completed: true}}, tt.start, tt.end, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRange)
			assert.Nil(t, p)
		})
	}
}

func TestCalculate_EndBeforeStartCountsNothing(t *testing.T) {
	tasks := []domain.Task{
		{Title: "a", Completed: true, DueDate: "2026-10-15"},
		{Title: "b"},
	}

	p, err := Calculate(tasks, "2026-10-31", "2026-10-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalTasks)
	assert.Equal(t, 0, p.CompletedInRange)
	assert.Equal(t, 2, p.NotCompleted)
	assert.Equal(t, "0.00%", p.FormatCompleted())
	assert.Equal(t, "100.00%", p.FormatNotCompleted())
}

func TestInRange(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)

	assert.True(t, InRange(domain.Task{DueDate: "2026-10-01"}, from, to))
	assert.True(t, InRange(domain.Task{DueDate: "2026-10-31"}, from, to))
	assert.False(t, InRange(domain.Task{DueDate: "2026-09-30"}, from, to))
	assert.False(t, InRange(domain.Task{DueDate: "2026-11-01"}, from, to))
	assert.False(t, InRange(domain.Task{}, from, to))
}
