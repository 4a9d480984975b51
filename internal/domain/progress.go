package domain

import (
	"fmt"
	"time"
)

// Progress is the completion report for a due-date range.
//
// NotCompleted is the complement of CompletedInRange over the whole list,
// not the count of open tasks inside the range.
type Progress struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	TotalTasks       int `json:"total_tasks"`
	CompletedInRange int `json:"completed_in_range"`
	NotCompleted     int `json:"not_completed"`

	CompletedPercent    float64 `json:"completed_percent"`
	NotCompletedPercent float64 `json:"not_completed_percent"`

	// set when the list is empty; percentages are zero
	Empty bool `json:"empty"`

	CalculatedAt time.Time `json:"calculated_at"`
}

func NewProgress(start, end time.Time, total, completedInRange int) *Progress {
	p := &Progress{
		Start:            start,
		End:              end,
		TotalTasks:       total,
		CompletedInRange: completedInRange,
		NotCompleted:     total - completedInRange,
		CalculatedAt:     time.Now(),
	}

	if total == 0 {
		p.Empty = true
		return p
	}

	p.CompletedPercent = (float64(p.CompletedInRange) / float64(total)) * 100.0
	p.NotCompletedPercent = (float64(p.NotCompleted) / float64(total)) * 100.0
	return p
}

// FormatCompleted renders the completed share with two decimals.
func (p *Progress) FormatCompleted() string {
	return fmt.Sprintf("%.2f%%", p.CompletedPercent)
}

func (p *Progress) FormatNotCompleted() string {
	return fmt.Sprintf("%.2f%%", p.NotCompletedPercent)
}
