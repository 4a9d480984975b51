package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"todolist/internal/view"
)

type CSVExporter struct {
	source TaskSource
}

func NewCSVExporter(source TaskSource) *CSVExporter {
	return &CSVExporter{source: source}
}

// ExportToWriter writes one row per task in display order.
func (e *CSVExporter) ExportToWriter(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"Position", "ID", "Title", "Priority", "Due Date", "Description", "Completed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range view.Build(e.source.Tasks(), "") {
		task := row.Task
		record := []string{
			strconv.Itoa(row.Position),
			task.ID,
			task.Title,
			string(task.Priority),
			task.DueDate,
			task.Description,
			strconv.FormatBool(task.Completed),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
