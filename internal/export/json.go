package export

import (
	"io"
	"time"

	"github.com/goccy/go-json"
)

type JSONExporter struct {
	source TaskSource
}

func NewJSONExporter(source TaskSource) *JSONExporter {
	return &JSONExporter{source: source}
}

// Export snapshots the list in canonical order, so importing the file
// with the overwrite strategy restores it exactly.
func (e *JSONExporter) Export(now time.Time) *TaskExport {
	tasks := e.source.Tasks()

	data := make([]*TaskData, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, toTaskData(task))
	}

	return &TaskExport{
		Version:    Version,
		ExportedAt: now.UTC(),
		Tasks:      data,
	}
}

func (e *JSONExporter) ExportToWriter(w io.Writer, now time.Time) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(e.Export(now))
}
