package export

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/view"
)

type MarkdownExporter struct {
	source TaskSource
}

func NewMarkdownExporter(source TaskSource) *MarkdownExporter {
	return &MarkdownExporter{source: source}
}

// ExportToWriter writes a checklist grouped into open and completed
// sections, each in display order.
func (e *MarkdownExporter) ExportToWriter(w io.Writer) error {
	var open, done []domain.Task
	for _, row := range view.Build(e.source.Tasks(), "") {
		if row.Task.Completed {
			done = append(done, row.Task)
		} else {
			open = append(open, row.Task)
		}
	}

	var b strings.Builder
	b.WriteString("# Tasks\n\n")

	for _, section := range []struct {
		name  string
		tasks []domain.Task
	}{
		{"Open", open},
		{"Completed", done},
	} {
		if len(section.tasks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", section.name, len(section.tasks))
		for _, task := range section.tasks {
			writeTask(&b, task)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTask(b *strings.Builder, task domain.Task) {
	fmt.Fprintf(b, "- %s %s", display.GetCheckbox(task.Completed), task.Title)

	var meta []string
	if task.Priority != "" {
		meta = append(meta, fmt.Sprintf("priority: %s", task.Priority))
	}
	if task.DueDate != "" {
		meta = append(meta, fmt.Sprintf("due: %s", task.DueDate))
	}
	if len(meta) > 0 {
		fmt.Fprintf(b, " _(%s)_", strings.Join(meta, ", "))
	}
	b.WriteString("\n")

	if desc := strings.TrimSpace(task.Description); desc != "" {
		for _, line := range strings.Split(desc, "\n") {
			fmt.Fprintf(b, "  > %s\n", line)
		}
	}
}
