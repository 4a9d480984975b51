package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
)

type taskList []domain.Task

func (l taskList) Tasks() []domain.Task {
	return l
}

func sampleTasks() taskList {
	return taskList{
		{ID: "a", Title: "Write report", Priority: domain.PriorityHigh, Description: "quarterly\nnumbers"},
		{ID: "b", Title: "Pay rent", Priority: domain.PriorityNormal, DueDate: "2026-11-01"},
		{ID: "c", Title: "Water plants", Priority: domain.PriorityLow, DueDate: "2026-10-20", Completed: true},
	}
}

func TestJSONExporter_RoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter(sampleTasks()).ExportToWriter(&buf, now))

	out := buf.String()
	assert.Contains(t, out, `"version": "1.0"`)
	assert.Contains(t, out, `"dueDate": "2026-11-01"`)

	tasks, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task(sampleTasks()), tasks)
}

func TestDecode_BareArray(t *testing.T) {
	input := `[{"title":"Legacy","priority":"low","dueDate":"","description":"","completed":false}]`

	tasks, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Legacy", tasks[0].Title)
	assert.Empty(t, tasks[0].ID)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("   "))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestCSVExporter_DisplayOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter(sampleTasks()).ExportToWriter(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Position", records[0][0])
	// dated tasks first, chronologically, then undated
	assert.Equal(t, []string{"1", "c", "Water plants", "low", "2026-10-20", "", "true"}, records[1])
	assert.Equal(t, "b", records[2][1])
	assert.Equal(t, "a", records[3][1])
	assert.Equal(t, "quarterly\nnumbers", records[3][5])
}

func TestMarkdownExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownExporter(sampleTasks()).ExportToWriter(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Tasks\n"))
	assert.Contains(t, out, "## Open (2)")
	assert.Contains(t, out, "## Completed (1)")
	assert.Contains(t, out, "- [ ] Pay rent _(priority: normal, due: 2026-11-01)_")
	assert.Contains(t, out, "- [x] Water plants")
	assert.Contains(t, out, "  > numbers")
	assert.Less(t, strings.Index(out, "Pay rent"), strings.Index(out, "Write report"))
}

func TestMarkdownExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownExporter(taskList{}).ExportToWriter(&buf))
	assert.Equal(t, "# Tasks\n\n", buf.String())
}

func TestMerge(t *testing.T) {
	existing := []domain.Task{
		{ID: "a", Title: "Old title", Priority: domain.PriorityLow},
		{ID: "b", Title: "Keep me", Priority: domain.PriorityNormal},
	}
	incoming := []domain.Task{
		{ID: "a", Title: "New title", Priority: domain.PriorityHigh},
		{ID: "z", Title: "Brand new", Priority: domain.PriorityNormal},
		{Title: "No id", Priority: domain.PriorityNormal},
		{ID: "bad", Title: "", Priority: domain.PriorityNormal},
	}

	t.Run("merge", func(t *testing.T) {
		merged, result := Merge(existing, incoming, ConflictStrategyMerge)
		require.Len(t, merged, 4)
		assert.Equal(t, "New title", merged[0].Title)
		assert.Equal(t, "Keep me", merged[1].Title)
		assert.Equal(t, ImportResult{Added: 2, Updated: 1, Rejected: 1}, result)
		assert.Equal(t, "Old title", existing[0].Title)
	})

	t.Run("skip", func(t *testing.T) {
		merged, result := Merge(existing, incoming, ConflictStrategySkip)
		require.Len(t, merged, 4)
		assert.Equal(t, "Old title", merged[0].Title)
		assert.Equal(t, ImportResult{Added: 2, Skipped: 1, Rejected: 1}, result)
	})

	t.Run("overwrite", func(t *testing.T) {
		merged, result := Merge(existing, incoming, ConflictStrategyOverwrite)
		require.Len(t, merged, 3)
		assert.Equal(t, "New title", merged[0].Title)
		assert.Equal(t, ImportResult{Added: 3, Rejected: 1}, result)
	})
}

func TestMerge_KeepsLongLegacyRecords(t *testing.T) {
	incoming := []domain.Task{
		{ID: "long", Title: strings.Repeat("t", 300), Description: strings.Repeat("d", 2000)},
	}

	merged, result := Merge(nil, incoming, ConflictStrategyMerge)
	require.Len(t, merged, 1)
	assert.Equal(t, ImportResult{Added: 1}, result)
	assert.Len(t, merged[0].Description, 2000)
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]ExportFormat{
		"":         FormatJSON,
		"JSON":     FormatJSON,
		"csv":      FormatCSV,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestParseConflictStrategy(t *testing.T) {
	got, err := ParseConflictStrategy("")
	require.NoError(t, err)
	assert.Equal(t, ConflictStrategyMerge, got)

	got, err = ParseConflictStrategy("Overwrite")
	require.NoError(t, err)
	assert.Equal(t, ConflictStrategyOverwrite, got)

	_, err = ParseConflictStrategy("replace")
	assert.Error(t, err)
}
