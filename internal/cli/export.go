package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"todolist/internal/export"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task list",
	Long: `Export the task list in one of several formats.

Supported formats:
  - json: the list in stored order, importable with 'todo import' (default)
  - csv: one row per task in display order
  - md: a markdown checklist grouped into open and completed

Examples:
  todo export --output backup.json
  todo export --format csv --output tasks.csv
  todo export --format md`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, csv, md)")
}

// replaced in tests
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var w io.Writer = cmd.OutOrStdout()
	var file io.WriteCloser
	if exportOutput != "" {
		if err := os.MkdirAll(filepath.Dir(exportOutput), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		file, err = createOutput(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		w = file
	}

	switch format {
	case export.FormatCSV:
		err = export.NewCSVExporter(a.store).ExportToWriter(w)
	case export.FormatMarkdown:
		err = export.NewMarkdownExporter(a.store).ExportToWriter(w)
	default:
		err = export.NewJSONExporter(a.store).ExportToWriter(w, now())
	}

	if file != nil {
		// a failed close can lose written data
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}
	if err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}

	a.logger.Info("tasks exported", "format", format, "count", a.store.Len(), "output", exportOutput)

	if exportOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(
			fmt.Sprintf("✓ Exported %s to %s", plural(a.store.Len(), "task"), exportOutput)))
	}

	return nil
}
