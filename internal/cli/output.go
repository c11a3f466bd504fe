// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatOptional], [FormatSearchResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/colorstats/internal/format"
	"github.com/agbru/colorstats/internal/orchestration"
)

// OutputConfig holds configuration for report output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// RunID identifies the run in the file header.
	RunID string
	// Now is the generation timestamp; zero means time.Now().
	Now time.Time
}

// WriteReportToFile writes the report to config.OutputFile, preceded by a
// commented header. Parent directories are created as needed.
func WriteReportToFile(r orchestration.Report, presenter orchestration.ReportPresenter, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := writeReport(file, r, presenter, config); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return file.Close()
}

func writeReport(w io.Writer, r orchestration.Report, presenter orchestration.ReportPresenter, config OutputConfig) error {
	now := config.Now
	if now.IsZero() {
		now = time.Now()
	}

	fmt.Fprintf(w, "# Color Statistics Report\n")
	fmt.Fprintf(w, "# Generated: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(w, "# Document: %s\n", r.DocumentID)
	if config.RunID != "" {
		fmt.Fprintf(w, "# Run: %s\n", config.RunID)
	}
	fmt.Fprintf(w, "# Duration: %s\n", format.FormatExecutionDuration(r.Elapsed))
	if r.Degraded {
		fmt.Fprintf(w, "# Degraded: %v\n", r.IngestErr)
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	return presenter.PresentReport(r, w)
}
