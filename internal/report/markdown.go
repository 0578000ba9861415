package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kts/internal/domain"
)

// Report table preamble. The separator row is part of the file format and
// must be byte-identical across runs so reports stay diffable.
const (
	HeaderRow    = "Test                   | Result | Duration | Output"
	SeparatorRow = "-----------------------|--------|---------|-----------"
)

// Writer owns the Markdown report file for one suite run. The runner writes
// the preamble and fallback rows; the per-test executor appends its own row
// for each test it completes.
type Writer struct {
	path string
}

// NewWriter creates a Writer for the given report path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the report file path handed to executors.
func (w *Writer) Path() string {
	return w.path
}

// Prepare resets the output area: any prior report directory is removed and
// recreated empty, so a rerun never mixes stale artifacts with fresh ones.
func (w *Writer) Prepare() error {
	dir := filepath.Dir(w.path)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear output dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}

// WriteHeader writes the table preamble before any test executes, so a
// partially-completed run still yields a readable report.
func (w *Writer) WriteHeader() error {
	content := HeaderRow + "\n" + SeparatorRow + "\n"
	if err := os.WriteFile(w.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	return nil
}

// AppendRow appends one result row. Used as a fallback when an executor
// died or timed out without contributing its own row.
func (w *Writer) AppendRow(result domain.TestResult) error {
	output := "executor produced no output row"
	if result.Error != "" {
		output = result.Error
	}
	row := fmt.Sprintf("%s | %s | %.2fs | %s\n",
		result.TestID, result.Outcome, result.Duration.Seconds(), output)

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("append report row: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(row); err != nil {
		return fmt.Errorf("append report row: %w", err)
	}
	return nil
}

// RowCount returns the number of data rows currently in the report,
// excluding the two preamble lines. A missing report counts as zero.
func (w *Writer) RowCount() (int, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read report: %w", err)
	}

	rows := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			rows++
		}
	}
	if rows < 2 {
		return 0, nil
	}
	return rows - 2, nil
}
