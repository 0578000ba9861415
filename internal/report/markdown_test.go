package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kts/internal/domain"
)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	return NewWriter(filepath.Join(t.TempDir(), "out", "results.markdown"))
}

func TestWriter_Prepare_ClearsStaleArtifacts(t *testing.T) {
	w := newTestWriter(t)
	dir := filepath.Dir(w.Path())

	// Simulate a previous run leaving artifacts behind
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dir, "stale.log")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := w.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected stale artifact to be removed")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatal("expected output dir to be recreated")
	}
}

func TestWriter_WriteHeader(t *testing.T) {
	w := newTestWriter(t)
	if err := w.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	data, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}

	want := "Test                   | Result | Duration | Output\n" +
		"-----------------------|--------|---------|-----------\n"
	if string(data) != want {
		t.Errorf("unexpected preamble:\n%q\nwant:\n%q", string(data), want)
	}

	rows, err := w.RowCount()
	if err != nil {
		t.Fatal(err)
	}
	if rows != 0 {
		t.Errorf("expected 0 data rows after header, got %d", rows)
	}
}

func TestWriter_AppendRow(t *testing.T) {
	w := newTestWriter(t)
	if err := w.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteHeader(); err != nil {
		t.Fatal(err)
	}

	results := []domain.TestResult{
		{TestID: "test_pod_kill", Outcome: domain.OutcomePass, Duration: 1200 * time.Millisecond},
		{TestID: "test_node_drain", Outcome: domain.OutcomeError, Duration: time.Second, Error: "timed out after 15m0s"},
	}
	for _, r := range results {
		if err := w.AppendRow(r); err != nil {
			t.Fatalf("AppendRow: %v", err)
		}
	}

	rows, err := w.RowCount()
	if err != nil {
		t.Fatal(err)
	}
	if rows != len(results) {
		t.Errorf("expected %d data rows, got %d", len(results), rows)
	}

	data, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2+len(results) {
		t.Fatalf("expected %d lines, got %d", 2+len(results), len(lines))
	}

	// Row order matches append order and the first column holds the identifier
	for i, r := range results {
		row := lines[2+i]
		first := strings.TrimSpace(strings.Split(row, "|")[0])
		if first != r.TestID {
			t.Errorf("row %d: expected first column %s, got %s", i, r.TestID, first)
		}
		if !strings.Contains(row, string(r.Outcome)) {
			t.Errorf("row %d: expected outcome %s in %q", i, r.Outcome, row)
		}
	}

	if !strings.Contains(lines[3], "timed out after 15m0s") {
		t.Errorf("expected error text in fallback row, got %q", lines[3])
	}
}

func TestWriter_RowCount_MissingReport(t *testing.T) {
	w := newTestWriter(t)

	rows, err := w.RowCount()
	if err != nil {
		t.Fatalf("RowCount: %v", err)
	}
	if rows != 0 {
		t.Errorf("expected 0 rows for a missing report, got %d", rows)
	}
}

func TestWriter_RowCount_ExecutorRows(t *testing.T) {
	w := newTestWriter(t)
	if err := w.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteHeader(); err != nil {
		t.Fatal(err)
	}

	// Rows appended by an external executor still count
	f, err := os.OpenFile(w.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("test_pod_kill | Pass | 3.20s | pod recovered\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rows, err := w.RowCount()
	if err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}
}
