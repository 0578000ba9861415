package storage

import (
	"os"
	"testing"
	"time"

	"kts/internal/config"
	"kts/internal/domain"
)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.OutputDir = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := newTestStorage(t)

	summary := &domain.RunSummary{
		Meta: domain.RunMeta{
			SuitePath:    "test-list.txt",
			TotalTests:   3,
			PassedTests:  1,
			FailedTests:  1,
			ErroredTests: 1,
			Score:        33,
			Healthy:      true,
			Timestamp:    time.Now().Format(time.RFC3339),
		},
		Results: []domain.TestResult{
			{TestID: "test_pod_kill", Outcome: domain.OutcomePass, Duration: time.Second},
			{TestID: "test_node_drain", Outcome: domain.OutcomeFail, Duration: 2 * time.Second, Output: "drain stuck"},
			{TestID: "test_zone_outage", Outcome: domain.OutcomeError, Error: "timed out after 15m0s"},
		},
	}

	if err := st.Save(summary); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Meta.TotalTests != 3 || loaded.Meta.Score != 33 {
		t.Errorf("unexpected meta: %+v", loaded.Meta)
	}
	if len(loaded.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(loaded.Results))
	}
	if loaded.Results[1].Output != "drain stuck" {
		t.Errorf("expected captured output to round-trip, got %q", loaded.Results[1].Output)
	}

	failed := loaded.FailedIDs()
	if len(failed) != 2 || failed[0] != "test_node_drain" || failed[1] != "test_zone_outage" {
		t.Errorf("unexpected failed ids %v", failed)
	}
}

func TestJSONStorage_Load_Missing(t *testing.T) {
	st := newTestStorage(t)

	if _, err := st.Load(); err == nil {
		t.Error("expected an error when no run summary exists")
	}
}

func TestJSONStorage_Load_Corrupt(t *testing.T) {
	st := newTestStorage(t)

	if err := os.WriteFile(st.cfg.GetSummaryPath(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load(); err == nil {
		t.Error("expected an error for a corrupt run summary")
	}
}
