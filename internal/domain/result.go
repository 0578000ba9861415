package domain

import "time"

// Outcome classifies how a single test finished
type Outcome string

// Possible test outcomes
const (
	OutcomePass  Outcome = "Pass"  // Executor exited zero
	OutcomeFail  Outcome = "Fail"  // Executor exited non-zero
	OutcomeError Outcome = "Error" // Executor timed out or could not be started
)

// TestResult represents the result of executing one test case
type TestResult struct {
	TestID   string        `json:"test_id"`
	Outcome  Outcome       `json:"outcome"`
	Duration time.Duration `json:"duration"`
	Output   string        `json:"output"` // Combined stdout/stderr of the executor
	Error    string        `json:"error,omitempty"`
	Reviewed bool          `json:"reviewed,omitempty"` // Track if failure was marked as reviewed
}

// Passed reports whether the test finished successfully.
func (r TestResult) Passed() bool {
	return r.Outcome == OutcomePass
}

// RunMeta contains metadata about one suite run
type RunMeta struct {
	SuitePath       string  `json:"suite_path"`
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	ErroredTests    int     `json:"errored_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Score           int     `json:"resiliency_score"`
	Healthy         bool    `json:"healthy"`
	Interrupted     bool    `json:"interrupted,omitempty"`
	Timestamp       string  `json:"timestamp"`
}

// RunSummary is the complete persisted record of one suite run
type RunSummary struct {
	Meta    RunMeta      `json:"meta"`
	Results []TestResult `json:"results"`
}

// FailedIDs returns the identifiers of every non-passing test, in run order.
func (s *RunSummary) FailedIDs() []string {
	var ids []string
	for _, r := range s.Results {
		if !r.Passed() {
			ids = append(ids, r.TestID)
		}
	}
	return ids
}
