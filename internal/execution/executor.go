package execution

import (
	"context"

	"kts/internal/domain"
)

// TestRunner runs one test case to completion and reports its result.
// The suite loop only depends on this interface so a sandboxed or recorded
// runner can be substituted without changing control flow.
type TestRunner interface {
	Run(ctx context.Context, test domain.TestCase) domain.TestResult
}

// Executor drives a whole suite of tests and returns the run summary.
type Executor interface {
	Execute(ctx context.Context, tests []domain.TestCase) (*domain.RunSummary, error)
}
