package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"kts/internal/config"
	"kts/internal/domain"
)

// Runner invokes the external per-test executor for a single test
type Runner struct {
	config     *config.Config
	reportPath string
}

// NewRunner creates a new Runner writing rows to the given report path
func NewRunner(cfg *config.Config, reportPath string) *Runner {
	return &Runner{config: cfg, reportPath: reportPath}
}

// Run executes the external executor for one test. The executor is called as
// `executor <testID> <reportPath>` with KUBECONFIG pointing at the configured
// cluster credentials, and owns appending its result row to the report.
func (r *Runner) Run(ctx context.Context, test domain.TestCase) domain.TestResult {
	runCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.config.ExecutorPath, test.ID, r.reportPath)
	cmd.Env = append(os.Environ(), fmt.Sprintf("KUBECONFIG=%s", r.config.Kubeconfig))

	start := time.Now()
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	result := domain.TestResult{
		TestID:   test.ID,
		Outcome:  domain.OutcomePass,
		Duration: duration,
		Output:   string(output),
	}

	switch {
	case err == nil:
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Outcome = domain.OutcomeError
		result.Error = fmt.Sprintf("timed out after %s", r.config.Timeout)
	case isExitError(err):
		result.Outcome = domain.OutcomeFail
		result.Error = err.Error()
	default:
		// Executor could not be started at all
		result.Outcome = domain.OutcomeError
		result.Error = err.Error()
	}

	return result
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
