package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kts/internal/config"
	"kts/internal/domain"
	"kts/internal/health"
	"kts/internal/report"
	"kts/internal/score"
	"kts/internal/ui"
)

// ErrFailFast is returned when fail-fast mode stops the suite early.
var ErrFailFast = errors.New("suite stopped on first failure")

// Sequence runs tests strictly one at a time, in suite order. Chaos faults
// must not overlap, so there is no parallel variant.
type Sequence struct {
	config   *config.Config
	runner   TestRunner
	report   *report.Writer
	checker  *health.Checker
	progress *ui.ProgressBar
}

// NewSequence creates a sequential suite executor. checker may be nil when
// no health signal is configured.
func NewSequence(cfg *config.Config, runner TestRunner, rw *report.Writer, checker *health.Checker) *Sequence {
	return &Sequence{
		config:  cfg,
		runner:  runner,
		report:  rw,
		checker: checker,
	}
}

// SetProgress sets the progress bar for the executor
func (s *Sequence) SetProgress(progress *ui.ProgressBar) {
	s.progress = progress
}

// Execute runs every test in order, appending a fallback row for any test
// whose executor died without contributing its own. A cancelled context
// (operator abort) stops the loop but keeps the partial summary.
func (s *Sequence) Execute(ctx context.Context, tests []domain.TestCase) (*domain.RunSummary, error) {
	start := time.Now()
	summary := &domain.RunSummary{
		Meta: domain.RunMeta{
			SuitePath:  s.config.SuitePath,
			TotalTests: len(tests),
			Healthy:    true,
			Timestamp:  time.Now().Format(time.RFC3339),
		},
	}

	var passed, failed, errored int
	var stopErr error

	for i, test := range tests {
		if ctx.Err() != nil {
			summary.Meta.Interrupted = true
			break
		}

		// An unreadable report means the shared output area is broken;
		// guessing about the executor's row could duplicate it, so abort.
		rowsBefore, err := s.report.RowCount()
		if err != nil {
			stopErr = fmt.Errorf("inspect report: %w", err)
			break
		}

		result := s.runner.Run(ctx, test)

		summary.Results = append(summary.Results, result)
		switch result.Outcome {
		case domain.OutcomePass:
			passed++
		case domain.OutcomeFail:
			failed++
		default:
			errored++
		}
		if s.progress != nil {
			s.progress.Update(passed, failed, errored)
		}

		// The executor owns its report row; only fill in a row for a test
		// that died or timed out before writing one.
		rowsAfter, err := s.report.RowCount()
		if err != nil {
			stopErr = fmt.Errorf("inspect report: %w", err)
			break
		}
		if rowsAfter == rowsBefore {
			if appendErr := s.report.AppendRow(result); appendErr != nil {
				stopErr = appendErr
				break
			}
		}

		if s.checker != nil {
			healthy, err := s.checker.Check(ctx)
			if err != nil || !healthy {
				summary.Meta.Healthy = false
				if s.config.FailFast {
					stopErr = fmt.Errorf("%w: cluster unhealthy after %s", ErrFailFast, test.ID)
					break
				}
			}
		}

		if s.config.FailFast && !result.Passed() {
			stopErr = fmt.Errorf("%w: %s (%s)", ErrFailFast, test.ID, result.Outcome)
			break
		}

		// Let the cluster settle between fault injections
		if s.config.WaitDuration > 0 && i < len(tests)-1 {
			select {
			case <-ctx.Done():
			case <-time.After(s.config.WaitDuration):
			}
		}
	}

	if ctx.Err() != nil {
		summary.Meta.Interrupted = true
	}
	if s.progress != nil {
		s.progress.Finish()
	}

	duration := time.Since(start)
	summary.Meta.PassedTests = passed
	summary.Meta.FailedTests = failed
	summary.Meta.ErroredTests = errored
	summary.Meta.Duration = duration.String()
	summary.Meta.DurationSeconds = duration.Seconds()
	summary.Meta.Score = score.Calculate(tests, summary.Results)

	return summary, stopErr
}
