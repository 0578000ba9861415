package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kts/internal/config"
	"kts/internal/domain"
	"kts/internal/execution"
	"kts/internal/health"
	"kts/internal/history"
	"kts/internal/report"
	"kts/internal/storage"
	"kts/internal/suite"
	"kts/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the whole suite: reset the output area, write the report
// header, then drive every test through the external executor in order.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := suite.Load(rc.config)
	if err != nil {
		return err
	}

	tests = suite.FilterByName(tests, rc.config.Flags.Filter)

	if rc.config.Flags.OnlyFailed {
		last, err := rc.storage.Load()
		if err != nil {
			return fmt.Errorf("no previous run to take failures from: %w", err)
		}
		tests = suite.Select(tests, last.FailedIDs())
		if len(tests) == 0 {
			color.Green("✓ No failed tests from the last run")
			return nil
		}
	}

	writer := report.NewWriter(rc.config.GetReportPath())
	if err := writer.Prepare(); err != nil {
		return err
	}
	if err := writer.WriteHeader(); err != nil {
		return err
	}

	var checker *health.Checker
	if rc.config.HealthCheckURL != "" {
		checker = health.NewChecker(rc.config.HealthCheckURL)
	}

	runner := execution.NewRunner(rc.config, writer.Path())
	executor := execution.NewSequence(rc.config, runner, writer, checker)
	if len(tests) > 0 {
		executor.SetProgress(ui.NewProgressBar(len(tests)))
	}

	// An operator abort cancels the in-flight executor but still flushes
	// the partial summary below.
	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(baseCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, runErr := executor.Execute(ctx, tests)

	if err := rc.storage.Save(summary); err != nil {
		return fmt.Errorf("failed to save run summary: %w", err)
	}
	rc.recordHistory(summary)

	rc.formatter.PrintRunSummary(summary)

	return runErr
}

// recordHistory writes the run to the MySQL history store when requested.
// History is best-effort; an unreachable database never fails the run.
func (rc *RunCommand) recordHistory(summary *domain.RunSummary) {
	if !rc.config.Flags.History {
		return
	}
	if rc.config.HistoryDSN == "" {
		color.Yellow("⚠ --history set but no history DSN configured")
		return
	}
	store := history.NewStore(rc.config.HistoryDSN)
	if err := store.Record(summary); err != nil {
		color.Yellow("⚠ failed to record run history: %v", err)
	}
}
