package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kts/internal/config"
	"kts/internal/storage"
	"kts/internal/suite"
	"kts/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := suite.Load(lc.config)
	if err != nil {
		return err
	}

	tests = suite.FilterByName(tests, lc.config.Flags.Filter)

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	// Mark tests that failed in the last run, when one exists
	failedIDs := map[string]struct{}{}
	if last, err := lc.storage.Load(); err == nil {
		for _, id := range last.FailedIDs() {
			failedIDs[id] = struct{}{}
		}
	}

	lc.formatter.PrintSuiteList(tests, failedIDs)
	return nil
}
