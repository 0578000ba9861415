package commands

import (
	"github.com/spf13/cobra"

	"kts/internal/config"
	"kts/internal/storage"
	"kts/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := rc.storage.Load()
	if err != nil {
		return err
	}

	rc.formatter.PrintRunSummary(summary)
	return nil
}
