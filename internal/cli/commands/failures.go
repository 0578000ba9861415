package commands

import (
	"github.com/spf13/cobra"

	"kts/internal/config"
	"kts/internal/storage"
	"kts/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer *ui.FailureViewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(summary)
}
