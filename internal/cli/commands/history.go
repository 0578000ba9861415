package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kts/internal/config"
	"kts/internal/history"
	"kts/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	if hc.config.HistoryDSN == "" {
		return fmt.Errorf("no history database configured (set KTS_DB_DSN or history_dsn in %s)", config.DefaultConfigFile)
	}

	store := history.NewStore(hc.config.HistoryDSN)
	runs, err := store.List(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(runs)
	return nil
}
