package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kts/internal/cli"
	"kts/internal/cli/commands"
	"kts/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "kts",
		Short:   "Chaos test-suite runner",
		Long:    `Drives an ordered suite of chaos tests against a cluster. Each test is handed to an external executor which appends its result row to a shared Markdown report; kts orchestrates the run, enforces timeouts and aggregates the outcome.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
