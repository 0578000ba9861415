package commands

import (
	"github.com/spf13/cobra"

	"kts/internal/cli"
	"kts/internal/config"
	"kts/internal/storage"
	"kts/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Report   *ReportCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, jsonStorage, formatter),
		List:     NewListCommand(cfg, jsonStorage, formatter),
		Report:   NewReportCommand(cfg, jsonStorage, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
		History:  NewHistoryCommand(cfg, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyConfig := func(cmd *cobra.Command, args []string) error {
		// Merge config file, environment and flags after parsing
		return cfg.Apply(flags.ToConfigFlags())
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the chaos test suite",
		Long:    "Execute every test in the suite list, in order, through the external per-test executor and collect results into a Markdown report",
		RunE:    c.Run.Execute,
		PreRunE: applyConfig,
	}
	runCmd.Flags().StringVarP(&flags.Kubeconfig, "config", "c", "", "Path to the cluster credentials (default: $HOME/.kube/config)")
	runCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Path to the suite-list file, one test identifier per line")
	runCmd.Flags().StringVarP(&flags.Executor, "executor", "e", "", "Path to the per-test executor")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-test executor timeout (e.g. 10m)")
	runCmd.Flags().DurationVar(&flags.Wait, "wait", 0, "Pause between tests so the cluster can settle (e.g. 30s)")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop the suite on the first non-passing test")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by identifier pattern (supports wildcards, e.g. 'test_pod_*' or '*node*')")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only the tests that failed in the last run")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run in the MySQL history store")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the tests in the suite",
		Long:    "Read the suite-list file and print its tests without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyConfig,
	}
	listCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Path to the suite-list file, one test identifier per line")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by identifier pattern (supports wildcards, e.g. 'test_pod_*' or '*node*')")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Show the last run's summary",
		Long:    "Display the statistics of the last suite run from the saved summary",
		RunE:    c.Report.Execute,
		PreRunE: applyConfig,
	}
	rootCmd.AddCommand(reportCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View test failures interactively",
		Long:    "Display the last run's failed tests and their executor output in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyConfig,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List past suite runs",
		Long:    "List past suite runs recorded in the MySQL history store",
		RunE:    c.History.Execute,
		PreRunE: applyConfig,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
