package config

import "time"

const (
	// DefaultSuiteFile is the default suite-list file name
	DefaultSuiteFile = "test-list.txt"
	// DefaultExecutor is the default per-test executor invoked for each test
	DefaultExecutor = "./run_test.sh"
	// DefaultOutputDir is the default directory for run artifacts
	DefaultOutputDir = "test-results"
	// DefaultReportFile is the default Markdown report file name
	DefaultReportFile = "results.markdown"
	// DefaultSummaryFile is the default JSON run-summary file name
	DefaultSummaryFile = "run-summary.json"
	// DefaultConfigFile is the optional YAML config file looked up in the working directory
	DefaultConfigFile = "kts.yaml"
	// DefaultTimeout is the per-test executor timeout
	DefaultTimeout = 15 * time.Minute
)
