package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Cluster access
	Kubeconfig string

	// Suite settings
	SuitePath    string
	ExecutorPath string

	// Output settings
	OutputDir   string
	ReportFile  string
	SummaryFile string

	// Execution settings
	Timeout      time.Duration
	FailFast     bool
	WaitDuration time.Duration

	// Optional cluster health signal checked after each test
	HealthCheckURL string

	// Per-test severity overrides used for the resiliency score
	Severities map[string]string

	// MySQL DSN for the run-history store (empty disables it)
	HistoryDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Kubeconfig string
	Suite      string
	Executor   string
	Timeout    time.Duration
	Wait       time.Duration
	FailFast   bool
	Filter     string
	OnlyFailed bool
	History    bool
	Limit      int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Kubeconfig:   defaultKubeconfig(),
		SuitePath:    DefaultSuiteFile,
		ExecutorPath: DefaultExecutor,
		OutputDir:    DefaultOutputDir,
		ReportFile:   DefaultReportFile,
		SummaryFile:  DefaultSummaryFile,
		Timeout:      DefaultTimeout,
		Severities:   map[string]string{},
	}
}

// Load creates a config from defaults, the optional YAML file, the
// environment and finally the given flags (highest precedence).
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.Apply(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply merges the optional YAML file, the environment and the given flags
// into the config, in increasing precedence. Called after cobra has parsed
// the command line.
func (c *Config) Apply(flags Flags) error {
	if err := c.applyFile(DefaultConfigFile); err != nil {
		return err
	}
	c.applyEnv()
	c.applyFlags(flags)
	return nil
}

// applyFlags overrides config values with any flag that was set.
func (c *Config) applyFlags(flags Flags) {
	c.Flags = flags
	if flags.Kubeconfig != "" {
		c.Kubeconfig = flags.Kubeconfig
	}
	if flags.Suite != "" {
		c.SuitePath = flags.Suite
	}
	if flags.Executor != "" {
		c.ExecutorPath = flags.Executor
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.Wait > 0 {
		c.WaitDuration = flags.Wait
	}
	if flags.FailFast {
		c.FailFast = true
	}
}

// applyEnv loads .env (if present) and picks up the history DSN.
func (c *Config) applyEnv() {
	// .env is optional; real environment variables still apply without it
	_ = godotenv.Load()

	if dsn := os.Getenv("KTS_DB_DSN"); dsn != "" {
		c.HistoryDSN = dsn
		return
	}

	// Compose a DSN from the individual DB_* variables when present
	host := os.Getenv("DB_HOST")
	if host == "" {
		return
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("DB_PASSWORD")
	database := os.Getenv("DB_DATABASE")
	if database == "" {
		database = "kts"
	}
	c.HistoryDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, password, host, port, database)
}

// GetReportPath returns the absolute path of the Markdown report so every
// command reads/writes the same file regardless of cwd.
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.OutputDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetSummaryPath returns the absolute path of the JSON run summary.
func (c *Config) GetSummaryPath() string {
	p := filepath.Join(c.OutputDir, c.SummaryFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// SeverityFor returns the scoring severity for a test, defaulting to critical.
func (c *Config) SeverityFor(testID string) string {
	if s, ok := c.Severities[testID]; ok {
		return s
	}
	return "critical"
}

func defaultKubeconfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".kube", "config")
	}
	return filepath.Join(home, ".kube", "config")
}
