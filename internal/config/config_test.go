package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.SuitePath != DefaultSuiteFile {
		t.Errorf("expected SuitePath %s, got %s", DefaultSuiteFile, cfg.SuitePath)
	}
	if cfg.ExecutorPath != DefaultExecutor {
		t.Errorf("expected ExecutorPath %s, got %s", DefaultExecutor, cfg.ExecutorPath)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %s, got %s", DefaultTimeout, cfg.Timeout)
	}
	if cfg.Kubeconfig == "" {
		t.Error("expected a default kubeconfig path")
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		check func(t *testing.T, cfg *Config)
	}{
		{
			name:  "empty flags keep defaults",
			flags: Flags{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.SuitePath != DefaultSuiteFile {
					t.Errorf("expected %s, got %s", DefaultSuiteFile, cfg.SuitePath)
				}
			},
		},
		{
			name:  "suite flag overrides",
			flags: Flags{Suite: "my-tests.txt"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.SuitePath != "my-tests.txt" {
					t.Errorf("expected my-tests.txt, got %s", cfg.SuitePath)
				}
			},
		},
		{
			name:  "timeout and fail-fast flags override",
			flags: Flags{Timeout: 5 * time.Minute, FailFast: true},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Timeout != 5*time.Minute {
					t.Errorf("expected 5m, got %s", cfg.Timeout)
				}
				if !cfg.FailFast {
					t.Error("expected FailFast to be set")
				}
			},
		},
		{
			name:  "wait flag overrides",
			flags: Flags{Wait: 30 * time.Second},
			check: func(t *testing.T, cfg *Config) {
				if cfg.WaitDuration != 30*time.Second {
					t.Errorf("expected 30s, got %s", cfg.WaitDuration)
				}
			},
		},
		{
			name:  "kubeconfig flag overrides",
			flags: Flags{Kubeconfig: "/tmp/kubeconfig"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Kubeconfig != "/tmp/kubeconfig" {
					t.Errorf("expected /tmp/kubeconfig, got %s", cfg.Kubeconfig)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.applyFlags(tt.flags)
			tt.check(t, cfg)
		})
	}
}

func TestConfig_ApplyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kts.yaml")
	content := `
suite: chaos-tests.txt
executor: ./run_chaos.sh
output_dir: chaos-results
timeout: 20m
wait_duration: 45s
fail_fast: true
health_check_url: http://cerberus:8080
severities:
  test_pod_kill: warning
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	if err := cfg.applyFile(path); err != nil {
		t.Fatalf("applyFile: %v", err)
	}

	if cfg.SuitePath != "chaos-tests.txt" {
		t.Errorf("expected chaos-tests.txt, got %s", cfg.SuitePath)
	}
	if cfg.ExecutorPath != "./run_chaos.sh" {
		t.Errorf("expected ./run_chaos.sh, got %s", cfg.ExecutorPath)
	}
	if cfg.OutputDir != "chaos-results" {
		t.Errorf("expected chaos-results, got %s", cfg.OutputDir)
	}
	if cfg.Timeout != 20*time.Minute {
		t.Errorf("expected 20m, got %s", cfg.Timeout)
	}
	if cfg.WaitDuration != 45*time.Second {
		t.Errorf("expected 45s, got %s", cfg.WaitDuration)
	}
	if !cfg.FailFast {
		t.Error("expected FailFast to be set")
	}
	if cfg.HealthCheckURL != "http://cerberus:8080" {
		t.Errorf("unexpected health check URL %s", cfg.HealthCheckURL)
	}
	if got := cfg.SeverityFor("test_pod_kill"); got != "warning" {
		t.Errorf("expected warning, got %s", got)
	}
}

func TestConfig_ApplyFile_Missing(t *testing.T) {
	cfg := New()
	if err := cfg.applyFile(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing config file should not be an error, got %v", err)
	}
}

func TestConfig_ApplyFile_BadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kts.yaml")
	if err := os.WriteFile(path, []byte("timeout: banana"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	if err := cfg.applyFile(path); err == nil {
		t.Error("expected an error for an unparseable timeout")
	}
}

func TestConfig_SeverityFor(t *testing.T) {
	cfg := New()
	cfg.Severities["test_node_drain"] = "warning"

	if got := cfg.SeverityFor("test_node_drain"); got != "warning" {
		t.Errorf("expected warning, got %s", got)
	}
	if got := cfg.SeverityFor("test_pod_kill"); got != "critical" {
		t.Errorf("expected critical default, got %s", got)
	}
}

func TestConfig_GetReportPath(t *testing.T) {
	cfg := New()
	cfg.OutputDir = "out"
	cfg.ReportFile = "results.markdown"

	got := cfg.GetReportPath()
	if !filepath.IsAbs(got) {
		t.Errorf("expected an absolute path, got %s", got)
	}
	if filepath.Base(got) != "results.markdown" {
		t.Errorf("unexpected report file name in %s", got)
	}
}
