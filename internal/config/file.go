package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional kts.yaml config file
type fileConfig struct {
	Kubeconfig     string            `yaml:"kubeconfig"`
	Suite          string            `yaml:"suite"`
	Executor       string            `yaml:"executor"`
	OutputDir      string            `yaml:"output_dir"`
	ReportFile     string            `yaml:"report_file"`
	Timeout        string            `yaml:"timeout"`
	WaitDuration   string            `yaml:"wait_duration"`
	FailFast       bool              `yaml:"fail_fast"`
	HealthCheckURL string            `yaml:"health_check_url"`
	Severities     map[string]string `yaml:"severities"`
	HistoryDSN     string            `yaml:"history_dsn"`
}

// applyFile merges the YAML config file at path, if it exists.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Kubeconfig != "" {
		c.Kubeconfig = fc.Kubeconfig
	}
	if fc.Suite != "" {
		c.SuitePath = fc.Suite
	}
	if fc.Executor != "" {
		c.ExecutorPath = fc.Executor
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.ReportFile != "" {
		c.ReportFile = fc.ReportFile
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout %q in %s: %w", fc.Timeout, path, err)
		}
		c.Timeout = d
	}
	if fc.WaitDuration != "" {
		d, err := time.ParseDuration(fc.WaitDuration)
		if err != nil {
			return fmt.Errorf("parse wait_duration %q in %s: %w", fc.WaitDuration, path, err)
		}
		c.WaitDuration = d
	}
	if fc.FailFast {
		c.FailFast = true
	}
	if fc.HealthCheckURL != "" {
		c.HealthCheckURL = fc.HealthCheckURL
	}
	for id, severity := range fc.Severities {
		c.Severities[id] = severity
	}
	if fc.HistoryDSN != "" {
		c.HistoryDSN = fc.HistoryDSN
	}

	return nil
}
