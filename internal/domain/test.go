package domain

// TestCase represents a single named test from the suite list
type TestCase struct {
	ID       string // Opaque test identifier, e.g. "test_pod_kill"
	Severity string // "critical" or "warning", used when scoring the run
}

// Severities recognised when weighting test outcomes
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)
