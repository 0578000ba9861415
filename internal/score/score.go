// Package score computes a severity-weighted resiliency score for a run.
package score

import "kts/internal/domain"

// Severity weights: a failed critical test costs three times a warning.
var weights = map[string]int{
	domain.SeverityCritical: 3,
	domain.SeverityWarning:  1,
}

// Calculate returns a 0-100 resiliency score for the run. Each test
// contributes its severity weight; failed and errored tests lose their
// points. An empty run scores zero.
func Calculate(tests []domain.TestCase, results []domain.TestResult) int {
	severities := make(map[string]string, len(tests))
	for _, t := range tests {
		severities[t.ID] = t.Severity
	}

	total := 0
	lost := 0
	for _, r := range results {
		w := weightFor(severities[r.TestID])
		total += w
		if !r.Passed() {
			lost += w
		}
	}

	if total == 0 {
		return 0
	}
	return (total - lost) * 100 / total
}

func weightFor(severity string) int {
	if w, ok := weights[severity]; ok {
		return w
	}
	return weights[domain.SeverityWarning]
}
