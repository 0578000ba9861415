package suite

import (
	"path/filepath"
	"strings"

	"kts/internal/domain"
)

// FilterByName filters tests by identifier pattern using wildcard matching.
// Supports patterns like "test_pod_*" or "*node*"; a pattern without
// wildcards matches as a substring.
func FilterByName(tests []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return tests
	}

	var filtered []domain.TestCase

	for _, test := range tests {
		matched, err := filepath.Match(pattern, test.ID)
		if err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		// Patterns like "*node*" fall through filepath.Match when the
		// identifier contains separators; match each part as a substring.
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasNonEmpty := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmpty = true
				if !strings.Contains(test.ID, part) {
					allMatch = false
					break
				}
			}
			if allMatch && hasNonEmpty {
				filtered = append(filtered, test)
			}
			continue
		}

		if !strings.Contains(pattern, "?") && strings.Contains(test.ID, pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}
