package suite

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"kts/internal/config"
	"kts/internal/domain"
)

// ErrSuiteNotFound indicates the suite-list file does not exist.
var ErrSuiteNotFound = errors.New("suite definition not found")

// Load reads the ordered suite-list file: one test identifier per line,
// UTF-8, no comments. Blank lines are skipped; line order is preserved
// because it defines execution order.
func Load(cfg *config.Config) ([]domain.TestCase, error) {
	f, err := os.Open(cfg.SuitePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSuiteNotFound, cfg.SuitePath)
		}
		return nil, fmt.Errorf("read suite list %s: %w", cfg.SuitePath, err)
	}
	defer f.Close()

	var tests []domain.TestCase
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		tests = append(tests, domain.TestCase{
			ID:       id,
			Severity: cfg.SeverityFor(id),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read suite list %s: %w", cfg.SuitePath, err)
	}

	return tests, nil
}

// Select returns the tests whose identifier appears in keep, preserving
// suite order. Used for rerunning only previously failed tests.
func Select(tests []domain.TestCase, keep []string) []domain.TestCase {
	keepSet := make(map[string]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}

	var selected []domain.TestCase
	for _, t := range tests {
		if keepSet[t.ID] {
			selected = append(selected, t)
		}
	}
	return selected
}
