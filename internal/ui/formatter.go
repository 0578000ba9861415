package ui

import (
	"fmt"

	"github.com/fatih/color"

	"kts/internal/config"
	"kts/internal/domain"
)

// Formatter formats and displays run output on the console
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunSummary displays the statistics of a suite run
func (f *Formatter) PrintRunSummary(summary *domain.RunSummary) {
	meta := summary.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Suite Run Statistics                      ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Suite")
	color.White("%-27s │\n", truncate(meta.SuitePath, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Errored")
	color.Red("%-27d │\n", meta.ErroredTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Resiliency Score")
	if meta.Score >= 100 {
		color.Green("%-27s │\n", fmt.Sprintf("%d/100", meta.Score))
	} else {
		color.Yellow("%-27s │\n", fmt.Sprintf("%d/100", meta.Score))
	}
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", truncate(meta.Timestamp, 27))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Interrupted {
		color.Yellow("⚠ Run interrupted; report contains the completed tests only")
	}
	if !meta.Healthy {
		color.Red("✗ Cluster health signal reported no-go during the run")
	}
	if meta.FailedTests == 0 && meta.ErroredTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d of %d test(s) did not pass", meta.FailedTests+meta.ErroredTests, meta.TotalTests)
		for _, r := range summary.Results {
			if !r.Passed() {
				color.Red("  |_ %s (%s, %.2fs)", r.TestID, r.Outcome, r.Duration.Seconds())
			}
		}
	}
	fmt.Println()
	color.White("Report: %s", f.config.GetReportPath())
}

// PrintSuiteList prints the tests of a suite without running them.
// failedIDs is optional; tests in this set are marked with [F] in red
// (failures from the last run).
func (f *Formatter) PrintSuiteList(tests []domain.TestCase, failedIDs map[string]struct{}) {
	color.Green("Found %d test(s) in %s:\n", len(tests), f.config.SuitePath)

	for i, test := range tests {
		failMarker := ""
		if _, ok := failedIDs[test.ID]; ok {
			failMarker = " " + color.RedString("[F]")
		}

		if i == len(tests)-1 {
			color.Cyan("└── %s%s", test.ID, failMarker)
		} else {
			color.Cyan("├── %s%s", test.ID, failMarker)
		}
	}
}

// PrintHistory prints past runs, newest first.
func (f *Formatter) PrintHistory(runs []domain.RunMeta) {
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return
	}

	color.Cyan("%-25s %-30s %6s %6s %6s %7s %6s", "Ran At", "Suite", "Total", "Pass", "Fail", "Score", "Time")
	for _, m := range runs {
		line := fmt.Sprintf("%-25s %-30s %6d %6d %6d %6d%% %5.1fs",
			truncate(m.Timestamp, 25), truncate(m.SuitePath, 30),
			m.TotalTests, m.PassedTests, m.FailedTests+m.ErroredTests,
			m.Score, m.DurationSeconds)
		if m.FailedTests+m.ErroredTests == 0 {
			color.Green(line)
		} else {
			color.Red(line)
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
