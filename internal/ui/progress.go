package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar tracks the suite as it injects faults, splitting the tally
// into passed, failed and errored so an operator can tell a test that
// genuinely failed from an executor that died or timed out.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for count tests
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar by the combined tally and refreshes the counts.
func (p *ProgressBar) Update(passedCount, failedCount, erroredCount int) {
	p.bar.Set(passedCount + failedCount + erroredCount)
	p.bar.Describe(describe(passedCount, failedCount, erroredCount))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describe(passed, failed, errored int) string {
	return color.CyanString("Injecting faults: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d", failed) +
		" | " +
		color.YellowString("errored: %d]", errored)
}
