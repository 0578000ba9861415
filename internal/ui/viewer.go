package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"kts/internal/config"
	"kts/internal/domain"
	"kts/internal/storage"
)

// FailureViewer displays non-passing tests in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the run's failures in an interactive TUI
func (fv *FailureViewer) View(summary *domain.RunSummary) error {
	var failures []int // indices into summary.Results
	for i, r := range summary.Results {
		if !r.Passed() {
			failures = append(failures, i)
		}
	}
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	reviewed := make(map[int]bool)
	for pos, idx := range failures {
		if summary.Results[idx].Reviewed {
			reviewed[pos] = true
		}
	}

	saveReviewed := func() error {
		for pos, idx := range failures {
			summary.Results[idx].Reviewed = reviewed[pos]
		}
		return fv.storage.Save(summary)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(pos int) string {
		result := summary.Results[failures[pos]]
		if reviewed[pos] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", pos+1, result.TestID)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", pos+1, result.TestID)
	}

	for pos := range failures {
		list.AddItem(itemText(pos), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnreviewed := func() int {
		count := 0
		for pos := range failures {
			if !reviewed[pos] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unreviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			len(failures), countUnreviewed()))
	}
	updateHeader()

	updateDetails := func() {
		pos := list.GetCurrentItem()
		if pos < 0 || pos >= len(failures) {
			return
		}
		result := summary.Results[failures[pos]]
		statsView.SetText(fmt.Sprintf("[cyan]test:[white] [yellow]%s[white]  [cyan]outcome:[white] [red]%s[white]  [cyan]duration:[white] %.2fs",
			result.TestID, result.Outcome, result.Duration.Seconds()))
		detailsView.SetText(formatFailureDetails(result))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				pos := list.GetCurrentItem()
				if pos >= 0 && pos < len(failures) {
					reviewed[pos] = !reviewed[pos]
					list.SetItemText(pos, itemText(pos), "")
					updateHeader()
					updateDetails()
					if err := saveReviewed(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failed test for display using tview color tags
func formatFailureDetails(result domain.TestResult) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n\n", result.TestID)
	fmt.Fprintf(&builder, "[cyan]Outcome: %s[white]\n", result.Outcome)
	fmt.Fprintf(&builder, "[cyan]Duration: %.2fs[white]\n\n", result.Duration.Seconds())

	if result.Error != "" {
		fmt.Fprintf(&builder, "[yellow]Error:[white]\n%s\n\n", result.Error)
	}

	if strings.TrimSpace(result.Output) != "" {
		fmt.Fprintf(&builder, "[yellow]Executor Output:[white]\n%s\n", result.Output)
	} else {
		fmt.Fprintf(&builder, "[gray]No executor output captured[white]\n")
	}

	return builder.String()
}
