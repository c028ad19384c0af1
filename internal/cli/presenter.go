package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for
// terminal output. It wraps DisplayProgress to provide a spinner and
// progress bar during a verification run.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing
// calculations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numAlgorithms int, out io.Writer) {
	DisplayProgress(wg, progressChan, numAlgorithms, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter with
// formatted, colorized terminal output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// algorithm names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Column widths must account for the widest cell, headers included.
	maxNameLen := len("Algorithm")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := durationCell(res)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := durationCell(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// durationCell renders one result's duration column.
func durationCell(res orchestration.CalculationResult) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// padRight returns s extended with spaces to the given extra length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the agreed-upon product. Values beyond
// TruncationLimit digits are abbreviated unless fullValue is set.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, fullValue bool, out io.Writer) {
	if result.Result == nil {
		return
	}
	value := result.Result.String()
	display := value
	if !fullValue && len(value) > TruncationLimit {
		display = format.TruncateNumberString(value, DisplayEdges)
	}
	fmt.Fprintf(out, "\nProduct (%s%d digits%s, fastest: %s%s%s in %s%s%s):\n%s\n",
		ui.ColorCyan(), result.Result.Size(), ui.ColorReset(),
		ui.ColorBlue(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset(),
		display)
}
