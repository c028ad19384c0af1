package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to
// the user: the operation, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorBlue(), cfg.Op, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if cfg.Algo != config.DefaultAlgo {
		fmt.Fprintf(out, "Multiplication algorithm forced to %s%s%s.\n",
			ui.ColorCyan(), cfg.Algo, ui.ColorReset())
	}
}

// PrintExecutionMode displays the execution mode (single operation vs
// algorithm comparison).
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionMode(cfg config.AppConfig, out io.Writer) {
	var modeDesc string
	if cfg.Op == "verify" {
		modeDesc = "Parallel comparison of all multiplication algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single %s%s%s calculation",
			ui.ColorGreen(), cfg.Op, ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
