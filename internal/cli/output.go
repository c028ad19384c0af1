// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the value.
	Quiet bool
	// FullValue prints the complete decimal expansion on the terminal.
	FullValue bool
}

// WriteResultToFile writes a calculation result to a file. The file
// always carries the full value regardless of terminal truncation.
//
// Parameters:
//   - result: The computed value.
//   - op: The operation name for the header.
//   - duration: The calculation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result *bigint.Int, op string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	value := result.String()
	fmt.Fprintf(file, "# bignum calculation result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Digits: %d\n", result.Size())
	fmt.Fprintf(file, "# Blocks: %d\n", result.BlockCount())
	fmt.Fprintf(file, "\n%s\n", value)

	return nil
}

// DisplayQuietResult outputs only the value, one per line, suitable for
// scripting.
func DisplayQuietResult(out io.Writer, result *bigint.Int) {
	fmt.Fprintln(out, result.String())
}

// DisplayResult shows a result with its digit count and duration.
// Values beyond TruncationLimit digits are abbreviated unless fullValue
// is set.
func DisplayResult(out io.Writer, result *bigint.Int, op string, duration time.Duration, fullValue bool) {
	value := result.String()
	display := value
	if !fullValue && len(value) > TruncationLimit {
		display = format.TruncateNumberString(value, DisplayEdges)
	}
	digits := format.FormatNumberString(strconv.Itoa(result.Size()))
	fmt.Fprintf(out, "%s%s%s completed in %s%s%s (%s%s digits%s):\n%s\n",
		ui.ColorBlue(), op, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset(),
		ui.ColorCyan(), digits, ui.ColorReset(),
		display)
}

// DisplayResultWithConfig displays a result honoring quiet mode and
// file output. This is the unified exit path for the calculate modes.
//
// Parameters:
//   - out: The output writer.
//   - result: The computed value.
//   - op: The operation name.
//   - duration: The calculation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result *bigint.Int, op string, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(out, result, op, duration, config.FullValue)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, op, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
