package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display. Durations
// under a millisecond are shown in microseconds and durations under a
// second in milliseconds; anything longer uses the default rendering.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
