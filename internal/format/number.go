package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts comma separators into a decimal integer
// string for display. A leading minus sign is preserved. The input is
// assumed to be a valid decimal rendering; anything else is returned
// unchanged.
//
// Parameters:
//   - s: The decimal string to group.
//
// Returns:
//   - string: The string with thousands separators inserted.
func FormatNumberString(s string) string {
	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if len(digits) <= 3 {
		return s
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return s
		}
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
		if len(digits) > lead {
			sb.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		sb.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

// TruncateNumberString abbreviates a long decimal string for terminal
// output, keeping edge digits from each end and reporting the total
// digit count. Strings short enough to display are returned unchanged.
//
// Parameters:
//   - s: The decimal string to abbreviate.
//   - edge: The number of digits to keep at each end.
//
// Returns:
//   - string: The abbreviated representation.
func TruncateNumberString(s string, edge int) string {
	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if edge <= 0 || len(digits) <= 2*edge {
		return s
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s...%s (%d digits)",
		sign, digits[:edge], digits[len(digits)-edge:], len(digits))
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
