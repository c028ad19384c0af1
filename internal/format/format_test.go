package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-millisecond", 250 * time.Microsecond, "250µs"},
		{"sub-second", 42 * time.Millisecond, "42ms"},
		{"seconds", 3 * time.Second, "3s"},
		{"minutes", 90 * time.Second, "1m30s"},
		{"zero", 0, "0µs"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short", "42", "42"},
		{"three digits", "999", "999"},
		{"four digits", "1000", "1,000"},
		{"aligned groups", "123456789", "123,456,789"},
		{"unaligned groups", "1234567890", "1,234,567,890"},
		{"negative", "-1234567", "-1,234,567"},
		{"zero", "0", "0"},
		{"non-numeric passthrough", "12a34", "12a34"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatNumberString(tt.input); got != tt.want {
				t.Errorf("FormatNumberString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		edge  int
		want  string
	}{
		{"short unchanged", "123456", 3, "123456"},
		{"truncated", "12345678901234567890", 5, "12345...67890 (20 digits)"},
		{"negative truncated", "-12345678901234567890", 5, "-12345...67890 (20 digits)"},
		{"zero edge unchanged", "12345678901234567890", 0, "12345678901234567890"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateNumberString(tt.input, tt.edge); got != tt.want {
				t.Errorf("TruncateNumberString(%q, %d) = %q, want %q", tt.input, tt.edge, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KiB"},
		{5 * 1024 * 1024, "5.00 MiB"},
		{3 * 1024 * 1024 * 1024, "3.00 GiB"},
	}

	for _, tt := range tests {
		tt := tt
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
