package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()

	results := []orchestration.CalculationResult{
		{Name: "karatsuba", Result: bigint.New(6), Duration: time.Millisecond},
		{Name: "schoolbook", Result: bigint.New(6), Duration: 3 * time.Millisecond},
		{Name: "fft", Err: errors.New("boom"), Duration: 2 * time.Millisecond},
	}

	var out bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &out)

	output := out.String()
	for _, want := range []string{
		"Comparison Summary", "Algorithm", "Duration", "Status",
		"karatsuba", "schoolbook", "fft",
		"✓ Success", "✗ Failure (boom)",
		"1ms", "3ms",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q:\n%s", want, output)
		}
	}
}

func TestPresentComparisonTableZeroDuration(t *testing.T) {
	t.Parallel()

	results := []orchestration.CalculationResult{
		{Name: "schoolbook", Result: bigint.New(1), Duration: 0},
	}

	var out bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &out)

	if !strings.Contains(out.String(), "< 1µs") {
		t.Errorf("zero duration should render as < 1µs:\n%s", out.String())
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()

	t.Run("short value shown in full", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		CLIResultPresenter{}.PresentResult(orchestration.CalculationResult{
			Name: "fft", Result: bigint.MustParse("123456789"), Duration: time.Millisecond,
		}, false, &out)

		if !strings.Contains(out.String(), "123456789") {
			t.Errorf("output missing value:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "9 digits") {
			t.Errorf("output missing digit count:\n%s", out.String())
		}
	})

	t.Run("long value truncated", func(t *testing.T) {
		t.Parallel()
		long := bigint.MustParse(strings.Repeat("9", 150))

		var out bytes.Buffer
		CLIResultPresenter{}.PresentResult(orchestration.CalculationResult{
			Name: "fft", Result: long, Duration: time.Millisecond,
		}, false, &out)

		if strings.Contains(out.String(), long.String()) {
			t.Error("long value should be truncated by default")
		}
		if !strings.Contains(out.String(), "(150 digits)") {
			t.Errorf("output missing truncation marker:\n%s", out.String())
		}
	})

	t.Run("nil result is a no-op", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		CLIResultPresenter{}.PresentResult(orchestration.CalculationResult{Name: "fft"}, false, &out)
		if out.Len() != 0 {
			t.Errorf("nil result should produce no output, got %q", out.String())
		}
	})
}
