package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/ui"
)

func TestMain(m *testing.M) {
	// Deterministic output for string assertions.
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	t.Run("writes header and full value", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(tmpDir, "result.txt")
		result := bigint.MustParse("123456789012345678901234567890")

		err := WriteResultToFile(result, "mul", 42*time.Millisecond, OutputConfig{OutputFile: path})
		if err != nil {
			t.Fatalf("WriteResultToFile() error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output file: %v", err)
		}
		for _, want := range []string{
			"# Operation: mul",
			"# Digits: 30",
			"# Blocks: 4",
			"123456789012345678901234567890",
		} {
			if !strings.Contains(string(content), want) {
				t.Errorf("file missing %q:\n%s", want, content)
			}
		}
	})

	t.Run("empty path writes nothing", func(t *testing.T) {
		t.Parallel()
		if err := WriteResultToFile(bigint.New(55), "add", time.Millisecond, OutputConfig{}); err != nil {
			t.Fatalf("WriteResultToFile() with empty path: %v", err)
		}
	})

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(tmpDir, "nested", "dir", "result.txt")
		if err := WriteResultToFile(bigint.New(7), "gcd", time.Millisecond, OutputConfig{OutputFile: path}); err != nil {
			t.Fatalf("WriteResultToFile() error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file not created: %v", err)
		}
	})
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	DisplayQuietResult(&out, bigint.MustParse("-987654321"))

	if out.String() != "-987654321\n" {
		t.Errorf("quiet output = %q", out.String())
	}
}

func TestDisplayResultTruncation(t *testing.T) {
	t.Parallel()

	// 120 digits, above TruncationLimit.
	big := bigint.MustParse(strings.Repeat("123456789012", 10))

	t.Run("truncated by default", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		DisplayResult(&out, big, "mul", time.Millisecond, false)
		if !strings.Contains(out.String(), "(120 digits)") {
			t.Errorf("output should contain the digit count marker:\n%s", out.String())
		}
		if strings.Contains(out.String(), big.String()) {
			t.Error("truncated output should not contain the full value")
		}
	})

	t.Run("full when requested", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		DisplayResult(&out, big, "mul", time.Millisecond, true)
		if !strings.Contains(out.String(), big.String()) {
			t.Error("full output should contain the complete value")
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("quiet with file output", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		var out bytes.Buffer

		err := DisplayResultWithConfig(&out, bigint.New(42), "add", time.Millisecond,
			OutputConfig{OutputFile: path, Quiet: true})
		if err != nil {
			t.Fatalf("DisplayResultWithConfig() error: %v", err)
		}

		if out.String() != "42\n" {
			t.Errorf("quiet terminal output = %q", out.String())
		}
		if _, statErr := os.Stat(path); statErr != nil {
			t.Errorf("output file not written: %v", statErr)
		}
	})

	t.Run("announces saved file when not quiet", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		var out bytes.Buffer

		err := DisplayResultWithConfig(&out, bigint.New(42), "add", time.Millisecond,
			OutputConfig{OutputFile: path})
		if err != nil {
			t.Fatalf("DisplayResultWithConfig() error: %v", err)
		}
		if !strings.Contains(out.String(), "Result saved to") {
			t.Errorf("output missing save notice:\n%s", out.String())
		}
	})
}
