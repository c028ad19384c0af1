package cli

import (
	"bytes"
	"strings"
	"testing"
)

// runREPL feeds a script to a fresh session and returns its output.
func runREPL(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	repl := NewREPL(REPLConfig{}, strings.NewReader(script), &out)
	if err := repl.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String()
}

func TestREPLBinaryOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"add", "add 999999999999 1", "1000000000000"},
		{"sub", "sub 5 12", "-7"},
		{"mul", "mul 12345678 87654321", "1082152022374638"},
		{"div", "div -7 2", "-3"},
		{"mod", "mod -7 2", "-1"},
		{"gcd", "gcd 56 -98", "14"},
		{"lcm", "lcm 56 98", "392"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			output := runREPL(t, tt.command+"\nexit\n")
			if !strings.Contains(output, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, output)
			}
		})
	}
}

func TestREPLDivRem(t *testing.T) {
	t.Parallel()

	output := runREPL(t, "divrem 17 5\nexit\n")
	if !strings.Contains(output, "quotient:  3") {
		t.Errorf("output missing quotient:\n%s", output)
	}
	if !strings.Contains(output, "remainder: 2") {
		t.Errorf("output missing remainder:\n%s", output)
	}
}

func TestREPLPowAndModPow(t *testing.T) {
	t.Parallel()

	output := runREPL(t, "pow 3 40\nmodpow 3 100 101\nexit\n")
	if !strings.Contains(output, "12157665459056928801") {
		t.Errorf("pow output wrong:\n%s", output)
	}
	// Fermat: 3^100 = 1 (mod 101).
	if !strings.Contains(output, "bignum> 1\n") {
		t.Errorf("modpow output wrong:\n%s", output)
	}
}

func TestREPLLastResultReference(t *testing.T) {
	t.Parallel()

	output := runREPL(t, "mul 111 111\nadd _ 1\nexit\n")
	if !strings.Contains(output, "12321") {
		t.Errorf("first result missing:\n%s", output)
	}
	if !strings.Contains(output, "12322") {
		t.Errorf("underscore reference did not reuse the last result:\n%s", output)
	}
}

func TestREPLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"division by zero", "div 1 0", "division by zero"},
		{"parse error", "add abc 1", "error"},
		{"unknown command", "frobnicate 1 2", "unknown command"},
		{"missing operand", "add 1", "usage: add"},
		{"underscore without history", "add _ 1", "no previous result"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			output := runREPL(t, tt.command+"\nexit\n")
			if !strings.Contains(output, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, output)
			}
		})
	}
}

func TestREPLSurvivesErrors(t *testing.T) {
	t.Parallel()

	// An error must not end the session.
	output := runREPL(t, "div 1 0\nadd 2 3\nexit\n")
	if !strings.Contains(output, "5") {
		t.Errorf("session should continue after an error:\n%s", output)
	}
}

func TestREPLFullToggle(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("9", 120)
	output := runREPL(t, "add "+long+" 0\nfull\nadd "+long+" 0\nexit\n")

	if !strings.Contains(output, "(120 digits)") {
		t.Errorf("default output should truncate:\n%s", output)
	}
	if !strings.Contains(output, long) {
		t.Errorf("full mode should print the complete value:\n%s", output)
	}
}

func TestREPLHelpAndEOF(t *testing.T) {
	t.Parallel()

	output := runREPL(t, "help\n")
	if !strings.Contains(output, "modpow <base> <exponent> <modulus>") {
		t.Errorf("help output incomplete:\n%s", output)
	}
}
