// Interactive REPL for arbitrary-precision calculations.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// FullValue prints complete decimal expansions instead of the
	// truncated preview.
	FullValue bool
	// Prompt is the string printed before each input line.
	Prompt string
}

// REPL represents an interactive calculator session. Commands are of
// the form "<op> <operands...>", e.g. "mul 123 456".
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
	// last holds the previous result, referenced as "_" in operands.
	last *bigint.Int
}

// NewREPL creates a new REPL instance reading commands from in and
// writing results to out.
func NewREPL(config REPLConfig, in io.Reader, out io.Writer) *REPL {
	if config.Prompt == "" {
		config.Prompt = "bignum> "
	}
	return &REPL{config: config, in: in, out: out}
}

// Run executes the read-eval-print loop until EOF or an exit command.
func (r *REPL) Run() error {
	fmt.Fprintf(r.out, "bignum interactive calculator. Type 'help' for commands.\n")

	scanner := bufio.NewScanner(r.in)
	// Operands can be arbitrarily long decimal strings.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for {
		fmt.Fprint(r.out, r.config.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		r.eval(line)
	}
}

// eval parses and executes a single command line.
func (r *REPL) eval(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		r.printHelp()
	case "full":
		r.config.FullValue = !r.config.FullValue
		fmt.Fprintf(r.out, "full output: %v\n", r.config.FullValue)
	case "add", "sub", "mul", "div", "mod", "gcd", "lcm":
		r.evalBinary(cmd, args)
	case "divrem":
		r.evalDivRem(args)
	case "pow":
		r.evalPow(args)
	case "modpow":
		r.evalModPow(args)
	default:
		r.errorf("unknown command %q, type 'help'", cmd)
	}
}

// evalBinary handles the two-operand operations.
func (r *REPL) evalBinary(op string, args []string) {
	a, b, ok := r.parseTwo(op, args)
	if !ok {
		return
	}

	start := time.Now()
	var result *bigint.Int
	var err error
	switch op {
	case "add":
		result = a.Add(b)
	case "sub":
		result = a.Sub(b)
	case "mul":
		result = r.safeMul(a, b, &err)
	case "div":
		result, _, err = a.DivRem(b)
	case "mod":
		_, result, err = a.DivRem(b)
	case "gcd":
		result = a.GCD(b)
	case "lcm":
		result = a.LCM(b)
	}
	if err != nil {
		r.errorf("%v", err)
		return
	}
	r.printResult(result, time.Since(start))
}

// safeMul multiplies while converting the operand-ceiling panic into an
// error the session can survive.
func (r *REPL) safeMul(a, b *bigint.Int, err *error) (result *bigint.Int) {
	defer func() {
		if rec := recover(); rec != nil {
			*err = fmt.Errorf("%v", rec)
		}
	}()
	return a.Mul(b)
}

func (r *REPL) evalDivRem(args []string) {
	a, b, ok := r.parseTwo("divrem", args)
	if !ok {
		return
	}
	start := time.Now()
	q, rem, err := a.DivRem(b)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	fmt.Fprintf(r.out, "quotient:  %s\n", r.render(q))
	fmt.Fprintf(r.out, "remainder: %s\n", r.render(rem))
	r.last = q
	fmt.Fprintf(r.out, "(%s)\n", format.FormatExecutionDuration(time.Since(start)))
}

func (r *REPL) evalPow(args []string) {
	if len(args) != 2 {
		r.errorf("usage: pow <base> <exponent>")
		return
	}
	base, ok := r.parseOperand(args[0])
	if !ok {
		return
	}
	var exp uint64
	if _, err := fmt.Sscanf(args[1], "%d", &exp); err != nil {
		r.errorf("exponent must be a non-negative machine integer: %v", err)
		return
	}
	start := time.Now()
	r.printResult(base.Pow(exp), time.Since(start))
}

func (r *REPL) evalModPow(args []string) {
	if len(args) != 3 {
		r.errorf("usage: modpow <base> <exponent> <modulus>")
		return
	}
	base, ok1 := r.parseOperand(args[0])
	exp, ok2 := r.parseOperand(args[1])
	mod, ok3 := r.parseOperand(args[2])
	if !ok1 || !ok2 || !ok3 {
		return
	}
	start := time.Now()
	result, err := base.ModPow(exp, mod)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	r.printResult(result, time.Since(start))
}

// parseTwo parses exactly two operands for a binary operation.
func (r *REPL) parseTwo(op string, args []string) (*bigint.Int, *bigint.Int, bool) {
	if len(args) != 2 {
		r.errorf("usage: %s <a> <b>", op)
		return nil, nil, false
	}
	a, ok := r.parseOperand(args[0])
	if !ok {
		return nil, nil, false
	}
	b, ok := r.parseOperand(args[1])
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// parseOperand parses one operand, resolving "_" to the last result.
func (r *REPL) parseOperand(s string) (*bigint.Int, bool) {
	if s == "_" {
		if r.last == nil {
			r.errorf("no previous result")
			return nil, false
		}
		return r.last, true
	}
	x, err := bigint.Parse(s)
	if err != nil {
		r.errorf("%v", err)
		return nil, false
	}
	return x, true
}

func (r *REPL) printResult(result *bigint.Int, d time.Duration) {
	r.last = result
	fmt.Fprintf(r.out, "%s\n(%s)\n", r.render(result), format.FormatExecutionDuration(d))
}

func (r *REPL) render(x *bigint.Int) string {
	value := x.String()
	if !r.config.FullValue && len(value) > TruncationLimit {
		return format.TruncateNumberString(value, DisplayEdges)
	}
	return value
}

func (r *REPL) errorf(formatStr string, args ...interface{}) {
	fmt.Fprintf(r.out, "%serror:%s %s\n", ui.ColorRed(), ui.ColorReset(),
		fmt.Sprintf(formatStr, args...))
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `Commands:
  add|sub|mul|div|mod|gcd|lcm <a> <b>
  divrem <a> <b>
  pow <base> <exponent>
  modpow <base> <exponent> <modulus>
  full              toggle full value output
  help              show this help
  exit|quit         leave the session
Use _ to reference the previous result.
`)
}
