package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/cli"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/sysmon"
)

// ─────────────────────────────────────────────────────────────────────────────
// SINGLE-OPERATION MODE
// ─────────────────────────────────────────────────────────────────────────────

// runCalculate performs the configured operation once and prints the
// result. It is the default run mode.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, out)
	}

	var monitor *sysmon.Monitor
	collector := metrics.NewMemoryCollector()
	var memBefore metrics.MemorySnapshot
	if a.Config.Verbose {
		monitor = sysmon.NewMonitor(200 * time.Millisecond)
		monitor.Start(ctx)
		memBefore = collector.Snapshot()
	}

	start := time.Now()
	result, err := a.compute(ctx)
	duration := time.Since(start)

	a.Metrics.RecordOperation(a.Config.Op, duration, err)

	if monitor != nil {
		peak := monitor.Stop()
		delta := collector.Snapshot().Delta(memBefore)
		a.Logger.Debug("resource usage",
			logging.Float64("cpu_peak_percent", peak.CPUPercent),
			logging.Float64("mem_peak_percent", peak.MemPercent),
			logging.String("heap_growth", format.FormatBytes(delta.HeapAlloc)),
			logging.Uint64("gc_cycles", uint64(delta.NumGC)))
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		a.Logger.Error("calculation failed", err,
			logging.String("op", a.Config.Op))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	a.Logger.Debug("calculation complete",
		logging.String("op", a.Config.Op),
		logging.Int("digits", result.Size()),
		logging.String("duration", duration.String()))

	outCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		FullValue:  a.Config.FullValue,
	}
	if err := cli.DisplayResultWithConfig(out, result, a.Config.Op, duration, outCfg); err != nil {
		a.Logger.Error("failed to write result", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// compute parses the operands and dispatches the configured operation.
// Ceiling overruns from the multiplication dispatcher surface as a
// CalculationError rather than a panic.
func (a *Application) compute(ctx context.Context) (result *bigint.Int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = apperrors.CalculationError{
				Op:    a.Config.Op,
				Cause: fmt.Errorf("%v", rec),
			}
		}
	}()

	x, err := a.parseOperand("a", a.Config.A)
	if err != nil {
		return nil, err
	}

	var y *bigint.Int
	if needsSecondOperand(a.Config.Op) {
		y, err = a.parseOperand("b", a.Config.B)
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch a.Config.Op {
	case "add":
		return x.Add(y), nil
	case "sub":
		return x.Sub(y), nil
	case "mul":
		return a.multiply(x, y)
	case "div":
		q, _, err := x.DivRem(y)
		return q, err
	case "mod":
		_, r, err := x.DivRem(y)
		return r, err
	case "divrem":
		// The quotient is the printed result; the remainder rides along
		// in the log so -quiet output stays a single value.
		q, r, err := x.DivRem(y)
		if err != nil {
			return nil, err
		}
		a.Logger.Info("remainder", logging.String("value", r.String()))
		return q, nil
	case "pow":
		exp, perr := strconv.ParseUint(a.Config.Exp, 10, 64)
		if perr != nil {
			return nil, apperrors.NewConfigError("invalid exponent %q: %v", a.Config.Exp, perr)
		}
		return x.Pow(exp), nil
	case "modpow":
		exp, err := a.parseOperand("exp", a.Config.Exp)
		if err != nil {
			return nil, err
		}
		m, err := a.parseOperand("mod", a.Config.Mod)
		if err != nil {
			return nil, err
		}
		return x.ModPow(exp, m)
	case "gcd":
		return x.GCD(y), nil
	case "lcm":
		return a.lcm(x, y)
	default:
		return nil, apperrors.NewConfigError("unknown operation %q", a.Config.Op)
	}
}

// multiply runs the forced algorithm when one is configured, otherwise
// the size-based dispatcher, recording which algorithm actually ran.
func (a *Application) multiply(x, y *bigint.Int) (*bigint.Int, error) {
	a.Metrics.RecordOperandDigits(x.Size())
	a.Metrics.RecordOperandDigits(y.Size())

	if a.Config.Algo != "" && a.Config.Algo != "auto" {
		a.Metrics.RecordMultiplication(a.Config.Algo)
		return bigint.MulWith(a.Config.Algo, x, y)
	}
	a.Metrics.RecordMultiplication(bigint.MulAlgorithm(x, y))
	return x.Mul(y), nil
}

// lcm routes through multiply so a forced algorithm and the metrics
// counters apply to the internal product as well.
func (a *Application) lcm(x, y *bigint.Int) (*bigint.Int, error) {
	if x.IsZero() || y.IsZero() {
		return bigint.Zero(), nil
	}
	g := x.GCD(y)
	q := x.Abs().Div(g)
	return a.multiply(q, y.Abs())
}

func (a *Application) parseOperand(name, s string) (*bigint.Int, error) {
	if s == "" {
		return nil, apperrors.NewConfigError("operation %q requires -%s", a.Config.Op, name)
	}
	v, err := bigint.Parse(s)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid -%s operand: %v", name, err)
	}
	return v, nil
}

func needsSecondOperand(op string) bool {
	switch op {
	case "add", "sub", "mul", "div", "mod", "divrem", "gcd", "lcm", "verify":
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// VERIFY MODE
// ─────────────────────────────────────────────────────────────────────────────

// runVerify multiplies the operands with every algorithm in parallel,
// compares the products and reports the fastest agreeing result.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, out)
	}

	x, err := a.parseOperand("a", a.Config.A)
	if err != nil {
		return a.failVerify(err)
	}
	y, err := a.parseOperand("b", a.Config.B)
	if err != nil {
		return a.failVerify(err)
	}
	return a.verify(ctx, x, y, out)
}

func (a *Application) failVerify(err error) int {
	a.Logger.Error("verify failed", err)
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitCode(err)
}

func (a *Application) verify(ctx context.Context, x, y *bigint.Int, out io.Writer) int {
	algorithms := bigint.AlgorithmNames()

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	start := time.Now()
	results := orchestration.ExecuteMultiplications(ctx, algorithms, x, y, reporter, progressOut)
	a.Metrics.RecordOperation("verify", time.Since(start), firstError(results))

	var presenter orchestration.ResultPresenter = cli.CLIResultPresenter{}
	tableOut := out
	if a.Config.Quiet {
		tableOut = io.Discard
	}
	code := orchestration.AnalyzeComparisonResults(results, presenter, a.Config.FullValue, tableOut)

	if code == apperrors.ExitSuccess {
		a.afterVerify(results, out)
	}
	return code
}

// afterVerify handles -quiet and -output for a successful comparison.
func (a *Application) afterVerify(results []orchestration.CalculationResult, out io.Writer) {
	var winner *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil && results[i].Result != nil {
			if winner == nil || results[i].Duration < winner.Duration {
				winner = &results[i]
			}
		}
	}
	if winner == nil {
		return
	}
	if a.Config.Quiet {
		cli.DisplayQuietResult(out, winner.Result)
	}
	if a.Config.OutputFile != "" {
		cfg := cli.OutputConfig{OutputFile: a.Config.OutputFile}
		if err := cli.WriteResultToFile(winner.Result, "verify", winner.Duration, cfg); err != nil {
			a.Logger.Error("failed to write result", err)
			return
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "Result saved to: %s\n", a.Config.OutputFile)
		}
	}
}

func firstError(results []orchestration.CalculationResult) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}
