package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/internal/bigint"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/agbru/bignum/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// calculation goroutines when the display is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteMultiplications runs every named multiplication algorithm over
// the same operand pair concurrently and collects their results.
//
// Each algorithm runs in its own goroutine under an errgroup and emits a
// span carrying the algorithm name and operand sizes. A panic inside an
// algorithm (operand ceiling exceeded) is recovered into the result's
// Err so one failing algorithm does not abort the comparison.
//
// Parameters:
//   - ctx: The context for cancellation and span propagation.
//   - algorithms: The algorithm names to run (see bigint.AlgorithmNames).
//   - a, b: The operands.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []CalculationResult: One result per algorithm, in input order.
func ExecuteMultiplications(ctx context.Context, algorithms []string, a, b *bigint.Int, reporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(algorithms))
	progressChan := make(chan ProgressUpdate, len(algorithms)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(algorithms), out)

	tracer := otel.Tracer(tracerName)
	for i, name := range algorithms {
		idx, algorithm := i, name
		g.Go(func() error {
			startTime := time.Now()
			res, err := runMultiplication(ctx, tracer, algorithm, a, b)
			results[idx] = CalculationResult{
				Name: algorithm, Result: res, Duration: time.Since(startTime), Err: err,
			}
			progressChan <- ProgressUpdate{AlgorithmIndex: idx, Value: 1.0}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// runMultiplication executes one algorithm inside a span, converting
// panics and cancellation into errors.
func runMultiplication(ctx context.Context, tracer trace.Tracer, algorithm string, a, b *bigint.Int) (res *bigint.Int, err error) {
	ctx, span := tracer.Start(ctx, "bigint.MulWith", trace.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.Int("operand.a.blocks", a.BlockCount()),
		attribute.Int("operand.b.blocks", b.BlockCount()),
	))
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.CalculationError{Op: "Mul", Cause: fmt.Errorf("%v", r)}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return bigint.MulWith(algorithm, a, b)
}

// AnalyzeComparisonResults validates consistency across the successful
// calculations and presents a comparative table. Results are sorted by
// execution time, failures last.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - presenter: The result presenter for display formatting.
//   - fullValue: Whether the full decimal value should be presented.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, presenter ResultPresenter, fullValue bool, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return apperrors.ExitCode(firstError)
	}

	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(firstValid.Result) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The algorithms disagree on the product.\n")
			return apperrors.ExitCode(apperrors.MismatchError{
				Algorithms: [2]string{firstValid.Name, res.Name},
			})
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValid, fullValue, out)
	return apperrors.ExitSuccess
}
