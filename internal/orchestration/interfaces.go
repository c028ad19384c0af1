package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/bignum/internal/bigint"
)

// CalculationResult encapsulates the outcome of running one
// multiplication algorithm over the verification operands. It is the
// shared domain type between orchestration and presentation layers.
type CalculationResult struct {
	// Name is the identifier of the algorithm used (e.g., "karatsuba").
	Name string
	// Result is the computed product. It is nil if an error occurred.
	Result *bigint.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// ProgressUpdate reports completion state for one algorithm.
type ProgressUpdate struct {
	// AlgorithmIndex identifies the sender within the run.
	AlgorithmIndex int
	// Value is the progress fraction, 0.0 to 1.0.
	Value float64
}

// ProgressReporter defines the interface for displaying calculation
// progress. It decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinners,
// progress output) while orchestration focuses on coordinating the
// algorithms.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the
	// channel. It is called in a separate goroutine and runs until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates.
	//   - numAlgorithms: The number of concurrent algorithms tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numAlgorithms int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numAlgorithms int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numAlgorithms int, out io.Writer) {
	f(wg, progressChan, numAlgorithms, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything. Useful
// for quiet mode and testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting verification
// results, allowing different output formats without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the agreed-upon product.
	PresentResult(result CalculationResult, fullValue bool, out io.Writer)
}
