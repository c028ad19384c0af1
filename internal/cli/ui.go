//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bignum/internal/orchestration"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress display.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the behavior of a terminal spinner, decoupling
// DisplayProgress from a specific spinner implementation and making it
// testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to keep redraws in sync.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState tracks the aggregated progress of concurrently running
// algorithms and computes the average for a consolidated display.
type ProgressState struct {
	progresses    []float64
	numAlgorithms int
}

// NewProgressState creates a ProgressState tracking the given number of
// algorithms.
func NewProgressState(numAlgorithms int) *ProgressState {
	return &ProgressState{
		progresses:    make([]float64, numAlgorithms),
		numAlgorithms: numAlgorithms,
	}
}

// Update records a new progress value for a specific algorithm.
// Out-of-range indices are ignored.
//
// Parameters:
//   - index: The index of the algorithm (0 to numAlgorithms-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// algorithms.
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numAlgorithms == 0 {
		return 0.0
	}
	return total / float64(ps.numAlgorithms)
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders a spinner with a consolidated progress bar
// while algorithms run. It consumes updates until progressChan is
// closed, then stops the spinner and signals wg.
//
// Parameters:
//   - wg: Signaled when the display loop has fully stopped.
//   - progressChan: Channel receiving progress updates.
//   - numAlgorithms: The number of concurrent algorithms tracked.
//   - out: The writer the spinner draws to.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numAlgorithms int, out io.Writer) {
	defer wg.Done()

	state := NewProgressState(numAlgorithms)
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" calculating [%s] 0%%", progressBar(0, ProgressBarWidth)))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		state.Update(update.AlgorithmIndex, update.Value)
		avg := state.CalculateAverage()
		sp.UpdateSuffix(fmt.Sprintf(" calculating [%s] %.0f%%",
			progressBar(avg, ProgressBarWidth), avg*100))
	}
}
