package cli

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/briandowns/spinner"

	"github.com/agbru/bignum/internal/orchestration"
)

// mockSpinner records spinner interactions for assertions.
type mockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *mockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *mockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *mockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func (m *mockSpinner) snapshot() (bool, bool, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started, m.stopped, m.suffix
}

func TestProgressState(t *testing.T) {
	t.Parallel()

	ps := NewProgressState(4)

	if avg := ps.CalculateAverage(); avg != 0 {
		t.Errorf("initial average = %f, want 0", avg)
	}

	ps.Update(0, 1.0)
	ps.Update(1, 0.5)
	if avg := ps.CalculateAverage(); avg != 0.375 {
		t.Errorf("average = %f, want 0.375", avg)
	}

	// Out-of-range updates are ignored.
	ps.Update(-1, 1.0)
	ps.Update(4, 1.0)
	if avg := ps.CalculateAverage(); avg != 0.375 {
		t.Errorf("average after invalid updates = %f, want 0.375", avg)
	}
}

func TestProgressStateZeroAlgorithms(t *testing.T) {
	t.Parallel()

	ps := NewProgressState(0)
	if avg := ps.CalculateAverage(); avg != 0 {
		t.Errorf("average with no algorithms = %f, want 0", avg)
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress float64
		filled   int
	}{
		{"empty", 0.0, 0},
		{"half", 0.5, 5},
		{"full", 1.0, 10},
		{"clamped high", 1.5, 10},
		{"clamped low", -0.5, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bar := progressBar(tt.progress, 10)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled cells = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "░"); got != 10-tt.filled {
				t.Errorf("empty cells = %d, want %d", got, 10-tt.filled)
			}
		})
	}
}

func TestDisplayProgress(t *testing.T) {
	mock := &mockSpinner{}
	original := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return mock }
	defer func() { newSpinner = original }()

	progressChan := make(chan orchestration.ProgressUpdate, 4)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 2, io.Discard)

	progressChan <- orchestration.ProgressUpdate{AlgorithmIndex: 0, Value: 1.0}
	progressChan <- orchestration.ProgressUpdate{AlgorithmIndex: 1, Value: 1.0}
	close(progressChan)
	wg.Wait()

	started, stopped, suffix := mock.snapshot()
	if !started {
		t.Error("spinner was never started")
	}
	if !stopped {
		t.Error("spinner was never stopped")
	}
	if !strings.Contains(suffix, "100%") {
		t.Errorf("final suffix = %q, want 100%%", suffix)
	}
}
