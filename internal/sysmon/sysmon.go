// Package sysmon provides system-wide CPU and memory usage sampling,
// used to report resource pressure around long-running calculations.
package sysmon

import (
	"context"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Monitor samples resource usage in the background and retains the peak
// values observed. Peaks are what matter for sizing: a multiplication's
// footprint spikes during the FFT transform and is gone by the time the
// result is printed.
type Monitor struct {
	interval time.Duration

	mu   sync.Mutex
	peak Stats

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a Monitor sampling at the given interval.
func NewMonitor(interval time.Duration) *Monitor {
	return &Monitor{interval: interval}
}

// Start begins background sampling. It returns immediately; call Stop
// to end sampling and retrieve the peak.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.record(Sample())
			}
		}
	}()
}

// Stop ends sampling and returns the peak usage observed. Calling Stop
// without Start returns zero stats.
func (m *Monitor) Stop() Stats {
	if m.cancel != nil {
		m.cancel()
		<-m.done
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peak
}

func (m *Monitor) record(s Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.CPUPercent > m.peak.CPUPercent {
		m.peak.CPUPercent = s.CPUPercent
	}
	if s.MemPercent > m.peak.MemPercent {
		m.peak.MemPercent = s.MemPercent
	}
}
