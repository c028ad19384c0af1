package metrics

import "runtime"

// MemorySnapshot holds the memory counters the verbose resource report
// shows around a calculation: live heap, OS footprint and completed GC
// cycles.
type MemorySnapshot struct {
	HeapAlloc uint64 // bytes in use by application
	Sys       uint64 // total bytes obtained from OS
	NumGC     uint32 // number of completed GC cycles
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc: m.HeapAlloc,
		Sys:       m.Sys,
		NumGC:     m.NumGC,
	}
}

// Delta reports the growth from before to the receiver, one snapshot
// taken around a calculation. Counters that shrank (the GC ran) clamp
// to zero rather than wrapping.
func (s MemorySnapshot) Delta(before MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc: clampSub(s.HeapAlloc, before.HeapAlloc),
		Sys:       clampSub(s.Sys, before.Sys),
		NumGC:     s.NumGC - before.NumGC,
	}
}

func clampSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
