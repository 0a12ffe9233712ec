package metrics

import "runtime"

// MemorySnapshot holds runtime memory statistics, either read at one instant
// or, from Since and Measure, accumulated over an interval.
type MemorySnapshot struct {
	HeapAlloc    uint64 // live heap bytes; a gauge, never a delta
	TotalAlloc   uint64 // bytes allocated
	Sys          uint64 // bytes obtained from the OS; a gauge, never a delta
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // GC stop-the-world pause
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current statistics. It briefly stops the world.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Measure runs fn and returns the allocation and GC activity it caused,
// along with the heap and OS footprint once it returned.
func (mc *MemoryCollector) Measure(fn func()) MemorySnapshot {
	before := mc.Snapshot()
	fn()
	return mc.Snapshot().Since(before)
}

// Since returns the counters accumulated between before and s. HeapAlloc
// and Sys are taken from s as-is since they are gauges.
func (s MemorySnapshot) Since(before MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    s.HeapAlloc,
		TotalAlloc:   s.TotalAlloc - before.TotalAlloc,
		Sys:          s.Sys,
		NumGC:        s.NumGC - before.NumGC,
		PauseTotalNs: s.PauseTotalNs - before.PauseTotalNs,
	}
}
