// Package sysmon provides system-wide CPU and memory usage sampling.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
	TotalMemory uint64  // bytes
}

// Host describes the processors of the machine.
type Host struct {
	CPUModel      string
	LogicalCores  int
	PhysicalCores int
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
		s.TotalMemory = vmem.Total
	}
	return s
}

// LogicalCores returns the number of logical CPUs, or 0 if unknown.
func LogicalCores() int {
	n, err := cpu.Counts(true)
	if err != nil {
		return 0
	}
	return n
}

// HostInfo describes the machine's processors. Unknown fields are left zero.
func HostInfo() Host {
	h := Host{LogicalCores: LogicalCores()}
	if n, err := cpu.Counts(false); err == nil {
		h.PhysicalCores = n
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	return h
}
