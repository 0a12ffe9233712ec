//go:build linux

package parallel

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// schedulableCPUs counts the CPUs in the scheduler affinity mask, which is
// narrower than the machine's CPU count under taskset or cgroup cpusets.
func schedulableCPUs() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	return set.Count()
}
