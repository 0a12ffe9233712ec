package parallel

import "runtime"

// HardwareParallelism reports how many goroutines can execute
// simultaneously in this process: the CPUs the process is allowed to run on,
// capped by GOMAXPROCS. It returns 0 when the value cannot be determined.
func HardwareParallelism() int {
	cpus := schedulableCPUs()
	if cpus <= 0 {
		return 0
	}
	return min(cpus, runtime.GOMAXPROCS(0))
}
