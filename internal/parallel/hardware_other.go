//go:build !linux

package parallel

import "runtime"

func schedulableCPUs() int {
	return runtime.NumCPU()
}
