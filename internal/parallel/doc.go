// Package parallel provides the concurrency primitives behind the reducer:
// a pure range partitioner, a bounded task group with a wait-all barrier,
// worker panic capture, first-error collection and hardware parallelism
// detection.
package parallel
