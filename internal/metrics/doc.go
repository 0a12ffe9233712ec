// Package metrics exposes reduction measurements as Prometheus collectors
// and reads runtime memory statistics for run reports.
package metrics
