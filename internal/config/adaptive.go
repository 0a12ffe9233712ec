package config

import (
	"github.com/agbru/paracc/internal/parallel"
	"github.com/agbru/paracc/internal/reduce"
	"github.com/agbru/paracc/internal/sysmon"
)

// ApplyAdaptiveDefaults fills the planning parameters left at zero with
// values derived from the host. Values set by flags, environment or file are
// preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	if cfg.MinChunk == 0 {
		cfg.MinChunk = reduce.DefaultMinChunk
	}
	return cfg
}

// EstimateWorkers returns the hardware parallelism to plan for: the
// schedulable CPUs capped by GOMAXPROCS, then the logical core count, then
// parallel.FallbackParallelism.
func EstimateWorkers() int {
	if hw := parallel.HardwareParallelism(); hw > 0 {
		return hw
	}
	if cores := sysmon.LogicalCores(); cores > 0 {
		return cores
	}
	return parallel.FallbackParallelism
}
