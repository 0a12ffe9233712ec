package reduce

import "github.com/agbru/paracc/internal/parallel"

// DefaultMinChunk is the minimum number of elements a worker is expected to
// process; inputs smaller than Workers*DefaultMinChunk use fewer workers.
const DefaultMinChunk = 25

// Plan is the partition of a sequence's index range computed at the start
// of a reduction.
type Plan struct {
	// Length is the number of elements in the sequence.
	Length int
	// MinChunk is the minimum-work-per-worker threshold used for the plan.
	MinChunk int
	// Hardware is the fallback-adjusted hardware parallelism.
	Hardware int
	// Workers is the number of blocks, and of workers, in the plan.
	Workers int
	// BlockSize is Length/Workers; the last block also takes the remainder.
	BlockSize int
	// Blocks are the contiguous [Start, End) ranges, in sequence order.
	Blocks []parallel.Block
}

// NewPlan partitions [0, length) for the given minimum chunk size and
// hardware parallelism. A hardware value <= 0 means unknown.
func NewPlan(length, minChunk, hardware int) Plan {
	if minChunk < 1 {
		minChunk = 1
	}
	if hardware <= 0 {
		hardware = parallel.FallbackParallelism
	}
	p := Plan{
		Length:   max(length, 0),
		MinChunk: minChunk,
		Hardware: hardware,
		Workers:  parallel.WorkerCount(length, minChunk, hardware),
	}
	if p.Workers == 0 {
		return p
	}
	p.BlockSize = length / p.Workers
	p.Blocks = parallel.PartitionRange(length, p.Workers)
	return p
}
