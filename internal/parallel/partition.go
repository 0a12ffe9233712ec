package parallel

// FallbackParallelism is substituted when the hardware parallelism of the
// host cannot be determined.
const FallbackParallelism = 2

// Block is a contiguous half-open index range [Start, End) assigned to the
// worker with the same Index.
type Block struct {
	Index int
	Start int
	End   int
}

// Len returns the number of indices covered by the block.
func (b Block) Len() int { return b.End - b.Start }

// WorkerCount returns the number of workers used to process length elements:
// the hardware parallelism (or FallbackParallelism when hardware <= 0),
// capped so that no worker receives fewer than minChunk elements on average.
// It returns 0 for an empty range. A minChunk below 1 is treated as 1.
func WorkerCount(length, minChunk, hardware int) int {
	if length <= 0 {
		return 0
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if hardware <= 0 {
		hardware = FallbackParallelism
	}
	maxWorkers := (length + minChunk - 1) / minChunk
	return min(hardware, maxWorkers)
}

// PartitionRange divides [0, length) into n contiguous blocks of length/n
// indices each, the last block absorbing the remainder. It returns nil when
// length or n is not positive.
func PartitionRange(length, n int) []Block {
	if length <= 0 || n <= 0 {
		return nil
	}
	if n > length {
		n = length
	}
	size := length / n
	blocks := make([]Block, n)
	start := 0
	for i := 0; i < n-1; i++ {
		blocks[i] = Block{Index: i, Start: start, End: start + size}
		start += size
	}
	blocks[n-1] = Block{Index: n - 1, Start: start, End: length}
	return blocks
}
