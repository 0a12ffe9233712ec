package parallel

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWorkerCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		length   int
		minChunk int
		hardware int
		want     int
	}{
		{"empty range spawns nothing", 0, 25, 8, 0},
		{"negative length spawns nothing", -4, 25, 8, 0},
		{"small input capped by chunk size", 10, 25, 8, 1},
		{"exact chunk multiple", 100, 25, 8, 4},
		{"chunk ceiling rounds up", 101, 25, 8, 5},
		{"large input capped by hardware", 1_000_000, 25, 8, 8},
		{"unknown hardware falls back to two", 1_000_000, 25, 0, FallbackParallelism},
		{"negative hardware falls back to two", 1_000_000, 25, -1, FallbackParallelism},
		{"non-positive chunk treated as one", 3, 0, 8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WorkerCount(tt.length, tt.minChunk, tt.hardware); got != tt.want {
				t.Errorf("WorkerCount(%d, %d, %d) = %d, want %d", tt.length, tt.minChunk, tt.hardware, got, tt.want)
			}
		})
	}
}

func TestPartitionRange(t *testing.T) {
	t.Parallel()

	t.Run("last block absorbs remainder", func(t *testing.T) {
		t.Parallel()
		blocks := PartitionRange(10, 3)
		want := []Block{{0, 0, 3}, {1, 3, 6}, {2, 6, 10}}
		if len(blocks) != len(want) {
			t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
		}
		for i := range want {
			if blocks[i] != want[i] {
				t.Errorf("block %d = %+v, want %+v", i, blocks[i], want[i])
			}
		}
	})

	t.Run("single block covers everything", func(t *testing.T) {
		t.Parallel()
		blocks := PartitionRange(7, 1)
		if len(blocks) != 1 || blocks[0] != (Block{0, 0, 7}) {
			t.Errorf("got %+v, want one block [0,7)", blocks)
		}
	})

	t.Run("degenerate inputs yield nil", func(t *testing.T) {
		t.Parallel()
		if blocks := PartitionRange(0, 4); blocks != nil {
			t.Errorf("PartitionRange(0, 4) = %+v, want nil", blocks)
		}
		if blocks := PartitionRange(4, 0); blocks != nil {
			t.Errorf("PartitionRange(4, 0) = %+v, want nil", blocks)
		}
	})
}

// TestPartitionCoverage_PropertyBased verifies that for any length, chunk
// size and hardware parallelism, the planned blocks cover [0, length)
// exactly once, in order, and that the worker bound holds.
func TestPartitionCoverage_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("blocks partition [0, length) without gaps or overlaps", prop.ForAll(
		func(length, minChunk, hardware int) bool {
			n := WorkerCount(length, minChunk, hardware)
			blocks := PartitionRange(length, n)
			if length == 0 {
				return n == 0 && blocks == nil
			}
			if len(blocks) != n {
				return false
			}
			next := 0
			for i, b := range blocks {
				if b.Index != i || b.Start != next || b.End <= b.Start {
					return false
				}
				next = b.End
			}
			return next == length
		},
		gen.IntRange(0, 100_000),
		gen.IntRange(1, 500),
		gen.IntRange(-2, 128),
	))

	properties.Property("worker count respects hardware and chunk bounds", prop.ForAll(
		func(length, minChunk, hardware int) bool {
			n := WorkerCount(length, minChunk, hardware)
			hw := hardware
			if hw <= 0 {
				hw = FallbackParallelism
			}
			maxWorkers := (length + minChunk - 1) / minChunk
			return n <= hw && n <= maxWorkers && n >= 1
		},
		gen.IntRange(1, 100_000),
		gen.IntRange(1, 500),
		gen.IntRange(-2, 128),
	))

	properties.TestingRun(t)
}
