package reduce

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestReduceMatchesSequentialFold_PropertyBased verifies that for arbitrary
// inputs, chunk sizes and worker counts the parallel result equals
// init + Σ x*3/2 computed sequentially, including truncation of negative
// values and wraparound of the accumulator.
func TestReduceMatchesSequentialFold_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("int32 elements into int64 accumulator", prop.ForAll(
		func(xs []int32, init int64, minChunk, hw int) bool {
			got, err := Reduce(Slice[int32](xs), init, WithMinChunk(minChunk), WithParallelism(hw))
			return err == nil && got == oracle(xs, init)
		},
		gen.SliceOf(gen.Int32()),
		gen.Int64(),
		gen.IntRange(1, 64),
		gen.IntRange(0, 32),
	))

	properties.Property("int16 elements into wrapping int16 accumulator", prop.ForAll(
		func(xs []int16, init int16, minChunk, hw int) bool {
			got, err := Reduce(Slice[int16](xs), init, WithMinChunk(minChunk), WithParallelism(hw))
			return err == nil && got == oracle(xs, init)
		},
		gen.SliceOf(gen.Int16()),
		gen.Int16(),
		gen.IntRange(1, 16),
		gen.IntRange(0, 32),
	))

	properties.Property("checked verdict depends only on the exact total", prop.ForAll(
		func(xs []int8, init int8, minChunk, hw int) bool {
			exact := int(init)
			for _, x := range xs {
				exact += int(x) * 3 / 2
			}
			fits := exact >= math.MinInt8 && exact <= math.MaxInt8

			seqGot, seqOK := SequentialChecked(Slice[int8](xs), init)
			got, err := Reduce(Slice[int8](xs), init, WithChecked(true), WithMinChunk(minChunk), WithParallelism(hw))
			if !fits {
				return !seqOK && err != nil && got == init
			}
			return seqOK && err == nil && got == seqGot && int(got) == exact
		},
		gen.SliceOf(gen.Int8Range(-42, 42)),
		gen.Int8(),
		gen.IntRange(1, 8),
		gen.IntRange(0, 16),
	))

	properties.Property("empty sequence returns init", prop.ForAll(
		func(init int64) bool {
			got, err := Reduce(Slice[int64]{}, init)
			return err == nil && got == init
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
