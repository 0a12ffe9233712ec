package reduce

import "github.com/agbru/paracc/internal/parallel"

// Sequential computes init + Σ x*3/2 over seq on the calling goroutine. It
// is the single-threaded baseline the parallel reduction is measured
// against and always agrees with it.
func Sequential[E, A Integer](seq Sequence[E], init A) A {
	return accumulate(seq, parallel.Block{End: seq.Len()}, init)
}

// SequentialChecked is Sequential with overflow detection. It reports false
// if a transform or conversion overflowed, or if init + Σ x*3/2 does not fit
// in A. Intermediate sums may leave A's range as long as the total returns
// to it, which makes the verdict the same as Reduce's for every partition.
func SequentialChecked[E, A Integer](seq Sequence[E], init A) (A, bool) {
	acc, wraps, ok := accumulateChecked(seq, parallel.Block{End: seq.Len()}, init)
	if !ok || wraps != 0 {
		return init, false
	}
	return acc, true
}
