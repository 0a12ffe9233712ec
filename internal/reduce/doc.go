// Package reduce implements a one-shot parallel fold over an indexable
// sequence of integers.
//
// A reduction plans a fixed partition of the index range, accumulates
// x*3/2 over each block on its own worker, waits for every worker and then
// folds the partial results into the initial value in block order. The
// caller's goroutine processes the last block itself, so a reduction with a
// single block never starts a goroutine.
//
// Per-block diagnostics are delivered to an injectable BlockObserver after
// the block's loop and before the join; the default observer does nothing.
//
// Accumulation wraps silently on overflow, following Go's integer
// semantics, unless the reducer runs in checked mode.
package reduce
