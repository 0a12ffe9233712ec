package reduce

import (
	"time"

	apperrors "github.com/agbru/paracc/internal/errors"
	"github.com/agbru/paracc/internal/parallel"
)

// Options tune how a reduction is planned and executed.
type Options struct {
	// MinChunk is the minimum-work-per-worker threshold. Zero means DefaultMinChunk.
	MinChunk int
	// Parallelism overrides the detected hardware parallelism when positive.
	Parallelism int
	// Checked makes the transform and every addition detect overflow and
	// fail with apperrors.OverflowError instead of wrapping.
	Checked bool
	// Spawner creates the task group for dispatched workers. Nil means
	// parallel.NewGroup.
	Spawner parallel.SpawnerFactory
}

// Option mutates Options.
type Option func(*Options)

// WithMinChunk sets the minimum number of elements per worker.
func WithMinChunk(n int) Option { return func(o *Options) { o.MinChunk = n } }

// WithParallelism overrides the detected hardware parallelism.
func WithParallelism(n int) Option { return func(o *Options) { o.Parallelism = n } }

// WithChecked enables or disables overflow detection.
func WithChecked(checked bool) Option { return func(o *Options) { o.Checked = checked } }

// WithSpawner replaces the task group used to dispatch workers.
func WithSpawner(f parallel.SpawnerFactory) Option { return func(o *Options) { o.Spawner = f } }

// Reducer folds sequences of E into an accumulator of type A. A Reducer
// holds no per-call state and may be used concurrently.
type Reducer[E, A Integer] struct {
	opts     Options
	observer BlockObserver[E, A]
}

// NewReducer returns a reducer configured by opts, with a no-op observer.
func NewReducer[E, A Integer](opts ...Option) *Reducer[E, A] {
	r := &Reducer[E, A]{observer: NoOpObserver[E, A]{}}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.MinChunk == 0 {
		r.opts.MinChunk = DefaultMinChunk
	}
	if r.opts.Spawner == nil {
		r.opts.Spawner = parallel.NewGroup
	}
	return r
}

// WithObserver returns a copy of r that reports finished blocks to obs.
func (r *Reducer[E, A]) WithObserver(obs BlockObserver[E, A]) *Reducer[E, A] {
	cp := *r
	if obs == nil {
		obs = NoOpObserver[E, A]{}
	}
	cp.observer = obs
	return &cp
}

// Options returns the effective options.
func (r *Reducer[E, A]) Options() Options { return r.opts }

// Plan returns the partition a reduction over length elements would use.
func (r *Reducer[E, A]) Plan(length int) Plan {
	hw := r.opts.Parallelism
	if hw <= 0 {
		hw = parallel.HardwareParallelism()
	}
	return NewPlan(length, r.opts.MinChunk, hw)
}

// Reduce returns init plus the sum of x*3/2 over every element of seq.
//
// The first Workers-1 blocks run on dispatched goroutines and the last on
// the caller; partial results are joined in block order only after every
// worker has finished. An empty sequence returns init without starting any
// worker. On error the returned value is init.
//
// In checked mode the result is rejected when an element's transform
// overflows E or A, or when the exact total does not fit in A. Partial sums
// are allowed to wrap, so the verdict does not depend on the plan.
func (r *Reducer[E, A]) Reduce(seq Sequence[E], init A) (A, error) {
	plan := r.Plan(seq.Len())
	if plan.Workers == 0 {
		return init, nil
	}

	partials := make([]partial[A], plan.Workers)
	last := plan.Workers - 1
	err := parallel.ForBlocks(plan.Blocks, r.opts.Spawner(last), func(b parallel.Block) error {
		return r.work(seq, b, b.Index == last, &partials[b.Index])
	})
	if err != nil {
		return init, err
	}
	return r.join(init, partials)
}

// partial is one worker's result slot. wraps is the net number of times its
// running sum wrapped around A, tracked in checked mode only.
type partial[A Integer] struct {
	sum   A
	wraps int
}

// work accumulates one block into slot and reports it.
func (r *Reducer[E, A]) work(seq Sequence[E], b parallel.Block, inline bool, slot *partial[A]) error {
	start := time.Now()
	if r.opts.Checked {
		sum, wraps, ok := accumulateChecked(seq, b, slot.sum)
		if !ok {
			return apperrors.OverflowError{Stage: "worker", Worker: b.Index}
		}
		slot.sum, slot.wraps = sum, wraps
	} else {
		slot.sum = accumulate(seq, b, slot.sum)
	}
	elapsed := time.Since(start)

	r.observer.ObserveBlock(BlockReport[E, A]{
		Worker:  b.Index,
		Block:   b,
		Partial: slot.sum,
		First:   seq.At(b.Start),
		Last:    seq.At(b.End - 1),
		Elapsed: elapsed,
		Inline:  inline,
	})
	return nil
}

// join folds the partials into init in block order. In checked mode the
// wraps of every worker and of the join itself must cancel out.
func (r *Reducer[E, A]) join(init A, partials []partial[A]) (A, error) {
	acc, net := init, 0
	for _, p := range partials {
		var carry int
		acc, carry = wrapAdd(acc, p.sum)
		net += carry + p.wraps
	}
	if r.opts.Checked && net != 0 {
		return init, apperrors.OverflowError{Stage: "join", Worker: -1}
	}
	return acc, nil
}

// Reduce is shorthand for NewReducer[E, A](opts...).Reduce(seq, init).
func Reduce[E, A Integer](seq Sequence[E], init A, opts ...Option) (A, error) {
	return NewReducer[E, A](opts...).Reduce(seq, init)
}
