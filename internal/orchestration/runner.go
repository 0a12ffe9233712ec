package orchestration

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	apperrors "github.com/agbru/paracc/internal/errors"
	"github.com/agbru/paracc/internal/logging"
	"github.com/agbru/paracc/internal/metrics"
	"github.com/agbru/paracc/internal/parallel"
	"github.com/agbru/paracc/internal/reduce"
)

// Runner names.
const (
	ParallelName   = "parallel"
	SequentialName = "sequential"
)

// Job is one benchmark input shared by every runner.
type Job struct {
	// Seq is the sequence to reduce.
	Seq reduce.Sequence[int64]
	// Init is the initial accumulator value.
	Init int64
	// MinChunk and Workers tune the partition plan; zero selects defaults.
	MinChunk int
	Workers  int
	// Checked enables overflow detection.
	Checked bool
	// Timeout is the limit behind the caller's deadline. When set, a run
	// cut off by that deadline fails with an apperrors.TimeoutError.
	Timeout time.Duration
}

// Outcome is what a runner produces.
type Outcome struct {
	Value   int64
	Workers int
}

// ProgressFunc receives the completed fraction of a run, 0.0 to 1.0.
type ProgressFunc func(fraction float64)

// Runner executes one reduction strategy over a job.
type Runner interface {
	Name() string
	Run(ctx context.Context, job Job, report ProgressFunc) (Outcome, error)
}

// Dependencies are the shared services injected into the default runners.
// Nil fields are skipped.
type Dependencies struct {
	Logger  logging.Logger
	Metrics *metrics.Collector
	// Spawner overrides the parallel runner's task group.
	Spawner parallel.SpawnerFactory
}

// ParallelRunner reduces the job with reduce.Reducer.
type ParallelRunner struct {
	deps Dependencies
}

// NewParallelRunner creates the parallel runner.
func NewParallelRunner(deps Dependencies) *ParallelRunner {
	return &ParallelRunner{deps: deps}
}

// Name returns "parallel".
func (*ParallelRunner) Name() string { return ParallelName }

// Run reduces job.Seq across the planned workers. Progress advances as each
// block finishes.
func (p *ParallelRunner) Run(ctx context.Context, job Job, report ProgressFunc) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	opts := []reduce.Option{
		reduce.WithMinChunk(job.MinChunk),
		reduce.WithParallelism(job.Workers),
		reduce.WithChecked(job.Checked),
	}
	if p.deps.Spawner != nil {
		opts = append(opts, reduce.WithSpawner(p.deps.Spawner))
	}
	r := reduce.NewReducer[int64, int64](opts...)
	plan := r.Plan(job.Seq.Len())

	observers := reduce.Observers[int64, int64]{progressObserver(plan.Length, report)}
	if p.deps.Logger != nil {
		observers = append(observers, reduce.NewLoggingObserver[int64, int64](p.deps.Logger))
	}
	if p.deps.Metrics != nil {
		observers = append(observers, metrics.BlockObserver[int64, int64](p.deps.Metrics, ParallelName))
	}

	value, err := r.WithObserver(observers).Reduce(job.Seq, job.Init)
	if err != nil {
		return Outcome{Workers: plan.Workers}, err
	}
	if plan.Workers == 0 && report != nil {
		// No block ran, so no observer reported.
		report(1)
	}
	return Outcome{Value: value, Workers: plan.Workers}, nil
}

// progressObserver converts finished blocks into a completed fraction.
func progressObserver(total int, report ProgressFunc) reduce.BlockObserver[int64, int64] {
	if report == nil || total <= 0 {
		return nil
	}
	var done atomic.Int64
	return reduce.ObserverFunc[int64, int64](func(r reduce.BlockReport[int64, int64]) {
		n := done.Add(int64(r.Block.Len()))
		report(float64(n) / float64(total))
	})
}

// SequentialRunner folds the job on the calling goroutine.
type SequentialRunner struct{}

// NewSequentialRunner creates the single-threaded baseline runner.
func NewSequentialRunner() *SequentialRunner { return &SequentialRunner{} }

// Name returns "sequential".
func (*SequentialRunner) Name() string { return SequentialName }

// Run folds job.Seq with reduce.Sequential.
func (*SequentialRunner) Run(ctx context.Context, job Job, report ProgressFunc) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	var value int64
	if job.Checked {
		var ok bool
		if value, ok = reduce.SequentialChecked(job.Seq, job.Init); !ok {
			return Outcome{Workers: 1}, apperrors.OverflowError{Stage: "worker", Worker: 0}
		}
	} else {
		value = reduce.Sequential(job.Seq, job.Init)
	}
	if report != nil {
		report(1)
	}
	return Outcome{Value: value, Workers: 1}, nil
}

// Registry maps runner names to runners.
type Registry struct {
	runners map[string]Runner
}

// NewRegistry creates a registry holding runners.
func NewRegistry(runners ...Runner) *Registry {
	r := &Registry{runners: make(map[string]Runner, len(runners))}
	for _, runner := range runners {
		r.Register(runner)
	}
	return r
}

// NewDefaultRegistry registers the parallel and sequential runners.
func NewDefaultRegistry(deps Dependencies) *Registry {
	return NewRegistry(NewParallelRunner(deps), NewSequentialRunner())
}

// Register adds or replaces a runner under its name.
func (r *Registry) Register(runner Runner) {
	r.runners[runner.Name()] = runner
}

// Get returns the runner registered under name.
func (r *Registry) Get(name string) (Runner, error) {
	runner, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("unknown runner %q", name)
	}
	return runner, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetRunnersToRun resolves an -algo value: "all" selects every registered
// runner in sorted order, anything else the named runner. Unknown names
// yield nil.
func GetRunnersToRun(algo string, registry *Registry) []Runner {
	if algo == "all" {
		names := registry.List()
		runners := make([]Runner, 0, len(names))
		for _, name := range names {
			if runner, err := registry.Get(name); err == nil {
				runners = append(runners, runner)
			}
		}
		return runners
	}
	if runner, err := registry.Get(algo); err == nil {
		return []Runner{runner}
	}
	return nil
}
