package orchestration

import (
	"time"

	"github.com/agbru/paracc/internal/format"
)

// ProgressAggregator folds the progress updates of a benchmark into one
// overall fraction and ETA. Runs execute one after another, so it also
// tracks which run is active and how many have finished.
//
// It is not safe for concurrent use; one display goroutine owns it.
type ProgressAggregator struct {
	state    *format.ProgressWithETA
	finished []bool
	active   int
}

// NewProgressAggregator returns an aggregator for numRunners runs, or nil
// if numRunners <= 0.
func NewProgressAggregator(numRunners int) *ProgressAggregator {
	if numRunners <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:    format.NewProgressWithETA(numRunners),
		finished: make([]bool, numRunners),
	}
}

// AggregatedProgress is the view of the benchmark after one update.
type AggregatedProgress struct {
	RunnerIndex     int     // run that sent the update
	Value           float64 // that run's own fraction, 0.0 to 1.0
	AverageProgress float64 // fraction of the whole benchmark
	Completed       int     // runs that reported 1.0
	ETA             time.Duration
}

// Update applies one update. Indices outside [0, NumRunners) are ignored by
// the underlying state but still echoed back.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.RunnerIndex, update.Value)
	if i := update.RunnerIndex; i >= 0 && i < len(a.finished) {
		a.active = i
		if update.Value >= 1 {
			a.finished[i] = true
		}
	}
	return AggregatedProgress{
		RunnerIndex:     update.RunnerIndex,
		Value:           update.Value,
		AverageProgress: avg,
		Completed:       a.Completed(),
		ETA:             eta,
	}
}

// CalculateAverage returns the current overall fraction.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// Active returns the index of the run that reported last.
func (a *ProgressAggregator) Active() int { return a.active }

// Completed returns how many runs have reported completion.
func (a *ProgressAggregator) Completed() int {
	n := 0
	for _, done := range a.finished {
		if done {
			n++
		}
	}
	return n
}

// NumRunners returns the number of runs being tracked.
func (a *ProgressAggregator) NumRunners() int { return len(a.finished) }

// IsMultiRunner reports whether more than one run is tracked.
func (a *ProgressAggregator) IsMultiRunner() bool { return len(a.finished) > 1 }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
