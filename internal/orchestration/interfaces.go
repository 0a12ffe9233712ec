package orchestration

import (
	"io"
	"sync"
	"time"
)

// RunResult encapsulates the outcome of a single benchmark run.
// It serves as the shared domain type between orchestration and presentation layers.
type RunResult struct {
	// Name is the identifier of the runner (e.g., "parallel").
	Name string
	// Value is the reduced total. It is meaningless if Err is set.
	Value int64
	// Workers is the number of workers the run used.
	Workers int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ProgressUpdate carries the completed fraction of one run.
type ProgressUpdate struct {
	// RunnerIndex is the position of the run in the executed list.
	RunnerIndex int
	// Value is the completed fraction, 0.0 to 1.0.
	Value float64
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	N       int
	Init    int64
	Verbose bool
	Details bool
}

// ProgressReporter defines the interface for displaying run progress.
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the orchestration layer coordinates the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from runners.
	//   - numRunners: The number of runs being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRunners int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRunners int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRunners int, out io.Writer) {
	f(wg, progressChan, numRunners, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting run results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentResult displays the final reduced value.
	PresentResult(result RunResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// RunRecorder receives the outcome of every run, typically for metrics.
type RunRecorder interface {
	RecordRun(runner string, elements, workers int, d time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) RecordRun(string, int, int, time.Duration, error) {}
