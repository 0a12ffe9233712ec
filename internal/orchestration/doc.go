// Package orchestration runs the benchmark: it executes the selected
// reduction runners one after another over the same sequence, traces each
// run, streams progress to a ProgressReporter and compares the totals. It
// decouples business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
