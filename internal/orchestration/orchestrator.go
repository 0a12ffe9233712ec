package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/paracc/internal/errors"
)

const tracerName = "github.com/agbru/paracc/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropping updates when
// the UI is slow to consume them.
const ProgressBufferMultiplier = 64

// progressSink forwards updates to the reporter channel. Sends never block
// and are ignored once the sink is closed, because a run abandoned on
// timeout keeps reducing in the background.
type progressSink struct {
	mu     sync.Mutex
	closed bool
	ch     chan ProgressUpdate
}

func (s *progressSink) send(u ProgressUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- u:
	default:
	}
}

func (s *progressSink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	close(s.ch)
}

// ExecuteRuns runs each runner over job, one at a time so that their
// timings do not interfere, and returns one result per runner in input
// order.
//
// A reduction cannot be interrupted once started. When ctx ends during a
// run, that run is reported with the context error and left to finish in
// the background; the remaining runners are not started.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - runners: The runners to execute.
//   - job: The shared input.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - recorder: Receives every outcome; nil disables recording.
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []RunResult: A slice containing the result of each run.
func ExecuteRuns(ctx context.Context, runners []Runner, job Job, progressReporter ProgressReporter, recorder RunRecorder, out io.Writer) []RunResult {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	tracer := otel.Tracer(tracerName)
	results := make([]RunResult, len(runners))
	sink := &progressSink{ch: make(chan ProgressUpdate, max(len(runners), 1)*ProgressBufferMultiplier)}

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, sink.ch, len(runners), out)

	var g errgroup.Group
	g.SetLimit(1)
	for i, runner := range runners {
		g.Go(func() error {
			results[i] = executeRun(ctx, tracer, runner, i, job, sink)
			r := results[i]
			recorder.RecordRun(r.Name, job.Seq.Len(), r.Workers, r.Duration, r.Err)
			return nil
		})
	}

	_ = g.Wait()
	sink.close()
	displayWg.Wait()

	return results
}

// executeRun runs one runner inside a span and waits for it or for ctx.
func executeRun(ctx context.Context, tracer trace.Tracer, runner Runner, index int, job Job, sink *progressSink) RunResult {
	ctx, span := tracer.Start(ctx, "paracc.run", trace.WithAttributes(
		attribute.String("paracc.runner", runner.Name()),
		attribute.Int("paracc.elements", job.Seq.Len()),
		attribute.Bool("paracc.checked", job.Checked),
	))
	defer span.End()

	result := RunResult{Name: runner.Name()}
	if err := ctx.Err(); err != nil {
		result.Err = apperrors.ReductionError{Runner: runner.Name(), Cause: abortCause(runner, job, err)}
		span.SetStatus(codes.Error, "not started")
		return result
	}

	type outcome struct {
		Outcome
		err      error
		duration time.Duration
	}
	done := make(chan outcome, 1)
	report := func(fraction float64) {
		sink.send(ProgressUpdate{RunnerIndex: index, Value: fraction})
	}

	start := time.Now()
	go func() {
		o, err := runner.Run(ctx, job, report)
		done <- outcome{Outcome: o, err: err, duration: time.Since(start)}
	}()

	select {
	case o := <-done:
		result.Value, result.Workers, result.Duration = o.Value, o.Workers, o.duration
		if o.err != nil {
			result.Err = apperrors.ReductionError{Runner: runner.Name(), Cause: o.err}
		}
	case <-ctx.Done():
		result.Duration = time.Since(start)
		result.Err = apperrors.ReductionError{Runner: runner.Name(), Cause: abortCause(runner, job, ctx.Err())}
	}

	span.SetAttributes(
		attribute.Int("paracc.workers", result.Workers),
		attribute.Int64("paracc.duration_ns", result.Duration.Nanoseconds()),
	)
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return result
}

// abortCause turns an expired deadline into a TimeoutError naming the runner
// and job.Timeout. Other context errors are returned unchanged.
func abortCause(runner Runner, job Job, err error) error {
	if job.Timeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: runner.Name(), Limit: job.Timeout}
	}
	return err
}

// AnalyzeComparisonResults processes the results of the runs and prints a
// summary report.
//
// It sorts the results by execution time, checks that every successful run
// produced the same total, and displays a comparative table. When some but
// not all runners failed, the status line lists the failures and the exit
// code remains ExitSuccess.
//
// Parameters:
//   - results: The slice of run results to analyze.
//   - opts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the first failure to an exit code when no run succeeded.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []RunResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *RunResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No runner could complete the reduction.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Value != firstValidResult.Value {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The runners produced different totals (%s: %d, %s: %d).\n",
				firstValidResult.Name, firstValidResult.Value, res.Name, res.Value)
			return apperrors.ExitErrorMismatch
		}
	}

	if failed := len(results) - successCount; failed > 0 {
		names := make([]string, 0, failed)
		for _, res := range results {
			if res.Err != nil {
				names = append(names, fmt.Sprintf("%s (%v)", res.Name, res.Err))
			}
		}
		fmt.Fprintf(out, "\nGlobal Status: Partial success. %d of %d runners failed: %s.\n",
			failed, len(results), strings.Join(names, ", "))
	} else {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
