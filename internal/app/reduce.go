package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/paracc/internal/cli"
	apperrors "github.com/agbru/paracc/internal/errors"
	"github.com/agbru/paracc/internal/logging"
	"github.com/agbru/paracc/internal/metrics"
	"github.com/agbru/paracc/internal/orchestration"
	"github.com/agbru/paracc/internal/reduce"
	"github.com/agbru/paracc/internal/sysmon"
)

// runReduce builds the sequence, runs the selected runners and reports.
func (a *Application) runReduce(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	runners := orchestration.GetRunnersToRun(cfg.Algo, a.Registry)
	if len(runners) == 0 {
		fmt.Fprintf(a.ErrWriter, "No runner matches %q.\n", cfg.Algo)
		return apperrors.ExitErrorConfig
	}

	plan := reduce.NewReducer[int64, int64](
		reduce.WithMinChunk(cfg.MinChunk),
		reduce.WithParallelism(cfg.Workers),
	).Plan(cfg.N)

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, plan, out)
		if cfg.Details {
			cli.PrintPlan(plan, out)
			cli.PrintSystemReport(sysmon.HostInfo(), sysmon.Sample(), out)
		}
		cli.PrintExecutionMode(runners, out)
	}

	job := orchestration.Job{
		Seq:      a.buildSequence(),
		Init:     cfg.Init,
		MinChunk: cfg.MinChunk,
		Workers:  cfg.Workers,
		Checked:  cfg.Checked,
		Timeout:  cfg.Timeout,
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if cfg.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	var results []orchestration.RunResult
	usage := metrics.NewMemoryCollector().Measure(func() {
		results = orchestration.ExecuteRuns(ctx, runners, job, progressReporter, a.Metrics, progressOut)
	})

	for _, r := range results {
		a.Logger.Debug("run finished",
			logging.String("runner", r.Name),
			logging.Int("workers", r.Workers),
			logging.Duration("duration", r.Duration),
			logging.Err(r.Err),
		)
	}

	presenter := cli.CLIResultPresenter{N: cfg.N}
	opts := orchestration.PresentationOptions{N: cfg.N, Init: cfg.Init, Verbose: cfg.Verbose, Details: cfg.Details}
	if cfg.Quiet {
		return a.reportQuiet(results, opts, presenter, out)
	}

	code := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
	if cfg.Details {
		cli.DisplayMemoryStats(usage, out)
	}
	return code
}

// buildSequence returns the iota sequence 0..N-1, copied into memory when
// Materialize is set.
func (a *Application) buildSequence() reduce.Sequence[int64] {
	seq := reduce.Iota[int64]{N: a.Config.N}
	if !a.Config.Materialize {
		return seq
	}
	a.Logger.Info("materializing sequence", logging.Int("elements", seq.Len()))
	return reduce.Materialize[int64](seq)
}

// reportQuiet prints only the total on success. Failures are reported on
// the error writer so standard output stays parseable.
func (a *Application) reportQuiet(results []orchestration.RunResult, opts orchestration.PresentationOptions, presenter cli.CLIResultPresenter, out io.Writer) int {
	code := orchestration.AnalyzeComparisonResults(results, opts, presenter, quietErrors{w: a.ErrWriter}, io.Discard)
	switch code {
	case apperrors.ExitSuccess:
		// Results are sorted successes first.
		cli.DisplayQuietResult(out, results[0].Value)
	case apperrors.ExitErrorMismatch:
		fmt.Fprintln(a.ErrWriter, "runners produced different totals")
	}
	return code
}

// quietErrors routes failure messages to the error writer in quiet mode.
type quietErrors struct{ w io.Writer }

func (q quietErrors) HandleError(err error, duration time.Duration, _ io.Writer) int {
	return apperrors.HandleReductionError(err, duration, q.w)
}
