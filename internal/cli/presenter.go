package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	apperrors "github.com/agbru/paracc/internal/errors"
	"github.com/agbru/paracc/internal/format"
	"github.com/agbru/paracc/internal/metrics"
	"github.com/agbru/paracc/internal/orchestration"
	"github.com/agbru/paracc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numRunners int, out io.Writer) {
	DisplayProgress(wg, progressChan, numRunners, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It prints the comparison table and the final total for the terminal.
type CLIResultPresenter struct {
	// N is the number of elements reduced, used for throughput.
	N int
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary as a styled table
// with runner, workers, duration, throughput, speedup over the sequential
// baseline and status.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	var baseline time.Duration
	for _, res := range results {
		if res.Name == orchestration.SequentialName && res.Err == nil {
			baseline = res.Duration
		}
	}

	rows := make([][]string, 0, len(results))
	statuses := make([]ui.RowStatus, 0, len(results))
	for _, res := range results {
		status, rowStatus := "OK", ui.RowSuccess
		if res.Err != nil {
			status, rowStatus = fmt.Sprintf("Failure (%v)", res.Err), ui.RowFailure
		}
		rows = append(rows, []string{
			res.Name,
			strconv.Itoa(res.Workers),
			FormatDuration(res.Duration),
			format.FormatThroughput(p.N, res.Duration),
			speedup(baseline, res),
			status,
		})
		statuses = append(statuses, rowStatus)
	}
	fmt.Fprintln(out, ui.RenderTable(
		[]string{"Runner", "Workers", "Duration", "Throughput", "Speedup", "Status"},
		rows, statuses))
}

// speedup returns baseline/duration, or "-" when either is unknown.
func speedup(baseline time.Duration, res orchestration.RunResult) string {
	if baseline <= 0 || res.Duration <= 0 || res.Err != nil {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(baseline)/float64(res.Duration))
}

// FormatDuration formats a run duration, showing "< 1µs" for zero.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// PresentResult displays the final total using DisplayResult.
func (CLIResultPresenter) PresentResult(result orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// HandleError handles run errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleReductionError(err, duration, out)
}

// DisplayMemoryStats shows the runtime memory deltas of the benchmark.
func DisplayMemoryStats(stats metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(stats.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(stats.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", stats.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(stats.PauseTotalNs)/1e6)
}
