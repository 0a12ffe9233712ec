package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/paracc/internal/config"
	"github.com/agbru/paracc/internal/format"
	"github.com/agbru/paracc/internal/orchestration"
	"github.com/agbru/paracc/internal/reduce"
	"github.com/agbru/paracc/internal/sysmon"
	"github.com/agbru/paracc/internal/ui"
)

// PrintExecutionConfig displays the benchmark configuration: sequence,
// timeout, detected concurrency and the worker count the plan will use.
//
// Parameters:
//   - cfg: The application configuration.
//   - plan: The partition plan of the parallel runner.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, plan reduce.Plan, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Reducing %s%s%s elements (init=%d) with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), format.FormatInt(int64(cfg.N)), ui.ColorReset(), cfg.Init,
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, GOMAXPROCS=%d, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), runtime.GOMAXPROCS(0),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Concurrency: %s%d%s hardware threads, %s%d%s workers (min chunk %d).\n",
		ui.ColorCyan(), plan.Hardware, ui.ColorReset(),
		ui.ColorGreen(), plan.Workers, ui.ColorReset(), plan.MinChunk)
	if cfg.Checked {
		fmt.Fprintf(out, "Overflow checking: %senabled%s.\n", ui.ColorYellow(), ui.ColorReset())
	}
}

// PrintPlan lists the blocks of plan, one line per worker.
func PrintPlan(plan reduce.Plan, out io.Writer) {
	fmt.Fprintf(out, "\n--- Partition Plan ---\n")
	if plan.Workers == 0 {
		fmt.Fprintf(out, "Empty sequence: no workers.\n")
		return
	}
	last := plan.Workers - 1
	for _, b := range plan.Blocks {
		where := "dispatched"
		if b.Index == last {
			where = "caller"
		}
		fmt.Fprintf(out, "  worker %2d: [%s, %s) %s elements (%s)\n",
			b.Index, format.FormatInt(int64(b.Start)), format.FormatInt(int64(b.End)),
			format.FormatInt(int64(b.Len())), where)
	}
}

// PrintSystemReport prints the processor model and current load.
func PrintSystemReport(host sysmon.Host, stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\n--- System ---\n")
	if host.CPUModel != "" {
		fmt.Fprintf(out, "CPU: %s\n", host.CPUModel)
	}
	fmt.Fprintf(out, "Cores: %d logical, %d physical\n", host.LogicalCores, host.PhysicalCores)
	fmt.Fprintf(out, "Load: CPU %.1f%%, memory %.1f%% of %s\n",
		stats.CPUPercent, stats.MemPercent, format.FormatBytes(stats.TotalMemory))
}

// PrintExecutionMode displays the execution mode (single runner vs comparison).
//
// Parameters:
//   - runners: The runners that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(runners []orchestration.Runner, out io.Writer) {
	var modeDesc string
	switch len(runners) {
	case 0:
		modeDesc = "nothing to run"
	case 1:
		modeDesc = fmt.Sprintf("Single run with the %s%s%s runner",
			ui.ColorGreen(), runners[0].Name(), ui.ColorReset())
	default:
		modeDesc = "Comparison of all runners, one after another"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
