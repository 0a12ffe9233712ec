// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Print* functions write the banner sections shown before a run.
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/paracc/internal/format"
	"github.com/agbru/paracc/internal/orchestration"
	"github.com/agbru/paracc/internal/ui"
)

// FormatQuietResult returns the bare total, for scripts.
func FormatQuietResult(value int64) string {
	return strconv.FormatInt(value, 10)
}

// DisplayQuietResult writes the bare total followed by a newline.
func DisplayQuietResult(out io.Writer, value int64) {
	fmt.Fprintln(out, FormatQuietResult(value))
}

// DisplayResult prints the total of a successful run. With Details it also
// prints the run's workers, duration and throughput.
//
// Parameters:
//   - result: The run whose total is shown.
//   - opts: The presentation options.
//   - out: The destination writer.
func DisplayResult(result orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "init + Σ x*3/2 for x in [0, %s) with init=%d\n", format.FormatInt(int64(opts.N)), opts.Init)
	fmt.Fprintf(out, "Total: %s%s%s\n", ui.ColorBold()+ui.ColorGreen(), format.FormatInt(result.Value), ui.ColorReset())

	if opts.Verbose {
		fmt.Fprintf(out, "Raw value: %d\n", result.Value)
	}
	if opts.Details {
		fmt.Fprintf(out, "\n--- Run Details ---\n")
		fmt.Fprintf(out, "Runner:      %s%s%s\n", ui.ColorBlue(), result.Name, ui.ColorReset())
		fmt.Fprintf(out, "Workers:     %d\n", result.Workers)
		fmt.Fprintf(out, "Duration:    %s\n", format.FormatExecutionDuration(result.Duration))
		fmt.Fprintf(out, "Throughput:  %s\n", format.FormatThroughput(opts.N, result.Duration))
	}
}
