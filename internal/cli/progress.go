package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/paracc/internal/format"
	"github.com/agbru/paracc/internal/orchestration"
)

// DisplayProgress shows a spinner with an aggregated progress bar and ETA
// until progressChan is closed, then prints the final bar on its own line.
//
// Parameters:
//   - wg: Done is called when the display has finished.
//   - progressChan: The channel of progress updates; closed by the producer.
//   - numRunners: The number of runs being tracked.
//   - out: The writer for the spinner and the final line.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numRunners int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numRunners)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	render := func(avg float64, eta time.Duration) string {
		return fmt.Sprintf(" %s %s", progressLabel(agg), format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth))
	}

	s.UpdateSuffix(render(0, 0))
	s.Start()
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				fmt.Fprintf(out, "%s\n", render(agg.CalculateAverage(), agg.GetETA()))
				return
			}
			ap := agg.Update(update)
			s.UpdateSuffix(render(ap.AverageProgress, ap.ETA))
		case <-ticker.C:
			s.UpdateSuffix(render(agg.CalculateAverage(), agg.GetETA()))
		}
	}
}

// progressLabel names the phase shown before the bar: "Reducing" for a
// single run, "Run k/n" while comparing.
func progressLabel(agg *orchestration.ProgressAggregator) string {
	if !agg.IsMultiRunner() {
		return "Reducing"
	}
	k := min(agg.Completed()+1, agg.NumRunners())
	return fmt.Sprintf("Run %d/%d", k, agg.NumRunners())
}
