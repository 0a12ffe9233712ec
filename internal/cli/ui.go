//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate is how often the progress line is redrawn while no
	// worker reports.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in cells.
	ProgressBarWidth = 40
)

// Spinner is the terminal animation DisplayProgress drives. It exists so
// tests can substitute a mock for the real terminal spinner.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix replaces the text drawn after the animation frame. It may
	// be called while the spinner is running.
	UpdateSuffix(suffix string)
}

type terminalSpinner struct {
	*spinner.Spinner
}

func (t terminalSpinner) UpdateSuffix(suffix string) {
	t.Lock()
	defer t.Unlock()
	t.Suffix = suffix
}

// newSpinner is replaced in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	options = append([]spinner.Option{spinner.WithHiddenCursor(true)}, options...)
	return terminalSpinner{spinner.New(spinner.CharSets[14], ProgressRefreshRate, options...)}
}
