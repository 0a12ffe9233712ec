package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a run duration with a unit scaled to its
// magnitude, so that short reductions remain comparable in a table:
// "850ns", "12.5µs", "3.42ms", "1.250s", and Duration.String rounded to the
// millisecond from one minute upwards.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
	return d.Round(time.Millisecond).String()
}
