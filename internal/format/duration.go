// Package format holds the pure formatting helpers shared by the report
// presenter and the log output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d with a unit suited to its magnitude:
// microseconds below a millisecond, milliseconds below a second, and the
// standard representation rounded to the millisecond above that.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
