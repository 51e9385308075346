// Public domain.

package eop

import (
	"fmt"
	"log"
)

// Diagnostics collects warnings that do not stop a computation, such as a
// date outside the coverage of a table.
type Diagnostics struct {
	// Logger, if not nil, receives each warning as it is recorded.
	Logger   *log.Logger
	warnings []string
}

// MaxWarnings is the number of warnings kept.  Older ones are dropped.
const MaxWarnings = 100

// Warn records a warning.
func (d *Diagnostics) Warn(format string, a ...interface{}) {
	w := fmt.Sprintf(format, a...)
	if len(d.warnings) == MaxWarnings {
		copy(d.warnings, d.warnings[1:])
		d.warnings = d.warnings[:MaxWarnings-1]
	}
	d.warnings = append(d.warnings, w)
	if d.Logger != nil {
		d.Logger.Print(w)
	}
}

// Warnings returns the warnings recorded since the last Clear.
func (d *Diagnostics) Warnings() []string { return d.warnings }

// Clear discards recorded warnings.
func (d *Diagnostics) Clear() { d.warnings = nil }
