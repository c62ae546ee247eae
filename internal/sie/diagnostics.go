package sie

import "fmt"

// diagnostics accumulates the per-tag record counters and the ordered,
// human-readable parse log. It replaces ad hoc logging inside the parse
// loop: nothing here touches the process logger, the caller gets the whole
// log back inside Metadata.
type diagnostics struct {
	counts map[string]int
	lines  []string
}

func newDiagnostics() *diagnostics {
	return &diagnostics{counts: make(map[string]int)}
}

// count bumps the counter for a record tag such as "#VER".
func (d *diagnostics) count(tag string) {
	d.counts[tag]++
}

// logf appends one line to the parse log.
func (d *diagnostics) logf(format string, args ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

// details returns the log in append order, never nil.
func (d *diagnostics) details() []string {
	if d.lines == nil {
		return []string{}
	}
	return d.lines
}
