// Package diagnostics renders the governor's per-tick target table and
// records a small observational event log. Diagnostics are purely
// observational: nothing in this package may influence control flow, only
// report on it — the same invariant the teacher states for its own
// metadata recorder.
package diagnostics

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Row is one line of the per-tick target table.
type Row struct {
	Hostname         string
	State            string
	WaitingForMemory bool
	LastPollTime     float64
	MoneyPercent     float64
	SecurityDelta    float64
}

// Sink receives diagnostic output. RecordEvent/RecordSpawnFailure/
// RecordMemoryFreed are cheap structured hooks a test can assert against;
// WriteTable renders the full target table.
type Sink interface {
	WriteTable(rows []Row)
	RecordEvent(msg string)
	RecordSpawnFailure(hostname string, kind string)
	RecordMemoryFreed(hostname string, outcome string)
}

// TabwriterSink is the default Sink, grounded on the teacher's own choice
// of stdlib formatting for its CLI's configuration dump — no ecosystem
// table-rendering library appears anywhere in the retrieved corpus.
type TabwriterSink struct {
	out io.Writer
}

func NewTabwriterSink(out io.Writer) *TabwriterSink {
	return &TabwriterSink{out: out}
}

func (s *TabwriterSink) WriteTable(rows []Row) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HOSTNAME\tSTATE\tW\tLAST POLL\tMONEY%\tSEC DELTA")
	for _, r := range rows {
		marker := ""
		if r.WaitingForMemory {
			marker = "W"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.1f%%\t%.3f\n",
			r.Hostname, r.State, marker, r.LastPollTime, r.MoneyPercent*100, r.SecurityDelta)
	}
	w.Flush()
}

func (s *TabwriterSink) RecordEvent(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *TabwriterSink) RecordSpawnFailure(hostname string, kind string) {
	fmt.Fprintf(s.out, "spawn failure: %s kind=%s\n", hostname, kind)
}

func (s *TabwriterSink) RecordMemoryFreed(hostname string, outcome string) {
	fmt.Fprintf(s.out, "memory freed: %s outcome=%s\n", hostname, outcome)
}

// NullSink discards everything; used in tests that only care about state
// transitions, not output.
type NullSink struct{}

func (NullSink) WriteTable(rows []Row)                             {}
func (NullSink) RecordEvent(msg string)                            {}
func (NullSink) RecordSpawnFailure(hostname string, kind string)   {}
func (NullSink) RecordMemoryFreed(hostname string, outcome string) {}

// RecordingSink buffers records for test assertions.
type RecordingSink struct {
	Tables         [][]Row
	Events         []string
	SpawnFailures  []string
	MemoryFreedLog []string
}

func (r *RecordingSink) WriteTable(rows []Row) {
	r.Tables = append(r.Tables, rows)
}

func (r *RecordingSink) RecordEvent(msg string) {
	r.Events = append(r.Events, msg)
}

func (r *RecordingSink) RecordSpawnFailure(hostname string, kind string) {
	r.SpawnFailures = append(r.SpawnFailures, hostname+":"+kind)
}

func (r *RecordingSink) RecordMemoryFreed(hostname string, outcome string) {
	r.MemoryFreedLog = append(r.MemoryFreedLog, hostname+":"+outcome)
}
