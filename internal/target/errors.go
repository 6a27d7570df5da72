package target

import "github.com/rohmanhakim/autohackgovernor/pkg/failure"

// SpawnError classifies a failed spawn_hgw attempt — spec §7's "spawn
// failure" error kind. It is always recoverable: the target simply waits
// for the next MemoryFreed event to retry.
type SpawnError struct {
	Hostname string
	Kind     string
}

func (e *SpawnError) Error() string {
	return "spawn failure: " + e.Kind + " on " + e.Hostname
}

func (e *SpawnError) Severity() failure.Severity { return failure.SeverityRecoverable }

var _ failure.ClassifiedError = (*SpawnError)(nil)
