package target

import (
	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
)

// onNoMemory records that this bundle failed to acquire hacker capacity
// and is waiting for a MemoryFreed event to retry. kind labels which
// worker the failed attempt was for, surfaced via LastError (a
// pkg/failure.ClassifiedError) for the governor's diagnostics sink.
func (b *Bundle) onNoMemory(kind string) {
	b.WaitingForMemory = true
	b.LastError = &SpawnError{Hostname: b.Host.Hostname(), Kind: kind}
}

// OnMemoryFreed re-attempts on_poll if this bundle was waiting for memory,
// per spec §4.3. The governor's MemoryFreed handler stops sweeping
// targets_by_score as soon as one returns NoMemory.
func (b *Bundle) OnMemoryFreed(ctx *schedcore.Context, deque *hacker.Deque, plat platform.Platform, params Params, now float64) MemoryOutcome {
	if !b.WaitingForMemory {
		return NotRequired
	}
	b.WaitingForMemory = false
	b.OnPoll(ctx, deque, plat, params, now)
	if b.WaitingForMemory {
		return NoMemory
	}
	return MemoryAllocated
}
