package target

import (
	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
)

// pollTotalWeaken drives TargetState::TotalWeaken(w). With w == 0 it
// transitions straight to MaxGrow and re-polls in the same dispatch
// (spec §4.3's tail call); otherwise it spawns up to w weaken threads,
// split across whatever hackers are available, schedules a MemoryFreed
// event for when the batch completes, and schedules the next poll two
// grace periods later.
func (b *Bundle) pollTotalWeaken(ctx *schedcore.Context, deque *hacker.Deque, plat platform.Platform, params Params, now float64) {
	if b.State.WeakensLeft <= 0 {
		b.State = State{Phase: PhaseMaxGrow}
		b.OnPoll(ctx, deque, plat, params, now)
		return
	}

	it := hacker.NewIterator(deque)
	hackTime := b.Host.HackTime(plat)

	descriptors, ok := spawnHGW(it, plat, params, b.Host.Hostname(), platform.WorkerWeaken, b.State.WeakensLeft, hacker.PartialSplit, now, now)
	if !ok {
		b.onNoMemory("Weaken")
		return
	}

	spawnedThreads := 0
	for _, d := range descriptors {
		spawnedThreads += d.Threads
	}
	b.prependRunning(now, descriptors)
	b.State.WeakensLeft -= spawnedThreads

	ctx.AddEvent(schedcore.NewMemoryFreedEvent(now+4*hackTime+5, params.GracePeriodMs))
	ctx.AddEvent(schedcore.NewPollTargetEvent(now+2*params.GracePeriodMs, params.GracePeriodMs, b.ID))
}
