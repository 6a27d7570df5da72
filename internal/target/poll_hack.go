package target

import (
	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
)

// pollHack drives TargetState::Hack: a four-process batch (hack, weaken1,
// grow, weaken2) staggered so their completions land 50ms apart in that
// order, per spec §4.3.
func (b *Bundle) pollHack(ctx *schedcore.Context, deque *hacker.Deque, plat platform.Platform, params Params, now float64) {
	hackTime := b.Host.HackTime(plat)
	grace := params.GracePeriodMs

	hackRunTime := now + (params.WeakenTimeRatio-1)*hackTime - grace
	weaken1RunTime := now
	growRunTime := now + (params.WeakenTimeRatio-params.GrowTimeRatio)*hackTime + grace
	weaken2RunTime := now + 2*grace

	var all []RunningDescriptor

	hackDescriptors, ok := spawnHGW(hacker.NewIterator(deque), plat, params, b.Host.Hostname(), platform.WorkerHack, 1, hacker.PartialSplit, hackRunTime, now)
	if !ok {
		b.onNoMemory("Hack")
		return
	}
	all = append(all, hackDescriptors...)

	weaken1Descriptors, ok := spawnHGW(hacker.NewIterator(deque), plat, params, b.Host.Hostname(), platform.WorkerWeaken, 1, hacker.PartialSplit, weaken1RunTime, now)
	if !ok {
		killAll(plat, all)
		b.onNoMemory("Weaken1")
		return
	}
	all = append(all, weaken1Descriptors...)

	growDescriptors, ok := spawnHGW(hacker.NewIterator(deque), plat, params, b.Host.Hostname(), platform.WorkerGrow, 1, hacker.PartialSplit, growRunTime, now)
	if !ok {
		killAll(plat, all)
		b.onNoMemory("Grow")
		return
	}
	all = append(all, growDescriptors...)

	weaken2Descriptors, ok := spawnHGW(hacker.NewIterator(deque), plat, params, b.Host.Hostname(), platform.WorkerWeaken, 1, hacker.PartialSplit, weaken2RunTime, now)
	if !ok {
		killAll(plat, all)
		b.onNoMemory("Weaken2")
		return
	}
	all = append(all, weaken2Descriptors...)

	b.prependRunning(now, all)
	ctx.AddEvent(schedcore.NewPollTargetEvent(now+4*hackTime+grace, grace, b.ID))
	ctx.AddEvent(schedcore.NewMemoryFreedEvent(now+4*hackTime+5+2*grace, grace))
}
