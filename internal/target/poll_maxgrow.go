package target

import (
	"math"

	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
)

// pollMaxGrow drives TargetState::MaxGrow. It computes the grow threads
// needed to reach max money, then repeatedly attempts a paired grow+weaken
// co-spawn, halving the grow request on any failure, per spec §4.3.
func (b *Bundle) pollMaxGrow(ctx *schedcore.Context, deque *hacker.Deque, plat platform.Platform, params Params, now float64) {
	money := b.Host.MoneyAvailable(plat)
	maxMoney := b.Host.MaxMoney(plat)
	if maxMoney == money {
		b.State = State{Phase: PhaseHack}
		b.OnPoll(ctx, deque, plat, params, now)
		return
	}

	denominator := money
	if denominator < 1 {
		denominator = 1
	}
	factor := float64(maxMoney) / float64(denominator)
	hackTime := b.Host.HackTime(plat)
	cores := b.Host.CPUCores(plat)
	g := int(math.Ceil(plat.GrowthAnalyze(b.Host.Hostname(), factor, cores)))
	if g == 0 {
		b.State = State{Phase: PhaseHack}
		b.OnPoll(ctx, deque, plat, params, now)
		return
	}

	counterweightRatio := float64(params.WeakenSecurityEffect) / float64(params.GrowSecurityEffect)
	for g > 0 {
		w := int(math.Ceil(float64(g) / counterweightRatio))
		if w < 1 {
			w = 1
		}

		growIt := hacker.NewIterator(deque)
		growRunTime := now + (params.WeakenTimeRatio-params.GrowTimeRatio)*hackTime - params.GracePeriodMs
		growDescriptors, growOK := spawnHGW(growIt, plat, params, b.Host.Hostname(), platform.WorkerGrow, g, hacker.NoSplit, growRunTime, now)
		if !growOK {
			g /= 2
			continue
		}

		weakenIt := hacker.NewIterator(deque)
		weakenDescriptors, weakenOK := spawnHGW(weakenIt, plat, params, b.Host.Hostname(), platform.WorkerWeaken, w, hacker.PartialSplit, now, now)
		if !weakenOK {
			killAll(plat, growDescriptors)
			g /= 2
			continue
		}

		all := append(growDescriptors, weakenDescriptors...)
		b.prependRunning(now, all)
		ctx.AddEvent(schedcore.NewMemoryFreedEvent(now+4*hackTime+5, params.GracePeriodMs))
		ctx.AddEvent(schedcore.NewPollTargetEvent(now+4*hackTime+params.GracePeriodMs, params.GracePeriodMs, b.ID))
		return
	}

	b.onNoMemory("Grow")
}
