package governor

import (
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
	"github.com/rohmanhakim/autohackgovernor/internal/target"
)

const generalPollIntervalMs = 1000
const initialPollDelayMs = 1000

// InitialRun records the player's current skill, runs the first discovery
// pass, and seeds one PollTarget per target plus a single GeneralPoll —
// spec §4.4 "Initialization" and "Initial events".
func (g *AutoHackGovernor) InitialRun(ctx *schedcore.Context) {
	g.cachedHackingLevel = g.plat.GetPlayerHackingLevel()
	g.regenerateHackersAndTargets()

	now := g.plat.Now()
	for _, id := range g.targetsByScore {
		ctx.AddEvent(schedcore.NewPollTargetEvent(now+initialPollDelayMs, g.params.GracePeriodMs, id))
	}
	ctx.AddEvent(schedcore.NewGeneralPollEvent(now+initialPollDelayMs, g.params.GracePeriodMs))
}

// OnEvent dispatches a normally-delivered event. OnEventFail is identical
// per spec §4.4 — the core is adaptive and tolerates late delivery.
func (g *AutoHackGovernor) OnEvent(ctx *schedcore.Context, e schedcore.Event) {
	switch e.Kind {
	case schedcore.KindPollTarget:
		g.dispatchPollTarget(ctx, e)
	case schedcore.KindMemoryFreed:
		g.dispatchMemoryFreed(ctx, e)
	case schedcore.KindGeneralPoll:
		g.dispatchGeneralPoll(ctx, e)
	}
}

func (g *AutoHackGovernor) OnEventFail(ctx *schedcore.Context, e schedcore.Event) {
	g.OnEvent(ctx, e)
}

// dispatchPollTarget implements the take-mutate-reinsert invariant: the
// bundle is removed from targetsByName, mutated via OnPoll, and reinserted
// so no second reference to it is ever live concurrently.
func (g *AutoHackGovernor) dispatchPollTarget(ctx *schedcore.Context, e schedcore.Event) {
	bundle, ok := g.targetsByName[e.TargetID]
	if !ok {
		return
	}
	delete(g.targetsByName, e.TargetID)
	bundle.OnPoll(ctx, g.hackers, g.plat, g.params, g.plat.Now())
	if bundle.LastError != nil && g.sink != nil {
		g.sink.RecordSpawnFailure(bundle.Host.Hostname(), bundle.LastError.Kind)
	}
	g.targetsByName[e.TargetID] = bundle
}

// dispatchMemoryFreed sweeps targetsByScore highest-priority first,
// stopping at the first NoMemory outcome — a fair-share allocator.
func (g *AutoHackGovernor) dispatchMemoryFreed(ctx *schedcore.Context, e schedcore.Event) {
	for i := len(g.targetsByScore) - 1; i >= 0; i-- {
		id := g.targetsByScore[i]
		bundle, ok := g.targetsByName[id]
		if !ok {
			continue
		}
		delete(g.targetsByName, id)
		outcome := bundle.OnMemoryFreed(ctx, g.hackers, g.plat, g.params, g.plat.Now())
		g.targetsByName[id] = bundle

		if g.sink != nil {
			g.sink.RecordMemoryFreed(bundle.Host.Hostname(), outcomeLabel(outcome))
		}
		if outcome == target.NoMemory {
			break
		}
	}
}

func (g *AutoHackGovernor) dispatchGeneralPoll(ctx *schedcore.Context, e schedcore.Event) {
	g.doLevelUpCheck()
	g.refreshDiagnostics()

	now := g.plat.Now()
	ctx.AddEvent(schedcore.NewGeneralPollEvent(now+generalPollIntervalMs, g.params.GracePeriodMs))
}

// doLevelUpCheck implements spec §4.4's level-up check: a skill increase
// triggers rediscovery and resets every non-TotalWeaken target.
func (g *AutoHackGovernor) doLevelUpCheck() {
	current := g.plat.GetPlayerHackingLevel()
	if current <= g.cachedHackingLevel {
		return
	}
	g.cachedHackingLevel = current
	g.regenerateHackersAndTargets()

	for _, bundle := range g.targetsByName {
		if bundle.State.Phase != target.PhaseTotalWeaken {
			bundle.ResetToTotalWeaken(g.plat, g.params)
		}
	}
}

func outcomeLabel(outcome target.MemoryOutcome) string {
	switch outcome {
	case target.NotRequired:
		return "NotRequired"
	case target.NoMemory:
		return "NoMemory"
	case target.MemoryAllocated:
		return "MemoryAllocated"
	default:
		return "Unknown"
	}
}
