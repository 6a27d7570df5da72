package target

import (
	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
)

// OnPoll dispatches to the phase-specific handler. Handlers may transition
// state and tail-call OnPoll again so the new phase is acted on within the
// same dispatch — see spec §4.3.
func (b *Bundle) OnPoll(ctx *schedcore.Context, deque *hacker.Deque, plat platform.Platform, params Params, now float64) {
	b.LastPollTime = now
	b.LastError = nil
	switch b.State.Phase {
	case PhaseTotalWeaken:
		b.pollTotalWeaken(ctx, deque, plat, params, now)
	case PhaseMaxGrow:
		b.pollMaxGrow(ctx, deque, plat, params, now)
	case PhaseHack:
		b.pollHack(ctx, deque, plat, params, now)
	}
}
