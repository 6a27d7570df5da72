package governor_test

import (
	"testing"

	"github.com/rohmanhakim/autohackgovernor/internal/diagnostics"
	"github.com/rohmanhakim/autohackgovernor/internal/governor"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
	"github.com/rohmanhakim/autohackgovernor/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario 3: target A (highest yield) fails to spawn and waits for
// memory; a later MemoryFreed sweep gives A first shot, and when A comes
// back NoMemory again the sweep must stop before reaching lower-yield
// target B.
func TestMemoryFreedStopsAtFirstNoMemory(t *testing.T) {
	p := platform.NewFakePlatform()
	p.Neighbors["home"] = []string{"targetA", "targetB"}
	// targetA: higher max money -> higher yield -> sorted to the end of
	// targets_by_score, swept first.
	p.Servers["targetA"] = platform.ServerInfo{HasAdminRights: true, MaxMoney: 10000000, MinDifficulty: 1}
	p.Servers["targetB"] = platform.ServerInfo{HasAdminRights: true, MaxMoney: 1000, MinDifficulty: 1}
	p.Security["targetA"] = 1
	p.Security["targetB"] = 1
	p.HackTimeMs["targetA"] = 1000
	p.HackTimeMs["targetB"] = 1000
	p.Money["targetA"] = 0
	p.Money["targetB"] = 0

	sink := &diagnostics.RecordingSink{}
	g := governor.New(p, target.DefaultParams(), sink, "home")
	ctx := &schedcore.Context{}
	g.InitialRun(ctx)

	// no hackers at all: every poll fails immediately and sets
	// waiting-for-memory on both bundles.
	for _, e := range ctx.PendingEvents() {
		if e.Kind == schedcore.KindPollTarget {
			g.OnEvent(&schedcore.Context{}, e)
		}
	}

	memCtx := &schedcore.Context{}
	g.OnEvent(memCtx, schedcore.NewMemoryFreedEvent(p.Now(), 50))

	// both still starved for memory (no hackers were ever added), so the
	// sweep must have stopped after the first (highest-yield) target.
	require.Len(t, sink.MemoryFreedLog, 1)
	assert.Contains(t, sink.MemoryFreedLog[0], "targetA")
}

// scenario 5: a skill increase resets any target not in TotalWeaken.
func TestLevelUpResetsNonTotalWeakenTargets(t *testing.T) {
	p := platform.NewFakePlatform()
	setupHackerAndTarget(p, "hacker1", "target1", 1, 1) // w0 = 0, so the first poll jumps straight past TotalWeaken
	p.Servers["target1"] = platform.ServerInfo{HasAdminRights: true, MaxMoney: 1000, MinDifficulty: 1}
	p.Money["target1"] = 1000 // money == maxMoney -> MaxGrow transitions straight to Hack on the first poll

	g := governor.New(p, target.DefaultParams(), diagnostics.NullSink{}, "home")
	ctx := &schedcore.Context{}
	g.InitialRun(ctx)

	for _, e := range ctx.PendingEvents() {
		if e.Kind == schedcore.KindPollTarget {
			g.OnEvent(&schedcore.Context{}, e)
		}
	}

	phase, ok := g.PhaseOf("target1")
	require.True(t, ok)
	assert.Equal(t, "Hack", phase)

	p.HackingLevel = 1
	g.OnEvent(&schedcore.Context{}, schedcore.NewGeneralPollEvent(p.Now(), 50))

	phase, ok = g.PhaseOf("target1")
	require.True(t, ok)
	assert.Equal(t, "TotalWeaken", phase)
}
