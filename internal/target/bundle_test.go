package target_test

import (
	"testing"

	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
	"github.com/rohmanhakim/autohackgovernor/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneHackerDeque(p *platform.FakePlatform, hostname string, maxRAMGB float64) *hacker.Deque {
	d := hacker.NewDeque()
	d.Append(hostmodel.NewHost(hostname, "", "", 0, nil, false, 0))
	p.MaxRAMGB[hostname] = maxRAMGB
	p.UsedRAMGB[hostname] = 0
	return d
}

// scenario 2: security 10, min 1, 0.050 per weaken -> ceil(9/0.05) = 180
// weakens required; a hacker with 1800 free thread-slots spawns the whole
// batch on the first poll.
func TestNewBundleComputesW0AndFirstPollSpawnsWholeBatch(t *testing.T) {
	p := platform.NewFakePlatform()
	target1 := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
	p.Security["target1"] = 10
	p.Servers["target1"] = platform.ServerInfo{MinDifficulty: 1, MaxMoney: 1000000}
	p.Money["target1"] = 0
	p.HackTimeMs["target1"] = 1000

	deque := oneHackerDeque(p, "hacker1", 1800*1.75/0.9)

	b := target.NewBundle(target1, p, target.DefaultParams())
	assert.Equal(t, target.PhaseTotalWeaken, b.State.Phase)
	assert.Equal(t, 180, b.State.WeakensLeft)

	ctx := &schedcore.Context{}
	b.OnPoll(ctx, deque, p, target.DefaultParams(), 0)

	assert.Equal(t, target.PhaseTotalWeaken, b.State.Phase)
	assert.Equal(t, 0, b.State.WeakensLeft)
	require.Len(t, b.Running, 1)
	assert.Equal(t, 180, b.OutstandingThreads())

	b.OnPoll(ctx, deque, p, target.DefaultParams(), 1)
	assert.Equal(t, target.PhaseMaxGrow, b.State.Phase)
}

// scenario 6: request 100 weaken threads against two hackers with 40 and
// 30 free thread-slots under PartialSplit; expect two descriptors summing
// to 70 and 30 weakens remaining.
func TestTotalWeakenPartialSplitAcrossTwoHackers(t *testing.T) {
	p := platform.NewFakePlatform()
	target1 := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
	p.Security["target1"] = 100
	p.Servers["target1"] = platform.ServerInfo{MinDifficulty: 1}
	p.HackTimeMs["target1"] = 1000
	// w0 = ceil((100-1)/0.05 thousandths) ... force WeakensLeft directly
	// instead, since this test is about the split, not w0 derivation.

	deque := hacker.NewDeque()
	deque.Append(hostmodel.NewHost("a", "", "", 0, nil, false, 0))
	deque.Append(hostmodel.NewHost("b", "", "", 0, nil, false, 0))
	p.MaxRAMGB["a"] = 40 * 1.75 / 0.9
	p.UsedRAMGB["a"] = 0
	p.MaxRAMGB["b"] = 30 * 1.75 / 0.9
	p.UsedRAMGB["b"] = 0

	b := target.NewBundle(target1, p, target.DefaultParams())
	b.State.WeakensLeft = 100

	ctx := &schedcore.Context{}
	b.OnPoll(ctx, deque, p, target.DefaultParams(), 0)

	assert.Equal(t, 30, b.State.WeakensLeft)
	assert.Equal(t, 70, b.OutstandingThreads())
}

func TestTotalWeakenOnSpawnFailureSetsWaitingForMemory(t *testing.T) {
	p := platform.NewFakePlatform()
	target1 := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
	p.Security["target1"] = 10
	p.Servers["target1"] = platform.ServerInfo{MinDifficulty: 1}
	p.HackTimeMs["target1"] = 1000

	deque := hacker.NewDeque() // no hackers at all

	b := target.NewBundle(target1, p, target.DefaultParams())
	ctx := &schedcore.Context{}
	b.OnPoll(ctx, deque, p, target.DefaultParams(), 0)

	assert.True(t, b.WaitingForMemory)
	assert.Equal(t, target.PhaseTotalWeaken, b.State.Phase)
}

// scenario 5: a level-up resets any non-TotalWeaken target to
// TotalWeaken(w0') computed against the current world.
func TestResetToTotalWeakenRecomputesW0(t *testing.T) {
	p := platform.NewFakePlatform()
	host := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
	p.Security["target1"] = 20
	p.Servers["target1"] = platform.ServerInfo{MinDifficulty: 5}

	b := target.NewBundle(host, p, target.DefaultParams())
	b.State = target.State{Phase: target.PhaseHack}

	b.ResetToTotalWeaken(p, target.DefaultParams())

	assert.Equal(t, target.PhaseTotalWeaken, b.State.Phase)
	assert.Equal(t, 300, b.State.WeakensLeft) // ceil(15/0.05)
}

func TestOnMemoryFreedOutcomes(t *testing.T) {
	p := platform.NewFakePlatform()
	host := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
	p.Security["target1"] = 10
	p.Servers["target1"] = platform.ServerInfo{MinDifficulty: 1}
	p.HackTimeMs["target1"] = 1000

	b := target.NewBundle(host, p, target.DefaultParams())
	ctx := &schedcore.Context{}

	// not waiting -> NotRequired, no hackers needed
	deque := hacker.NewDeque()
	outcome := b.OnMemoryFreed(ctx, deque, p, target.DefaultParams(), 0)
	assert.Equal(t, target.NotRequired, outcome)

	// force into waiting state, still no hackers -> NoMemory
	b.WaitingForMemory = true
	outcome = b.OnMemoryFreed(ctx, deque, p, target.DefaultParams(), 0)
	assert.Equal(t, target.NoMemory, outcome)

	// now with a hacker available -> MemoryAllocated
	b.WaitingForMemory = true
	roomy := oneHackerDeque(p, "roomy", 1800*1.75/0.9)
	outcome = b.OnMemoryFreed(ctx, roomy, p, target.DefaultParams(), 0)
	assert.Equal(t, target.MemoryAllocated, outcome)
	assert.False(t, b.WaitingForMemory)
}
