package target_test

import (
	"testing"

	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
	"github.com/rohmanhakim/autohackgovernor/internal/target"
	"github.com/rohmanhakim/autohackgovernor/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// w0's ceiling guarantees the spawned weaken batch drives security to
// within one weaken unit (0.050) of min_security once every thread's
// effect lands — the slack the TotalWeaken -> MaxGrow transition allows.
func TestComputeW0CoversSecurityDeficitWithinOneWeakenUnit(t *testing.T) {
	cases := []struct {
		security, minSecurity float64
	}{
		{security: 10, minSecurity: 1},
		{security: 1.03, minSecurity: 1},
		{security: 50, minSecurity: 3},
		{security: 1, minSecurity: 1},
	}

	for _, c := range cases {
		p := platform.NewFakePlatform()
		p.Security["target1"] = c.security
		p.Servers["target1"] = platform.ServerInfo{MinDifficulty: c.minSecurity}

		host := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
		params := target.DefaultParams()
		b := target.NewBundle(host, p, params)

		deficit := units.SecurityToThousandths(c.security) - units.SecurityToThousandths(c.minSecurity)
		overshoot := units.SecurityThousandths(b.State.WeakensLeft)*params.WeakenSecurityEffect - deficit

		assert.GreaterOrEqualf(t, int64(overshoot), int64(0), "w0 must cover the deficit: security=%v min=%v", c.security, c.minSecurity)
		assert.Lessf(t, int64(overshoot), int64(params.WeakenSecurityEffect), "overshoot must stay under one weaken unit: security=%v min=%v", c.security, c.minSecurity)
	}
}

// For every target, the RAM committed to its outstanding descriptors must
// never exceed the usable (reservation-rate-adjusted) capacity of the
// hackers it drew from.
func TestSpawnedThreadsNeverExceedHackerUsableCapacity(t *testing.T) {
	p := platform.NewFakePlatform()
	p.Security["target1"] = 10
	p.Servers["target1"] = platform.ServerInfo{MinDifficulty: 1}
	p.HackTimeMs["target1"] = 1000

	p.MaxRAMGB["hacker1"] = 8
	p.MaxRAMGB["hacker2"] = 16

	deque := hacker.NewDeque()
	deque.Append(hostmodel.NewHost("hacker1", "", "", 0, nil, true, 0))
	deque.Append(hostmodel.NewHost("hacker2", "", "", 0, nil, true, 0))

	host := hostmodel.NewHost("target1", "", "", 0, nil, false, 0)
	params := target.DefaultParams()
	b := target.NewBundle(host, p, params)

	ctx := &schedcore.Context{}
	b.OnPoll(ctx, deque, p, params, 0)
	require.NotZero(t, b.OutstandingThreads())

	totalUsable := units.RAMHundredths(0)
	for _, h := range deque.Hosts() {
		totalUsable += h.UsableFreeRAM(p, params.ReservationRate)
	}

	committed := units.RAMHundredths(b.OutstandingThreads()) * params.MemoryPerThread
	assert.LessOrEqual(t, int64(committed), int64(totalUsable))
}
