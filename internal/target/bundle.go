package target

import (
	"math"

	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/pkg/idhash"
)

// RunningDescriptor is one spawned worker: { pid, threads }. Descriptors
// are the unit of cancellation.
type RunningDescriptor struct {
	PID     int
	Threads int
}

// RunningBatch groups the descriptors spawned in one attempt, tagged with
// the spawn time. Batches are stored newest-at-front.
type RunningBatch struct {
	SpawnTime   float64
	Descriptors []RunningDescriptor
}

// Bundle is the target state bundle: lifecycle phase, outstanding spawned
// process descriptors, the waiting-for-memory flag, and a diagnostic
// timestamp. A Bundle is exclusively owned by the governor and must be
// removed from its map, mutated, and reinserted by any caller — the
// take-mutate-reinsert invariant of spec §3.
type Bundle struct {
	ID   idhash.HostID
	Host hostmodel.Host

	State            State
	Running          []RunningBatch
	WaitingForMemory bool
	LastPollTime     float64
	LastError        *SpawnError
}

// NewBundle creates a target bundle in TotalWeaken(w0), where w0 is the
// number of weaken threads needed to bring security down to its minimum,
// per spec §3: w0 = ceil((security - min_security) / weaken_effect).
func NewBundle(host hostmodel.Host, plat platform.Platform, params Params) *Bundle {
	return &Bundle{
		ID:    host.ID(),
		Host:  host,
		State: State{Phase: PhaseTotalWeaken, WeakensLeft: computeW0(host, plat, params)},
	}
}

func computeW0(host hostmodel.Host, plat platform.Platform, params Params) int {
	diff := host.SecurityLevel(plat) - host.MinSecurityLevel(plat)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(params.WeakenSecurityEffect)))
}

// ResetToTotalWeaken re-derives w0 against the current world and resets
// the bundle's phase, per spec §4.4's level-up check: a skill increase
// changes the threads-to-reduce figure, so any target not already in
// TotalWeaken must restart its lifecycle.
func (b *Bundle) ResetToTotalWeaken(plat platform.Platform, params Params) {
	b.State = State{Phase: PhaseTotalWeaken, WeakensLeft: computeW0(b.Host, plat, params)}
}

func (b *Bundle) prependRunning(now float64, descriptors []RunningDescriptor) {
	b.Running = append([]RunningBatch{{SpawnTime: now, Descriptors: descriptors}}, b.Running...)
}

// OutstandingThreads sums threads across every descriptor this bundle has
// outstanding, used by the property test that checks total reserved RAM
// never exceeds hacker capacity.
func (b *Bundle) OutstandingThreads() int {
	total := 0
	for _, batch := range b.Running {
		for _, d := range batch.Descriptors {
			total += d.Threads
		}
	}
	return total
}

func killAll(plat platform.Platform, descriptors []RunningDescriptor) {
	for _, d := range descriptors {
		plat.Kill(d.PID)
	}
}

func roundMs(d float64) int64 {
	return int64(math.Round(d))
}
