package target

import (
	"strconv"

	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
)

// spawnHGW implements spec §4.3's spawn_hgw: find hackers able to cover
// threads worth of kind, exec one worker process per allocation with a
// sleep-until-runTime argument baked in, and roll back (kill) every
// already-spawned process in this attempt if any single Exec call fails
// to produce a pid.
func spawnHGW(it *hacker.Iterator, plat platform.Platform, params Params, targetHost string, kind platform.WorkerKind, threads int, split hacker.SplitType, runTime, now float64) ([]RunningDescriptor, bool) {
	allocs, ok := hacker.FindAvailable(it, threads, split, params.MemoryPerThread, params.ReservationRate, plat)
	if !ok {
		return nil, false
	}

	sleepMs := roundMs(runTime - now)
	args := []string{targetHost, strconv.FormatInt(sleepMs, 10)}

	var spawned []RunningDescriptor
	for _, a := range allocs {
		pid := plat.Exec(kind.Script(), a.Host.Hostname(), a.Threads, args)
		if pid == 0 {
			killAll(plat, spawned)
			return nil, false
		}
		spawned = append(spawned, RunningDescriptor{PID: pid, Threads: a.Threads})
	}
	return spawned, true
}
