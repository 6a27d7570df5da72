package hacker

import (
	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/pkg/units"
)

// SplitType controls how spawn_hgw distributes threads across hackers.
type SplitType int

const (
	NoSplit SplitType = iota
	FullSplit
	PartialSplit
)

// Allocation is one hacker's share of a thread request.
type Allocation struct {
	Host    hostmodel.Host
	Threads int
}

// FindAvailable implements spec §4.3's find_available_hackers:
//   - NoSplit: the first hacker with enough free threads to satisfy the
//     whole request, or nothing.
//   - FullSplit: accumulate across hackers until the request is fully
//     covered; if coverage falls short, return nothing (no partial
//     allocation retained).
//   - PartialSplit: like FullSplit but any non-empty coverage is a success.
func FindAvailable(it *Iterator, threads int, split SplitType, memoryPerThread units.RAMHundredths, reservationRate float64, plat platform.Platform) ([]Allocation, bool) {
	if threads <= 0 {
		return nil, false
	}

	if split == NoSplit {
		need := memoryPerThread * units.RAMHundredths(threads)
		host, _, ok := it.NextAvailableUnit(need, reservationRate, plat)
		if !ok {
			return nil, false
		}
		return []Allocation{{Host: host, Threads: threads}}, true
	}

	var allocs []Allocation
	remaining := threads
	for remaining > 0 {
		host, ok := it.Next()
		if !ok {
			break
		}
		usable := host.UsableFreeRAM(plat, reservationRate)
		freeThreads := int(usable / memoryPerThread)
		if freeThreads <= 0 {
			continue
		}
		take := freeThreads
		if take > remaining {
			take = remaining
		}
		allocs = append(allocs, Allocation{Host: host, Threads: take})
		remaining -= take
	}

	if split == FullSplit && remaining > 0 {
		return nil, false
	}
	if len(allocs) == 0 {
		return nil, false
	}
	return allocs, true
}
