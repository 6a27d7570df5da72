package hacker

import (
	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/pkg/units"
)

// Iterator is a cursor over the governor's hacker deque. It peeks without
// consuming: a caller that constructs an Iterator, calls Next() once, and
// drops it has not altered the deque's rotation. Only a caller that
// iterates past a hacker (a second Next() call) actually consumes its
// rotation position — see spec §4.2 / §9 "hacker rotation".
type Iterator struct {
	deque         *Deque
	rotationsLeft int
	hasCalledNext bool
}

func NewIterator(d *Deque) *Iterator {
	return &Iterator{deque: d, rotationsLeft: d.Len()}
}

// Next returns the next hacker in rotation order, or ok=false once every
// hacker has been visited once.
func (it *Iterator) Next() (host hostmodel.Host, ok bool) {
	if it.rotationsLeft == 0 {
		return hostmodel.Host{}, false
	}
	it.rotationsLeft--

	if !it.hasCalledNext {
		it.hasCalledNext = true
		return it.deque.Front(), true
	}

	it.deque.RotateToBack()
	return it.deque.Front(), true
}

// NextAvailableUnit scans via Next and returns the first hacker with room
// for at least one unit of memoryReq, along with how many such units fit.
func (it *Iterator) NextAvailableUnit(memoryReq units.RAMHundredths, reservationRate float64, plat platform.Platform) (hostmodel.Host, int, bool) {
	for {
		host, ok := it.Next()
		if !ok {
			return hostmodel.Host{}, 0, false
		}
		usable := host.UsableFreeRAM(plat, reservationRate)
		if usable < memoryReq {
			continue
		}
		instances := int(usable / memoryReq)
		if instances >= 1 {
			return host, instances, true
		}
	}
}
