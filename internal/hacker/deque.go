// Package hacker implements the rotating hacker-selection cursor (spec
// §4.2) and the hacker/thread selection strategies spawn_hgw relies on
// (spec §4.3's find_available_hackers). The cursor generalizes the
// teacher's internal/frontier FIFOQueue peek/consume split into a
// revisitable rotation instead of a one-shot traversal.
package hacker

import (
	"sort"

	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
)

// Deque holds the hacker hosts known to the governor. A host appears at
// most once; rotation order is the deque order and is governor-private
// (spec §5) — nothing outside this package observes it directly.
type Deque struct {
	hosts []hostmodel.Host
}

func NewDeque() *Deque {
	return &Deque{}
}

func (d *Deque) Len() int { return len(d.hosts) }

func (d *Deque) Append(h hostmodel.Host) {
	d.hosts = append(d.hosts, h)
}

// Front returns the current front of the deque. Callers must not call this
// on an empty deque.
func (d *Deque) Front() hostmodel.Host {
	return d.hosts[0]
}

// RotateToBack moves the current front to the back of the deque.
func (d *Deque) RotateToBack() {
	if len(d.hosts) < 2 {
		return
	}
	front := d.hosts[0]
	d.hosts = append(d.hosts[1:], front)
}

// SortDescendingByRAM re-sorts the deque by descending RAM capacity,
// per spec §4.4's "re-sorts the hacker deque by descending RAM hundredths".
func (d *Deque) SortDescendingByRAM(plat platform.Platform) {
	sort.SliceStable(d.hosts, func(i, j int) bool {
		return d.hosts[i].CapacityRAM(plat) > d.hosts[j].CapacityRAM(plat)
	})
}

// Hosts returns a defensive copy of the deque's contents in rotation order.
func (d *Deque) Hosts() []hostmodel.Host {
	out := make([]hostmodel.Host, len(d.hosts))
	copy(out, d.hosts)
	return out
}
