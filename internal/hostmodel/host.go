// Package hostmodel describes one networked host the governor has
// discovered: stable identity plus read-through accessors that re-query
// the platform so every caller observes the current world, never a stale
// snapshot.
package hostmodel

import (
	"math"

	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/pkg/idhash"
	"github.com/rohmanhakim/autohackgovernor/pkg/units"
)

// Host is the identity half of a networked host: the part discovered once
// during a scan and never re-queried. Dynamic fields (money, security,
// RAM usage) are read-through via the accessor methods below, which hit
// the platform on every call.
type Host struct {
	hostname   string
	ip         string
	org        string
	degree     int
	traversal  []string
	isOwned    bool
	minHacking int
}

func NewHost(hostname, ip, org string, degree int, traversal []string, isOwned bool, minHacking int) Host {
	return Host{
		hostname:   hostname,
		ip:         ip,
		org:        org,
		degree:     degree,
		traversal:  append([]string(nil), traversal...),
		isOwned:    isOwned,
		minHacking: minHacking,
	}
}

func (h Host) Hostname() string { return h.hostname }
func (h Host) IP() string       { return h.ip }
func (h Host) Org() string      { return h.org }
func (h Host) Degree() int      { return h.degree }

func (h Host) Traversal() []string {
	out := make([]string, len(h.traversal))
	copy(out, h.traversal)
	return out
}

func (h Host) IsPlayerOwned() bool       { return h.isOwned }
func (h Host) MinHackingSkill() int      { return h.minHacking }
func (h Host) ID() idhash.HostID         { return idhash.FromHostname(h.hostname) }

// CapacityRAM returns the host's total RAM, read-through.
func (h Host) CapacityRAM(p platform.Platform) units.RAMHundredths {
	return units.GBToRAMHundredths(p.GetServerMaxRAM(h.hostname))
}

// UsedRAM returns the host's currently used RAM, read-through.
func (h Host) UsedRAM(p platform.Platform) units.RAMHundredths {
	return units.GBToRAMHundredths(p.GetServerUsedRAM(h.hostname))
}

// FreeRAM returns CapacityRAM - UsedRAM, clamped to zero.
func (h Host) FreeRAM(p platform.Platform) units.RAMHundredths {
	free := h.CapacityRAM(p) - h.UsedRAM(p)
	if free < 0 {
		return 0
	}
	return free
}

// UsableFreeRAM applies the reservation rate to capacity before
// subtracting used RAM, per spec: usable_free_ram = reservation_rate *
// capacity - used, rounded to the nearest hundredth like every other
// RAMHundredths value, negative clamped to 0.
func (h Host) UsableFreeRAM(p platform.Platform, reservationRate float64) units.RAMHundredths {
	capacity := float64(h.CapacityRAM(p))
	used := float64(h.UsedRAM(p))
	usable := units.RAMHundredths(math.Round(capacity*reservationRate - used))
	if usable < 0 {
		return 0
	}
	return usable
}

func (h Host) MoneyAvailable(p platform.Platform) uint64 {
	return p.GetServerMoneyAvailable(h.hostname)
}

func (h Host) MaxMoney(p platform.Platform) uint64 {
	return p.GetServer(h.hostname).MaxMoney
}

func (h Host) SecurityLevel(p platform.Platform) units.SecurityThousandths {
	return units.SecurityToThousandths(p.GetServerSecurityLevel(h.hostname))
}

func (h Host) MinSecurityLevel(p platform.Platform) units.SecurityThousandths {
	return units.SecurityToThousandths(p.GetServer(h.hostname).MinDifficulty)
}

// CPUCores is the host's core count, read-through, consumed by growth
// analysis (more cores shift the grow curve).
func (h Host) CPUCores(p platform.Platform) int {
	return p.GetServer(h.hostname).CPUCores
}

// HackTime is the platform-supplied baseline timing in milliseconds.
func (h Host) HackTime(p platform.Platform) float64 {
	return p.GetHackTime(h.hostname)
}

// GrowTime = 3.2 * hack_time, an environment invariant.
func (h Host) GrowTime(p platform.Platform) float64 {
	return 3.2 * h.HackTime(p)
}

// WeakenTime = 4.0 * hack_time, an environment invariant.
func (h Host) WeakenTime(p platform.Platform) float64 {
	return 4.0 * h.HackTime(p)
}
