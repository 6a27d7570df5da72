// Package governor implements AutoHackGovernor, the event-loop state that
// owns the hacker deque, the dual-indexed target bundle maps, and
// regeneration of both from the platform's host graph. It is the Go
// realization of original_source/src/autohack.rs's AutoHackGovernor (new,
// get_used_hostnames, get_new_machines, get_new_hackers_from,
// get_new_targets_from, resort_targets_by_score,
// regenerate_hackers_and_targets, do_level_up_check).
package governor

import (
	"sort"

	"github.com/rohmanhakim/autohackgovernor/internal/diagnostics"
	"github.com/rohmanhakim/autohackgovernor/internal/hacker"
	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/target"
	"github.com/rohmanhakim/autohackgovernor/pkg/idhash"
)

// AutoHackGovernor is the event-loop state. It owns the hacker list, an
// identity-indexed map of target state bundles, a yield-sorted priority
// view over targets, and the cached player skill level — see spec §2.5.
type AutoHackGovernor struct {
	plat   platform.Platform
	params target.Params
	sink   diagnostics.Sink

	hackers *hacker.Deque
	known   *knownHosts

	targetsByName  map[idhash.HostID]*target.Bundle
	targetsByScore []idhash.HostID

	rootHost           string
	cachedHackingLevel int
}

// New constructs an AutoHackGovernor rooted at rootHost (the scan origin,
// typically "home").
func New(plat platform.Platform, params target.Params, sink diagnostics.Sink, rootHost string) *AutoHackGovernor {
	return &AutoHackGovernor{
		plat:          plat,
		params:        params,
		sink:          sink,
		hackers:       hacker.NewDeque(),
		known:         newKnownHosts(),
		targetsByName: map[idhash.HostID]*target.Bundle{},
		rootHost:      rootHost,
	}
}

// TargetCount and HackerCount expose the governor's current population
// sizes, used by diagnostics and by tests asserting regeneration is
// idempotent.
func (g *AutoHackGovernor) TargetCount() int { return len(g.targetsByName) }
func (g *AutoHackGovernor) HackerCount() int { return g.hackers.Len() }

// PhaseOf returns the named target's current lifecycle phase, used by
// diagnostics and by tests asserting the level-up reset.
func (g *AutoHackGovernor) PhaseOf(hostname string) (string, bool) {
	for _, bundle := range g.targetsByName {
		if bundle.Host.Hostname() == hostname {
			return bundle.State.Phase.String(), true
		}
	}
	return "", false
}

// yield is the priority metric behind targets_by_score: money potential
// per millisecond of hack time. spec.md leaves the exact formula as an
// implementation choice ("average yield"); see DESIGN.md for why this one
// was picked.
func yield(host hostmodel.Host, plat platform.Platform) float64 {
	hackTime := host.HackTime(plat)
	if hackTime <= 0 {
		return 0
	}
	return float64(host.MaxMoney(plat)) / hackTime
}

// regenerateHackersAndTargets implements spec §4.4's discovery pass: scan
// the host graph from rootHost, skip already-known hosts, attempt root
// acquisition on the rest, and bucket newly-rooted hosts as hackers or
// targets. A host only joins known once it is actually bucketed — a host
// that fails the skill gate, fails root acquisition, or is neither a usable
// hacker nor a moneyed target stays eligible for retry on the next pass
// (e.g. after a level-up), matching the original's used-hostnames set being
// recomputed from the live hacker/target sets rather than an ever-growing
// seen-set.
func (g *AutoHackGovernor) regenerateHackersAndTargets() {
	discovered := scanNetwork(g.plat, g.rootHost)

	var newHackers []hostmodel.Host
	var newTargets []hostmodel.Host

	for _, host := range discovered {
		if g.known.Has(host.Hostname()) {
			continue
		}

		if host.MinHackingSkill() > g.cachedHackingLevel {
			continue
		}

		if !ensureRooted(g.plat, host.Hostname()) {
			continue
		}

		info := g.plat.GetServer(host.Hostname())

		if isUsableHacker(g.plat, host) {
			g.known.Put(host.Hostname())
			newHackers = append(newHackers, host)
			continue
		}
		if !info.PurchasedByPlayer && info.MaxMoney > 0 {
			g.known.Put(host.Hostname())
			newTargets = append(newTargets, host)
		}
	}

	for _, h := range newHackers {
		g.hackers.Append(h)
	}
	g.hackers.SortDescendingByRAM(g.plat)

	for _, t := range newTargets {
		bundle := target.NewBundle(t, g.plat, g.params)
		g.targetsByName[bundle.ID] = bundle
		g.targetsByScore = append(g.targetsByScore, bundle.ID)
	}
	g.resortTargetsByScore()
}

func (g *AutoHackGovernor) resortTargetsByScore() {
	sort.SliceStable(g.targetsByScore, func(i, j int) bool {
		hi := g.targetsByName[g.targetsByScore[i]].Host
		hj := g.targetsByName[g.targetsByScore[j]].Host
		return yield(hi, g.plat) < yield(hj, g.plat)
	})
}

// isUsableHacker reports whether host has positive RAM capacity and every
// worker script deploys to it successfully.
func isUsableHacker(plat platform.Platform, host hostmodel.Host) bool {
	if plat.GetServerMaxRAM(host.Hostname()) <= 0 {
		return false
	}
	for _, script := range platform.WorkerScripts {
		if !plat.Scp(script, host.Hostname(), "home") {
			return false
		}
	}
	return true
}

// ensureRooted runs all five port-opening primitives, then nukes the host
// only if at least its required open-port count of them succeeded.
// Already-rooted hosts are reported as rooted without re-running
// acquisition.
func ensureRooted(plat platform.Platform, hostname string) bool {
	info := plat.GetServer(hostname)
	if info.HasAdminRights {
		return true
	}

	opened := 0
	if plat.SQLInject(hostname) {
		opened++
	}
	if plat.HTTPWorm(hostname) {
		opened++
	}
	if plat.RelaySMTP(hostname) {
		opened++
	}
	if plat.FTPCrack(hostname) {
		opened++
	}
	if plat.BruteSSH(hostname) {
		opened++
	}
	if opened < info.NumOpenPortsRequired {
		return false
	}
	return plat.Nuke(hostname)
}

// scanNetwork BFS-walks the reachable host graph from root, grounded on
// original_source/src/machine.rs's get_machines.
func scanNetwork(plat platform.Platform, root string) []hostmodel.Host {
	visited := map[string]bool{root: true}
	queue := []hostmodel.Host{hostmodel.NewHost(root, "", "", 0, []string{root}, true, 0)}
	var out []hostmodel.Host

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.Hostname() != root {
			out = append(out, current)
		}

		for _, neighbor := range plat.Scan(current.Hostname()) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			info := plat.GetServer(neighbor)
			traversal := append(current.Traversal(), neighbor)
			child := hostmodel.NewHost(neighbor, info.IP, info.OrganizationName, current.Degree()+1, traversal, info.PurchasedByPlayer, info.RequiredHackingSkill)
			queue = append(queue, child)
		}
	}
	return out
}
