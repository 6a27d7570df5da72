package governor

import "sync"

// knownHosts is the used-hostname dedup set: once a host has been bucketed
// as a hacker or a target it must never be reconsidered by a later scan,
// even though scan results are re-enumerated on every regeneration pass.
// Shaped like a minimal cache port/adapter (Has/Put instead of a
// string-keyed value cache) rather than a plain map field, so the
// membership check can be swapped or wrapped without touching
// regenerateHackersAndTargets.
type knownHosts struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

func newKnownHosts() *knownHosts {
	return &knownHosts{seen: map[string]struct{}{}}
}

func (k *knownHosts) Has(hostname string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.seen[hostname]
	return ok
}

func (k *knownHosts) Put(hostname string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.seen[hostname] = struct{}{}
}
