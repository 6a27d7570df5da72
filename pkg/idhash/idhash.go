// Package idhash derives the 64-bit host identity the governor uses as the
// authoritative key for both targets_by_name and targets_by_score.
package idhash

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

// HostID is the 64-bit hash of a hostname.
type HostID uint64

// FromHostname returns the HostID for the given hostname. The same hostname
// always produces the same HostID.
func FromHostname(hostname string) HostID {
	sum := blake3.Sum256([]byte(hostname))
	return HostID(binary.BigEndian.Uint64(sum[:8]))
}
