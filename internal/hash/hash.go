package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// Bindings use it to fingerprint serialized URL state so that subscribers
// are only notified when the encoded parameters actually change.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
