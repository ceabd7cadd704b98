// Package hash provides the xxHash64 digests used to fingerprint buffer
// contents in snapshot envelopes.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 digest of s without copying it.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}
