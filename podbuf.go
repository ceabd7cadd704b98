// Package podbuf provides zero-copy plain-old-data ("pod") views and
// flexible in-place collections over caller-owned byte buffers.
//
// Podbuf never allocates, grows, or owns the buffer it operates on: every
// accessor returns a typed view aliasing the underlying bytes, and every
// mutation happens in place. This makes it suitable for externally allocated
// storage of fixed capacity, such as a blockchain account's data or a
// memory-mapped record, where deserializing into heap objects is either too
// slow or impossible.
//
// # Core Features
//
//   - Validated zero-copy casts between byte ranges and pod types
//   - Byte-aligned primitive wrappers (little-endian, no padding)
//   - Flexible sequences, maps, and sets that grow and shrink inline in a
//     shared buffer via byte-shifting relocation
//   - Checksummed, optionally compressed buffer snapshots (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Reading and writing typed values at arbitrary offsets:
//
//	type Account struct {
//	    Balance pod.Uint64
//	    Active  pod.Bool
//	}
//
//	buf := make([]byte, 128) // usually supplied by the environment
//	acct, _ := podbuf.Read[Account](buf, 16)
//	acct.Balance.Set(acct.Balance.Value() + 100)
//
// An ordered map living inside the same buffer:
//
//	m, _ := flex.InitMapAt[pod.Uint32, pod.Uint64](buf, 32, 64)
//	_, _, _ = m.Insert(pod.NewUint32(7), pod.NewUint64(700))
//	v, _ := m.Get(pod.NewUint32(7))
//
// Persisting the buffer between sessions:
//
//	env, _ := podbuf.Capture(buf, podbuf.CompressionZstd)
//	...
//	_, _ = podbuf.Restore(buf, env)
//
// # Package Structure
//
// This package offers convenient top-level wrappers around byteview and
// snapshot. For the full surface use the subpackages directly: pod (casts
// and wrapper types), byteview (checked typed access), flex (sequences,
// maps, sets, region relocation), snapshot and compress (persistence).
package podbuf

import (
	"github.com/podbuf/podbuf/byteview"
	"github.com/podbuf/podbuf/format"
	"github.com/podbuf/podbuf/internal/hash"
	"github.com/podbuf/podbuf/snapshot"
)

// Compression types accepted by Capture, re-exported for convenience.
const (
	CompressionNone = format.CompressionNone
	CompressionZstd = format.CompressionZstd
	CompressionS2   = format.CompressionS2
	CompressionLZ4  = format.CompressionLZ4
)

// Read returns a typed view of the bytes at offset, aliasing buf.
// It is shorthand for byteview.Read.
func Read[T any](buf []byte, offset int) (*T, error) {
	return byteview.Read[T](buf, offset)
}

// Write copies v's bytes into buf at offset. It is shorthand for
// byteview.Write.
func Write[T any](buf []byte, offset int, v T) error {
	return byteview.Write[T](buf, offset, v)
}

// Checksum computes the xxHash64 digest of data, the same digest recorded
// in snapshot envelopes.
func Checksum(data []byte) uint64 {
	return hash.Sum64(data)
}

// Capture returns a snapshot envelope of buf. It is shorthand for
// snapshot.Capture.
func Capture(buf []byte, compression format.CompressionType) ([]byte, error) {
	return snapshot.Capture(buf, compression)
}

// Restore copies the buffer bytes recorded in envelope into dst, returning
// the number of bytes restored. It is shorthand for snapshot.Restore.
func Restore(dst, envelope []byte) (int, error) {
	return snapshot.Restore(dst, envelope)
}
