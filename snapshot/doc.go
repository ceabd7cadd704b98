// Package snapshot captures point-in-time copies of caller buffers into
// checksummed, optionally compressed envelopes, and restores them into
// buffers of sufficient size.
//
// A buffer managed with podbuf is owned by its environment (an account
// store, a mapped file, a test harness); snapshot gives that environment a
// compact way to persist the buffer between sessions without knowing its
// internal layout. The envelope is a 16-byte header followed by the encoded
// payload:
//
//	[0:2)  magic "pb"
//	[2]    envelope version
//	[3]    compression type (format.CompressionType)
//	[4:8)  raw buffer length, uint32 little-endian
//	[8:16) xxHash64 digest of the raw buffer, little-endian
//
// Restore verifies the digest before copying a single byte into the
// destination, so a truncated or corrupted envelope can never leave a
// half-written buffer behind.
package snapshot
