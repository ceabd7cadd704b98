// Package errs defines the sentinel error values returned by podbuf.
//
// All fallible operations return one of these sentinels, possibly wrapped
// with additional context via fmt.Errorf and %w. Callers should match with
// errors.Is rather than comparing strings.
package errs

import "errors"

var (
	// ErrOutOfBounds indicates a requested byte range exceeds the buffer length.
	ErrOutOfBounds = errors.New("byte range out of buffer bounds")

	// ErrSizeMismatch indicates a byte range length does not equal the exact
	// size (or an exact multiple of the size) required by the target type.
	ErrSizeMismatch = errors.New("byte range size mismatch for target type")

	// ErrIndexOutOfRange indicates a sequence index is negative or >= length.
	ErrIndexOutOfRange = errors.New("sequence index out of range")

	// ErrCapacityExceeded indicates an insert, push or region grow cannot be
	// satisfied within the reserved span or the total buffer length.
	// The operation performs no partial mutation.
	ErrCapacityExceeded = errors.New("region capacity exceeded")

	// ErrKeyNotFound indicates a map lookup or removal on an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidRegion indicates a flexible region whose length header is
	// inconsistent with its reserved span. The region is never repaired.
	ErrInvalidRegion = errors.New("invalid flexible region")

	// ErrNotPod indicates a type that does not qualify as plain-old-data.
	ErrNotPod = errors.New("type is not plain-old-data")

	// ErrInvalidSnapshot indicates snapshot data that is truncated or does
	// not start with a valid snapshot header.
	ErrInvalidSnapshot = errors.New("invalid snapshot data")

	// ErrChecksumMismatch indicates snapshot payload bytes whose digest does
	// not match the digest recorded in the snapshot header.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
)
