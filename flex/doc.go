// Package flex implements variable-length collections that live inline in a
// caller-owned byte buffer: an ordered Sequence of pod elements, a
// key-sorted Map, and a sorted Set, plus the region relocation primitive
// that lets several flexible regions share one buffer.
//
// # Region layout
//
// A flexible region occupies a contiguous reserved span inside the buffer:
//
//	[length: uint32 little-endian][element 0]...[element length-1][unused tail]
//
// Capacity is not stored; it derives from the reserved span the caller hands
// to the constructor. The unused tail keeps whatever bytes it had (shrinks
// never zero it; pod elements tolerate any bit pattern). A region whose
// recorded length does not fit its span is reported as errs.ErrInvalidRegion
// and never silently repaired.
//
// # Growth and failure
//
// The library never grows the underlying buffer. Push and Insert fail with
// errs.ErrCapacityExceeded once the reserved span is full, leaving the
// region byte-identical to before the call; obtaining more room (a larger
// span via ResizeRegion, or a larger buffer from its owner) is the caller's
// job.
//
// # Aliasing
//
// All collection handles are views: they alias the caller buffer and hold no
// state beyond the span boundaries. At most one mutating operation may be in
// flight over any byte range at a time, and ResizeRegion invalidates every
// view past the resized region; this is a caller contract, not something the
// package checks at runtime.
package flex
