// Package byteview is the single point where raw buffer offsets become
// checked, typed access. Everything above it (flexible sequences, maps,
// snapshots) reaches the buffer through these three functions.
//
// Bounds are always checked against the live length of the buffer passed to
// the call: the buffer is a parameter on every operation, never cached
// state, so a caller that re-slices its buffer between calls gets correct
// checks. No alignment requirement is imposed; pod types in podbuf are
// defined with byte-level layout.
package byteview

import (
	"fmt"

	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/pod"
)

// Read returns a typed view of the pod.Size[T]() bytes at offset, aliasing
// buf. It returns errs.ErrOutOfBounds when the range does not fit in buf.
func Read[T any](buf []byte, offset int) (*T, error) {
	size := pod.Size[T]()
	if offset < 0 || offset+size > len(buf) {
		return nil, fmt.Errorf("%w: [%d, %d) in buffer of %d bytes",
			errs.ErrOutOfBounds, offset, offset+size, len(buf))
	}

	return pod.Cast[T](buf[offset : offset+size])
}

// Write copies v's bytes into buf at offset. It returns errs.ErrOutOfBounds
// when the range does not fit in buf; on error buf is unchanged.
func Write[T any](buf []byte, offset int, v T) error {
	view, err := Read[T](buf, offset)
	if err != nil {
		return err
	}
	*view = v

	return nil
}

// Slice returns buf[offset : offset+length], checking both ends. It returns
// errs.ErrOutOfBounds for a negative offset or length, or a range past the
// end of buf.
func Slice(buf []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return nil, fmt.Errorf("%w: [%d, %d) in buffer of %d bytes",
			errs.ErrOutOfBounds, offset, offset+length, len(buf))
	}

	return buf[offset : offset+length], nil
}
