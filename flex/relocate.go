package flex

import (
	"fmt"

	"github.com/podbuf/podbuf/errs"
)

// ResizeRegion changes the reserved span of the region starting at offset
// from oldSpan to newSpan bytes, shifting the tailLen bytes of sibling
// regions that follow it by newSpan-oldSpan so that all regions stay
// contiguous with their internal layout intact. It is a single bulk move
// over the tail, O(tailLen).
//
// The move is all-or-nothing: when the new end plus the tail does not fit in
// buf the function returns errs.ErrCapacityExceeded and moves nothing. The
// buffer itself is never grown; freeing room at the end of buf is the
// caller's responsibility.
//
// No other view into buf may be held across this call: every offset at or
// past offset+min(oldSpan, newSpan) changes meaning.
func ResizeRegion(buf []byte, offset, oldSpan, newSpan, tailLen int) error {
	if offset < 0 || oldSpan < headerSize || newSpan < headerSize || tailLen < 0 {
		return fmt.Errorf("%w: offset %d, spans %d -> %d, tail %d",
			errs.ErrOutOfBounds, offset, oldSpan, newSpan, tailLen)
	}

	oldEnd := offset + oldSpan
	if oldEnd+tailLen > len(buf) {
		return fmt.Errorf("%w: current region end %d plus tail %d exceeds buffer of %d bytes",
			errs.ErrOutOfBounds, oldEnd, tailLen, len(buf))
	}

	newEnd := offset + newSpan
	if newEnd+tailLen > len(buf) {
		return fmt.Errorf("%w: resized region end %d plus tail %d exceeds buffer of %d bytes",
			errs.ErrCapacityExceeded, newEnd, tailLen, len(buf))
	}

	if newEnd != oldEnd {
		// copy is memmove: overlapping source and destination are fine in
		// both shift directions.
		copy(buf[newEnd:newEnd+tailLen], buf[oldEnd:oldEnd+tailLen])
	}

	return nil
}
