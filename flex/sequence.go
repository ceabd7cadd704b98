package flex

import (
	"fmt"
	"iter"

	"github.com/podbuf/podbuf/byteview"
	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/pod"
)

// headerSize is the byte size of the uint32 length prefix of every region.
const headerSize = 4

// Sequence is an ordered, variable-length run of pod elements embedded in a
// reserved span of a caller buffer. All accessors return views aliasing the
// buffer; all mutations shift the minimum number of bytes in place.
type Sequence[T any] struct {
	region   []byte
	header   *pod.Uint32
	elemSize int
}

// NewSequence views region as an existing sequence of T and validates it:
// the span must hold the length header, and the recorded length must fit the
// span. It returns errs.ErrInvalidRegion otherwise.
func NewSequence[T any](region []byte) (*Sequence[T], error) {
	if len(region) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes cannot hold the length header",
			errs.ErrInvalidRegion, len(region))
	}

	header, err := pod.Cast[pod.Uint32](region[:headerSize])
	if err != nil {
		return nil, err
	}

	s := &Sequence[T]{region: region, header: header, elemSize: pod.Size[T]()}
	if n := s.Len(); n > s.Cap() {
		return nil, fmt.Errorf("%w: length %d exceeds capacity %d",
			errs.ErrInvalidRegion, n, s.Cap())
	}

	return s, nil
}

// InitSequence formats region as an empty sequence of T (length zero) and
// returns a view of it. Bytes past the header are left as they are.
func InitSequence[T any](region []byte) (*Sequence[T], error) {
	if len(region) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes cannot hold the length header",
			errs.ErrInvalidRegion, len(region))
	}
	region[0], region[1], region[2], region[3] = 0, 0, 0, 0

	return NewSequence[T](region)
}

// SequenceAt views the reserved span [offset, offset+span) of buf as an
// existing sequence of T.
func SequenceAt[T any](buf []byte, offset, span int) (*Sequence[T], error) {
	region, err := byteview.Slice(buf, offset, span)
	if err != nil {
		return nil, err
	}

	return NewSequence[T](region)
}

// InitSequenceAt formats the reserved span [offset, offset+span) of buf as
// an empty sequence of T.
func InitSequenceAt[T any](buf []byte, offset, span int) (*Sequence[T], error) {
	region, err := byteview.Slice(buf, offset, span)
	if err != nil {
		return nil, err
	}

	return InitSequence[T](region)
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return int(s.header.Value())
}

// Cap returns the number of elements the reserved span can hold.
func (s *Sequence[T]) Cap() int {
	return (len(s.region) - headerSize) / s.elemSize
}

// Span returns the reserved span size in bytes, header included.
func (s *Sequence[T]) Span() int {
	return len(s.region)
}

// at returns a view of element i. Callers guarantee 0 <= i < Cap().
func (s *Sequence[T]) at(i int) *T {
	start := headerSize + i*s.elemSize
	view, err := pod.Cast[T](s.region[start : start+s.elemSize])
	if err != nil {
		// Unreachable: the slot is exactly elemSize bytes.
		panic(err)
	}

	return view
}

// Get returns a view of element i, aliasing the buffer. It returns
// errs.ErrIndexOutOfRange unless 0 <= i < Len().
func (s *Sequence[T]) Get(i int) (*T, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, s.Len())
	}

	return s.at(i), nil
}

// Set overwrites element i with v. It returns errs.ErrIndexOutOfRange
// unless 0 <= i < Len().
func (s *Sequence[T]) Set(i int, v T) error {
	view, err := s.Get(i)
	if err != nil {
		return err
	}
	*view = v

	return nil
}

// Push appends v after the last element. It returns errs.ErrCapacityExceeded
// when the reserved span is full, leaving the region unchanged.
func (s *Sequence[T]) Push(v T) error {
	n := s.Len()
	if n >= s.Cap() {
		return fmt.Errorf("%w: %d elements of %d bytes in a span of %d bytes",
			errs.ErrCapacityExceeded, n+1, s.elemSize, len(s.region))
	}
	*s.at(n) = v
	s.header.Set(uint32(n + 1))

	return nil
}

// Insert places v at position i, shifting elements at positions >= i one
// slot right. It returns errs.ErrIndexOutOfRange unless 0 <= i <= Len(),
// and errs.ErrCapacityExceeded when the reserved span is full; on any error
// the region is unchanged. Cost is O(Len()-i) byte moves.
func (s *Sequence[T]) Insert(i int, v T) error {
	n := s.Len()
	if i < 0 || i > n {
		return fmt.Errorf("%w: insert position %d, length %d", errs.ErrIndexOutOfRange, i, n)
	}
	if n >= s.Cap() {
		return fmt.Errorf("%w: %d elements of %d bytes in a span of %d bytes",
			errs.ErrCapacityExceeded, n+1, s.elemSize, len(s.region))
	}

	elems := s.region[headerSize:]
	copy(elems[(i+1)*s.elemSize:(n+1)*s.elemSize], elems[i*s.elemSize:n*s.elemSize])
	*s.at(i) = v
	s.header.Set(uint32(n + 1))

	return nil
}

// Remove deletes element i and returns it by copy, shifting elements at
// positions > i one slot left. It returns errs.ErrIndexOutOfRange unless
// 0 <= i < Len(). The vacated tail slot keeps its stale bytes.
func (s *Sequence[T]) Remove(i int) (T, error) {
	var removed T

	n := s.Len()
	if i < 0 || i >= n {
		return removed, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, n)
	}

	removed = *s.at(i)
	elems := s.region[headerSize:]
	copy(elems[i*s.elemSize:(n-1)*s.elemSize], elems[(i+1)*s.elemSize:n*s.elemSize])
	s.header.Set(uint32(n - 1))

	return removed, nil
}

// Elements returns a []T view of the current elements, aliasing the buffer.
// The slice is valid until the next mutation of the sequence.
func (s *Sequence[T]) Elements() []T {
	elems, err := pod.CastSlice[T](s.region[headerSize : headerSize+s.Len()*s.elemSize])
	if err != nil {
		// Unreachable: the span is an exact multiple by construction.
		panic(err)
	}

	return elems
}

// All returns an iterator over (index, element view) pairs. The length is
// snapshotted when the iterator is created; mutating the sequence while
// iterating yields stale or shifted views and is a usage contract violation.
func (s *Sequence[T]) All() iter.Seq2[int, *T] {
	n := s.Len()

	return func(yield func(int, *T) bool) {
		for i := range n {
			if !yield(i, s.at(i)) {
				return
			}
		}
	}
}
