package flex

import (
	"fmt"
	"iter"

	"github.com/podbuf/podbuf/byteview"
	"github.com/podbuf/podbuf/errs"
)

// Set is a collection of unique pod elements embedded in a reserved span of
// a caller buffer, kept sorted ascending at all times. It is a Sequence with
// ordered, duplicate-free inserts; membership tests are binary searches.
type Set[T Comparer[T]] struct {
	seq *Sequence[T]
}

// NewSet views region as an existing set and validates the region framing
// (see NewSequence). Element order is the writer's invariant and is not
// re-verified element by element.
func NewSet[T Comparer[T]](region []byte) (*Set[T], error) {
	seq, err := NewSequence[T](region)
	if err != nil {
		return nil, err
	}

	return &Set[T]{seq: seq}, nil
}

// InitSet formats region as an empty set and returns a view of it.
func InitSet[T Comparer[T]](region []byte) (*Set[T], error) {
	seq, err := InitSequence[T](region)
	if err != nil {
		return nil, err
	}

	return &Set[T]{seq: seq}, nil
}

// SetAt views the reserved span [offset, offset+span) of buf as an existing
// set.
func SetAt[T Comparer[T]](buf []byte, offset, span int) (*Set[T], error) {
	region, err := byteview.Slice(buf, offset, span)
	if err != nil {
		return nil, err
	}

	return NewSet[T](region)
}

// InitSetAt formats the reserved span [offset, offset+span) of buf as an
// empty set.
func InitSetAt[T Comparer[T]](buf []byte, offset, span int) (*Set[T], error) {
	region, err := byteview.Slice(buf, offset, span)
	if err != nil {
		return nil, err
	}

	return InitSet[T](region)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.seq.Len() }

// Cap returns the number of elements the reserved span can hold.
func (s *Set[T]) Cap() int { return s.seq.Cap() }

// search locates v by binary search. It returns the element index and true
// when v is present, or the insertion point and false otherwise.
func (s *Set[T]) search(v T) (int, bool) {
	lo, hi := 0, s.seq.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := v.Compare(*s.seq.at(mid)); {
		case c == 0:
			return mid, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	return lo, false
}

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	_, found := s.search(v)
	return found
}

// Add inserts v at its ordered position. It returns false with a nil error
// when v is already present, and errs.ErrCapacityExceeded when the reserved
// span is full (the set is then unchanged).
func (s *Set[T]) Add(v T) (bool, error) {
	i, found := s.search(v)
	if found {
		return false, nil
	}

	if err := s.seq.Insert(i, v); err != nil {
		return false, fmt.Errorf("set add: %w", err)
	}

	return true, nil
}

// Remove deletes v. It returns errs.ErrKeyNotFound when v is absent.
func (s *Set[T]) Remove(v T) error {
	i, found := s.search(v)
	if !found {
		return errs.ErrKeyNotFound
	}

	_, err := s.seq.Remove(i)

	return err
}

// All returns an iterator over element copies in ascending order. The
// length is snapshotted at creation; the mutation contract of Sequence.All
// applies.
func (s *Set[T]) All() iter.Seq[T] {
	n := s.seq.Len()

	return func(yield func(T) bool) {
		for i := range n {
			if !yield(*s.seq.at(i)) {
				return
			}
		}
	}
}
