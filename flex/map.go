package flex

import (
	"fmt"
	"iter"

	"github.com/podbuf/podbuf/byteview"
	"github.com/podbuf/podbuf/errs"
)

// Comparer is the ordering constraint for map keys and set elements.
// Compare returns a negative value, zero, or a positive value when the
// receiver orders before, equal to, or after other. The pod wrapper types
// (Uint32, Int64, Str32, ...) all satisfy it.
type Comparer[K any] interface {
	Compare(other K) int
}

// Entry is a key-value pair stored by Map. It is pod whenever K and V are.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered key-value collection embedded in a reserved span of a
// caller buffer. It is a Sequence of Entry pairs kept strictly ascending by
// key at all times: no duplicates, lookups by binary search.
//
// It is a logic error to mutate a key in place (through Entries or a held
// view) in a way that changes its ordering; the resulting misbehavior is
// confined to this map but unspecified.
type Map[K Comparer[K], V any] struct {
	seq *Sequence[Entry[K, V]]
}

// NewMap views region as an existing map and validates the region framing
// (see NewSequence). Key order is the writer's invariant and is not
// re-verified element by element.
func NewMap[K Comparer[K], V any](region []byte) (*Map[K, V], error) {
	seq, err := NewSequence[Entry[K, V]](region)
	if err != nil {
		return nil, err
	}

	return &Map[K, V]{seq: seq}, nil
}

// InitMap formats region as an empty map and returns a view of it.
func InitMap[K Comparer[K], V any](region []byte) (*Map[K, V], error) {
	seq, err := InitSequence[Entry[K, V]](region)
	if err != nil {
		return nil, err
	}

	return &Map[K, V]{seq: seq}, nil
}

// MapAt views the reserved span [offset, offset+span) of buf as an existing
// map.
func MapAt[K Comparer[K], V any](buf []byte, offset, span int) (*Map[K, V], error) {
	region, err := byteview.Slice(buf, offset, span)
	if err != nil {
		return nil, err
	}

	return NewMap[K, V](region)
}

// InitMapAt formats the reserved span [offset, offset+span) of buf as an
// empty map.
func InitMapAt[K Comparer[K], V any](buf []byte, offset, span int) (*Map[K, V], error) {
	region, err := byteview.Slice(buf, offset, span)
	if err != nil {
		return nil, err
	}

	return InitMap[K, V](region)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.seq.Len() }

// Cap returns the number of entries the reserved span can hold.
func (m *Map[K, V]) Cap() int { return m.seq.Cap() }

// search locates key by binary search. It returns the entry index and true
// when the key exists, or the insertion point and false otherwise.
func (m *Map[K, V]) search(key K) (int, bool) {
	lo, hi := 0, m.seq.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := key.Compare(m.seq.at(mid).Key); {
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

// Get returns a view of the value stored under key, aliasing the buffer.
// It returns errs.ErrKeyNotFound when the key is absent.
func (m *Map[K, V]) Get(key K) (*V, error) {
	i, found := m.search(key)
	if !found {
		return nil, errs.ErrKeyNotFound
	}

	return &m.seq.at(i).Value, nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.search(key)
	return found
}

// Insert stores value under key. When the key already exists the value is
// overwritten in place and the previous value is returned with replaced set
// to true; no other entry moves. Otherwise the entry is inserted at its
// ordered position, which can fail with errs.ErrCapacityExceeded (the map is
// then unchanged).
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	i, found := m.search(key)
	if found {
		entry := m.seq.at(i)
		prev = entry.Value
		entry.Value = value

		return prev, true, nil
	}

	if err := m.seq.Insert(i, Entry[K, V]{Key: key, Value: value}); err != nil {
		return prev, false, fmt.Errorf("map insert: %w", err)
	}

	return prev, false, nil
}

// Remove deletes the entry under key and returns its value by copy. It
// returns errs.ErrKeyNotFound when the key is absent.
func (m *Map[K, V]) Remove(key K) (V, error) {
	i, found := m.search(key)
	if !found {
		var zero V
		return zero, errs.ErrKeyNotFound
	}

	entry, err := m.seq.Remove(i)
	if err != nil {
		var zero V
		return zero, err
	}

	return entry.Value, nil
}

// All returns an iterator over (key copy, value view) pairs in ascending key
// order. The length is snapshotted at creation; the mutation contract of
// Sequence.All applies.
func (m *Map[K, V]) All() iter.Seq2[K, *V] {
	n := m.seq.Len()

	return func(yield func(K, *V) bool) {
		for i := range n {
			entry := m.seq.at(i)
			if !yield(entry.Key, &entry.Value) {
				return
			}
		}
	}
}

// Entries returns an []Entry view of the current entries, aliasing the
// buffer. See the key mutation warning on Map.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	return m.seq.Elements()
}
