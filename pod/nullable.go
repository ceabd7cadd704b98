package pod

// Nullable represents an optional value of T without spending an extra byte
// on a presence flag: the zero value of T means absent. Use it only when the
// zero value is genuinely unrepresentable as real data (an all-zero owner
// key, a zero id, ...).
//
// Nullable[T] has the same size and layout as T, so it is pod whenever T is.
type Nullable[T comparable] struct {
	value T
}

// Some returns a Nullable holding v. If v is the zero value the result is
// indistinguishable from None.
func Some[T comparable](v T) Nullable[T] {
	return Nullable[T]{value: v}
}

// None returns an absent Nullable.
func None[T comparable]() Nullable[T] {
	return Nullable[T]{}
}

// IsNone reports whether the value is absent.
func (n Nullable[T]) IsNone() bool {
	var zero T
	return n.value == zero
}

// IsSome reports whether a value is present.
func (n Nullable[T]) IsSome() bool { return !n.IsNone() }

// Value returns the contained value and whether it is present.
func (n Nullable[T]) Value() (T, bool) {
	return n.value, n.IsSome()
}

// Set stores v.
func (n *Nullable[T]) Set(v T) { n.value = v }

// Clear resets the value to absent.
func (n *Nullable[T]) Clear() {
	var zero T
	n.value = zero
}
