package pod

import (
	"fmt"

	"github.com/podbuf/podbuf/errs"
)

// Length-prefixed string views. Unlike the fixed Str types these are not pod
// values themselves: they are variable-size views over a caller slice whose
// first 1 or 2 bytes hold the string length. The view aliases the caller
// slice; writes through CopyString mutate it in place.

// U8PrefixStr is a string view whose length is a leading uint8.
type U8PrefixStr struct {
	value []byte
}

// U8PrefixStrAt views data as a u8-length-prefixed string. It returns
// errs.ErrOutOfBounds when data is shorter than the prefix plus the recorded
// length.
func U8PrefixStrAt(data []byte) (U8PrefixStr, error) {
	if len(data) < 1 {
		return U8PrefixStr{}, fmt.Errorf("%w: missing u8 length prefix", errs.ErrOutOfBounds)
	}
	n := int(data[0])
	if 1+n > len(data) {
		return U8PrefixStr{}, fmt.Errorf("%w: prefix length %d exceeds %d available bytes",
			errs.ErrOutOfBounds, n, len(data)-1)
	}

	return U8PrefixStr{value: data[1 : 1+n]}, nil
}

// MakeU8PrefixStr claims all of data for a u8-length-prefixed string: the
// prefix is set to len(data)-1 and the remainder becomes the string storage.
func MakeU8PrefixStr(data []byte) (U8PrefixStr, error) {
	if len(data) < 1 {
		return U8PrefixStr{}, fmt.Errorf("%w: missing u8 length prefix", errs.ErrOutOfBounds)
	}
	n := len(data) - 1
	if n > 0xFF {
		return U8PrefixStr{}, fmt.Errorf("%w: %d bytes exceed u8 prefix range", errs.ErrSizeMismatch, n)
	}
	data[0] = byte(n)

	return U8PrefixStr{value: data[1 : 1+n]}, nil
}

// String returns the string content.
func (s U8PrefixStr) String() string { return string(s.value) }

// Len returns the string length in bytes, excluding the prefix.
func (s U8PrefixStr) Len() int { return len(s.value) }

// Size returns the total view size in bytes, prefix included.
func (s U8PrefixStr) Size() int { return 1 + len(s.value) }

// CopyString copies v into the string storage in place, truncating to the
// storage size and zero-filling the tail.
func (s U8PrefixStr) CopyString(v string) { setFixedStr(s.value, v) }

// U16PrefixStr is a string view whose length is a leading little-endian
// uint16.
type U16PrefixStr struct {
	value []byte
}

// U16PrefixStrAt views data as a u16-length-prefixed string. It returns
// errs.ErrOutOfBounds when data is shorter than the prefix plus the recorded
// length.
func U16PrefixStrAt(data []byte) (U16PrefixStr, error) {
	if len(data) < 2 {
		return U16PrefixStr{}, fmt.Errorf("%w: missing u16 length prefix", errs.ErrOutOfBounds)
	}
	n := int(engine.Uint16(data[:2]))
	if 2+n > len(data) {
		return U16PrefixStr{}, fmt.Errorf("%w: prefix length %d exceeds %d available bytes",
			errs.ErrOutOfBounds, n, len(data)-2)
	}

	return U16PrefixStr{value: data[2 : 2+n]}, nil
}

// MakeU16PrefixStr claims all of data for a u16-length-prefixed string: the
// prefix is set to len(data)-2 and the remainder becomes the string storage.
func MakeU16PrefixStr(data []byte) (U16PrefixStr, error) {
	if len(data) < 2 {
		return U16PrefixStr{}, fmt.Errorf("%w: missing u16 length prefix", errs.ErrOutOfBounds)
	}
	n := len(data) - 2
	if n > 0xFFFF {
		return U16PrefixStr{}, fmt.Errorf("%w: %d bytes exceed u16 prefix range", errs.ErrSizeMismatch, n)
	}
	engine.PutUint16(data[:2], uint16(n))

	return U16PrefixStr{value: data[2 : 2+n]}, nil
}

// String returns the string content.
func (s U16PrefixStr) String() string { return string(s.value) }

// Len returns the string length in bytes, excluding the prefix.
func (s U16PrefixStr) Len() int { return len(s.value) }

// Size returns the total view size in bytes, prefix included.
func (s U16PrefixStr) Size() int { return 2 + len(s.value) }

// CopyString copies v into the string storage in place, truncating to the
// storage size and zero-filling the tail.
func (s U16PrefixStr) CopyString(v string) { setFixedStr(s.value, v) }
