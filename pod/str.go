package pod

import "bytes"

// Fixed-size string wrappers. Each is a NUL-padded byte array: the string
// value runs up to the first zero byte (or the full array when no zero byte
// is present). Any bit pattern is valid, so the wrappers are castable from
// raw bytes; content longer than the array is truncated on Set.

func fixedStr(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}

	return string(b)
}

func setFixedStr(dst []byte, v string) {
	n := copy(dst, v)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Str8 is a fixed 8-byte NUL-padded string.
type Str8 [8]byte

// NewStr8 returns a Str8 storing v, truncated to 8 bytes.
func NewStr8(v string) Str8 {
	var s Str8
	s.SetString(v)

	return s
}

// String returns the stored string up to the first NUL byte.
func (s Str8) String() string { return fixedStr(s[:]) }

// SetString stores v, truncating to the array size and zero-filling the tail.
func (s *Str8) SetString(v string) { setFixedStr(s[:], v) }

// Compare orders s against other by raw byte content.
func (s Str8) Compare(other Str8) int { return bytes.Compare(s[:], other[:]) }

// Str16 is a fixed 16-byte NUL-padded string.
type Str16 [16]byte

// NewStr16 returns a Str16 storing v, truncated to 16 bytes.
func NewStr16(v string) Str16 {
	var s Str16
	s.SetString(v)

	return s
}

// String returns the stored string up to the first NUL byte.
func (s Str16) String() string { return fixedStr(s[:]) }

// SetString stores v, truncating to the array size and zero-filling the tail.
func (s *Str16) SetString(v string) { setFixedStr(s[:], v) }

// Compare orders s against other by raw byte content.
func (s Str16) Compare(other Str16) int { return bytes.Compare(s[:], other[:]) }

// Str32 is a fixed 32-byte NUL-padded string.
type Str32 [32]byte

// NewStr32 returns a Str32 storing v, truncated to 32 bytes.
func NewStr32(v string) Str32 {
	var s Str32
	s.SetString(v)

	return s
}

// String returns the stored string up to the first NUL byte.
func (s Str32) String() string { return fixedStr(s[:]) }

// SetString stores v, truncating to the array size and zero-filling the tail.
func (s *Str32) SetString(v string) { setFixedStr(s[:], v) }

// Compare orders s against other by raw byte content.
func (s Str32) Compare(other Str32) int { return bytes.Compare(s[:], other[:]) }

// Str64 is a fixed 64-byte NUL-padded string.
type Str64 [64]byte

// NewStr64 returns a Str64 storing v, truncated to 64 bytes.
func NewStr64(v string) Str64 {
	var s Str64
	s.SetString(v)

	return s
}

// String returns the stored string up to the first NUL byte.
func (s Str64) String() string { return fixedStr(s[:]) }

// SetString stores v, truncating to the array size and zero-filling the tail.
func (s *Str64) SetString(v string) { setFixedStr(s[:], v) }

// Compare orders s against other by raw byte content.
func (s Str64) Compare(other Str64) int { return bytes.Compare(s[:], other[:]) }
