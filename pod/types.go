package pod

import (
	"cmp"
	"math"

	"github.com/podbuf/podbuf/endian"
)

// engine is the byte order for all wrapper type payloads.
var engine = endian.GetLittleEndianEngine()

// Bool is a single-byte boolean where 0 is false and any non-zero value is
// true. Every bit pattern is valid, so Bool is safe to cast from raw bytes.
type Bool uint8

// NewBool returns a Bool storing v.
func NewBool(v bool) Bool {
	if v {
		return Bool(1)
	}

	return Bool(0)
}

// Value returns the boolean interpretation of b.
func (b Bool) Value() bool { return b != 0 }

// Set stores v into b.
func (b *Bool) Set(v bool) { *b = NewBool(v) }

// Uint16 is an unsigned 16-bit integer stored as 2 little-endian bytes with
// byte alignment, making it usable at any buffer offset.
type Uint16 [2]byte

// NewUint16 returns a Uint16 storing v.
func NewUint16(v uint16) Uint16 {
	var u Uint16
	u.Set(v)

	return u
}

// Value returns the stored integer.
func (u Uint16) Value() uint16 { return engine.Uint16(u[:]) }

// Set stores v.
func (u *Uint16) Set(v uint16) { engine.PutUint16(u[:], v) }

// Compare returns -1, 0 or 1 ordering u against other by integer value.
func (u Uint16) Compare(other Uint16) int { return cmp.Compare(u.Value(), other.Value()) }

// Uint32 is an unsigned 32-bit integer stored as 4 little-endian bytes with
// byte alignment.
type Uint32 [4]byte

// NewUint32 returns a Uint32 storing v.
func NewUint32(v uint32) Uint32 {
	var u Uint32
	u.Set(v)

	return u
}

// Value returns the stored integer.
func (u Uint32) Value() uint32 { return engine.Uint32(u[:]) }

// Set stores v.
func (u *Uint32) Set(v uint32) { engine.PutUint32(u[:], v) }

// Compare returns -1, 0 or 1 ordering u against other by integer value.
func (u Uint32) Compare(other Uint32) int { return cmp.Compare(u.Value(), other.Value()) }

// Uint64 is an unsigned 64-bit integer stored as 8 little-endian bytes with
// byte alignment.
type Uint64 [8]byte

// NewUint64 returns a Uint64 storing v.
func NewUint64(v uint64) Uint64 {
	var u Uint64
	u.Set(v)

	return u
}

// Value returns the stored integer.
func (u Uint64) Value() uint64 { return engine.Uint64(u[:]) }

// Set stores v.
func (u *Uint64) Set(v uint64) { engine.PutUint64(u[:], v) }

// Compare returns -1, 0 or 1 ordering u against other by integer value.
func (u Uint64) Compare(other Uint64) int { return cmp.Compare(u.Value(), other.Value()) }

// Int16 is a signed 16-bit integer stored as 2 little-endian bytes with
// byte alignment.
type Int16 [2]byte

// NewInt16 returns an Int16 storing v.
func NewInt16(v int16) Int16 {
	var i Int16
	i.Set(v)

	return i
}

// Value returns the stored integer.
func (i Int16) Value() int16 { return int16(engine.Uint16(i[:])) }

// Set stores v.
func (i *Int16) Set(v int16) { engine.PutUint16(i[:], uint16(v)) }

// Compare returns -1, 0 or 1 ordering i against other by integer value.
func (i Int16) Compare(other Int16) int { return cmp.Compare(i.Value(), other.Value()) }

// Int32 is a signed 32-bit integer stored as 4 little-endian bytes with
// byte alignment.
type Int32 [4]byte

// NewInt32 returns an Int32 storing v.
func NewInt32(v int32) Int32 {
	var i Int32
	i.Set(v)

	return i
}

// Value returns the stored integer.
func (i Int32) Value() int32 { return int32(engine.Uint32(i[:])) }

// Set stores v.
func (i *Int32) Set(v int32) { engine.PutUint32(i[:], uint32(v)) }

// Compare returns -1, 0 or 1 ordering i against other by integer value.
func (i Int32) Compare(other Int32) int { return cmp.Compare(i.Value(), other.Value()) }

// Int64 is a signed 64-bit integer stored as 8 little-endian bytes with
// byte alignment.
type Int64 [8]byte

// NewInt64 returns an Int64 storing v.
func NewInt64(v int64) Int64 {
	var i Int64
	i.Set(v)

	return i
}

// Value returns the stored integer.
func (i Int64) Value() int64 { return int64(engine.Uint64(i[:])) }

// Set stores v.
func (i *Int64) Set(v int64) { engine.PutUint64(i[:], uint64(v)) }

// Compare returns -1, 0 or 1 ordering i against other by integer value.
func (i Int64) Compare(other Int64) int { return cmp.Compare(i.Value(), other.Value()) }

// Float32 is an IEEE-754 single-precision float stored as 4 little-endian
// bytes with byte alignment.
type Float32 [4]byte

// NewFloat32 returns a Float32 storing v.
func NewFloat32(v float32) Float32 {
	var f Float32
	f.Set(v)

	return f
}

// Value returns the stored float.
func (f Float32) Value() float32 { return math.Float32frombits(engine.Uint32(f[:])) }

// Set stores v.
func (f *Float32) Set(v float32) { engine.PutUint32(f[:], math.Float32bits(v)) }

// Compare returns -1, 0 or 1 ordering f against other by float value.
// NaN orders below -Inf, matching cmp.Compare.
func (f Float32) Compare(other Float32) int { return cmp.Compare(f.Value(), other.Value()) }

// Float64 is an IEEE-754 double-precision float stored as 8 little-endian
// bytes with byte alignment.
type Float64 [8]byte

// NewFloat64 returns a Float64 storing v.
func NewFloat64(v float64) Float64 {
	var f Float64
	f.Set(v)

	return f
}

// Value returns the stored float.
func (f Float64) Value() float64 { return math.Float64frombits(engine.Uint64(f[:])) }

// Set stores v.
func (f *Float64) Set(v float64) { engine.PutUint64(f[:], math.Float64bits(v)) }

// Compare returns -1, 0 or 1 ordering f against other by float value.
// NaN orders below -Inf, matching cmp.Compare.
func (f Float64) Compare(other Float64) int { return cmp.Compare(f.Value(), other.Value()) }
