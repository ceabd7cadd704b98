// Package pod implements validated zero-copy casts between byte slices and
// plain-old-data ("pod") types, plus the primitive wrapper types that make
// multi-byte values usable inside arbitrary buffer offsets.
//
// # Pod types
//
// A pod type has a fixed size, accepts every bit pattern of that size as a
// valid value, and contains no padding bytes. Such a type can be produced by
// reinterpreting any appropriately sized byte range and written back by
// copying its bytes verbatim. In Go terms podbuf additionally requires
// byte-level alignment, so a pod type is built only from uint8/int8, arrays
// of pod types, and structs of pod fields. Multi-byte numeric values use the
// wrapper types in this package (Uint32, Int64, Float64, ...), which store
// their payload as little-endian byte arrays and therefore carry no hardware
// alignment demands.
//
// Check verifies pod-ness once, at definition time:
//
//	type Account struct {
//	    Balance pod.Uint64
//	    Flags   pod.Bool
//	    Owner   [32]byte
//	}
//
//	func init() {
//	    if err := pod.Check[Account](); err != nil {
//	        panic(err)
//	    }
//	}
//
// After that, casts never inspect byte content; they fail only on length:
//
//	acct, err := pod.Cast[Account](buf[64 : 64+pod.Size[Account]()])
//
// # Aliasing contract
//
// Cast, CastSlice and Bytes return views that alias the input memory. The
// caller must not hold a mutable view together with any other view over
// overlapping bytes; podbuf performs no locking and no runtime borrow
// tracking.
package pod
