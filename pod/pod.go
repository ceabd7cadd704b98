package pod

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/podbuf/podbuf/errs"
)

// Size returns the in-buffer size of T in bytes.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Check verifies that T qualifies as plain-old-data: fixed non-zero size,
// byte-level alignment, no padding, and no reference kinds (pointers,
// slices, maps, strings, channels, funcs, interfaces). Multi-byte numeric
// kinds are rejected as well; use the wrapper types (Uint32, Int64, ...)
// so that layout stays alignment-free and endian-stable.
//
// Check walks the type once with reflection. It is meant to run at
// definition time (init functions or tests), never per cast.
func Check[T any]() error {
	t := reflect.TypeFor[T]()
	if t.Size() == 0 {
		return fmt.Errorf("%w: %s has zero size", errs.ErrNotPod, t)
	}

	return checkType(t)
}

func checkType(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Uint8, reflect.Int8:
		return nil
	case reflect.Array:
		return checkType(t.Elem())
	case reflect.Struct:
		var fieldSum uintptr
		for i := range t.NumField() {
			field := t.Field(i)
			if err := checkType(field.Type); err != nil {
				return fmt.Errorf("field %s.%s: %w", t, field.Name, err)
			}
			fieldSum += field.Type.Size()
		}
		// All fields are alignment-1, so any difference is padding.
		if fieldSum != t.Size() {
			return fmt.Errorf("%w: struct %s contains %d padding byte(s)",
				errs.ErrNotPod, t, t.Size()-fieldSum)
		}

		return nil
	default:
		return fmt.Errorf("%w: kind %s requires a pod wrapper type", errs.ErrNotPod, t.Kind())
	}
}

// Cast reinterprets data as a *T aliasing the same memory.
//
// It returns errs.ErrSizeMismatch unless len(data) == Size[T](). Byte
// content is never inspected: for a pod type every bit pattern is valid,
// so casting fails only on length.
func Cast[T any](data []byte) (*T, error) {
	if len(data) != Size[T]() {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrSizeMismatch, len(data), Size[T]())
	}

	return (*T)(unsafe.Pointer(unsafe.SliceData(data))), nil
}

// CastSlice reinterprets data as a []T aliasing the same memory.
//
// It returns errs.ErrSizeMismatch unless len(data) is an exact multiple of
// Size[T](). An empty slice yields a nil []T.
func CastSlice[T any](data []byte) ([]T, error) {
	size := Size[T]()
	if size == 0 || len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", errs.ErrSizeMismatch, len(data), size)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), len(data)/size), nil
}

// Bytes returns the byte representation of *v, aliasing v's memory.
//
// Mutating the returned slice mutates v and vice versa. The slice is valid
// for as long as v is.
func Bytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), Size[T]())
}
