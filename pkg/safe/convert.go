// Package safe provides helpers for numeric conversions with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type or a type derived from one.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint16 converts v to uint16.
func Uint16[T Integer](v T) (uint16, error) {
	if err := checkUnsigned(v, math.MaxUint16, "uint16"); err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// Uint32 converts v to uint32.
func Uint32[T Integer](v T) (uint32, error) {
	if err := checkUnsigned(v, math.MaxUint32, "uint32"); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if err := checkUnsigned(v, math.MaxUint64, "uint64"); err != nil {
		return 0, err
	}
	return uint64(v), nil
}

// Int64 converts v to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v < 0 {
		return int64(v), nil
	}
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit int64", ErrOutOfRange, v)
	}
	return int64(v), nil
}

func checkUnsigned[T Integer](v T, limit uint64, target string) error {
	if v < 0 || uint64(v) > limit {
		return fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, target)
	}
	return nil
}
