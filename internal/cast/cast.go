package cast

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrFraction is returned when a floating-point value has a fractional part.
var ErrFraction = errors.New("cast: value has a fractional part")

// To converts v to the integer type I.
//
// Integer inputs are converted with safemath, which rejects values that do not
// fit I. Floats must be whole numbers. Other inputs are handed to cast.ToE.
func To[I Integer](v any) (I, error) {
	switch n := v.(type) {
	case float32:
		return fromFloat[I](float64(n))
	case float64:
		return fromFloat[I](n)
	}

	if isIntVal(v) {
		return safemath.ConvertAny[I](v)
	}

	return cast.ToE[I](v)
}

// fromFloat accepts whole floats only; JSON decoders hand every number over as
// float64.
func fromFloat[I Integer](f float64) (I, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		var zero I
		return zero, fmt.Errorf("%w: %v", ErrFraction, f)
	}

	if f < math.MinInt64 || f >= math.MaxUint64 {
		var zero I
		return zero, fmt.Errorf("%w: %v", safemath.ErrTruncation, f)
	}

	if f < 0 {
		return safemath.ConvertAny[I](int64(f))
	}

	return safemath.ConvertAny[I](uint64(f))
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
