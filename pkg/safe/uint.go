// Package safe provides checked numeric conversions.
package safe

import (
	"fmt"
	"math"
)

// Uint32 converts signed or unsigned integers to uint32, rejecting negative
// values and values above math.MaxUint32.
func Uint32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 || int64(value) > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case int64:
		if value < 0 || value > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case uint:
		if uint64(value) > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case uint32:
	case uint64:
		if value > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return uint32(v), nil
}
