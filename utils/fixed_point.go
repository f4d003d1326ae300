// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// MaxBitDepth is the widest fixed-point sample FullScale accepts. Wider
// full scales can not be clamped exactly in a float64.
const MaxBitDepth = 32

// FullScale returns 2^(bitDepth-1), the magnitude one past the largest
// positive value of a signed bitDepth-bit integer. Depths outside
// [1, MaxBitDepth] return 1.
//
// Dividing a fixed-point sample by FullScale maps it into [-1, 1).
func FullScale(bitDepth int) float64 {
	if bitDepth <= 0 || bitDepth > MaxBitDepth {
		return 1
	}
	return math.Ldexp(1, bitDepth-1)
}

// IntToFloat converts a signed fixed-point sample into a float in [-1, 1).
func IntToFloat(v int, bitDepth int) float64 {
	return float64(v) / FullScale(bitDepth)
}

// FloatToInt converts a float sample into a signed bitDepth-bit integer.
// Values outside [-1, 1) are clamped to the representable range.
func FloatToInt(x float64, bitDepth int) int {
	scale := FullScale(bitDepth)
	v := math.Round(x * scale)

	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}

	return int(v)
}
