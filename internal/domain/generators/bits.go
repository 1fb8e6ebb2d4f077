// Package generators provides the value generators that make up a corpus.
package generators

import "math"

// IEEE 754 binary64 layout.
const (
	signShift    = 63
	exponentBits = 11
	mantissaBits = 52

	signMask     uint64 = 1 << signShift
	exponentMask uint64 = (1<<exponentBits - 1) << mantissaBits
	mantissaMask uint64 = 1<<mantissaBits - 1
)

// MaxMantissa is the largest value of the 52-bit mantissa field.
const MaxMantissa = mantissaMask

// BitsToDouble reinterprets a 64-bit pattern as a double.
func BitsToDouble(bits uint64) float64 {
	return math.Float64frombits(bits)
}

// DoubleToBits reinterprets a double as its 64-bit pattern.
func DoubleToBits(v float64) uint64 {
	return math.Float64bits(v)
}

// Pack assembles a bit pattern from its sign, biased exponent and mantissa
// fields. Each field is masked to its width.
func Pack(sign, exponent, mantissa uint64) uint64 {
	return (sign&1)<<signShift |
		(exponent<<mantissaBits)&exponentMask |
		mantissa&mantissaMask
}

// Unpack splits a bit pattern into its sign, biased exponent and mantissa fields.
func Unpack(bits uint64) (sign, exponent, mantissa uint64) {
	return bits >> signShift, (bits & exponentMask) >> mantissaBits, bits & mantissaMask
}

// IsSubnormal reports whether v has an all-zero exponent field and a nonzero mantissa.
func IsSubnormal(v float64) bool {
	_, exponent, mantissa := Unpack(DoubleToBits(v))

	return exponent == 0 && mantissa != 0
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// alternatingSign returns +1 for even i and -1 for odd i.
func alternatingSign(i int) float64 {
	if i&1 == 0 {
		return 1
	}

	return -1
}
