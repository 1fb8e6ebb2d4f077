package generators

import (
	"math"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// PowersOfTwo returns exactly n values ±2^e, cycling e through every binary
// exponent in [-1074, 1023]. Even indices are positive, odd ones negative.
func PowersOfTwo(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	for i := range n {
		out[i] = math.Ldexp(alternatingSign(i), m.BinaryExponents.At(i))
	}

	return out
}

// PowersOfTen returns exactly n values ±10^e, cycling e through [-308, 308]
// with the same alternating sign as PowersOfTwo.
func PowersOfTen(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	for i := range n {
		out[i] = alternatingSign(i) * PowerOfTen(m.DecimalExponents.At(i))
	}

	return out
}
