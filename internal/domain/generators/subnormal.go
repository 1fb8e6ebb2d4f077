package generators

// Subnormals returns exactly n distinct subnormal doubles (for n < 2^52).
//
// The mantissa steps across [1, 2^52-1] with stride max(1, (2^52-1)/n), the
// exponent field is zero and the sign bit alternates with the index.
func Subnormals(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	step := MaxMantissa / uint64(n)
	if step == 0 {
		step = 1
	}

	out := make([]float64, n)
	for i := range n {
		mant := 1 + (uint64(i)*step)%MaxMantissa
		out[i] = BitsToDouble(Pack(uint64(i&1), 0, mant))
	}

	return out
}
