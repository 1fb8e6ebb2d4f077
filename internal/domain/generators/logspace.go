package generators

import m "github.com/mouse-blink/hellfloat/internal/model"

// LogSpaceExtremes returns exactly n finite values mantissa × 10^e with e
// uniform over [-308, 308], mantissa uniform over [1, 10) and a random sign.
// The largest Float64 draw, 1 - 2^-53, yields the mantissa 10 - 2^-49.
//
// Each attempt draws exponent, mantissa and sign from src in that order.
// Draws that overflow are discarded. Only e = 308 with a mantissa above
// ~1.797 overflows, so the budget is never reached in practice.
func LogSpaceExtremes(n int, src Source) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}

	out := make([]float64, 0, n)
	budget := attemptBudget(n)

	attempts := 0
	for len(out) < n {
		if attempts >= budget {
			return nil, budgetError(string(m.GeneratorLogSpace), n, len(out), attempts)
		}

		attempts++

		exp10 := src.IntRange(m.DecimalExponents.Min, m.DecimalExponents.Max)
		mant := 1 + src.Float64()*9
		sign := 1.0
		if src.Bit() {
			sign = -1
		}

		x := sign * mant * PowerOfTen(exp10)
		if !isFinite(x) {
			continue
		}

		out = append(out, x)
	}

	return out, nil
}
