package generators

import m "github.com/mouse-blink/hellfloat/internal/model"

// NearPow10Exponents are the decimal exponents whose neighbourhoods are probed.
var NearPow10Exponents = []int{-308, -200, -100, -50, -10, -1, 0, 1, 10, 50, 100, 200, 308}

// NearPow10Deltas returns the relative offsets applied to each power of ten.
func NearPow10Deltas() []float64 {
	return []float64{-Epsilon, -Epsilon / 2, Epsilon / 2, Epsilon}
}

// NearPowersOfTen returns exactly n finite values just below or above powers
// of ten, ±10^e × (1 + δ).
//
// A counter i picks e = NearPow10Exponents[i mod 13] and
// δ = NearPow10Deltas()[(i div 13) mod 4], so all 52 pairs are visited before
// any repeats; the sign follows the parity of i. Non-finite products are
// skipped but still advance the counter.
func NearPowersOfTen(n int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}

	deltas := NearPow10Deltas()
	numExp := len(NearPow10Exponents)
	numDelta := len(deltas)

	out := make([]float64, 0, n)
	budget := attemptBudget(n)

	for i := 0; len(out) < n; i++ {
		if i >= budget {
			return nil, budgetError(string(m.GeneratorNearPow10), n, len(out), i)
		}

		e := NearPow10Exponents[i%numExp]
		d := deltas[(i/numExp)%numDelta]

		val := alternatingSign(i) * PowerOfTen(e) * (1 + d)
		if !isFinite(val) {
			continue
		}

		out = append(out, val)
	}

	return out, nil
}
