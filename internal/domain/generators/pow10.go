package generators

import (
	"strconv"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// pow10 holds the double nearest to 10^e for every e in m.DecimalExponents,
// indexed by e - m.DecimalExponents.Min. math.Pow10 is off by one ulp for a
// large share of these exponents; ParseFloat rounds correctly.
var pow10 = buildPow10Table()

func buildPow10Table() []float64 {
	table := make([]float64, m.DecimalExponents.Len())

	for i := range table {
		v, err := strconv.ParseFloat("1e"+strconv.Itoa(m.DecimalExponents.Min+i), 64)
		if err != nil {
			panic(err)
		}

		table[i] = v
	}

	return table
}

// PowerOfTen returns the double nearest to 10^e. It panics when e lies
// outside [-308, 308].
func PowerOfTen(e int) float64 {
	return pow10[e-m.DecimalExponents.Min]
}
