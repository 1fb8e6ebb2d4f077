package generators

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactPow10 rounds the exact rational 10^e to the nearest double.
func exactPow10(t *testing.T, e int) float64 {
	t.Helper()

	n := e
	if n < 0 {
		n = -n
	}

	r := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil))
	if e < 0 {
		r.Inv(r)
	}

	v, _ := r.Float64()

	return v
}

func TestPowerOfTen_CorrectlyRounded(t *testing.T) {
	for e := -308; e <= 308; e++ {
		require.Equal(t, math.Float64bits(exactPow10(t, e)), math.Float64bits(PowerOfTen(e)), "exponent %d", e)
	}
}

func TestPowerOfTen_KnownValues(t *testing.T) {
	assert.Equal(t, 1.0, PowerOfTen(0))
	assert.Equal(t, 1e-307, PowerOfTen(-307))
	assert.Equal(t, 1e23, PowerOfTen(23))
	assert.Equal(t, 1e308, PowerOfTen(308))
	assert.Equal(t, 1e-308, PowerOfTen(-308))
	assert.True(t, IsSubnormal(PowerOfTen(-308)))
}

func TestPowerOfTen_PanicsOutsideRange(t *testing.T) {
	assert.Panics(t, func() { PowerOfTen(309) })
	assert.Panics(t, func() { PowerOfTen(-309) })
}
