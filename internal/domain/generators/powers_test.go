package generators

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowersOfTwo_EmptyForNonPositive(t *testing.T) {
	assert.Empty(t, PowersOfTwo(0))
	assert.Empty(t, PowersOfTwo(-5))
}

func TestPowersOfTwo_FullCycle(t *testing.T) {
	values := PowersOfTwo(2098)
	require.Len(t, values, 2098)

	assert.Equal(t, math.SmallestNonzeroFloat64, values[0])
	assert.Equal(t, -0x1p-1073, values[1])
	assert.Equal(t, -0x1p1023, values[2097])

	for i, v := range values {
		frac, exp := math.Frexp(math.Abs(v))
		require.Equal(t, 0.5, frac, "index %d is not a power of two", i)
		require.Equal(t, -1074+i, exp-1)
	}
}

func TestPowersOfTwo_Wraps(t *testing.T) {
	values := PowersOfTwo(2100)

	// index 2098 restarts the exponent table with an even index, so positive.
	assert.Equal(t, math.SmallestNonzeroFloat64, values[2098])
	assert.Equal(t, -math.SmallestNonzeroFloat64*2, values[2099])
}

func TestPowersOfTwo_AlternatingSign(t *testing.T) {
	values := PowersOfTwo(2098)

	for i := 0; i+1 < len(values); i++ {
		require.NotEqual(t, math.Signbit(values[i]), math.Signbit(values[i+1]), "index %d", i)
	}
}

func TestPowersOfTen_OnePerExponent(t *testing.T) {
	values := PowersOfTen(617)
	require.Len(t, values, 617)

	for i, v := range values {
		e := -308 + i
		require.Equal(t, math.Float64bits(exactPow10(t, e)), math.Float64bits(math.Abs(v)), "exponent %d", e)
		require.Equal(t, i%2 == 1, math.Signbit(v), "sign at exponent %d", e)
	}

	assert.Equal(t, 1.0, values[308])
	assert.False(t, math.Signbit(values[0]))
	assert.False(t, math.Signbit(values[616]))
}

func TestPowersOfTen_EmptyForNonPositive(t *testing.T) {
	assert.Empty(t, PowersOfTen(0))
	assert.Empty(t, PowersOfTen(-1))
}

func TestPowers_LengthAndFiniteProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	finite := func(values []float64) bool {
		for _, v := range values {
			if !isFinite(v) || v == 0 {
				return false
			}
		}

		return true
	}

	properties.Property("len(PowersOfTwo(n)) == n and all finite", prop.ForAll(
		func(n int) bool {
			values := PowersOfTwo(n)
			return len(values) == n && finite(values)
		},
		gen.IntRange(0, 6000),
	))

	properties.Property("len(PowersOfTen(n)) == n and all finite", prop.ForAll(
		func(n int) bool {
			values := PowersOfTen(n)
			return len(values) == n && finite(values)
		},
		gen.IntRange(0, 2000),
	))

	properties.TestingRun(t)
}
