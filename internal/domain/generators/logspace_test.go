package generators

import (
	"errors"
	"math"
	"testing"

	"github.com/mouse-blink/hellfloat/internal/domain/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws, cycling when exhausted.
type scriptedSource struct {
	exps  []int
	fracs []float64
	signs []bool
	calls int
}

func (s *scriptedSource) IntRange(_, _ int) int {
	return s.exps[s.calls%len(s.exps)]
}

func (s *scriptedSource) Float64() float64 {
	return s.fracs[s.calls%len(s.fracs)]
}

func (s *scriptedSource) Bit() bool {
	v := s.signs[s.calls%len(s.signs)]
	s.calls++

	return v
}

func TestLogSpaceExtremes_ExactCountFinite(t *testing.T) {
	for _, n := range []int{0, 1, 10, 617, 5000} {
		values, err := LogSpaceExtremes(n, rng.New(123456789))
		require.NoError(t, err)
		require.Len(t, values, n)

		for _, v := range values {
			require.True(t, isFinite(v))

			mag := math.Abs(v)
			require.GreaterOrEqual(t, mag, 1e-308*0.999)
		}
	}
}

func TestLogSpaceExtremes_Deterministic(t *testing.T) {
	a, err := LogSpaceExtremes(1000, rng.New(5))
	require.NoError(t, err)

	b, err := LogSpaceExtremes(1000, rng.New(5))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLogSpaceExtremes_DrawsThreePerAttempt(t *testing.T) {
	stream := rng.New(1)

	_, err := LogSpaceExtremes(100, stream)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stream.Draws(), uint64(300))
	assert.Zero(t, stream.Draws()%3)
}

func TestLogSpaceExtremes_DiscardsOverflow(t *testing.T) {
	src := &scriptedSource{
		exps:  []int{308, 0},
		fracs: []float64{0.99, 0.5},
		signs: []bool{false, true},
	}

	values, err := LogSpaceExtremes(2, src)
	require.NoError(t, err)

	assert.Equal(t, []float64{-5.5, -5.5}, values)
	assert.Equal(t, 4, src.calls)
}

func TestLogSpaceExtremes_BudgetExhausted(t *testing.T) {
	src := &scriptedSource{
		exps:  []int{308},
		fracs: []float64{0.99},
		signs: []bool{false},
	}

	values, err := LogSpaceExtremes(3, src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetryBudgetExhausted))
	assert.Nil(t, values)
	assert.Equal(t, attemptBudget(3), src.calls)
}

func TestLogSpaceExtremes_SignsMixed(t *testing.T) {
	values, err := LogSpaceExtremes(2000, rng.New(77))
	require.NoError(t, err)

	negatives := 0
	for _, v := range values {
		if math.Signbit(v) {
			negatives++
		}
	}

	assert.Greater(t, negatives, 800)
	assert.Less(t, negatives, 1200)
}

func TestLogSpaceExtremes_LargestDrawStaysBelowTen(t *testing.T) {
	src := &scriptedSource{
		exps:  []int{0},
		fracs: []float64{1 - 0x1p-53},
		signs: []bool{false},
	}

	values, err := LogSpaceExtremes(1, src)
	require.NoError(t, err)

	assert.Equal(t, 10-0x1p-49, values[0])
	assert.Less(t, values[0], 10.0)
}
