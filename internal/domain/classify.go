package domain

import (
	"math"

	"github.com/mouse-blink/hellfloat/internal/domain/generators"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

// Classify buckets v into its IEEE 754 category.
func Classify(v float64) m.ValueClass {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return m.ClassNonFinite
	case v == 0:
		return m.ClassZero
	case generators.IsSubnormal(v):
		return m.ClassSubnormal
	default:
		return m.ClassNormal
	}
}

// ClassCounts tallies the category of every value.
func ClassCounts(values []float64) map[m.ValueClass]int {
	counts := make(map[m.ValueClass]int, 4)
	for _, v := range values {
		counts[Classify(v)]++
	}

	return counts
}
