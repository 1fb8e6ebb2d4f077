// Package model defines the data structures for corpus generation.
package model

// GeneratorKind identifies one of the corpus generators.
type GeneratorKind string

const (
	// GeneratorSpecial represents the fixed catalog of named boundary constants.
	GeneratorSpecial GeneratorKind = "special"
	// GeneratorPow2 represents the power-of-two sweep over [-1074, 1023].
	GeneratorPow2 GeneratorKind = "pow2"
	// GeneratorPow10 represents the power-of-ten sweep over [-308, 308].
	GeneratorPow10 GeneratorKind = "pow10"
	// GeneratorLogSpace represents the seeded log-uniform extreme sampler.
	GeneratorLogSpace GeneratorKind = "logspace"
	// GeneratorSubnormal represents the mantissa-stepping subnormal generator.
	GeneratorSubnormal GeneratorKind = "subnormal"
	// GeneratorNearPow10 represents the near-power-of-ten rounding edge generator.
	GeneratorNearPow10 GeneratorKind = "nearpow10"
)

// GeneratorOrder is the fixed invocation order. Reproducibility of the
// shuffle depends on it.
var GeneratorOrder = []GeneratorKind{
	GeneratorSpecial,
	GeneratorPow2,
	GeneratorPow10,
	GeneratorLogSpace,
	GeneratorSubnormal,
	GeneratorNearPow10,
}

// GeneratorSpec pairs a generator with the number of values requested from it.
type GeneratorSpec struct {
	Kind  GeneratorKind `json:"kind" yaml:"kind"`
	Count int           `json:"count" yaml:"count"`
}

// ExponentRange is an inclusive [Min, Max] exponent range.
type ExponentRange struct {
	Min int
	Max int
}

// Len returns the number of exponents in the range.
func (r ExponentRange) Len() int {
	if r.Max < r.Min {
		return 0
	}

	return r.Max - r.Min + 1
}

// At returns the exponent for cycle index i, wrapping around the range.
func (r ExponentRange) At(i int) int {
	n := r.Len()
	if n == 0 {
		return r.Min
	}

	idx := i % n
	if idx < 0 {
		idx += n
	}

	return r.Min + idx
}

var (
	// BinaryExponents covers every power of two representable as a double,
	// subnormal ones included.
	BinaryExponents = ExponentRange{Min: -1074, Max: 1023}
	// DecimalExponents covers every power of ten inside the finite range.
	DecimalExponents = ExponentRange{Min: -308, Max: 308}
)
