package model

// Path represents a file system path.
type Path string

// Plan describes how a target count is partitioned across generators.
type Plan struct {
	Target int             `json:"target"`
	Seed   uint64          `json:"seed"`
	Specs  []GeneratorSpec `json:"generators"`
}

// Total returns the sum of all requested counts.
func (p Plan) Total() int {
	total := 0
	for _, spec := range p.Specs {
		total += spec.Count
	}

	return total
}

// Count returns the count requested from kind, or 0 when kind is not planned.
func (p Plan) Count(kind GeneratorKind) int {
	for _, spec := range p.Specs {
		if spec.Kind == kind {
			return spec.Count
		}
	}

	return 0
}

// Corpus is the final, shuffled sequence of values produced by one run.
type Corpus struct {
	Plan   Plan
	Values []float64
	// RandomDraws counts values consumed from the seeded stream.
	RandomDraws uint64
}

// Len returns the number of values in the corpus.
func (c Corpus) Len() int {
	return len(c.Values)
}

// ValueClass buckets a double by its IEEE 754 category.
type ValueClass string

const (
	// ClassZero is a signed zero.
	ClassZero ValueClass = "zero"
	// ClassSubnormal has an all-zero exponent field and a nonzero mantissa.
	ClassSubnormal ValueClass = "subnormal"
	// ClassNormal is any other finite value.
	ClassNormal ValueClass = "normal"
	// ClassNonFinite is NaN or an infinity. Never produced by a generator.
	ClassNonFinite ValueClass = "nonfinite"
)

// Summary is shown to the user once a run has completed.
type Summary struct {
	Output  Path
	Written int
	Bytes   int64
	SHA256  string
	Plan    Plan
	Classes map[ValueClass]int
}
