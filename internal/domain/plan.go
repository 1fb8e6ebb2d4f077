package domain

import (
	"github.com/mouse-blink/hellfloat/internal/domain/generators"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

// partitionedKinds share whatever the catalog leaves of the target.
var partitionedKinds = []m.GeneratorKind{
	m.GeneratorPow2,
	m.GeneratorPow10,
	m.GeneratorLogSpace,
	m.GeneratorSubnormal,
	m.GeneratorNearPow10,
}

// NewPlan partitions target across the generators.
//
// The catalog always comes first. When it alone meets the target it is
// truncated and nothing else runs. Otherwise the remainder is split into
// five equal parts and the last generator absorbs remaining mod 5.
// A negative target is treated as zero.
func NewPlan(target int, seed uint64) m.Plan {
	if target < 0 {
		target = 0
	}

	plan := m.Plan{Target: target, Seed: seed}

	if target <= generators.CatalogSize {
		plan.Specs = []m.GeneratorSpec{{Kind: m.GeneratorSpecial, Count: target}}

		return plan
	}

	remaining := target - generators.CatalogSize
	base := remaining / len(partitionedKinds)

	plan.Specs = make([]m.GeneratorSpec, 0, len(partitionedKinds)+1)
	plan.Specs = append(plan.Specs, m.GeneratorSpec{Kind: m.GeneratorSpecial, Count: generators.CatalogSize})

	assigned := 0
	for i, kind := range partitionedKinds {
		count := base
		if i == len(partitionedKinds)-1 {
			count = remaining - assigned
		}

		assigned += count
		plan.Specs = append(plan.Specs, m.GeneratorSpec{Kind: kind, Count: count})
	}

	return plan
}
