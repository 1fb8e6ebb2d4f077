package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hellfloat/internal/domain/generators"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

func TestNewPlan_CatalogOnly(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{name: "empty", target: 0, want: 0},
		{name: "truncated catalog", target: 100, want: 100},
		{name: "full catalog", target: 1024, want: 1024},
		{name: "negative clamps to zero", target: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan(tt.target, 9)

			require.Len(t, plan.Specs, 1)
			assert.Equal(t, m.GeneratorSpecial, plan.Specs[0].Kind)
			assert.Equal(t, tt.want, plan.Specs[0].Count)
			assert.Equal(t, tt.want, plan.Target)
			assert.Equal(t, uint64(9), plan.Seed)
		})
	}
}

func TestNewPlan_DefaultTarget(t *testing.T) {
	plan := NewPlan(1_000_000, 123456789)

	want := []m.GeneratorSpec{
		{Kind: m.GeneratorSpecial, Count: 1024},
		{Kind: m.GeneratorPow2, Count: 199795},
		{Kind: m.GeneratorPow10, Count: 199795},
		{Kind: m.GeneratorLogSpace, Count: 199795},
		{Kind: m.GeneratorSubnormal, Count: 199795},
		{Kind: m.GeneratorNearPow10, Count: 199796},
	}

	assert.Equal(t, want, plan.Specs)
	assert.Equal(t, 1_000_000, plan.Total())
	assert.Equal(t, 199796, plan.Count(m.GeneratorNearPow10))
}

func TestNewPlan_OrderMatchesGeneratorOrder(t *testing.T) {
	plan := NewPlan(generators.CatalogSize+5, 1)

	require.Len(t, plan.Specs, len(m.GeneratorOrder))

	for i, spec := range plan.Specs {
		assert.Equal(t, m.GeneratorOrder[i], spec.Kind)
	}

	assert.Equal(t, 1, plan.Count(m.GeneratorPow2))
}

func TestNewPlan_TotalEqualsTarget(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("plan total equals clamped target", prop.ForAll(
		func(target int) bool {
			return NewPlan(target, 0).Total() == max(target, 0)
		},
		gen.IntRange(-10, 5_000_000),
	))

	properties.TestingRun(t)
}
