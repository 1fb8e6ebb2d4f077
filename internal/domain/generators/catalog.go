package generators

// SpecialRepeat is how many times each catalog constant is repeated.
const SpecialRepeat = 64

// Special is a named boundary constant.
type Special struct {
	Name string
	Bits uint64
}

// Value returns the constant as a double.
func (s Special) Value() float64 {
	return BitsToDouble(s.Bits)
}

const (
	bitsOne       uint64 = 0x3FF0000000000000
	bitsTen       uint64 = 0x4024000000000000
	bitsTenth     uint64 = 0x3FB999999999999A
	bitsMax       uint64 = 0x7FEFFFFFFFFFFFFF
	bitsMinNormal uint64 = 0x0010000000000000
	bitsMinSub    uint64 = 0x0000000000000001
	bitsEpsilon   uint64 = 0x3CB0000000000000 // 2^-52
)

var catalog = []Special{
	{Name: "+0", Bits: 0},
	{Name: "-0", Bits: signMask},
	{Name: "+1", Bits: bitsOne},
	{Name: "-1", Bits: signMask | bitsOne},
	{Name: "+10", Bits: bitsTen},
	{Name: "-10", Bits: signMask | bitsTen},
	{Name: "+0.1", Bits: bitsTenth},
	{Name: "-0.1", Bits: signMask | bitsTenth},
	{Name: "+max", Bits: bitsMax},
	{Name: "-max", Bits: signMask | bitsMax},
	{Name: "+min_normal", Bits: bitsMinNormal},
	{Name: "-min_normal", Bits: signMask | bitsMinNormal},
	{Name: "+min_subnormal", Bits: bitsMinSub},
	{Name: "-min_subnormal", Bits: signMask | bitsMinSub},
	{Name: "+epsilon", Bits: bitsEpsilon},
	{Name: "-epsilon", Bits: signMask | bitsEpsilon},
}

// Catalog returns the named constants in catalog order.
func Catalog() []Special {
	out := make([]Special, len(catalog))
	copy(out, catalog)

	return out
}

// CatalogSize is the length of SpecialCore.
var CatalogSize = len(catalog) * SpecialRepeat

// Epsilon is the machine epsilon, 2^-52.
var Epsilon = BitsToDouble(bitsEpsilon)

// SpecialCore returns every catalog constant repeated SpecialRepeat times,
// in catalog order.
func SpecialCore() []float64 {
	out := make([]float64, 0, CatalogSize)
	for _, s := range catalog {
		v := s.Value()
		for range SpecialRepeat {
			out = append(out, v)
		}
	}

	return out
}
