package projection

import "github.com/aclements/go-moremath/vec"

// MapSlice maps every element of xs and returns a new slice of the same
// length and order.
func (p *Projection) MapSlice(xs []float64) []float64 {
	return vec.Map(p.Map, xs)
}

// ClippedSlice is the element-wise form of Clipped.
func (p *Projection) ClippedSlice(xs []float64) []float64 {
	return vec.Map(p.Clipped, xs)
}

// MapTo maps xs into dst without allocating.
// Panics if the lengths differ.
func (p *Projection) MapTo(dst, xs []float64) {
	if len(dst) != len(xs) {
		panic("projection: MapTo length mismatch")
	}

	for i, x := range xs {
		dst[i] = p.Map(x)
	}
}
