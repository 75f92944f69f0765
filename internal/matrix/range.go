// Released under an MIT license. See LICENSE.

package matrix

import (
	"fmt"
	"math"
)

// Range is an arithmetic progression from Base toward Limit in steps of
// Inc. Its elements are computed on demand.
type Range struct {
	Base  float64
	Limit float64
	Inc   float64
}

// NewRange creates a new Range.
func NewRange(base, limit, inc float64) Range {
	return Range{Base: base, Limit: limit, Inc: inc}
}

// Len returns the number of elements in r.
func (r Range) Len() int {
	if r.Inc == 0 || math.IsNaN(r.Base) || math.IsNaN(r.Limit) || math.IsNaN(r.Inc) {
		return 0
	}

	if math.IsInf(r.Base, 0) || math.IsInf(r.Limit, 0) || math.IsInf(r.Inc, 0) {
		return 0
	}

	// Allow for rounding in the quotient so 0:0.1:0.3 has four elements.
	ct := 3.0 * epsilon
	t := (r.Limit - r.Base) / r.Inc
	n := math.Floor(t + math.Abs(t)*ct + 1)

	if n <= 0 {
		return 0
	}

	return int(n)
}

// Elem returns the i-th element of r.
func (r Range) Elem(i int) float64 {
	v := r.Base + float64(i)*r.Inc

	// The last element never steps past the limit.
	if (r.Inc > 0 && v > r.Limit) || (r.Inc < 0 && v < r.Limit) {
		return r.Limit
	}

	return v
}

// Min returns the smallest element of r. It is only meaningful when r is
// not empty.
func (r Range) Min() float64 {
	if r.Inc > 0 {
		return r.Base
	}

	return r.Elem(r.Len() - 1)
}

// Max returns the largest element of r. It is only meaningful when r is
// not empty.
func (r Range) Max() float64 {
	if r.Inc > 0 {
		return r.Elem(r.Len() - 1)
	}

	return r.Base
}

// Shift returns r with every element offset by d.
func (r Range) Shift(d float64) Range {
	return Range{Base: r.Base + d, Limit: r.Limit + d, Inc: r.Inc}
}

// Matrix returns the elements of r as a 1 x n matrix.
func (r Range) Matrix() *Real {
	n := r.Len()
	m := NewReal(1, n)

	for i := 0; i < n; i++ {
		m.SetElem(i, r.Elem(i))
	}

	return m
}

// String returns the range in base:inc:limit notation.
func (r Range) String() string {
	if r.Inc == 1 {
		return fmt.Sprintf("%g:%g", r.Base, r.Limit)
	}

	return fmt.Sprintf("%g:%g:%g", r.Base, r.Inc, r.Limit)
}

const epsilon = 2.220446049250313e-16
