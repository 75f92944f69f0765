// Released under an MIT license. See LICENSE.

package constant

import (
	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

// bumpValue adds the operator's delta to every element of r. The caller
// must own r exclusively.
func (r *rep) bumpValue(b Bump) {
	d := b.Delta()

	switch r.kind {
	case RealScalar:
		r.scalar += d
	case ComplexScalar:
		r.complexScalar += complex(d, 0)
	case RealMatrix:
		r.matrix = matrix.Map(r.matrix, func(v float64) float64 {
			return v + d
		})
	case ComplexMatrix:
		r.complexMatrix = matrix.Map(r.complexMatrix, func(v complex128) complex128 {
			return v + complex(d, 0)
		})
	case Range:
		r.rng = r.rng.Shift(d)
	case String:
		fault.Raise(fault.TypeMismatch, "operator %s: wrong type argument 'string'", b)
	case MagicColon:
		fault.Raise(fault.IllegalState, "operator %s: invalid use of colon", b)
	default:
		fault.Raise(fault.Undefined, "operator %s: value is undefined", b)
	}

	r.text = ""
}
