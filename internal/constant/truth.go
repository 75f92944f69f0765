// Released under an MIT license. See LICENSE.

package constant

import (
	"math"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

func (r *rep) guard(op string) {
	switch r.kind {
	case MagicColon:
		fault.Raise(fault.IllegalState, "%s: invalid use of colon", op)
	case Unknown:
		fault.Raise(fault.Undefined, "%s: value is undefined", op)
	}
}

func (r *rep) isTrue() bool {
	r.guard("if")

	switch r.kind {
	case RealScalar:
		return r.scalar != 0
	case ComplexScalar:
		return r.complexScalar != 0
	}

	if r.isEmpty() {
		fault.Raise(fault.Shape, "empty matrix in conditional expression")
	}

	if r.isComplexType() {
		return allNonzero(r.complexMatrix.Data())
	}

	return allNonzero(r.realValue(ForceString, "real matrix").Data())
}

func allNonzero[E matrix.Elem](data []E) bool {
	for _, v := range data {
		if v == 0 {
			return false
		}
	}

	return true
}

// reduced wraps the result of a column reduction. Empty values reduce to
// an empty matrix.
func reduced(m *matrix.Real, empty bool) *rep {
	if empty {
		return matrixRep(matrix.NewReal(0, 0))
	}

	return simplify(matrixRep(m))
}

func (r *rep) all() *rep {
	r.guard("all")

	switch r.kind {
	case RealScalar:
		return scalarRep(truth(r.scalar != 0))
	case ComplexScalar:
		return scalarRep(truth(r.complexScalar != 0))
	case ComplexMatrix:
		return reduced(matrix.All(r.complexMatrix), r.isEmpty())
	}

	return reduced(matrix.All(r.realValue(ForceString, "real matrix")), r.isEmpty())
}

func (r *rep) any() *rep {
	r.guard("any")

	switch r.kind {
	case RealScalar:
		return scalarRep(truth(r.scalar != 0))
	case ComplexScalar:
		return scalarRep(truth(r.complexScalar != 0))
	case ComplexMatrix:
		return reduced(matrix.Any(r.complexMatrix), r.isEmpty())
	}

	return reduced(matrix.Any(r.realValue(ForceString, "real matrix")), r.isEmpty())
}

func truth(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func (r *rep) validAsScalarIndex() bool {
	var z complex128

	switch r.kind {
	case RealScalar:
		z = complex(r.scalar, 0)
	case ComplexScalar:
		z = r.complexScalar
	case RealMatrix:
		if r.matrix.Len() != 1 {
			return false
		}
		z = complex(r.matrix.Elem(0), 0)
	case ComplexMatrix:
		if r.complexMatrix.Len() != 1 {
			return false
		}
		z = r.complexMatrix.Elem(0)
	case String:
		return len(r.str) == 1
	case Range:
		if r.rng.Len() != 1 {
			return false
		}
		z = complex(r.rng.Base, 0)
	default:
		return false
	}

	d := real(z)

	return imag(z) == 0 && d >= 0 && d == math.Trunc(d) && !math.IsInf(d, 0)
}
