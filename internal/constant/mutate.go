// Released under an MIT license. See LICENSE.

package constant

import "github.com/michaelmacinnis/tc/internal/matrix"

// mutable returns true if maybeMutate would change r.
func (r *rep) mutable() bool {
	switch r.kind {
	case ComplexScalar:
		return imag(r.complexScalar) == 0
	case RealMatrix:
		return r.matrix.Rows() == 1 && r.matrix.Cols() == 1
	case ComplexMatrix:
		m := r.complexMatrix
		return (m.Rows() == 1 && m.Cols() == 1) || matrix.IsReal(m)
	}

	return false
}

// maybeMutate narrows r in place. A complex value with no imaginary part
// becomes real and a 1x1 matrix becomes a scalar. Ranges stay lazy.
// The caller must own r exclusively.
func (r *rep) maybeMutate() {
	switch r.kind {
	case ComplexScalar:
		if imag(r.complexScalar) == 0 {
			r.setScalar(real(r.complexScalar))
		}

	case ComplexMatrix:
		if matrix.IsReal(r.complexMatrix) {
			r.setMatrix(matrix.RealPart(r.complexMatrix))
		} else if r.complexMatrix.Rows() == 1 && r.complexMatrix.Cols() == 1 {
			r.setComplex(r.complexMatrix.Elem(0))
		}
	}

	if r.kind == RealMatrix && r.matrix.Rows() == 1 && r.matrix.Cols() == 1 {
		r.setScalar(r.matrix.Elem(0))
	}
}

// simplify narrows a freshly built r, which no other handle can see yet.
func simplify(r *rep) *rep {
	r.maybeMutate()

	return r
}
