// Released under an MIT license. See LICENSE.

package constant

import (
	"sync/atomic"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
	"github.com/michaelmacinnis/tc/internal/prefs"
)

// rep is the shared representation behind one or more handles. Only the
// field for the active type is meaningful.
type rep struct {
	count int
	kind  Type

	scalar        float64
	complexScalar complex128
	matrix        *matrix.Real
	complexMatrix *matrix.Complex
	str           string
	rng           matrix.Range

	// Orientation recorded when the value was built from a vector.
	orient Orientation

	// Source text for the literal this value was built from.
	text string
}

//nolint:gochecknoglobals
var allocated, released atomic.Int64

// Stats returns the number of representations allocated and released.
func Stats() (alloc, free int64) {
	return allocated.Load(), released.Load()
}

// Live returns the number of representations that have not been released.
func Live() int64 {
	return allocated.Load() - released.Load()
}

func newRep(kind Type) *rep {
	allocated.Add(1)

	return &rep{count: 1, kind: kind}
}

func scalarRep(d float64) *rep {
	r := newRep(Unknown)
	r.setScalar(d)

	return r
}

func matrixRep(m *matrix.Real) *rep {
	r := newRep(Unknown)
	r.setMatrix(m)

	return r
}

func complexRep(c complex128) *rep {
	r := newRep(Unknown)
	r.setComplex(c)

	return r
}

func complexMatrixRep(m *matrix.Complex) *rep {
	r := newRep(Unknown)
	r.setComplexMatrix(m)

	return r
}

func stringRep(s string) *rep {
	r := newRep(Unknown)
	r.setString(s)

	return r
}

func rangeRep(rng matrix.Range) *rep {
	r := newRep(Unknown)
	r.setRange(rng)

	return r
}

// The setters below change the active type of r in place. The reference
// count, orientation and source text are left alone.

func (r *rep) clear(kind Type) {
	r.kind = kind
	r.scalar = 0
	r.complexScalar = 0
	r.matrix = nil
	r.complexMatrix = nil
	r.str = ""
	r.rng = matrix.Range{}
}

func (r *rep) setScalar(d float64) {
	r.clear(RealScalar)
	r.scalar = d
}

func (r *rep) setMatrix(m *matrix.Real) {
	r.clear(RealMatrix)
	r.matrix = m
}

func (r *rep) setComplex(c complex128) {
	r.clear(ComplexScalar)
	r.complexScalar = c
}

func (r *rep) setComplexMatrix(m *matrix.Complex) {
	r.clear(ComplexMatrix)
	r.complexMatrix = m
}

func (r *rep) setString(s string) {
	r.clear(String)
	r.str = s
}

func (r *rep) setRange(rng matrix.Range) {
	r.clear(Range)
	r.rng = rng
}

func resolve(o Orientation) Orientation {
	if o != Preferred {
		return o
	}

	if prefs.Current().PreferColumnVectors {
		return Column
	}

	return Row
}

func vector[E matrix.Elem](v []E, o Orientation) *matrix.Dense[E] {
	if resolve(o) == Column {
		return matrix.FromColumn(v)
	}

	return matrix.FromRow(v)
}

// clone returns an unshared deep copy of r.
func (r *rep) clone() *rep {
	c := newRep(r.kind)

	c.scalar = r.scalar
	c.complexScalar = r.complexScalar
	c.str = r.str
	c.rng = r.rng
	c.orient = r.orient
	c.text = r.text

	if r.matrix != nil {
		c.matrix = r.matrix.Copy()
	}

	if r.complexMatrix != nil {
		c.complexMatrix = r.complexMatrix.Copy()
	}

	return c
}

func (r *rep) release() {
	released.Add(1)

	r.matrix = nil
	r.complexMatrix = nil
}

func (r *rep) rows() int {
	switch r.kind {
	case Unknown:
		return 0
	case RealScalar, ComplexScalar, String, Range:
		return 1
	case RealMatrix:
		return r.matrix.Rows()
	case ComplexMatrix:
		return r.complexMatrix.Rows()
	}

	fault.Raise(fault.IllegalState, "invalid use of colon")

	return 0
}

func (r *rep) columns() int {
	switch r.kind {
	case Unknown:
		return 0
	case RealScalar, ComplexScalar:
		return 1
	case RealMatrix:
		return r.matrix.Cols()
	case ComplexMatrix:
		return r.complexMatrix.Cols()
	case String:
		return len(r.str)
	case Range:
		return r.rng.Len()
	}

	fault.Raise(fault.IllegalState, "invalid use of colon")

	return 0
}

func (r *rep) isComplexType() bool {
	return r.kind == ComplexScalar || r.kind == ComplexMatrix
}

func (r *rep) isEmpty() bool {
	if r.kind == MagicColon || r.kind == Unknown {
		return false
	}

	return r.rows() == 0 || r.columns() == 0
}

func (r *rep) wrongType(name string) {
	fault.Raise(fault.TypeMismatch, "%s: wrong type argument '%s'", name, r.kind)
}
