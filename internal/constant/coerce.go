// Released under an MIT license. See LICENSE.

package constant

import (
	"math"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

// Coerce returns t unchanged if it is numeric or one of the types in pass.
// Otherwise it returns the numeric equivalent of t: a string becomes its
// character codes and a range becomes a matrix.
//
// The result is a new handle, even when it shares t's representation.
func (t *T) Coerce(pass ...Type) *T {
	if t.IsNumericType() {
		return t.Copy()
	}

	for _, p := range pass {
		if t.rep.kind == p {
			return t.Copy()
		}
	}

	return handle(t.rep.makeNumeric())
}

// MakeNumeric converts t to a numeric value. A magic colon is a type
// mismatch.
func (t *T) MakeNumeric() *T {
	return t.Coerce()
}

// MakeNumericOrMagic is MakeNumeric but lets a magic colon through, for
// contexts where a subscript may select everything.
func (t *T) MakeNumericOrMagic() *T {
	return t.Coerce(MagicColon)
}

// MakeNumericOrRangeOrMagic is MakeNumericOrMagic but also lets a range
// through.
func (t *T) MakeNumericOrRangeOrMagic() *T {
	return t.Coerce(Range, MagicColon)
}

func (r *rep) makeNumeric() *rep {
	switch r.kind {
	case RealScalar:
		return scalarRep(r.scalar)
	case ComplexScalar:
		return complexRep(r.complexScalar)
	case RealMatrix:
		return matrixRep(r.matrix.Copy())
	case ComplexMatrix:
		return complexMatrixRep(r.complexMatrix.Copy())
	case String:
		return matrixRep(codes(r.str))
	case Range:
		return matrixRep(r.rng.Matrix())
	case MagicColon:
		fault.Raise(fault.TypeMismatch, "invalid conversion from magic colon to numeric value")
	}

	fault.Raise(fault.Undefined, "invalid use of undefined value")

	return nil
}

// ConvertToStr returns the string whose character codes are the elements
// of t, taken in column-major order.
func (t *T) ConvertToStr() *T {
	if t.IsString() {
		return t.Copy()
	}

	return handle(t.rep.convertToStr())
}

func (r *rep) convertToStr() *rep {
	if !r.kind.Numeric() && r.kind != Range {
		invalidConversion(r.kind, "string")
	}

	if r.isComplexType() {
		invalidConversion(r.kind, "string")
	}

	m := r.realValue(Strict, "string")

	b := make([]byte, m.Len())

	for k, v := range m.Data() {
		c := math.Round(v)
		if math.IsNaN(c) || c < 0 || c > 255 {
			fault.Raise(fault.TypeMismatch, "invalid character code %g", v)
		}

		b[k] = byte(c)
	}

	return stringRep(string(b))
}

// ConvertToRowOrColumnVector reshapes a matrix into a vector holding its
// elements in column-major order. The orientation recorded when the value
// was built decides between row and column. Vectors, scalars and empty
// values are left alone.
func (t *T) ConvertToRowOrColumnVector() {
	r := t.rep
	if !r.needsReshape() {
		return
	}

	t.unique()
	t.rep.convertToRowOrColumnVector()
}

func (r *rep) needsReshape() bool {
	switch r.kind {
	case RealMatrix:
		return !r.matrix.IsVector() && !r.matrix.IsEmpty()
	case ComplexMatrix:
		return !r.complexMatrix.IsVector() && !r.complexMatrix.IsEmpty()
	}

	return false
}

func reshape[E matrix.Elem](m *matrix.Dense[E], o Orientation) *matrix.Dense[E] {
	if resolve(o) == Column {
		return m.Reshape(m.Len(), 1)
	}

	return m.Reshape(1, m.Len())
}

func (r *rep) convertToRowOrColumnVector() {
	switch r.kind {
	case RealMatrix:
		r.matrix = reshape(r.matrix, r.orient)
	case ComplexMatrix:
		r.complexMatrix = reshape(r.complexMatrix, r.orient)
	}
}
