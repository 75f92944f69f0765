// Released under an MIT license. See LICENSE.

package constant

import (
	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

func invalidConversion(from Type, to string) {
	fault.Raise(fault.TypeMismatch, "invalid conversion from %s to %s", from, to)
}

func codes(s string) *matrix.Real {
	m := matrix.NewReal(1, len(s))
	for k := 0; k < len(s); k++ {
		m.SetElem(k, float64(s[k]))
	}

	return m
}

// realValue returns a new real matrix holding r's value.
func (r *rep) realValue(c Conversion, to string) *matrix.Real {
	switch r.kind {
	case RealScalar:
		return matrix.Reshaped([]float64{r.scalar}, 1, 1)
	case RealMatrix:
		return r.matrix.Copy()
	case ComplexScalar:
		if imag(r.complexScalar) == 0 {
			return matrix.Reshaped([]float64{real(r.complexScalar)}, 1, 1)
		}
	case ComplexMatrix:
		if matrix.IsReal(r.complexMatrix) {
			return matrix.RealPart(r.complexMatrix)
		}
	case String:
		if c.has(ForceString) {
			return codes(r.str)
		}
	case Range:
		return r.rng.Matrix()
	}

	invalidConversion(r.kind, to)

	return nil
}

// complexValue returns a new complex matrix holding r's value.
func (r *rep) complexValue(c Conversion, to string) *matrix.Complex {
	switch r.kind {
	case ComplexScalar:
		return matrix.Reshaped([]complex128{r.complexScalar}, 1, 1)
	case ComplexMatrix:
		return r.complexMatrix.Copy()
	case RealScalar, RealMatrix, String, Range:
		return matrix.ToComplex(r.realValue(c, to))
	}

	invalidConversion(r.kind, to)

	return nil
}

func single[E matrix.Elem](m *matrix.Dense[E], from Type, to string) E {
	if m.Len() != 1 {
		invalidConversion(from, to)
	}

	return m.Elem(0)
}

func (t *T) DoubleValue(c Conversion) float64 {
	r := t.rep
	if r.kind == RealScalar {
		return r.scalar
	}

	return single(r.realValue(c, "real scalar"), r.kind, "real scalar")
}

func (t *T) MatrixValue(c Conversion) *matrix.Real {
	return t.rep.realValue(c, "real matrix")
}

func (t *T) ComplexValue(c Conversion) complex128 {
	r := t.rep
	if r.kind == ComplexScalar {
		return r.complexScalar
	}

	return single(r.complexValue(c, "complex scalar"), r.kind, "complex scalar")
}

func (t *T) ComplexMatrixValue(c Conversion) *matrix.Complex {
	return t.rep.complexValue(c, "complex matrix")
}

// StringValue returns the text of a string. With ForceString a real value
// is read as character codes. Other types are a fault.
func (t *T) StringValue(c Conversion) string {
	if t.rep.kind == String {
		return t.rep.str
	}

	if !c.has(ForceString) {
		invalidConversion(t.rep.kind, "string")
	}

	s := t.rep.convertToStr()
	defer s.release()

	return s.str
}

// RangeValue returns the progression held by a range. Other types are a
// fault whatever c allows.
func (t *T) RangeValue(_ Conversion) matrix.Range {
	if t.rep.kind != Range {
		invalidConversion(t.rep.kind, "range")
	}

	return t.rep.rng
}

func elements[E matrix.Elem](m *matrix.Dense[E], c Conversion, from Type, to string) []E {
	if !m.IsVector() && !m.IsEmpty() && !c.has(ForceVector) {
		invalidConversion(from, to)
	}

	v := make([]E, m.Len())
	copy(v, m.Data())

	return v
}

// VectorValue returns the elements of a real row or column vector. With
// ForceVector the elements of any matrix are returned in column-major
// order.
func (t *T) VectorValue(c Conversion) []float64 {
	return elements(t.rep.realValue(c, "real vector"), c, t.rep.kind, "real vector")
}

// ComplexVectorValue is the complex counterpart of VectorValue.
func (t *T) ComplexVectorValue(c Conversion) []complex128 {
	return elements(t.rep.complexValue(c, "complex vector"), c, t.rep.kind, "complex vector")
}
