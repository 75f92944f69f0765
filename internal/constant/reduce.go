// Released under an MIT license. See LICENSE.

package constant

import (
	"math"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/mapper"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

// These functions return new values. None of them change t.

func (t *T) CumProd() *T {
	return handle(t.rep.reduce("cumprod", matrix.CumProd[float64], matrix.CumProd[complex128]))
}

func (t *T) CumSum() *T {
	return handle(t.rep.reduce("cumsum", matrix.CumSum[float64], matrix.CumSum[complex128]))
}

func (t *T) Prod() *T {
	return handle(t.rep.reduce("prod", matrix.Prod[float64], matrix.Prod[complex128]))
}

func (t *T) Sum() *T {
	return handle(t.rep.reduce("sum", matrix.Sum[float64], matrix.Sum[complex128]))
}

// SumSq returns the sums of the squared magnitudes of t's elements.
func (t *T) SumSq() *T {
	return handle(t.rep.sumsq())
}

// Diag returns the matrix with t on its diagonal if t is a vector, or the
// diagonal of t as a column if t is a matrix.
func (t *T) Diag() *T {
	return handle(t.rep.diag(0))
}

// DiagK is Diag for the k-th diagonal. Positive k is above the main
// diagonal.
func (t *T) DiagK(k *T) *T {
	if !k.IsNumericType() || k.Rows() != 1 || k.Columns() != 1 {
		fault.Raise(fault.TypeMismatch, "diag: invalid second argument")
	}

	d := k.DoubleValue(Strict)
	if d != math.Trunc(d) || math.IsInf(d, 0) {
		fault.Raise(fault.TypeMismatch, "diag: diagonal offset must be an integer")
	}

	return handle(t.rep.diag(int(d)))
}

// Mapper applies m to every element of t. The result is simplified and,
// if print is true, printed.
func (t *T) Mapper(m *mapper.T, print bool) *T {
	v := handle(t.rep.mapper(m))

	if print {
		v.rep.print(Output)
	}

	return v
}

func (r *rep) numericGuard(name string) {
	r.guard(name)

	if r.kind == String {
		r.wrongType(name)
	}
}

func (r *rep) reduce(
	name string,
	rf func(*matrix.Real) *matrix.Real,
	cf func(*matrix.Complex) *matrix.Complex,
) *rep {
	r.numericGuard(name)

	if r.isComplexType() {
		m := r.complexValue(Strict, "complex matrix")
		if m.Rows() == 0 && m.Cols() == 0 {
			return simplify(complexMatrixRep(cf(matrix.NewComplex(1, 0))))
		}

		return simplify(complexMatrixRep(cf(m)))
	}

	m := r.realValue(Strict, "real matrix")
	if m.Rows() == 0 && m.Cols() == 0 {
		// A 1x0 vector reduces to the identity of the operation; its
		// cumulative form stays empty.
		return simplify(matrixRep(rf(matrix.NewReal(1, 0))))
	}

	return simplify(matrixRep(rf(m)))
}

func (r *rep) sumsq() *rep {
	r.numericGuard("sumsq")

	var m *matrix.Real

	if r.isComplexType() {
		m = matrix.Map(r.complexValue(Strict, "complex matrix"), func(z complex128) float64 {
			return real(z)*real(z) + imag(z)*imag(z)
		})
	} else {
		m = matrix.Map(r.realValue(Strict, "real matrix"), func(d float64) float64 {
			return d * d
		})
	}

	if m.Rows() == 0 && m.Cols() == 0 {
		m = matrix.NewReal(1, 0)
	}

	return simplify(matrixRep(matrix.Sum(m)))
}

func diagOf[E matrix.Elem](m *matrix.Dense[E], k int) *matrix.Dense[E] {
	if m.IsVector() {
		return matrix.Band(m.Data(), k)
	}

	return matrix.FromColumn(m.Diagonal(k))
}

func (r *rep) diag(k int) *rep {
	r.numericGuard("diag")

	if r.isEmpty() {
		return matrixRep(matrix.NewReal(0, 0))
	}

	if r.isComplexType() {
		return simplify(complexMatrixRep(diagOf(r.complexValue(Strict, "complex matrix"), k)))
	}

	return simplify(matrixRep(diagOf(r.realValue(Strict, "real matrix"), k)))
}

func (r *rep) mapper(m *mapper.T) *rep {
	r.numericGuard(m.Name)

	if r.isComplexType() {
		c := r.complexValue(Strict, "complex matrix")

		if m.ComplexReal != nil {
			return simplify(matrixRep(matrix.Map(c, m.ComplexReal)))
		}

		return simplify(complexMatrixRep(matrix.Map(c, m.ComplexComplex)))
	}

	d := r.realValue(Strict, "real matrix")

	promote := m.RealReal == nil
	for _, v := range d.Data() {
		if m.NeedsComplex(v) {
			promote = true

			break
		}
	}

	if promote {
		return simplify(complexMatrixRep(matrix.Map(matrix.ToComplex(d), m.ComplexComplex)))
	}

	return simplify(matrixRep(matrix.Map(d, m.RealReal)))
}
