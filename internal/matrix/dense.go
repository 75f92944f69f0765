// Released under an MIT license. See LICENSE.

// Package matrix provides the dense, diagonal and range types that back
// tc's numeric values.
//
// Dense matrices are stored in column-major order and may have zero rows
// or zero columns.
package matrix

import "fmt"

// Elem is the set of element types a matrix can hold.
type Elem interface {
	~float64 | ~complex128
}

// Dense is a rows x cols matrix stored in column-major order.
type Dense[E Elem] struct {
	rows int
	cols int
	data []E
}

// Real is a dense matrix of float64.
type Real = Dense[float64]

// Complex is a dense matrix of complex128.
type Complex = Dense[complex128]

// New creates a zero-filled rows x cols matrix.
func New[E Elem](rows, cols int) *Dense[E] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d", rows, cols))
	}

	return &Dense[E]{rows: rows, cols: cols, data: make([]E, rows*cols)}
}

// NewReal creates a zero-filled rows x cols real matrix.
func NewReal(rows, cols int) *Real {
	return New[float64](rows, cols)
}

// NewComplex creates a zero-filled rows x cols complex matrix.
func NewComplex(rows, cols int) *Complex {
	return New[complex128](rows, cols)
}

// FromRows creates a matrix from a slice of rows. All rows must have the
// same length.
func FromRows[E Elem](rows [][]E) *Dense[E] {
	nr := len(rows)
	nc := 0

	if nr > 0 {
		nc = len(rows[0])
	}

	m := New[E](nr, nc)

	for i, row := range rows {
		if len(row) != nc {
			panic("rows of a matrix must have the same length")
		}

		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return m
}

// FromColumn creates a len(v) x 1 matrix from v.
func FromColumn[E Elem](v []E) *Dense[E] {
	return Reshaped(v, len(v), 1)
}

// FromRow creates a 1 x len(v) matrix from v.
func FromRow[E Elem](v []E) *Dense[E] {
	return Reshaped(v, 1, len(v))
}

// Reshaped creates a rows x cols matrix from a copy of the column-major
// elements in v.
func Reshaped[E Elem](v []E, rows, cols int) *Dense[E] {
	if rows*cols != len(v) {
		panic(fmt.Sprintf("cannot reshape %d elements to %dx%d", len(v), rows, cols))
	}

	m := New[E](rows, cols)
	copy(m.data, v)

	return m
}

// Rows returns the number of rows in m.
func (m *Dense[E]) Rows() int {
	return m.rows
}

// Cols returns the number of columns in m.
func (m *Dense[E]) Cols() int {
	return m.cols
}

// Len returns the number of elements in m.
func (m *Dense[E]) Len() int {
	return len(m.data)
}

// IsEmpty returns true if m has no rows or no columns.
func (m *Dense[E]) IsEmpty() bool {
	return m.rows == 0 || m.cols == 0
}

// IsVector returns true if m has exactly one row or one column.
func (m *Dense[E]) IsVector() bool {
	return m.rows == 1 || m.cols == 1
}

// At returns the element at row i, column j.
func (m *Dense[E]) At(i, j int) E {
	return m.data[j*m.rows+i]
}

// Set sets the element at row i, column j.
func (m *Dense[E]) Set(i, j int, v E) {
	m.data[j*m.rows+i] = v
}

// Elem returns the k-th element in column-major order.
func (m *Dense[E]) Elem(k int) E {
	return m.data[k]
}

// SetElem sets the k-th element in column-major order.
func (m *Dense[E]) SetElem(k int, v E) {
	m.data[k] = v
}

// Data returns the column-major elements of m. The slice is shared.
func (m *Dense[E]) Data() []E {
	return m.data
}

// Copy returns a deep copy of m.
func (m *Dense[E]) Copy() *Dense[E] {
	return Reshaped(m.data, m.rows, m.cols)
}

// Reshape returns a copy of m with the same elements arranged as
// rows x cols.
func (m *Dense[E]) Reshape(rows, cols int) *Dense[E] {
	return Reshaped(m.data, rows, cols)
}

// Resize returns a rows x cols copy of m. Elements outside m are set to
// fill; elements of m outside the new bounds are dropped.
func (m *Dense[E]) Resize(rows, cols int, fill E) *Dense[E] {
	r := New[E](rows, cols)

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if i < m.rows && j < m.cols {
				r.Set(i, j, m.At(i, j))
			} else {
				r.Set(i, j, fill)
			}
		}
	}

	return r
}

// Transpose returns the transpose of m.
func (m *Dense[E]) Transpose() *Dense[E] {
	t := New[E](m.cols, m.rows)

	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			t.Set(j, i, m.At(i, j))
		}
	}

	return t
}

// Column returns a copy of column j.
func (m *Dense[E]) Column(j int) []E {
	c := make([]E, m.rows)
	copy(c, m.data[j*m.rows:(j+1)*m.rows])

	return c
}

// Map returns a new matrix with f applied to every element of m.
func Map[E, F Elem](m *Dense[E], f func(E) F) *Dense[F] {
	r := New[F](m.rows, m.cols)

	for k, v := range m.data {
		r.data[k] = f(v)
	}

	return r
}

// ToComplex returns a complex copy of the real matrix m.
func ToComplex(m *Real) *Complex {
	return Map(m, func(v float64) complex128 {
		return complex(v, 0)
	})
}

// RealPart returns the real parts of the complex matrix m.
func RealPart(m *Complex) *Real {
	return Map(m, func(v complex128) float64 {
		return real(v)
	})
}

// ImagPart returns the imaginary parts of the complex matrix m.
func ImagPart(m *Complex) *Real {
	return Map(m, func(v complex128) float64 {
		return imag(v)
	})
}

// IsReal returns true if every element of m has a zero imaginary part.
func IsReal(m *Complex) bool {
	for _, v := range m.data {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

// String returns a compact representation of m. Useful for debugging.
func (m *Dense[E]) String() string {
	return fmt.Sprintf("%dx%d%v", m.rows, m.cols, m.data)
}
