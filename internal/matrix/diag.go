// Released under an MIT license. See LICENSE.

package matrix

// Diagonal is a rows x cols matrix whose only nonzero elements lie on the
// main diagonal.
type Diagonal[E Elem] struct {
	rows int
	cols int
	d    []E
}

// Diag is a real diagonal matrix.
type Diag = Diagonal[float64]

// ComplexDiag is a complex diagonal matrix.
type ComplexDiag = Diagonal[complex128]

// NewDiagonal creates a square diagonal matrix with d on its diagonal.
func NewDiagonal[E Elem](d []E) *Diagonal[E] {
	return NewRectDiagonal(d, len(d), len(d))
}

// NewRectDiagonal creates a rows x cols diagonal matrix with d on its
// diagonal. Elements of d that do not fit are dropped.
func NewRectDiagonal[E Elem](d []E, rows, cols int) *Diagonal[E] {
	n := min(rows, cols)
	v := make([]E, n)
	copy(v, d)

	return &Diagonal[E]{rows: rows, cols: cols, d: v}
}

// Rows returns the number of rows in m.
func (m *Diagonal[E]) Rows() int {
	return m.rows
}

// Cols returns the number of columns in m.
func (m *Diagonal[E]) Cols() int {
	return m.cols
}

// Full returns the dense equivalent of m.
func (m *Diagonal[E]) Full() *Dense[E] {
	f := New[E](m.rows, m.cols)

	for i, v := range m.d {
		f.Set(i, i, v)
	}

	return f
}

// Band returns a square matrix with v placed on the k-th diagonal. Positive
// k is above the main diagonal, negative k below.
func Band[E Elem](v []E, k int) *Dense[E] {
	a := k
	if a < 0 {
		a = -a
	}

	n := len(v) + a
	m := New[E](n, n)

	for i, e := range v {
		if k >= 0 {
			m.Set(i, i+k, e)
		} else {
			m.Set(i-k, i, e)
		}
	}

	return m
}

// Diagonal returns a copy of the k-th diagonal of m. An offset outside
// the matrix yields an empty slice.
func (m *Dense[E]) Diagonal(k int) []E {
	var d []E

	i, j := 0, k
	if k < 0 {
		i, j = -k, 0
	}

	for ; i < m.rows && j < m.cols && j >= 0; i, j = i+1, j+1 {
		d = append(d, m.At(i, j))
	}

	if d == nil {
		d = []E{}
	}

	return d
}
