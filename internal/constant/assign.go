// Released under an MIT license. See LICENSE.

package constant

import (
	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

// assign stores rhs in the elements of r selected by args. The caller
// must own r exclusively.
func (r *rep) assign(rhs *T, args Indices) {
	if r.kind == MagicColon {
		fault.Raise(fault.IllegalState, "invalid assignment to colon")
	}

	n := args.Len()
	switch {
	case n == 0:
		fault.Raise(fault.Shape, "indexed assignment requires at least one subscript")
	case n > 2:
		fault.Raise(fault.Shape, "too many subscripts (%d)", n)
	}

	v := rhs.rep
	switch v.kind {
	case Unknown:
		fault.Raise(fault.Undefined, "value on right hand side of assignment is undefined")
	case MagicColon:
		fault.Raise(fault.TypeMismatch, "invalid use of colon on right hand side of assignment")
	}

	subs := make([]*subscript, n)
	for i := 0; i < n; i++ {
		subs[i] = newSubscript(args.At(i))
	}

	del := v.kind != String && v.rows() == 0 && v.columns() == 0
	str := (v.kind == String && (r.kind == String || r.kind == Unknown)) ||
		(del && r.kind == String)

	// The right hand side is read before r changes. It may be r.
	if r.isComplexType() || v.isComplexType() {
		rm := v.complexValue(ForceString, "complex matrix")
		lm := r.lhsComplex()

		r.setComplexMatrix(assignDense(lm, subs, rm, 0, del))
		r.text = ""

		return
	}

	var fill float64
	if str {
		fill = ' '
	}

	rm := v.realValue(ForceString, "real matrix")
	lm := r.lhsReal()

	res := assignDense(lm, subs, rm, fill, del)
	if str && res.Rows() <= 1 {
		r.setString(string(bytesOf(res.Data())))
	} else {
		r.setMatrix(res)
	}

	r.text = ""
}

func (r *rep) lhsReal() *matrix.Real {
	if r.kind == Unknown {
		return matrix.NewReal(0, 0)
	}

	return r.realValue(ForceString, "real matrix")
}

func (r *rep) lhsComplex() *matrix.Complex {
	if r.kind == Unknown {
		return matrix.NewComplex(0, 0)
	}

	return r.complexValue(ForceString, "complex matrix")
}

// assignDense returns m with the elements selected by subs replaced by
// rhs, or deleted if del is true. It may modify m.
func assignDense[E matrix.Elem](m *matrix.Dense[E], subs []*subscript, rhs *matrix.Dense[E], fill E, del bool) *matrix.Dense[E] {
	if del {
		if len(subs) == 1 {
			return delete1(m, subs[0])
		}

		return delete2(m, subs[0], subs[1])
	}

	if len(subs) == 1 {
		return assign1(m, subs[0], rhs, fill)
	}

	return assign2(m, subs[0], subs[1], rhs, fill)
}

func assign1[E matrix.Elem](m *matrix.Dense[E], s *subscript, rhs *matrix.Dense[E], fill E) *matrix.Dense[E] {
	total := m.Len()
	scalar := rhs.Len() == 1

	if s.colon {
		switch {
		case scalar:
			for k := 0; k < total; k++ {
				m.SetElem(k, rhs.Elem(0))
			}

			return m
		case rhs.Len() == total:
			return matrix.Reshaped(rhs.Data(), m.Rows(), m.Cols())
		}

		fault.Raise(fault.Shape, "A(:) = X: X must have the same number of elements as A")
	}

	n := len(s.elems)
	if !scalar && rhs.Len() != n {
		fault.Raise(fault.Shape, "A(I) = X: X must have the same length as I (%d != %d)", rhs.Len(), n)
	}

	if s.max > total {
		switch {
		case total == 0, m.Rows() == 1:
			m = m.Resize(1, s.max, fill)
		case m.Cols() == 1:
			m = m.Resize(s.max, 1, fill)
		default:
			fault.Raise(fault.Shape, "A(I) = X: unable to resize a %dx%d matrix to hold index %d",
				m.Rows(), m.Cols(), s.max)
		}
	}

	for k, at := range s.elems {
		if scalar {
			m.SetElem(at, rhs.Elem(0))
		} else {
			m.SetElem(at, rhs.Elem(k))
		}
	}

	return m
}

func assign2[E matrix.Elem](m *matrix.Dense[E], rs, cs *subscript, rhs *matrix.Dense[E], fill E) *matrix.Dense[E] {
	nr, nc := m.Rows(), m.Cols()
	scalar := rhs.Len() == 1

	// A colon along a dimension that does not exist yet takes its extent
	// from the right hand side.
	rows := rs.length(nr)
	if rs.colon && nr == 0 {
		switch {
		case scalar:
			rows = 1
		case !cs.colon && len(cs.elems) == 1:
			rows = rhs.Len()
		default:
			rows = rhs.Rows()
		}
	}

	cols := cs.length(nc)
	if cs.colon && nc == 0 {
		switch {
		case scalar:
			cols = 1
		case rows == 1:
			cols = rhs.Len()
		default:
			cols = rhs.Cols()
		}
	}

	if !scalar {
		same := rhs.Rows() == rows && rhs.Cols() == cols
		vec := rhs.IsVector() && (rows == 1 || cols == 1) && rhs.Len() == rows*cols

		if !same && !vec {
			fault.Raise(fault.Shape, "A(I,J) = X: dimensions mismatch (%dx%d = %dx%d)",
				rows, cols, rhs.Rows(), rhs.Cols())
		}
	}

	newRows := max(nr, rs.max)
	if rs.colon {
		newRows = max(nr, rows)
	}

	newCols := max(nc, cs.max)
	if cs.colon {
		newCols = max(nc, cols)
	}

	if newRows != nr || newCols != nc {
		m = m.Resize(newRows, newCols, fill)
	}

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if scalar {
				m.Set(rs.at(i), cs.at(j), rhs.Elem(0))
			} else {
				m.Set(rs.at(i), cs.at(j), rhs.Elem(j*rows+i))
			}
		}
	}

	return m
}

func marked(s *subscript, n int) []bool {
	s.check(n)

	drop := make([]bool, n)
	for k := 0; k < s.length(n); k++ {
		drop[s.at(k)] = true
	}

	return drop
}

func covers(s *subscript, n int) bool {
	if s.colon {
		return true
	}

	for _, d := range marked(s, n) {
		if !d {
			return false
		}
	}

	return true
}

func delete1[E matrix.Elem](m *matrix.Dense[E], s *subscript) *matrix.Dense[E] {
	if s.colon {
		return matrix.New[E](0, 0)
	}

	if len(s.elems) == 0 {
		return m
	}

	drop := marked(s, m.Len())

	keep := make([]E, 0, m.Len())
	for k, d := range drop {
		if !d {
			keep = append(keep, m.Elem(k))
		}
	}

	if m.Cols() == 1 && m.Rows() != 1 {
		return matrix.FromColumn(keep)
	}

	return matrix.FromRow(keep)
}

func delete2[E matrix.Elem](m *matrix.Dense[E], rs, cs *subscript) *matrix.Dense[E] {
	nr, nc := m.Rows(), m.Cols()

	switch {
	case covers(rs, nr):
		drop := marked(cs, nc)

		var keep []int
		for j, d := range drop {
			if !d {
				keep = append(keep, j)
			}
		}

		res := matrix.New[E](nr, len(keep))
		for jj, j := range keep {
			for i := 0; i < nr; i++ {
				res.Set(i, jj, m.At(i, j))
			}
		}

		return res

	case covers(cs, nc):
		drop := marked(rs, nr)

		var keep []int
		for i, d := range drop {
			if !d {
				keep = append(keep, i)
			}
		}

		res := matrix.New[E](len(keep), nc)
		for j := 0; j < nc; j++ {
			for ii, i := range keep {
				res.Set(ii, j, m.At(i, j))
			}
		}

		return res
	}

	fault.Raise(fault.Shape, "a null assignment can only have one non-colon index")

	return nil
}
