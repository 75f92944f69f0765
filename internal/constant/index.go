// Released under an MIT license. See LICENSE.

package constant

import (
	"math"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

// subscript is a subscript converted to zero-based positions.
type subscript struct {
	colon bool
	elems []int
	rows  int
	cols  int
	max   int // One more than the largest position.
}

// length returns the number of positions selected along a dimension of
// size n.
func (s *subscript) length(n int) int {
	if s.colon {
		return n
	}

	return len(s.elems)
}

// at returns the k-th position selected.
func (s *subscript) at(k int) int {
	if s.colon {
		return k
	}

	return s.elems[k]
}

func newSubscript(t *T) *subscript {
	if t.IsUndefined() {
		fault.Raise(fault.Undefined, "subscript is undefined")
	}

	v := t.MakeNumericOrRangeOrMagic()
	defer v.Release()

	r := v.rep

	switch r.kind {
	case MagicColon:
		return &subscript{colon: true}
	case Range:
		n := r.rng.Len()
		s := &subscript{elems: make([]int, 0, n), rows: 1, cols: n}
		for k := 0; k < n; k++ {
			s.add(r.rng.Elem(k))
		}

		return s
	}

	if r.isComplexType() {
		m := r.complexValue(Strict, "subscript")
		if !matrix.IsReal(m) {
			fault.Raise(fault.Shape, "subscripts must be real")
		}
	}

	m := r.realValue(Strict, "subscript")
	s := &subscript{elems: make([]int, 0, m.Len()), rows: m.Rows(), cols: m.Cols()}

	for _, d := range m.Data() {
		s.add(d)
	}

	return s
}

func (s *subscript) add(d float64) {
	if d != math.Trunc(d) || math.IsNaN(d) || math.IsInf(d, 0) {
		fault.Raise(fault.Shape, "subscript indices must be positive integers; found %g", d)
	}

	if d < 1 {
		fault.Raise(fault.Shape, "index (%g): subscripts must be positive integers", d)
	}

	k := int(d)
	if k > s.max {
		s.max = k
	}

	s.elems = append(s.elems, k-1)
}

// check faults if s selects a position at or past n.
func (s *subscript) check(n int) {
	if !s.colon && s.max > n {
		fault.Raise(fault.Shape, "index (%d): out of bound %d", s.max, n)
	}
}

func (r *rep) doIndex(args Indices) *rep {
	r.guard("index")

	n := args.Len()
	if n > 2 {
		fault.Raise(fault.Shape, "too many subscripts (%d)", n)
	}

	if n == 0 {
		c := r.clone()
		c.text = ""

		return c
	}

	subs := make([]*subscript, n)
	for i := 0; i < n; i++ {
		subs[i] = newSubscript(args.At(i))
	}

	switch {
	case r.kind == String && n == 1:
		m := pick1(codes(r.str), subs[0])
		return stringRep(string(bytesOf(m.Data())))

	case r.isComplexType():
		m := r.complexValue(Strict, "complex matrix")
		if n == 1 {
			return complexMatrixRep(pick1(m, subs[0]))
		}

		return complexMatrixRep(pick2(m, subs[0], subs[1]))
	}

	m := r.realValue(ForceString, "real matrix")
	if n == 1 {
		return matrixRep(pick1(m, subs[0]))
	}

	return matrixRep(pick2(m, subs[0], subs[1]))
}

func bytesOf(data []float64) []byte {
	b := make([]byte, len(data))
	for k, v := range data {
		b[k] = byte(v)
	}

	return b
}

// pick1 selects elements of m with a single, column-major subscript.
func pick1[E matrix.Elem](m *matrix.Dense[E], s *subscript) *matrix.Dense[E] {
	total := m.Len()
	s.check(total)

	n := s.length(total)
	v := make([]E, n)

	for k := 0; k < n; k++ {
		v[k] = m.Elem(s.at(k))
	}

	switch {
	case s.colon:
		return matrix.Reshaped(v, n, 1)
	case m.Rows() == 1:
		return matrix.Reshaped(v, 1, n)
	case m.Cols() == 1:
		return matrix.Reshaped(v, n, 1)
	case s.rows*s.cols == n && s.rows != 1:
		return matrix.Reshaped(v, s.rows, s.cols)
	}

	return matrix.Reshaped(v, 1, n)
}

// pick2 selects the rows in rs and the columns in cs.
func pick2[E matrix.Elem](m *matrix.Dense[E], rs, cs *subscript) *matrix.Dense[E] {
	rs.check(m.Rows())
	cs.check(m.Cols())

	nr := rs.length(m.Rows())
	nc := cs.length(m.Cols())

	p := matrix.New[E](nr, nc)

	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			p.Set(i, j, m.At(rs.at(i), cs.at(j)))
		}
	}

	return p
}

// Index returns the elements of t selected by args. One subscript selects
// elements in column-major order. Two select rows and columns.
func (t *T) Index(args Indices) *T {
	return handle(t.rep.doIndex(args))
}
