// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/tc/internal/constant"
	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
	"github.com/michaelmacinnis/tc/internal/reader/ast"
)

// matrix evaluates a bracketed literal. Elements in a row are joined side
// by side and rows are stacked. Empty elements are ignored.
func (e *engine) matrix(x *ast.Matrix) *constant.T {
	var all constant.List
	defer func() { all.Release() }()

	rows := make([]constant.List, len(x.Rows))

	cplx := false
	str := len(x.Rows) > 0

	for i, row := range x.Rows {
		for _, el := range row {
			v := e.evaluate(el)
			all = append(all, v)

			if !v.IsNumericOrRangeType() && !v.IsString() {
				panic(constant.WrongTypeArg("concatenation", v))
			}

			cplx = cplx || v.IsComplexType()
			str = str && v.IsString()

			rows[i] = append(rows[i], v)
		}
	}

	var v *constant.T

	switch {
	case cplx:
		v = constant.NewComplexMatrix(concat(rows, func(t *constant.T) *matrix.Complex {
			return t.ComplexMatrixValue(constant.ForceString)
		}))

	default:
		m := concat(rows, func(t *constant.T) *matrix.Real {
			return t.MatrixValue(constant.ForceString)
		})

		if str && m.Rows() <= 1 {
			b := make([]byte, m.Len())
			for k, c := range m.Data() {
				b[k] = byte(c)
			}

			v = constant.NewString(string(b))
		} else {
			v = constant.NewMatrix(m)
		}
	}

	v.StashOriginalText(x.Source)

	return v
}

func concat[E matrix.Elem](rows []constant.List, value func(*constant.T) *matrix.Dense[E]) *matrix.Dense[E] {
	var blocks []*matrix.Dense[E]

	width := -1

	for _, row := range rows {
		b := hcat(row, value)
		if b.IsEmpty() {
			continue
		}

		if width >= 0 && b.Cols() != width {
			fault.Raise(fault.Shape, "vertical dimensions mismatch (%d columns vs %d)", width, b.Cols())
		}

		width = b.Cols()
		blocks = append(blocks, b)
	}

	if width < 0 {
		return matrix.New[E](0, 0)
	}

	height := 0
	for _, b := range blocks {
		height += b.Rows()
	}

	m := matrix.New[E](height, width)

	top := 0
	for _, b := range blocks {
		for j := 0; j < width; j++ {
			for i := 0; i < b.Rows(); i++ {
				m.Set(top+i, j, b.At(i, j))
			}
		}

		top += b.Rows()
	}

	return m
}

func hcat[E matrix.Elem](row constant.List, value func(*constant.T) *matrix.Dense[E]) *matrix.Dense[E] {
	var blocks []*matrix.Dense[E]

	height := -1
	width := 0

	for _, v := range row {
		b := value(v)
		if b.IsEmpty() {
			continue
		}

		if height >= 0 && b.Rows() != height {
			fault.Raise(fault.Shape, "horizontal dimensions mismatch (%d rows vs %d)", height, b.Rows())
		}

		height = b.Rows()
		width += b.Cols()
		blocks = append(blocks, b)
	}

	if height < 0 {
		return matrix.New[E](0, 0)
	}

	m := matrix.New[E](height, width)

	left := 0
	for _, b := range blocks {
		for j := 0; j < b.Cols(); j++ {
			for i := 0; i < height; i++ {
				m.Set(i, left+j, b.At(i, j))
			}
		}

		left += b.Cols()
	}

	return m
}
