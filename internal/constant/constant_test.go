// Released under an MIT license. See LICENSE.

package constant

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/mapper"
	"github.com/michaelmacinnis/tc/internal/matrix"
	"github.com/michaelmacinnis/tc/internal/prefs"
	"github.com/michaelmacinnis/tc/internal/printer"
)

func rows(r ...[]float64) *T {
	return NewMatrix(matrix.FromRows(r))
}

func row(v ...float64) *T {
	return NewRowVector(v, Row)
}

func expectFault(t *testing.T, k fault.Kind, f func()) {
	t.Helper()

	err := fault.Catch(f)
	if err == nil {
		t.Fatalf("expected a %s fault", k)
	}

	if !fault.Is(err, k) {
		t.Fatalf("expected a %s fault; got %v", k, err)
	}
}

func expectData(t *testing.T, v *T, nr, nc int, data ...float64) {
	t.Helper()

	if v.Rows() != nr || v.Columns() != nc {
		t.Fatalf("expected %dx%d; got %dx%d", nr, nc, v.Rows(), v.Columns())
	}

	m := v.MatrixValue(ForceString)
	for k, d := range data {
		if m.Elem(k) != d {
			t.Fatalf("element %d: expected %g; got %g", k, d, m.Elem(k))
		}
	}
}

func TestCopySharesRepresentation(t *testing.T) {
	a := NewScalar(1)
	b := a.Copy()

	if a.rep != b.rep || a.rep.count != 2 {
		t.Fatalf("expected a shared representation with two owners")
	}

	b.Release()

	if a.rep.count != 1 {
		t.Fatalf("expected one owner; got %d", a.rep.count)
	}

	a.Release()
}

func TestAssignIsolatesCopies(t *testing.T) {
	a := row(1, 2, 3)
	b := a.Copy()

	idx := NewScalar(2)
	rhs := NewScalar(9)

	b.Assign(rhs, List{idx})

	expectData(t, a, 1, 3, 1, 2, 3)
	expectData(t, b, 1, 3, 1, 9, 3)

	if a.Shared() || b.Shared() {
		t.Fatalf("expected unshared values after assignment")
	}

	List{a, b, idx, rhs}.Release()
}

func TestBumpIsolatesCopies(t *testing.T) {
	a := NewScalar(5)
	b := a.Copy()

	b.BumpValue(PreIncrement)

	if a.DoubleValue(Strict) != 5 || b.DoubleValue(Strict) != 6 {
		t.Fatalf("expected 5 and 6; got %g and %g",
			a.DoubleValue(Strict), b.DoubleValue(Strict))
	}

	b.BumpValue(PostDecrement)
	b.BumpValue(PreDecrement)

	if b.DoubleValue(Strict) != 4 {
		t.Fatalf("expected 4; got %g", b.DoubleValue(Strict))
	}

	a.Release()
	b.Release()
}

func TestBump(t *testing.T) {
	m := row(1, 2)
	m.BumpValue(PostIncrement)
	expectData(t, m, 1, 2, 2, 3)

	z := NewComplex(1 + 2i)
	z.BumpValue(PreDecrement)

	if c := z.ComplexValue(Strict); c != 2i {
		t.Fatalf("expected 2i; got %v", c)
	}

	r := NewRange(1, 3, 1)
	r.BumpValue(PreIncrement)

	if !r.IsRange() || r.RangeValue(Strict).Base != 2 || r.RangeValue(Strict).Limit != 4 {
		t.Fatalf("expected the range 2:4; got %s", r)
	}

	expectFault(t, fault.TypeMismatch, func() { NewString("a").BumpValue(PreIncrement) })
	expectFault(t, fault.Undefined, func() { New().BumpValue(PreIncrement) })
	expectFault(t, fault.IllegalState, func() { NewMagicColon().BumpValue(PreIncrement) })
}

func TestEvalIsolatesCopies(t *testing.T) {
	a := NewComplex(3)
	b := a.Copy()

	v := b.Eval(false)

	if !a.IsComplexScalar() {
		t.Fatalf("evaluating a copy changed the original")
	}

	if !b.IsRealScalar() || !v.IsRealScalar() {
		t.Fatalf("expected a real scalar; got %s", b.TypeAsString())
	}

	List{a, b, v}.Release()
}

func TestEvalCollapses(t *testing.T) {
	tests := []struct {
		value    *T
		expected Type
	}{
		{NewComplexMatrix(matrix.FromRow([]complex128{1, 2})), RealMatrix},
		{NewComplexMatrix(matrix.FromRow([]complex128{1 + 1i})), ComplexScalar},
		{NewComplexMatrix(matrix.FromRow([]complex128{4})), RealScalar},
		{row(7), RealScalar},
		{NewComplex(1i), ComplexScalar},
		{NewRange(1, 1, 1), Range},
		{NewString("x"), String},
	}

	for _, tt := range tests {
		v := tt.value.Eval(false)
		if v.ConstType() != tt.expected {
			t.Errorf("expected %s; got %s", tt.expected, v.ConstType())
		}

		v.Release()
		tt.value.Release()
	}
}

func TestConstructorsDoNotCollapse(t *testing.T) {
	v := row(7)
	defer v.Release()

	if !v.IsRealMatrix() {
		t.Fatalf("expected a real matrix; got %s", v.TypeAsString())
	}
}

func TestEvalPrints(t *testing.T) {
	var b bytes.Buffer

	old := Output
	Output = &b

	defer func() { Output = old }()

	v := NewScalar(42)
	v.Eval(true).Release()
	v.Release()

	if b.String() != "42\n" {
		t.Fatalf("expected \"42\\n\"; got %q", b.String())
	}
}

func TestExactRelease(t *testing.T) {
	before := Live()

	a := row(1, 2, 3)
	b := a.Copy()
	c := New()
	c.Set(a)

	i := NewScalar(1)
	x := NewScalar(5)
	c.Assign(x, List{i})

	s := a.Sum()

	List{a, b, c, i, x, s}.Release()

	if n := Live(); n != before {
		t.Fatalf("expected %d live representations; got %d", before, n)
	}
}

func TestSelfAssignment(t *testing.T) {
	a := NewScalar(3)
	r := a.rep

	a.Set(a)

	if a.rep != r || r.count != 1 {
		t.Fatalf("self assignment changed the representation")
	}

	b := a.Copy()
	a.Set(b)

	if r.count != 2 {
		t.Fatalf("expected two owners; got %d", r.count)
	}

	c := NewScalar(1)
	c.Release()
	c.Set(b)

	if c.rep != r || r.count != 3 {
		t.Fatalf("expected a released handle to share again; got %d owners", r.count)
	}

	List{a, b, c}.Release()
}

func TestAssignSelfAsRightHandSide(t *testing.T) {
	a := row(1, 2)
	i := NewRange(3, 4, 1)

	a.Assign(a, List{i})

	expectData(t, a, 1, 4, 1, 2, 1, 2)

	List{a, i}.Release()
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		value    *T
		expected bool
	}{
		{New(), false},
		{NewMagicColon(), false},
		{NewScalar(0), false},
		{NewString(""), true},
		{NewMatrix(matrix.NewReal(0, 3)), true},
		{NewRange(1, 0, 1), true},
		{row(1), false},
	}

	for _, tt := range tests {
		if tt.value.IsEmpty() != tt.expected {
			t.Errorf("%s: expected IsEmpty %v", tt.value.TypeAsString(), tt.expected)
		}

		tt.value.Release()
	}
}

func TestIsTrue(t *testing.T) {
	tests := []struct {
		value    *T
		expected bool
	}{
		{NewScalar(1), true},
		{NewScalar(0), false},
		{NewComplex(1i), true},
		{rows([]float64{1, 1}, []float64{1, 0}), false},
		{rows([]float64{1, 2}, []float64{3, 4}), true},
		{NewRange(1, 3, 1), true},
		{NewRange(0, 3, 1), false},
		{NewString("ab"), true},
	}

	for _, tt := range tests {
		if tt.value.IsTrue() != tt.expected {
			t.Errorf("%s: expected IsTrue %v", tt.value, tt.expected)
		}

		tt.value.Release()
	}

	expectFault(t, fault.Shape, func() { NewMatrix(matrix.NewReal(0, 0)).IsTrue() })
	expectFault(t, fault.IllegalState, func() { NewMagicColon().IsTrue() })
	expectFault(t, fault.Undefined, func() { New().IsTrue() })
}

func TestRowsAndColumns(t *testing.T) {
	tests := []struct {
		value      *T
		rows, cols int
	}{
		{New(), 0, 0},
		{NewScalar(1), 1, 1},
		{NewString("abc"), 1, 3},
		{NewRange(1, 10, 3), 1, 4},
		{rows([]float64{1, 2, 3}, []float64{4, 5, 6}), 2, 3},
	}

	for _, tt := range tests {
		if tt.value.Rows() != tt.rows || tt.value.Columns() != tt.cols {
			t.Errorf("%s: expected %dx%d; got %dx%d", tt.value.TypeAsString(),
				tt.rows, tt.cols, tt.value.Rows(), tt.value.Columns())
		}
	}

	expectFault(t, fault.IllegalState, func() { NewMagicColon().Rows() })
}

func TestVectorOrientation(t *testing.T) {
	v := NewColumnVector([]float64{1, 2}, Column)
	expectData(t, v, 2, 1, 1, 2)

	p := prefs.Default()
	p.PreferColumnVectors = true

	old := prefs.Set(p)
	defer prefs.Set(old)

	c := NewRowVector([]float64{1, 2}, Preferred)
	expectData(t, c, 2, 1, 1, 2)

	m := rows([]float64{1, 2}, []float64{3, 4})
	m.rep.orient = Column
	m.ConvertToRowOrColumnVector()
	expectData(t, m, 4, 1, 1, 3, 2, 4)

	r := rows([]float64{1, 2}, []float64{3, 4})
	r.rep.orient = Row
	r.ConvertToRowOrColumnVector()
	expectData(t, r, 1, 4, 1, 3, 2, 4)
}

func TestIndexedGrowthLeavesCopyAlone(t *testing.T) {
	a := row(1, 2)
	b := a.Copy()

	i := NewScalar(5)
	x := NewScalar(7)

	b.Assign(x, List{i})

	expectData(t, a, 1, 2, 1, 2)
	expectData(t, b, 1, 5, 1, 2, 0, 0, 7)

	c := New()
	c.Assign(x, List{NewScalar(2), NewScalar(3)})
	expectData(t, c, 2, 3, 0, 0, 0, 0, 0, 7)

	col := NewColumnVector([]float64{1, 2}, Column)
	col.Assign(x, List{NewScalar(3)})
	expectData(t, col, 3, 1, 1, 2, 7)

	m := rows([]float64{1, 2}, []float64{3, 4})
	expectFault(t, fault.Shape, func() { m.Assign(x, List{NewScalar(9)}) })
}

func TestAssignTwoSubscripts(t *testing.T) {
	m := rows([]float64{1, 2}, []float64{3, 4})

	m.Assign(row(8, 9), List{NewScalar(1), NewMagicColon()})
	expectData(t, m, 2, 2, 8, 3, 9, 4)

	m.Assign(NewScalar(0), List{NewMagicColon(), NewScalar(3)})
	expectData(t, m, 2, 3, 8, 3, 9, 4, 0, 0)

	expectFault(t, fault.Shape, func() {
		m.Assign(row(1, 2, 3), List{NewScalar(1), NewRange(1, 2, 1)})
	})
}

func TestDeletion(t *testing.T) {
	empty := NewMatrix(matrix.NewReal(0, 0))

	v := row(1, 2, 3, 4)
	v.Assign(empty, List{NewRange(2, 3, 1)})
	expectData(t, v, 1, 2, 1, 4)

	m := rows([]float64{1, 2, 3}, []float64{4, 5, 6})
	m.Assign(empty, List{NewMagicColon(), NewScalar(2)})
	expectData(t, m, 2, 2, 1, 4, 3, 6)

	m.Assign(empty, List{NewScalar(1), NewMagicColon()})
	expectData(t, m, 1, 2, 4, 6)

	expectFault(t, fault.Shape, func() {
		rows([]float64{1, 2}, []float64{3, 4}).Assign(empty, List{NewScalar(1), NewScalar(1)})
	})

	s := NewString("abc")
	s.Assign(empty, List{NewScalar(2)})

	if !s.IsString() || s.StringValue(Strict) != "ac" {
		t.Fatalf("expected \"ac\"; got %s %s", s.TypeAsString(), s)
	}

	s.Assign(empty, List{NewMagicColon()})

	if !s.IsString() || s.StringValue(Strict) != "" {
		t.Fatalf("expected an empty string; got %s %s", s.TypeAsString(), s)
	}
}

func TestStringAssignment(t *testing.T) {
	s := NewString("abc")

	s.Assign(NewString("X"), List{NewScalar(5)})

	if !s.IsString() || s.StringValue(Strict) != "abc X" {
		t.Fatalf("expected \"abc X\"; got %q", s.String())
	}

	u := New()
	u.Assign(NewString("hi"), List{NewRange(1, 2, 1)})

	if !u.IsString() || u.StringValue(Strict) != "hi" {
		t.Fatalf("expected \"hi\"; got %s", u)
	}

	n := row(1, 2)
	n.Assign(NewString("a"), List{NewScalar(1)})
	expectData(t, n, 1, 2, 'a', 2)
}

func TestAssignFaults(t *testing.T) {
	x := NewScalar(1)
	i := NewScalar(1)

	expectFault(t, fault.IllegalState, func() { NewMagicColon().Assign(x, List{i}) })
	expectFault(t, fault.Shape, func() { New().Assign(x, List{}) })
	expectFault(t, fault.Shape, func() { New().Assign(x, List{i, i, i}) })
	expectFault(t, fault.Undefined, func() { New().Assign(New(), List{i}) })
	expectFault(t, fault.TypeMismatch, func() { New().Assign(NewMagicColon(), List{i}) })
	expectFault(t, fault.Shape, func() { New().Assign(x, List{NewScalar(0)}) })
	expectFault(t, fault.Shape, func() { New().Assign(x, List{NewScalar(1.5)}) })
}

func TestIndex(t *testing.T) {
	m := rows([]float64{1, 2, 3}, []float64{4, 5, 6})

	expectData(t, m.Index(List{NewMagicColon()}), 6, 1, 1, 4, 2, 5, 3, 6)
	expectData(t, m.Index(List{NewScalar(2), NewMagicColon()}), 1, 3, 4, 5, 6)
	expectData(t, m.Index(List{NewMagicColon(), NewRange(2, 3, 1)}), 2, 2, 2, 5, 3, 6)
	expectData(t, row(5, 6, 7).Index(List{NewRange(3, 1, -1)}), 1, 3, 7, 6, 5)
	expectData(t, NewRange(10, 14, 1).Index(List{NewScalar(2)}), 1, 1, 11)

	s := NewString("hello").Index(List{NewRange(2, 3, 1)})
	if !s.IsString() || s.StringValue(Strict) != "el" {
		t.Fatalf("expected \"el\"; got %s", s)
	}

	expectFault(t, fault.Shape, func() { m.Index(List{NewScalar(7)}) })
	expectFault(t, fault.Shape, func() { m.Index(List{NewScalar(3), NewScalar(1)}) })
	expectFault(t, fault.Shape, func() { m.Index(List{NewScalar(1), NewScalar(1), NewScalar(1)}) })
	expectFault(t, fault.Undefined, func() { New().Index(List{NewScalar(1)}) })
}

func TestEvalIndexed(t *testing.T) {
	a := row(4, 5, 6)

	l := a.EvalIndexed(false, 1, nil)
	if l.Len() != 1 || l.At(0).rep != a.rep {
		t.Fatalf("expected the value itself")
	}

	l.Release()

	l = a.EvalIndexed(false, 1, List{NewScalar(2)})
	if !l.At(0).IsRealScalar() || l.At(0).DoubleValue(Strict) != 5 {
		t.Fatalf("expected 5; got %s", l.At(0))
	}

	l.Release()

	expectFault(t, fault.Shape, func() { a.EvalIndexed(false, 2, nil) })

	a.Release()
}

func TestCoerce(t *testing.T) {
	c := NewMagicColon()

	if v := c.MakeNumericOrMagic(); !v.IsMagicColon() {
		t.Fatalf("expected a magic colon; got %s", v.TypeAsString())
	}

	if v := c.MakeNumericOrRangeOrMagic(); !v.IsMagicColon() {
		t.Fatalf("expected a magic colon; got %s", v.TypeAsString())
	}

	expectFault(t, fault.TypeMismatch, func() { c.MakeNumeric() })
	expectFault(t, fault.Undefined, func() { New().MakeNumeric() })

	r := NewRange(1, 3, 1)

	if v := r.MakeNumericOrRangeOrMagic(); !v.IsRange() {
		t.Fatalf("expected a range; got %s", v.TypeAsString())
	}

	v := r.MakeNumeric()
	expectData(t, v, 1, 3, 1, 2, 3)

	if !r.IsRange() {
		t.Fatalf("coercion changed the original")
	}

	s := NewString("AB").MakeNumeric()
	expectData(t, s, 1, 2, 65, 66)
}

func TestConversions(t *testing.T) {
	expectFault(t, fault.TypeMismatch, func() { NewString("a").MatrixValue(Strict) })
	expectFault(t, fault.TypeMismatch, func() { NewComplex(1i).DoubleValue(Strict) })
	expectFault(t, fault.TypeMismatch, func() { row(1, 2).DoubleValue(Strict) })
	expectFault(t, fault.TypeMismatch, func() { NewScalar(1).StringValue(Strict) })
	expectFault(t, fault.TypeMismatch, func() {
		rows([]float64{1, 2}, []float64{3, 4}).VectorValue(Strict)
	})

	if s := row(104, 105).StringValue(ForceString); s != "hi" {
		t.Fatalf("expected \"hi\"; got %q", s)
	}

	expectFault(t, fault.TypeMismatch, func() { NewComplex(1i).StringValue(ForceString) })
	expectFault(t, fault.TypeMismatch, func() { NewScalar(1).RangeValue(ForceString) })

	if d := NewString("a").DoubleValue(ForceString); d != 97 {
		t.Fatalf("expected 97; got %g", d)
	}

	if d := NewComplex(2).DoubleValue(Strict); d != 2 {
		t.Fatalf("expected 2; got %g", d)
	}

	v := rows([]float64{1, 2}, []float64{3, 4}).VectorValue(ForceVector)
	if len(v) != 4 || v[1] != 3 {
		t.Fatalf("expected column-major elements; got %v", v)
	}

	z := NewScalar(3).ComplexValue(Strict)
	if z != 3 {
		t.Fatalf("expected 3; got %v", z)
	}
}

func TestConvertToStr(t *testing.T) {
	s := row(104, 105).ConvertToStr()
	if !s.IsString() || s.StringValue(Strict) != "hi" {
		t.Fatalf("expected \"hi\"; got %s", s)
	}

	expectFault(t, fault.TypeMismatch, func() { NewScalar(300).ConvertToStr() })
	expectFault(t, fault.TypeMismatch, func() { NewComplex(65 + 1i).ConvertToStr() })
	expectFault(t, fault.TypeMismatch, func() { NewMagicColon().ConvertToStr() })
}

func TestReductionsArePure(t *testing.T) {
	m := rows([]float64{1, 2}, []float64{3, 4})
	r := m.rep

	s := m.Sum()
	expectData(t, s, 1, 2, 4, 6)

	if m.rep != r || r.count != 1 {
		t.Fatalf("reduction changed its argument")
	}

	expectData(t, m, 2, 2, 1, 3, 2, 4)
	expectData(t, m.Prod(), 1, 2, 3, 8)
	expectData(t, m.CumSum(), 2, 2, 1, 4, 2, 6)
	expectData(t, m.CumProd(), 2, 2, 1, 3, 2, 8)
	expectData(t, m.SumSq(), 1, 2, 10, 20)

	v := row(1, 2, 3).Sum()
	if !v.IsRealScalar() || v.DoubleValue(Strict) != 6 {
		t.Fatalf("expected the scalar 6; got %s", v)
	}
}

func TestEmptyReductions(t *testing.T) {
	e := NewMatrix(matrix.NewReal(0, 0))

	if d := e.Sum().DoubleValue(Strict); d != 0 {
		t.Fatalf("expected 0; got %g", d)
	}

	if d := e.Prod().DoubleValue(Strict); d != 1 {
		t.Fatalf("expected 1; got %g", d)
	}

	if d := e.SumSq().DoubleValue(Strict); d != 0 {
		t.Fatalf("expected 0; got %g", d)
	}

	if !e.All().IsZeroByZero() || !e.Any().IsZeroByZero() {
		t.Fatalf("expected empty results")
	}

	expectFault(t, fault.TypeMismatch, func() { NewString("a").Sum() })
}

func TestComplexSumSq(t *testing.T) {
	z := NewComplexMatrix(matrix.FromRow([]complex128{3 + 4i, 1}))

	if d := z.SumSq().DoubleValue(Strict); d != 26 {
		t.Fatalf("expected 26; got %g", d)
	}
}

func TestAllAny(t *testing.T) {
	m := rows([]float64{1, 0}, []float64{1, 1})

	expectData(t, m.All(), 1, 2, 1, 0)
	expectData(t, m.Any(), 1, 2, 1, 1)

	if !NewString("ab").All().IsTrue() {
		t.Fatalf("expected a true result for a string")
	}
}

func TestDiag(t *testing.T) {
	expectData(t, row(1, 2).Diag(), 2, 2, 1, 0, 0, 2)

	m := rows([]float64{1, 2}, []float64{3, 4})
	expectData(t, m.Diag(), 2, 1, 1, 4)
	expectData(t, m.DiagK(NewScalar(1)), 1, 1, 2)
	expectData(t, row(5).DiagK(NewScalar(-1)), 2, 2, 0, 5, 0, 0)

	expectFault(t, fault.TypeMismatch, func() { m.DiagK(NewScalar(0.5)) })
	expectFault(t, fault.TypeMismatch, func() { m.DiagK(row(1, 2)) })
	expectFault(t, fault.TypeMismatch, func() { NewString("ab").Diag() })

	if !NewMatrix(matrix.NewReal(0, 3)).Diag().IsZeroByZero() {
		t.Fatalf("expected an empty result")
	}
}

func TestMapper(t *testing.T) {
	sqrt, ok := mapper.Lookup("sqrt")
	if !ok {
		t.Fatalf("sqrt is not registered")
	}

	v := NewScalar(-4).Mapper(sqrt, false)
	if !v.IsComplexScalar() || v.ComplexValue(Strict) != 2i {
		t.Fatalf("expected 2i; got %s", v)
	}

	v = NewScalar(9).Mapper(sqrt, false)
	if !v.IsRealScalar() || v.DoubleValue(Strict) != 3 {
		t.Fatalf("expected 3; got %s", v)
	}

	abs, _ := mapper.Lookup("abs")

	v = NewComplexMatrix(matrix.FromRow([]complex128{3 + 4i, -1})).Mapper(abs, false)
	expectData(t, v, 1, 2, 5, 1)

	expectFault(t, fault.TypeMismatch, func() { NewString("a").Mapper(abs, false) })
}

func TestPrintAs(t *testing.T) {
	old := printer.Width
	printer.Width = func() int { return 80 }

	defer func() { printer.Width = old }()

	tests := []struct {
		value    *T
		expected string
	}{
		{NewScalar(3), "x = 3\n"},
		{NewString("hi"), "x = hi\n"},
		{NewComplex(1 - 2i), "x = 1 - 2i\n"},
		{NewMatrix(matrix.NewReal(0, 3)), "x = [](0x3)\n"},
		{row(1, 2), "x =\n\n   1   2\n\n"},
		{New(), "x = <undefined>\n"},
	}

	for _, tt := range tests {
		var b bytes.Buffer

		tt.value.PrintAs(&b, "x")

		if b.String() != tt.expected {
			t.Errorf("expected %q; got %q", tt.expected, b.String())
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		value    *T
		expected string
	}{
		{NewScalar(0.25), "0.25"},
		{rows([]float64{1, 2}, []float64{3, 4}), "[1, 2; 3, 4]"},
		{NewString("a\"b"), `"a\"b"`},
		{NewRange(1, 5, 1), "1:5"},
		{NewRange(1, 5, 2), "1:2:5"},
		{NewMagicColon(), ":"},
		{NewComplex(1 + 2i), "1 + 2i"},
	}

	for _, tt := range tests {
		if s := tt.value.String(); s != tt.expected {
			t.Errorf("expected %q; got %q", tt.expected, s)
		}
	}

	v := NewScalar(10)
	v.StashOriginalText("1e1")

	if s := v.String(); s != "1e1" {
		t.Fatalf("expected the stashed text; got %q", s)
	}

	v.BumpValue(PreIncrement)

	if s := v.String(); s != "11" {
		t.Fatalf("expected the stashed text to be cleared; got %q", s)
	}
}

func TestValidAsScalarIndex(t *testing.T) {
	tests := []struct {
		value    *T
		expected bool
	}{
		{NewScalar(3), true},
		{NewScalar(0), true},
		{NewScalar(-1), false},
		{NewScalar(1.5), false},
		{NewScalar(math.Inf(1)), false},
		{NewComplex(2 + 1i), false},
		{row(2), true},
		{row(1, 2), false},
		{NewString("a"), true},
		{NewRange(4, 4, 1), true},
		{NewMagicColon(), false},
	}

	for _, tt := range tests {
		if tt.value.ValidAsScalarIndex() != tt.expected {
			t.Errorf("%s: expected %v", tt.value, tt.expected)
		}
	}
}

func TestWrongTypeArg(t *testing.T) {
	err := WrongTypeArg("sum", NewString("a"))

	if !fault.Is(err, fault.TypeMismatch) {
		t.Fatalf("expected a type mismatch; got %v", err)
	}

	if !strings.Contains(err.Error(), "sum: wrong type argument 'string'") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
