// Released under an MIT license. See LICENSE.

// Package constant provides tc's value type.
//
// A *T is a handle to a reference-counted representation. Copying a
// handle shares the representation. Operations that change a value first
// make sure the handle is the representation's only owner, cloning the
// representation if it is not, so every handle behaves as an independent
// value.
//
// Every *T returned by a function in this package is owned by the caller,
// who should Release it when it is no longer needed.
package constant

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/matrix"
)

// Output receives values printed by Eval and Mapper.
//
//nolint:gochecknoglobals
var Output io.Writer = os.Stdout

// T (constant) is a handle to a value.
type T struct {
	rep *rep
}

type constant = T

func handle(r *rep) *T {
	return &constant{rep: r}
}

// New creates a handle to an undefined value.
func New() *T {
	return handle(newRep(Unknown))
}

// NewScalar creates a real scalar.
func NewScalar(d float64) *T {
	return handle(scalarRep(d))
}

// NewMatrix creates a real matrix from a copy of m.
func NewMatrix(m *matrix.Real) *T {
	return handle(matrixRep(m.Copy()))
}

// NewDiag creates a real matrix from the diagonal matrix d.
func NewDiag(d *matrix.Diag) *T {
	return handle(matrixRep(d.Full()))
}

// NewRowVector creates a real vector from v. The orientation o decides
// whether it is stored as a row or a column. Preferred defers to
// prefs.PreferColumnVectors.
func NewRowVector(v []float64, o Orientation) *T {
	return newVector(v, o)
}

// NewColumnVector creates a real vector from v. As with NewRowVector, o
// decides the orientation.
func NewColumnVector(v []float64, o Orientation) *T {
	return newVector(v, o)
}

func newVector(v []float64, o Orientation) *T {
	r := matrixRep(vector(v, o))
	r.orient = resolve(o)

	return handle(r)
}

// NewComplex creates a complex scalar.
func NewComplex(c complex128) *T {
	return handle(complexRep(c))
}

// NewComplexMatrix creates a complex matrix from a copy of m.
func NewComplexMatrix(m *matrix.Complex) *T {
	return handle(complexMatrixRep(m.Copy()))
}

// NewComplexDiag creates a complex matrix from the diagonal matrix d.
func NewComplexDiag(d *matrix.ComplexDiag) *T {
	return handle(complexMatrixRep(d.Full()))
}

// NewComplexRowVector creates a complex vector from v.
func NewComplexRowVector(v []complex128, o Orientation) *T {
	return newComplexVector(v, o)
}

// NewComplexColumnVector creates a complex vector from v.
func NewComplexColumnVector(v []complex128, o Orientation) *T {
	return newComplexVector(v, o)
}

func newComplexVector(v []complex128, o Orientation) *T {
	r := complexMatrixRep(vector(v, o))
	r.orient = resolve(o)

	return handle(r)
}

// NewString creates a string.
func NewString(s string) *T {
	return handle(stringRep(s))
}

// NewRange creates the range base:inc:limit.
func NewRange(base, limit, inc float64) *T {
	return handle(rangeRep(matrix.NewRange(base, limit, inc)))
}

// NewRangeValue creates a range from r.
func NewRangeValue(r matrix.Range) *T {
	return handle(rangeRep(r))
}

// NewMagicColon creates the value that selects every element along a
// dimension when used as a subscript.
func NewMagicColon() *T {
	return handle(newRep(MagicColon))
}

// Copy returns a new handle that shares t's representation.
func (t *T) Copy() *T {
	t.rep.count++

	return handle(t.rep)
}

// Set makes t share a's representation, releasing t's old representation
// if t was its last owner. Assigning a handle to itself, or to a handle
// that already shares its representation, leaves everything unchanged. A
// released handle may be reused through Set.
func (t *T) Set(a *T) {
	if t.rep == a.rep {
		return
	}

	// A released handle has nothing to give up.
	if t.rep != nil {
		t.drop()
	}

	t.rep = a.rep
	t.rep.count++
}

// Release gives up t's claim on its representation. The representation is
// released when its last owner is. Releasing a handle twice is harmless.
// A released handle must not be used again except as the target of Set.
func (t *T) Release() {
	if t == nil || t.rep == nil {
		return
	}

	t.drop()
	t.rep = nil
}

func (t *T) drop() {
	t.rep.count--
	if t.rep.count == 0 {
		t.rep.release()
	}
}

// Shared returns true if t's representation has more than one owner.
func (t *T) Shared() bool {
	return t.rep.count > 1
}

// unique ensures that t is the only owner of its representation.
func (t *T) unique() {
	if t.rep.count > 1 {
		t.rep.count--
		t.rep = t.rep.clone()
	}
}

// Assign replaces the elements of t selected by args with rhs, growing t
// if the subscripts exceed its current size.
func (t *T) Assign(rhs *T, args Indices) {
	t.unique()
	t.rep.assign(rhs, args)
}

// BumpValue applies the increment or decrement operator b to every
// element of t.
func (t *T) BumpValue(b Bump) {
	t.unique()
	t.rep.bumpValue(b)
}

// Eval simplifies t, printing it if print is true, and returns a new
// handle to the result.
func (t *T) Eval(print bool) *T {
	if t.rep.mutable() {
		t.unique()
		t.rep.maybeMutate()
	}

	if print {
		t.rep.print(Output)
	}

	return t.Copy()
}

// EvalIndexed evaluates t with the subscripts in args. With no subscripts
// the result is t itself. Otherwise the selected elements become a new
// value. The result is simplified and, if print is true, printed.
func (t *T) EvalIndexed(print bool, nargout int, args Indices) List {
	if nargout > 1 {
		fault.Raise(fault.Shape, "value cannot produce %d results", nargout)
	}

	var v *T
	if args == nil || args.Len() == 0 {
		v = t.Copy()
	} else {
		v = handle(t.rep.doIndex(args))
	}

	if v.IsDefined() {
		v.Eval(print).Release()
	}

	return List{v}
}

// StashOriginalText records the source text s for later printing.
//
// This changes t's representation without making it unique. The text is
// metadata, set once when a literal is built, and not part of the value.
func (t *T) StashOriginalText(s string) {
	t.rep.text = s
}

// OriginalText returns the stashed source text, if any.
func (t *T) OriginalText() string {
	return t.rep.text
}

// Print writes t's value to w.
func (t *T) Print(w io.Writer) {
	t.rep.print(w)
}

// PrintAs writes t's value to w labelled with name.
func (t *T) PrintAs(w io.Writer, name string) {
	t.rep.printAs(w, name)
}

// PrintCode writes the source text for t to w.
func (t *T) PrintCode(w io.Writer) {
	t.rep.printCode(w)
}

// String returns the source text for t.
func (t *T) String() string {
	return t.rep.code()
}

// WrongTypeArg returns the error reported when a value of the wrong type
// is passed to the function called name.
func WrongTypeArg(name string, t *T) error {
	return fault.New(fault.TypeMismatch, fmt.Sprintf("%s: wrong type argument '%s'", name, t.TypeAsString()))
}
