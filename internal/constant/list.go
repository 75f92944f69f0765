// Released under an MIT license. See LICENSE.

package constant

// Indices is an ordered collection of values, used for subscripts and for
// multiple results.
type Indices interface {
	Len() int
	At(i int) *T
}

// List is a slice of values that satisfies Indices.
type List []*T

// Len returns the number of values in l.
func (l List) Len() int {
	return len(l)
}

// At returns the i-th value in l.
func (l List) At(i int) *T {
	return l[i]
}

// Release releases every value in l.
func (l List) Release() {
	for _, t := range l {
		t.Release()
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var l List

	// The List type holds subscripts.
	_ = Indices(l)
}
