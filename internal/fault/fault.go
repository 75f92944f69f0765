// Released under an MIT license. See LICENSE.

// Package fault provides the error taxonomy for tc values.
//
// Operations on values report failure by panicking with a *T. The
// evaluation loop recovers these with Catch and reports them.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Unclassified Kind = iota
	TypeMismatch
	Shape
	IllegalState
	Undefined
	Syntax
)

// String returns the name of the Kind k.
func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case Shape:
		return "shape error"
	case IllegalState:
		return "illegal state"
	case Undefined:
		return "undefined"
	case Syntax:
		return "syntax error"
	default:
		return "error"
	}
}

// T (fault) is a recoverable error raised by an operation on a value.
type T struct {
	kind    Kind
	message string
}

type fault = T

// New creates a new fault of kind k.
func New(k Kind, message string) *T {
	return &fault{kind: k, message: message}
}

// Error returns the message for the fault f.
func (f *fault) Error() string {
	return f.message
}

// Kind returns the kind of the fault f.
func (f *fault) Kind() Kind {
	return f.kind
}

// Raise panics with a new fault of kind k.
func Raise(k Kind, format string, args ...interface{}) {
	panic(New(k, fmt.Sprintf(format, args...)))
}

// Catch calls f and returns any fault it raises as an error.
// Panics that are not faults are propagated.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		t, ok := r.(*fault)
		if !ok {
			panic(r)
		}

		err = t
	}()

	f()

	return nil
}

// Is returns true if err is, or wraps, a fault of kind k.
func Is(err error, k Kind) bool {
	var f *fault
	if !errors.As(err, &f) {
		return false
	}

	return f.kind == k
}
