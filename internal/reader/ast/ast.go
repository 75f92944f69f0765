// Released under an MIT license. See LICENSE.

// Package ast defines the statements and expressions produced by the tc
// parser.
package ast

import (
	"github.com/michaelmacinnis/tc/internal/reader/loc"
)

// Expr is an expression. Text returns the source text it was parsed from.
type Expr interface {
	Text() string
}

// Number is a numeric literal. Imaginary literals carry an i or j suffix.
type Number struct {
	Value     float64
	Imaginary bool
	Source    string
}

// String is a string literal after escape processing.
type String struct {
	Value  string
	Source string
}

// Matrix is a bracketed list of rows.
type Matrix struct {
	Rows   [][]Expr
	Source string
}

// Range is base:limit or base:inc:limit. Inc is nil when omitted.
type Range struct {
	Base  Expr
	Inc   Expr
	Limit Expr
}

// Colon is a bare colon used as a subscript.
type Colon struct{}

// Identifier names a variable or a builtin.
type Identifier struct {
	Name string
}

// Call is name(args...). Whether it indexes a variable or calls a builtin
// is decided when it is evaluated.
type Call struct {
	Name string
	Args []Expr
}

// Bump is name++, name--, ++name or --name.
type Bump struct {
	Name      string
	Decrement bool
	Prefix    bool
}

func (n *Number) Text() string { return n.Source }

func (s *String) Text() string { return s.Source }

func (m *Matrix) Text() string { return m.Source }

func (r *Range) Text() string {
	if r.Inc == nil {
		return r.Base.Text() + ":" + r.Limit.Text()
	}

	return r.Base.Text() + ":" + r.Inc.Text() + ":" + r.Limit.Text()
}

func (*Colon) Text() string { return ":" }

func (i *Identifier) Text() string { return i.Name }

func (c *Call) Text() string {
	s := c.Name + "("

	for k, a := range c.Args {
		if k > 0 {
			s += ", "
		}

		s += a.Text()
	}

	return s + ")"
}

func (b *Bump) Text() string {
	op := "++"
	if b.Decrement {
		op = "--"
	}

	if b.Prefix {
		return op + b.Name
	}

	return b.Name + op
}

// Statement is one statement. Target is empty unless the statement is an
// assignment. Args holds the subscripts of an indexed assignment.
type Statement struct {
	Target string
	Args   []Expr
	Value  Expr
	Print  bool
	Source loc.T
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var b Bump
	var c Call
	var i Identifier
	var m Matrix
	var n Number
	var r Range
	var s String
	var x Colon

	// All are expressions.
	_ = Expr(&b)
	_ = Expr(&c)
	_ = Expr(&i)
	_ = Expr(&m)
	_ = Expr(&n)
	_ = Expr(&r)
	_ = Expr(&s)
	_ = Expr(&x)
}
