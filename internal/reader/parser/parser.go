// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for tc statements.
package parser

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/reader/ast"
	"github.com/michaelmacinnis/tc/internal/reader/token"
)

// ErrIncomplete is returned by Parse when the input ends inside a
// statement that more input could complete.
//
//nolint:gochecknoglobals
var ErrIncomplete = fault.New(fault.Syntax, "unexpected end of input")

// T holds the state of the parser.
type T struct {
	ahead int                  // Lookahead count.
	emit  func(*ast.Statement) // Function to call to emit a parsed statement.
	item  func() *token.T      // Function to call to get another token.
	nest  []token.Class        // Open brackets and parentheses.
	token *token.T             // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of statements.
func New(emit func(*ast.Statement), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits statements until there are no more
// tokens. It stops at the first error.
func (p *T) Parse() error {
	return fault.Catch(func() {
		for t := p.peek(); t != nil; t = p.peek() {
			if t.Is('\n', ',', ';') {
				p.consume()

				continue
			}

			p.emit(p.statement())
		}
	})
}

// Statements parses every statement item produces.
func Statements(item func() *token.T) ([]*ast.Statement, error) {
	var l []*ast.Statement

	err := New(func(s *ast.Statement) {
		l = append(l, s)
	}, item).Parse()

	return l, err
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) expect(cs ...token.Class) *token.T {
	if p.peek().Is(cs...) {
		return p.consume()
	}

	// Make a nice error message.
	e := make([]string, len(cs))
	for i, c := range cs {
		e[i] = c.String()
	}

	p.unexpected("expected " + strings.Join(e, " or "))

	return nil
}

// peek returns the next token without consuming it. Spaces are skipped
// except directly inside brackets, where they separate elements.
func (p *T) peek() *token.T {
	for {
		t := p.raw()
		if !t.Is(token.Space) || p.spaces() {
			return t
		}

		p.consume()
	}
}

func (p *T) raw() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	if t.Is(token.Error) {
		p.fail(t, t.Value())
	}

	return t
}

func (p *T) spaces() bool {
	n := len(p.nest)

	return n > 0 && p.nest[n-1] == '['
}

func (p *T) skipSpaces() {
	for p.raw().Is(token.Space) {
		p.consume()
	}
}

func (p *T) push(c token.Class) {
	p.nest = append(p.nest, c)
}

func (p *T) pop() {
	p.nest = p.nest[:len(p.nest)-1]
}

func (p *T) fail(t *token.T, msg string) {
	s := t.Source()

	fault.Raise(fault.Syntax, "%s: %s", s.String(), msg)
}

func (p *T) unexpected(msg string) {
	t := p.peek()
	if t == nil {
		panic(ErrIncomplete)
	}

	if t.Is('\n') {
		p.fail(t, msg+" before end of line")
	}

	p.fail(t, msg+" near '"+t.Value()+"'")
}

// T state functions.

// <statement> ::= <expression> ('=' <expression>)? (',' | ';' | '\n')? .
func (p *T) statement() *ast.Statement {
	t := p.peek()
	s := &ast.Statement{Source: t.Source()}

	e := p.expression()

	if p.peek().Is('=') {
		p.consume()

		switch e := e.(type) {
		case *ast.Identifier:
			s.Target = e.Name
		case *ast.Call:
			s.Target = e.Name
			s.Args = e.Args
		default:
			p.fail(t, "invalid assignment to "+e.Text())
		}

		e = p.expression()
	}

	s.Value = e
	s.Print = true

	t = p.peek()

	switch {
	case t == nil:
	case t.Is('\n', ','):
		p.consume()
	case t.Is(';'):
		p.consume()

		s.Print = false
	default:
		p.unexpected("parse error")
	}

	return s
}

// <expression> ::= <unary> (':' <unary> (':' <unary>)?)? .
func (p *T) expression() ast.Expr {
	e := p.unary()

	if !p.colon() {
		return e
	}

	r := &ast.Range{Base: e, Limit: p.unary()}

	if p.colon() {
		r.Inc = r.Limit
		r.Limit = p.unary()
	}

	return r
}

func (p *T) colon() bool {
	// Inside brackets "1 :3" is still a range. A space that is not
	// followed by a colon only separates elements, which the matrix
	// loop does anyway.
	p.skipSpaces()

	if !p.peek().Is(':') {
		return false
	}

	p.consume()
	p.skipSpaces()

	return true
}

// <unary> ::= ('-' | '+') <number> | (Increment | Decrement) Identifier | <postfix> .
func (p *T) unary() ast.Expr {
	t := p.peek()

	switch {
	case t.Is('-', '+'):
		p.consume()
		p.skipSpaces()

		n, ok := p.primary().(*ast.Number)
		if !ok {
			p.fail(t, "unary "+t.Value()+" applies only to numbers")
		}

		if t.Is('-') {
			n.Value = -n.Value
		}

		n.Source = t.Value() + n.Source

		return n

	case t.Is(token.Increment, token.Decrement):
		p.consume()

		id := p.expect(token.Identifier)

		return &ast.Bump{Name: id.Value(), Decrement: t.Is(token.Decrement), Prefix: true}
	}

	return p.postfix()
}

// <postfix> ::= <primary> (Increment | Decrement)? .
func (p *T) postfix() ast.Expr {
	e := p.primary()

	id, ok := e.(*ast.Identifier)
	if !ok || p.spaces() {
		return e
	}

	t := p.peek()
	if t.Is(token.Increment, token.Decrement) {
		p.consume()

		return &ast.Bump{Name: id.Name, Decrement: t.Is(token.Decrement)}
	}

	return e
}

// <primary> ::= Number | String | <matrix> | Identifier <arguments>? | '(' <expression> ')' .
func (p *T) primary() ast.Expr {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		return number(p, t)

	case t.Is(token.SingleQuoted):
		p.consume()

		s := t.Value()

		return &ast.String{
			Value:  strings.ReplaceAll(s[1:len(s)-1], "''", "'"),
			Source: s,
		}

	case t.Is(token.DoubleQuoted):
		p.consume()

		s := t.Value()

		v, err := adapted.ActualBytes(s[1 : len(s)-1])
		if err != nil {
			p.fail(t, err.Error())
		}

		return &ast.String{Value: v, Source: s}

	case t.Is('['):
		return p.matrix()

	case t.Is(token.Identifier):
		p.consume()

		// Inside brackets "a (1)" is two elements.
		next := p.raw()
		if !p.spaces() {
			next = p.peek()
		}

		if next.Is('(') {
			return &ast.Call{Name: t.Value(), Args: p.arguments()}
		}

		return &ast.Identifier{Name: t.Value()}

	case t.Is('('):
		p.consume()
		p.push('(')

		e := p.expression()

		p.expect(')')
		p.pop()

		return e
	}

	p.unexpected("parse error")

	return nil
}

// <arguments> ::= '(' (<argument> (',' <argument>)*)? ')' .
func (p *T) arguments() []ast.Expr {
	p.consume()
	p.push('(')

	var args []ast.Expr

	if p.peek().Is(')') {
		p.consume()
		p.pop()

		return args
	}

	for {
		args = append(args, p.argument())

		if p.expect(',', ')').Is(')') {
			break
		}
	}

	p.pop()

	return args
}

// <argument> ::= ':' | <expression> .
func (p *T) argument() ast.Expr {
	if p.peek().Is(':') {
		p.consume()

		return &ast.Colon{}
	}

	return p.expression()
}

// <matrix> ::= '[' (<row> ((';' | '\n') <row>)*)? ']' .
func (p *T) matrix() ast.Expr {
	p.consume()
	p.push('[')

	m := &ast.Matrix{}
	row := []ast.Expr{}

	for {
		p.skipSpaces()

		t := p.peek()

		switch {
		case t == nil:
			panic(ErrIncomplete)

		case t.Is(']'):
			p.consume()
			p.pop()

			if len(row) > 0 {
				m.Rows = append(m.Rows, row)
			}

			m.Source = source(m.Rows)

			return m

		case t.Is(';', '\n'):
			p.consume()

			if len(row) > 0 {
				m.Rows = append(m.Rows, row)
				row = []ast.Expr{}
			}

		case t.Is(','):
			p.consume()

		default:
			row = append(row, p.expression())
		}
	}
}

func source(rows [][]ast.Expr) string {
	r := make([]string, len(rows))

	for i, row := range rows {
		e := make([]string, len(row))
		for j, x := range row {
			e[j] = x.Text()
		}

		r[i] = strings.Join(e, ", ")
	}

	return "[" + strings.Join(r, "; ") + "]"
}

func number(p *T, t *token.T) *ast.Number {
	s := t.Value()
	n := &ast.Number{Source: s}

	if strings.ContainsAny(s[len(s)-1:], "iIjJ") {
		n.Imaginary = true
		s = s[:len(s)-1]
	}

	s = strings.NewReplacer("d", "e", "D", "e").Replace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(t, "invalid number '"+t.Value()+"'")
	}

	n.Value = v

	return n
}
