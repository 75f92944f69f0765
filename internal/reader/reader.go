// Released under an MIT license. See LICENSE.

// Package reader encapsulates the tc lexer and parser.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/tc/internal/reader/ast"
	"github.com/michaelmacinnis/tc/internal/reader/lexer"
	"github.com/michaelmacinnis/tc/internal/reader/parser"
)

// T (reader) turns lines of text into statements.
type T struct {
	name    string
	pending string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Pending returns true if the reader holds the start of an incomplete
// statement.
func (r *reader) Pending() bool {
	return r.pending != ""
}

// Reset discards any incomplete statement.
func (r *reader) Reset() {
	r.pending = ""
}

// Scan reads the line and returns the statements it completes. If the line
// leaves a statement incomplete, Scan returns no statements and no error
// and the line is kept until more input arrives.
func (r *reader) Scan(line string) ([]*ast.Statement, error) {
	text := r.pending + line

	l := lexer.New(r.name)
	l.Scan(text)

	stmts, err := parser.Statements(l.Token)
	if errors.Is(err, parser.ErrIncomplete) {
		r.pending = text

		return nil, nil
	}

	r.pending = ""

	return stmts, err
}
