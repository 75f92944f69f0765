// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/reader/ast"
	"github.com/michaelmacinnis/tc/internal/reader/lexer"
)

func parse(t *testing.T, s string) []*ast.Statement {
	t.Helper()

	l := lexer.New("test")
	l.Scan(s)

	stmts, err := Statements(l.Token)
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	return stmts
}

func parseError(s string) error {
	l := lexer.New("test")
	l.Scan(s)

	_, err := Statements(l.Token)

	return err
}

func TestStatements(t *testing.T) {
	tests := []struct {
		input  string
		target string
		value  string
		print  bool
	}{
		{"x = 1\n", "x", "1", true},
		{"x = 1;\n", "x", "1", false},
		{"y = [1 2; 3 4]\n", "y", "[1, 2; 3, 4]", true},
		{"z = [1, -2\n3, 4]\n", "z", "[1, -2; 3, 4]", true},
		{"1:2:9\n", "", "1:2:9", true},
		{"a(:, 2)\n", "", "a(:, 2)", true},
		{"a (1)\n", "", "a(1)", true},
		{"x++;\n", "", "x++", false},
		{"--x\n", "", "--x", true},
		{"s = 'it''s'\n", "s", "'it''s'", true},
		{"e = []\n", "e", "[]", true},
		{"r = [1 :3]\n", "r", "[1:3]", true},
		{"d = [1 - 2]\n", "d", "[1, -2]", true},
		{"c = 3 + 0\n", "", "", false},
	}

	for _, tt := range tests {
		if tt.value == "" {
			if err := parseError(tt.input); err == nil {
				t.Errorf("Expected %q to fail", tt.input)
			}

			continue
		}

		stmts := parse(t, tt.input)
		if len(stmts) != 1 {
			t.Fatalf("Expected one statement from %q; got %d", tt.input, len(stmts))
		}

		s := stmts[0]
		if s.Target != tt.target || s.Value.Text() != tt.value || s.Print != tt.print {
			t.Errorf("%q: got target %q value %q print %v", tt.input, s.Target, s.Value.Text(), s.Print)
		}
	}
}

func TestIndexedAssignment(t *testing.T) {
	s := parse(t, "a(2, :) = [5 6]\n")[0]

	if s.Target != "a" || len(s.Args) != 2 {
		t.Fatalf("Expected an indexed assignment to a; got %q with %d subscripts", s.Target, len(s.Args))
	}

	if _, ok := s.Args[1].(*ast.Colon); !ok {
		t.Fatalf("Expected a colon subscript; got %T", s.Args[1])
	}
}

func TestMultipleStatements(t *testing.T) {
	stmts := parse(t, "a = 1, b = 2; c = 3\n\n")

	if len(stmts) != 3 {
		t.Fatalf("Expected 3 statements; got %d", len(stmts))
	}

	if !stmts[0].Print || stmts[1].Print || !stmts[2].Print {
		t.Fatalf("Unexpected print flags")
	}
}

func TestLiterals(t *testing.T) {
	n, ok := parse(t, "-2.5e1i\n")[0].Value.(*ast.Number)
	if !ok || n.Value != -25 || !n.Imaginary {
		t.Fatalf("Expected the imaginary number -25; got %#v", n)
	}

	s, ok := parse(t, "\"a\\tb\"\n")[0].Value.(*ast.String)
	if !ok || s.Value != "a\tb" {
		t.Fatalf("Expected an escaped tab; got %#v", s)
	}

	m, ok := parse(t, "[1 2 3; 4 5 6]\n")[0].Value.(*ast.Matrix)
	if !ok || len(m.Rows) != 2 || len(m.Rows[1]) != 3 {
		t.Fatalf("Expected a 2x3 matrix; got %#v", m)
	}
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{"x = [1 2\n", "a(1\n"} {
		err := parseError(s)

		if s == "x = [1 2\n" && !errors.Is(err, ErrIncomplete) {
			t.Errorf("%q: expected incomplete input; got %v", s, err)
		}

		if err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	for _, s := range []string{
		"x = \n",
		"1 = 2\n",
		"x = -y\n",
		"x = 1 2\n",
		"'abc\n",
		"x = 1 @\n",
		"a(1,]\n",
	} {
		err := parseError(s)
		if !fault.Is(err, fault.Syntax) {
			t.Errorf("%q: expected a syntax error; got %v", s, err)
		}
	}
}
