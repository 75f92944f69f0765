// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed tc statements.
package engine

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/tc/internal/constant"
	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/reader"
	"github.com/michaelmacinnis/tc/internal/reader/ast"
)

// Answer is the variable that receives the value of an expression
// statement.
const Answer = "ans"

// T (engine) holds the workspace and evaluates statements against it.
type T struct {
	errors io.Writer
	output io.Writer
	vars   map[string]*constant.T
}

type engine = T

// New creates a new T that prints values to output and diagnostics to
// diagnostics.
func New(output, diagnostics io.Writer) *T {
	return &T{
		errors: diagnostics,
		output: output,
		vars:   map[string]*constant.T{},
	}
}

// Close releases every variable in the workspace.
func (e *engine) Close() {
	for k, v := range e.vars {
		v.Release()
		delete(e.vars, k)
	}
}

// Evaluate executes stmts in order, stopping at the first error.
func (e *engine) Evaluate(stmts []*ast.Statement) error {
	for _, s := range stmts {
		if err := e.Execute(s); err != nil {
			return err
		}
	}

	return nil
}

// Execute executes a single statement. The error, if any, is annotated
// with the statement's location. errors.Cause returns the underlying
// *fault.T.
func (e *engine) Execute(s *ast.Statement) error {
	err := fault.Catch(func() {
		e.statement(s)
	})
	if err != nil {
		return errors.Wrapf(err, "%s", s.Source.String())
	}

	return nil
}

// Report writes err to the engine's diagnostic writer.
func (e *engine) Report(err error) {
	fmt.Fprintf(e.errors, "error: %v\n", err)
}

// Run evaluates the text of the script called name. Errors are returned,
// not reported.
func (e *engine) Run(name, text string) error {
	r := reader.New(name)

	stmts, err := r.Scan(text + "\n")
	if err != nil {
		return err
	}

	if r.Pending() {
		return fault.New(fault.Syntax, name+": unexpected end of input")
	}

	return e.Evaluate(stmts)
}

// Lookup returns a new handle to the variable called name.
func (e *engine) Lookup(name string) (*constant.T, bool) {
	v, ok := e.vars[name]
	if !ok {
		return nil, false
	}

	return v.Copy(), true
}

// Variables returns the sorted names of the variables in the workspace.
func (e *engine) Variables() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func (e *engine) define(name string, v *constant.T) {
	if old, ok := e.vars[name]; ok {
		old.Release()
	}

	e.vars[name] = v
}

func (e *engine) statement(s *ast.Statement) {
	switch {
	case s.Target == "":
		e.expression(s)
	case s.Args == nil:
		v := e.evaluate(s.Value)
		defer v.Release()

		e.define(s.Target, v.Eval(false))
		e.show(s, s.Target)
	default:
		e.assign(s)
	}
}

func (e *engine) expression(s *ast.Statement) {
	v := e.evaluate(s.Value)
	defer v.Release()

	switch x := s.Value.(type) {
	case *ast.Bump:
		e.show(s, x.Name)

		return
	case *ast.Identifier:
		if _, ok := e.vars[x.Name]; ok {
			e.show(s, x.Name)

			return
		}
	}

	if v.IsDefined() {
		e.define(Answer, v.Eval(false))
		e.show(s, Answer)
	}
}

func (e *engine) assign(s *ast.Statement) {
	rhs := e.evaluate(s.Value)
	defer rhs.Release()

	args := e.arguments(s.Args)
	defer args.Release()

	lhs, ok := e.vars[s.Target]
	if !ok {
		lhs = constant.New()
	}

	lhs.Assign(rhs, args)
	lhs.Eval(false).Release()

	e.vars[s.Target] = lhs

	e.show(s, s.Target)
}

func (e *engine) show(s *ast.Statement, name string) {
	if s.Print {
		e.vars[name].PrintAs(e.output, name)
	}
}

func (e *engine) arguments(exprs []ast.Expr) constant.List {
	args := make(constant.List, 0, len(exprs))

	for _, x := range exprs {
		args = append(args, e.evaluate(x))
	}

	return args
}

func (e *engine) evaluate(x ast.Expr) *constant.T {
	switch x := x.(type) {
	case *ast.Number:
		var v *constant.T
		if x.Imaginary {
			v = constant.NewComplex(complex(0, x.Value))
		} else {
			v = constant.NewScalar(x.Value)
		}

		v.StashOriginalText(x.Source)

		return v

	case *ast.String:
		v := constant.NewString(x.Value)
		v.StashOriginalText(x.Source)

		return v

	case *ast.Matrix:
		return e.matrix(x)

	case *ast.Range:
		return e.rangeOf(x)

	case *ast.Colon:
		return constant.NewMagicColon()

	case *ast.Identifier:
		if v, ok := e.vars[x.Name]; ok {
			return v.Copy()
		}

		return e.call(x.Name, nil)

	case *ast.Call:
		args := e.arguments(x.Args)
		defer args.Release()

		if v, ok := e.vars[x.Name]; ok {
			l := v.EvalIndexed(false, 1, args)

			return l[0]
		}

		return e.call(x.Name, args)

	case *ast.Bump:
		return e.bump(x)
	}

	fault.Raise(fault.Syntax, "unsupported expression %s", x.Text())

	return nil
}

func (e *engine) bump(x *ast.Bump) *constant.T {
	v, ok := e.vars[x.Name]
	if !ok {
		fault.Raise(fault.Undefined, "'%s' undefined", x.Name)
	}

	b := constant.PostIncrement

	switch {
	case x.Prefix && x.Decrement:
		b = constant.PreDecrement
	case x.Prefix:
		b = constant.PreIncrement
	case x.Decrement:
		b = constant.PostDecrement
	}

	old := v.Copy()

	v.BumpValue(b)

	if x.Prefix {
		old.Release()

		return v.Copy()
	}

	return old
}

func (e *engine) rangeOf(x *ast.Range) *constant.T {
	limit := e.scalar(x.Limit)
	base := e.scalar(x.Base)

	inc := 1.0
	if x.Inc != nil {
		inc = e.scalar(x.Inc)
	}

	v := constant.NewRange(base, limit, inc)
	v.StashOriginalText(x.Text())

	return v
}

func (e *engine) scalar(x ast.Expr) float64 {
	v := e.evaluate(x)
	defer v.Release()

	if !v.IsNumericOrRangeType() || v.Rows() != 1 || v.Columns() != 1 {
		fault.Raise(fault.Shape, "invalid range element %s", x.Text())
	}

	return v.DoubleValue(constant.Strict)
}
