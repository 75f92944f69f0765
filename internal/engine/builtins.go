// Released under an MIT license. See LICENSE.

package engine

import (
	"sort"

	"github.com/michaelmacinnis/tc/internal/constant"
	"github.com/michaelmacinnis/tc/internal/fault"
	"github.com/michaelmacinnis/tc/internal/mapper"
)

type builtin struct {
	min, max int
	fn       func(args constant.List) *constant.T
}

//nolint:gochecknoglobals
var builtins map[string]builtin

func unary(fn func(*constant.T) *constant.T) builtin {
	return builtin{1, 1, func(args constant.List) *constant.T {
		return fn(args[0])
	}}
}

func predicate(fn func(*constant.T) bool) builtin {
	return unary(func(v *constant.T) *constant.T {
		if fn(v) {
			return constant.NewScalar(1)
		}

		return constant.NewScalar(0)
	})
}

func count(fn func(*constant.T) int) builtin {
	return unary(func(v *constant.T) *constant.T {
		return constant.NewScalar(float64(fn(v)))
	})
}

//nolint:gochecknoinits
func init() {
	builtins = map[string]builtin{
		"all":     unary((*constant.T).All),
		"any":     unary((*constant.T).Any),
		"columns": count((*constant.T).Columns),
		"cumprod": unary((*constant.T).CumProd),
		"cumsum":  unary((*constant.T).CumSum),
		"diag": {1, 2, func(args constant.List) *constant.T {
			if len(args) == 2 {
				return args[0].DiagK(args[1])
			}

			return args[0].Diag()
		}},
		"iscomplex": predicate((*constant.T).IsComplexType),
		"isempty":   predicate((*constant.T).IsEmpty),
		"isreal": predicate(func(v *constant.T) bool {
			return v.IsRealType() || v.IsRange()
		}),
		"isstr":  predicate((*constant.T).IsString),
		"prod":   unary((*constant.T).Prod),
		"rows":   count((*constant.T).Rows),
		"setstr": unary((*constant.T).ConvertToStr),
		"size": unary(func(v *constant.T) *constant.T {
			return constant.NewRowVector([]float64{
				float64(v.Rows()), float64(v.Columns()),
			}, constant.Row)
		}),
		"sum":   unary((*constant.T).Sum),
		"sumsq": unary((*constant.T).SumSq),
		"typeof": unary(func(v *constant.T) *constant.T {
			return constant.NewString(v.TypeAsString())
		}),
	}

	for _, name := range mapper.Names() {
		m, _ := mapper.Lookup(name)

		builtins[name] = unary(func(v *constant.T) *constant.T {
			return v.Mapper(m, false)
		})
	}
}

// Builtins returns the sorted names of the builtin functions.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func (e *engine) call(name string, args constant.List) *constant.T {
	b, ok := builtins[name]
	if !ok {
		fault.Raise(fault.Undefined, "'%s' undefined", name)
	}

	if len(args) < b.min || len(args) > b.max {
		fault.Raise(fault.Unclassified, "Invalid call to %s", name)
	}

	for _, a := range args {
		if a.IsMagicColon() {
			fault.Raise(fault.IllegalState, "%s: invalid use of colon", name)
		}

		if a.IsUndefined() {
			fault.Raise(fault.Undefined, "%s: argument is undefined", name)
		}
	}

	return b.fn(args)
}
