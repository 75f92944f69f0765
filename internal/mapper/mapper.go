// Released under an MIT license. See LICENSE.

// Package mapper describes functions applied to every element of a
// numeric value.
package mapper

import (
	"math"
	"math/cmplx"
	"sort"
)

// T (mapper) describes an elementwise numeric function.
//
// A real argument is mapped with RealReal unless CanReturnComplex is set
// and some element lies outside [Lower, Upper]. In that case the argument
// is promoted and mapped with ComplexComplex. A complex argument is mapped
// with ComplexReal when it is set and with ComplexComplex otherwise.
type T struct {
	Name             string
	CanReturnComplex bool
	Lower            float64
	Upper            float64
	RealReal         func(float64) float64
	ComplexReal      func(complex128) float64
	ComplexComplex   func(complex128) complex128
}

// NeedsComplex returns true if a real argument containing v must be
// promoted to complex before mapping.
func (m *T) NeedsComplex(v float64) bool {
	return m.CanReturnComplex && (v < m.Lower || v > m.Upper)
}

// Lookup returns the standard mapper called name.
func Lookup(name string) (*T, bool) {
	m, ok := table[name]

	return m, ok
}

// Names returns the names of the standard mappers in sorted order.
func Names() []string {
	n := make([]string, 0, len(table))
	for k := range table {
		n = append(n, k)
	}

	sort.Strings(n)

	return n
}

func boolean(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func fix(x float64) float64 {
	return math.Trunc(x)
}

func round(x float64) float64 {
	return math.Round(x)
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

func parts(f func(float64) float64) func(complex128) complex128 {
	return func(z complex128) complex128 {
		return complex(f(real(z)), f(imag(z)))
	}
}

//nolint:gochecknoglobals
var table = map[string]*T{}

func register(m *T) {
	table[m.Name] = m
}

func unbounded(name string, rr func(float64) float64, cc func(complex128) complex128) {
	register(&T{
		Name:           name,
		Lower:          math.Inf(-1),
		Upper:          math.Inf(1),
		RealReal:       rr,
		ComplexComplex: cc,
	})
}

func bounded(name string, lower, upper float64, rr func(float64) float64, cc func(complex128) complex128) {
	register(&T{
		Name:             name,
		CanReturnComplex: true,
		Lower:            lower,
		Upper:            upper,
		RealReal:         rr,
		ComplexComplex:   cc,
	})
}

func realValued(name string, rr func(float64) float64, cr func(complex128) float64) {
	register(&T{
		Name:        name,
		Lower:       math.Inf(-1),
		Upper:       math.Inf(1),
		RealReal:    rr,
		ComplexReal: cr,
	})
}

func init() {
	realValued("abs", math.Abs, cmplx.Abs)
	realValued("real", func(x float64) float64 { return x }, func(z complex128) float64 { return real(z) })
	realValued("imag", func(float64) float64 { return 0 }, func(z complex128) float64 { return imag(z) })
	realValued("arg", func(x float64) float64 { return cmplx.Phase(complex(x, 0)) }, cmplx.Phase)
	realValued("angle", func(x float64) float64 { return cmplx.Phase(complex(x, 0)) }, cmplx.Phase)
	realValued("isnan", func(x float64) float64 { return boolean(math.IsNaN(x)) }, func(z complex128) float64 {
		return boolean(cmplx.IsNaN(z))
	})
	realValued("isinf", func(x float64) float64 { return boolean(math.IsInf(x, 0)) }, func(z complex128) float64 {
		return boolean(cmplx.IsInf(z))
	})
	realValued("finite", func(x float64) float64 {
		return boolean(!math.IsInf(x, 0) && !math.IsNaN(x))
	}, func(z complex128) float64 {
		return boolean(!cmplx.IsInf(z) && !cmplx.IsNaN(z))
	})

	unbounded("conj", func(x float64) float64 { return x }, cmplx.Conj)
	unbounded("ceil", math.Ceil, parts(math.Ceil))
	unbounded("floor", math.Floor, parts(math.Floor))
	unbounded("fix", fix, parts(fix))
	unbounded("round", round, parts(round))
	unbounded("sign", signum, func(z complex128) complex128 {
		if z == 0 {
			return 0
		}
		return z / complex(cmplx.Abs(z), 0)
	})
	unbounded("exp", math.Exp, cmplx.Exp)
	unbounded("sin", math.Sin, cmplx.Sin)
	unbounded("cos", math.Cos, cmplx.Cos)
	unbounded("tan", math.Tan, cmplx.Tan)
	unbounded("atan", math.Atan, cmplx.Atan)
	unbounded("sinh", math.Sinh, cmplx.Sinh)
	unbounded("cosh", math.Cosh, cmplx.Cosh)
	unbounded("tanh", math.Tanh, cmplx.Tanh)
	unbounded("asinh", math.Asinh, cmplx.Asinh)

	inf := math.Inf(1)

	bounded("sqrt", 0, inf, math.Sqrt, cmplx.Sqrt)
	bounded("log", 0, inf, math.Log, cmplx.Log)
	bounded("log10", 0, inf, math.Log10, cmplx.Log10)
	bounded("asin", -1, 1, math.Asin, cmplx.Asin)
	bounded("acos", -1, 1, math.Acos, cmplx.Acos)
	bounded("acosh", 1, inf, math.Acosh, cmplx.Acosh)
	bounded("atanh", -1, 1, math.Atanh, cmplx.Atanh)
}
