// Released under an MIT license. See LICENSE.

package constant

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/tc/internal/matrix"
	"github.com/michaelmacinnis/tc/internal/printer"
)

func (r *rep) print(w io.Writer) {
	switch r.kind {
	case RealScalar:
		fmt.Fprintln(w, printer.Scalar(r.scalar))
	case ComplexScalar:
		fmt.Fprintln(w, printer.ComplexScalar(r.complexScalar))
	case RealMatrix:
		printer.RealMatrix(w, r.matrix)
	case ComplexMatrix:
		printer.ComplexMatrix(w, r.complexMatrix)
	case String:
		printer.Str(w, r.str)
	case Range:
		printer.RealMatrix(w, r.rng.Matrix())
	case MagicColon:
		fmt.Fprintln(w, ":")
	}
}

// inline returns true if r prints on the same line as its name.
func (r *rep) inline() bool {
	switch r.kind {
	case RealMatrix, ComplexMatrix, Range:
		return r.isEmpty()
	}

	return true
}

func (r *rep) printAs(w io.Writer, name string) {
	if r.kind == Unknown {
		fmt.Fprintf(w, "%s = <undefined>\n", name)
		return
	}

	var b bytes.Buffer

	r.print(&b)

	if r.inline() {
		fmt.Fprintf(w, "%s = %s", name, b.String())
		return
	}

	fmt.Fprintf(w, "%s =\n\n%s\n", name, b.String())
}

func (r *rep) printCode(w io.Writer) {
	fmt.Fprint(w, r.code())
}

func number(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func complexCode(z complex128) string {
	re, im := real(z), imag(z)

	if im < 0 {
		return number(re) + " - " + number(-im) + "i"
	}

	return number(re) + " + " + number(im) + "i"
}

func matrixCode[E matrix.Elem](m *matrix.Dense[E], elem func(E) string) string {
	var b strings.Builder

	b.WriteByte('[')

	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteString("; ")
		}

		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(", ")
			}

			b.WriteString(elem(m.At(i, j)))
		}
	}

	b.WriteByte(']')

	return b.String()
}

func (r *rep) code() string {
	if r.text != "" {
		return r.text
	}

	switch r.kind {
	case RealScalar:
		return number(r.scalar)
	case ComplexScalar:
		return complexCode(r.complexScalar)
	case RealMatrix:
		return matrixCode(r.matrix, number)
	case ComplexMatrix:
		return matrixCode(r.complexMatrix, func(z complex128) string {
			return "(" + complexCode(z) + ")"
		})
	case String:
		return strconv.Quote(r.str)
	case Range:
		if r.rng.Inc == 1 {
			return number(r.rng.Base) + ":" + number(r.rng.Limit)
		}

		return number(r.rng.Base) + ":" + number(r.rng.Inc) + ":" + number(r.rng.Limit)
	case MagicColon:
		return ":"
	}

	return ""
}
