// Released under an MIT license. See LICENSE.

// Package printer formats numeric values and strings for display.
package printer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/tc/internal/matrix"
	"github.com/michaelmacinnis/tc/internal/prefs"
	"github.com/michaelmacinnis/tc/internal/system/terminal"
)

// Width returns the number of columns available when printing matrices.
//
//nolint:gochecknoglobals
var Width = terminal.Width

// format renders a single real number in a field.
type format struct {
	width int
	conv  byte
	prec  int
}

func (f format) String(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	if v == 0 {
		// Avoid printing -0.
		v = 0
	}

	return strconv.FormatFloat(v, f.conv, f.prec, 64)
}

func (f format) pad(v float64) string {
	s := f.String(v)
	if len(s) < f.width {
		s = strings.Repeat(" ", f.width-len(s)) + s
	}

	return s
}

func integral(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || (v == math.Trunc(v) && math.Abs(v) < 1e10)
}

// choose picks one format for all of the values in data.
func choose(data []float64) format {
	p := prefs.Current()

	prec := p.OutputPrecision
	if prec < 1 {
		prec = 1
	}

	all := true
	top := 0.0

	for _, v := range data {
		if !integral(v) {
			all = false
		}

		if a := math.Abs(v); !math.IsInf(a, 0) && !math.IsNaN(a) && a > top {
			top = a
		}
	}

	f := format{conv: 'f'}

	if all {
		for _, v := range data {
			if n := len(f.String(v)); n > f.width {
				f.width = n
			}
		}

		return f
	}

	ld := 1
	if top >= 1 {
		ld = int(math.Floor(math.Log10(top))) + 1
	}

	rd := prec - ld
	if rd < 1 {
		rd = 1
	}

	if rd > prec-1 {
		rd = prec - 1
	}

	f.prec = rd
	f.width = ld + rd + 2

	if f.width > p.OutputMaxFieldWidth || (top > 0 && top < 1e-5) {
		f = format{conv: 'e', prec: prec - 1}
	}

	for _, v := range data {
		if n := len(f.String(v)); n > f.width {
			f.width = n
		}
	}

	return f
}

// Scalar returns the text for the real number d.
func Scalar(d float64) string {
	return choose([]float64{d}).String(d)
}

// ComplexScalar returns the text for the complex number z.
func ComplexScalar(z complex128) string {
	re, im := real(z), imag(z)

	f := choose([]float64{re, math.Abs(im)})
	f.width = 0

	return complexString(f, f, re, im)
}

func complexString(rf, imf format, re, im float64) string {
	sign := "+"
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}

	return rf.pad(re) + " " + sign + " " + imf.String(im) + "i"
}

// Empty returns the text for an empty rows x cols matrix.
func Empty(rows, cols int) string {
	if prefs.Current().PrintEmptyDimensions {
		return fmt.Sprintf("[](%dx%d)", rows, cols)
	}

	return "[]"
}

// Str writes the string s.
func Str(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

// RealMatrix writes the rows of m.
func RealMatrix(w io.Writer, m *matrix.Real) {
	if m.IsEmpty() {
		fmt.Fprintln(w, Empty(m.Rows(), m.Cols()))
		return
	}

	f := choose(m.Data())

	columns(w, m.Cols(), f.width+2, func(b *strings.Builder, i, j int) {
		b.WriteString("  ")
		b.WriteString(f.pad(m.At(i, j)))
	}, m.Rows())
}

// ComplexMatrix writes the rows of m.
func ComplexMatrix(w io.Writer, m *matrix.Complex) {
	if m.IsEmpty() {
		fmt.Fprintln(w, Empty(m.Rows(), m.Cols()))
		return
	}

	re := matrix.RealPart(m).Data()
	im := matrix.ImagPart(m).Data()

	abs := make([]float64, len(im))
	for k, v := range im {
		abs[k] = math.Abs(v)
	}

	rf := choose(re)
	imf := choose(abs)

	columns(w, m.Cols(), rf.width+imf.width+7, func(b *strings.Builder, i, j int) {
		z := m.At(i, j)

		s := complexString(rf, imf, real(z), imag(z))
		if n := rf.width + imf.width + 4; len(s) < n {
			s += strings.Repeat(" ", n-len(s))
		}

		b.WriteString("  ")
		b.WriteString(s)
	}, m.Rows())
}

// columns writes a matrix in chunks that fit the output width.
func columns(w io.Writer, cols, width int, cell func(*strings.Builder, int, int), rows int) {
	total := Width()

	per := total / width
	if per < 1 {
		per = 1
	}

	if per >= cols {
		for i := 0; i < rows; i++ {
			var b strings.Builder
			for j := 0; j < cols; j++ {
				cell(&b, i, j)
			}

			fmt.Fprintln(w, b.String())
		}

		return
	}

	for first := 0; first < cols; first += per {
		last := first + per
		if last > cols {
			last = cols
		}

		switch {
		case last-first == 1:
			fmt.Fprintf(w, " Column %d:\n\n", first+1)
		case last-first == 2:
			fmt.Fprintf(w, " Columns %d and %d:\n\n", first+1, last)
		default:
			fmt.Fprintf(w, " Columns %d through %d:\n\n", first+1, last)
		}

		for i := 0; i < rows; i++ {
			var b strings.Builder
			for j := first; j < last; j++ {
				cell(&b, i, j)
			}

			fmt.Fprintln(w, b.String())
		}

		if last < cols {
			fmt.Fprintln(w)
		}
	}
}
