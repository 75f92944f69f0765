// Released under an MIT license. See LICENSE.

package constant

// Type identifies the kind of value a representation holds.
type Type int

// Value types. Exactly one is active in a representation at a time.
const (
	Unknown Type = iota
	RealScalar
	RealMatrix
	ComplexScalar
	ComplexMatrix
	String
	Range
	MagicColon
)

// String returns the name of the type t, for diagnostics.
func (t Type) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case RealScalar:
		return "real scalar"
	case RealMatrix:
		return "real matrix"
	case ComplexScalar:
		return "complex scalar"
	case ComplexMatrix:
		return "complex matrix"
	case String:
		return "string"
	case Range:
		return "range"
	case MagicColon:
		return "magic colon"
	default:
		return "<unknown type>"
	}
}

// Numeric returns true for the four numeric types.
func (t Type) Numeric() bool {
	switch t {
	case RealScalar, RealMatrix, ComplexScalar, ComplexMatrix:
		return true
	}

	return false
}

// Orientation says whether a vector should be stored as a row or a column.
type Orientation int

// Vector orientations. Preferred defers to prefs.PreferColumnVectors.
const (
	Preferred Orientation = iota
	Row
	Column
)

// Conversion controls which implicit conversions a value accessor may
// perform. The zero value, Strict, performs none.
type Conversion uint8

// Strict permits no implicit conversion.
const Strict Conversion = 0

// Conversions that may be combined.
const (
	// ForceString lets a string be read as its character codes.
	ForceString Conversion = 1 << iota

	// ForceVector lets a matrix be read as a vector of its elements in
	// column-major order.
	ForceVector
)

func (c Conversion) has(f Conversion) bool {
	return c&f != 0
}

// Bump is an increment or decrement operator.
type Bump int

// Increment and decrement operators.
const (
	PreIncrement Bump = iota
	PostIncrement
	PreDecrement
	PostDecrement
)

// Delta returns the amount the operator b adds to each element.
func (b Bump) Delta() float64 {
	if b == PreDecrement || b == PostDecrement {
		return -1
	}

	return 1
}

// String returns the operator text for b.
func (b Bump) String() string {
	if b.Delta() < 0 {
		return "--"
	}

	return "++"
}
