// Released under an MIT license. See LICENSE.

package constant

// The queries below never change a value.

// Rows returns the number of rows in t. It must not be called on a magic
// colon.
func (t *T) Rows() int {
	return t.rep.rows()
}

// Columns returns the number of columns in t. It must not be called on a
// magic colon.
func (t *T) Columns() int {
	return t.rep.columns()
}

// IsDefined returns true if t has a value.
func (t *T) IsDefined() bool {
	return t.rep.kind != Unknown
}

// IsUndefined returns true if t has no value.
func (t *T) IsUndefined() bool {
	return t.rep.kind == Unknown
}

// ConstType returns the type of t's value.
func (t *T) ConstType() Type {
	return t.rep.kind
}

// TypeAsString returns the name of the type of t's value.
func (t *T) TypeAsString() string {
	return t.rep.kind.String()
}

func (t *T) IsUnknown() bool {
	return t.rep.kind == Unknown
}

func (t *T) IsRealScalar() bool {
	return t.rep.kind == RealScalar
}

func (t *T) IsRealMatrix() bool {
	return t.rep.kind == RealMatrix
}

func (t *T) IsComplexScalar() bool {
	return t.rep.kind == ComplexScalar
}

func (t *T) IsComplexMatrix() bool {
	return t.rep.kind == ComplexMatrix
}

func (t *T) IsString() bool {
	return t.rep.kind == String
}

func (t *T) IsRange() bool {
	return t.rep.kind == Range
}

func (t *T) IsMagicColon() bool {
	return t.rep.kind == MagicColon
}

// IsRealType returns true for real scalars and matrices.
func (t *T) IsRealType() bool {
	return t.rep.kind == RealScalar || t.rep.kind == RealMatrix
}

// IsComplexType returns true for complex scalars and matrices.
func (t *T) IsComplexType() bool {
	return t.rep.isComplexType()
}

// IsScalarType returns true for real and complex scalars.
func (t *T) IsScalarType() bool {
	return t.rep.kind == RealScalar || t.rep.kind == ComplexScalar
}

// IsMatrixType returns true for real and complex matrices.
func (t *T) IsMatrixType() bool {
	return t.rep.kind == RealMatrix || t.rep.kind == ComplexMatrix
}

// IsNumericType returns true for real and complex scalars and matrices.
func (t *T) IsNumericType() bool {
	return t.rep.kind.Numeric()
}

// IsNumericOrRangeType returns true for numeric values and ranges.
func (t *T) IsNumericOrRangeType() bool {
	return t.rep.kind.Numeric() || t.rep.kind == Range
}

// IsEmpty returns true if at least one of t's dimensions is zero.
func (t *T) IsEmpty() bool {
	return t.rep.isEmpty()
}

// IsZeroByZero returns true if both of t's dimensions are zero.
func (t *T) IsZeroByZero() bool {
	if t.IsMagicColon() || t.IsUnknown() {
		return false
	}

	return t.Rows() == 0 && t.Columns() == 0
}

// ValidAsScalarIndex returns true if t, read as a number, is a single
// non-negative integer.
func (t *T) ValidAsScalarIndex() bool {
	return t.rep.validAsScalarIndex()
}

// IsTrue returns the truth value of t: true if every element is nonzero.
// An empty value is a shape fault. It must not be called on a magic colon
// or an undefined value.
func (t *T) IsTrue() bool {
	return t.rep.isTrue()
}

// All returns 1 where every element of t is nonzero, column by column for
// matrices.
func (t *T) All() *T {
	return handle(t.rep.all())
}

// Any returns 1 where some element of t is nonzero, column by column for
// matrices.
func (t *T) Any() *T {
	return handle(t.rep.any())
}
