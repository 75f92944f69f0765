// Released under an MIT license. See LICENSE.

// Package prefs holds user preferences that affect how values are built
// and printed.
package prefs

// T (prefs) is the set of user preferences.
type T struct {
	// Orientation used for vectors built without an explicit preference.
	PreferColumnVectors bool

	// Significant digits used when printing numbers.
	OutputPrecision int

	// Widest field used when printing a matrix element.
	OutputMaxFieldWidth int

	// Print the dimensions of empty matrices.
	PrintEmptyDimensions bool
}

// Default returns the default preferences.
func Default() T {
	return T{
		OutputPrecision:      5,
		OutputMaxFieldWidth:  10,
		PrintEmptyDimensions: true,
	}
}

//nolint:gochecknoglobals
var current = Default()

// Current returns the preferences currently in effect.
func Current() T {
	return current
}

// Set replaces the preferences currently in effect and returns the old ones.
func Set(p T) T {
	old := current
	current = p

	return old
}
