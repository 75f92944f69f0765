// Released under an MIT license. See LICENSE.

// Package terminal reports properties of the controlling terminal.
package terminal

import (
	"os"
	"strconv"
)

// DefaultWidth is used when the width of the terminal cannot be determined.
const DefaultWidth = 80

// Width returns the number of columns available for output.
func Width() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}

	if n := width(int(os.Stdout.Fd())); n > 0 {
		return n
	}

	return DefaultWidth
}
