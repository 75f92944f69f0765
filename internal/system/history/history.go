// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"io"
	"os"
)

// Name is the base name of the history file.
const Name = ".tc_history"

// Load passes the history file to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save replaces the history file with what write produces.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
