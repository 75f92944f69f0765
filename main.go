// Released under an MIT license. See LICENSE.

/*
Tc is a calculator for matrices, ranges, complex numbers and strings.

	>> a = [1 2; 3 4];
	>> b = a;
	>> b(1, :) = []
	b =

	  3  4

	>> x = 1:5;
	>> x++
	>> sum(sqrt(-4:-1))

Values are shared between variables until one is changed.

Tc is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/michaelmacinnis/tc/internal/engine"
	"github.com/michaelmacinnis/tc/internal/prefs"
	"github.com/michaelmacinnis/tc/internal/reader"
	"github.com/michaelmacinnis/tc/internal/system/options"
	"github.com/michaelmacinnis/tc/internal/ui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tc: ")

	options.Parse()

	prefs.Set(options.Preferences())

	e := engine.New(os.Stdout, os.Stderr)
	defer e.Close()

	var err error

	switch {
	case options.Script() != "":
		err = script(e, options.Script())
	case options.Command() != "":
		err = e.Run("-c", options.Command())
	case options.Interactive():
		if !options.Quiet() {
			fmt.Println(options.Version)
		}

		err = ui.Run(e, engine.Builtins())
		if err != nil {
			log.Fatal(err)
		}

		return
	default:
		err = stdin(e, os.Stdin)
	}

	if err != nil {
		e.Report(err)
		e.Close()
		os.Exit(1)
	}
}

func script(e *engine.T, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	return e.Run(path, string(b))
}

// stdin evaluates statements a line at a time, stopping at the first
// error.
func stdin(e *engine.T, r io.Reader) error {
	rd := reader.New("stdin")

	s := bufio.NewScanner(r)
	for s.Scan() {
		stmts, err := rd.Scan(s.Text() + "\n")
		if err != nil {
			return err
		}

		if err = e.Evaluate(stmts); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return err
	}

	if rd.Pending() {
		return fmt.Errorf("stdin: unexpected end of input")
	}

	return nil
}
