// Released under an MIT license. See LICENSE.

// Package options parses tc's command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/tc/internal/prefs"
)

// Version is printed by -v.
const Version = "tc 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	preferences prefs.T
	quiet       bool
	script      string
	usage       = `tc

Usage:
  tc [-q] [--prefer-column-vectors] [--precision=N] SCRIPT
  tc [-q] [--prefer-column-vectors] [--precision=N] -c COMMAND
  tc [-iq] [--prefer-column-vectors] [--precision=N] [-s]
  tc -h
  tc -v

Arguments:
  SCRIPT  Path to a file of tc statements.

Options:
  -c, --command=COMMAND      Evaluate the specified statements.
  -i, --interactive          Invert interactive mode.
  -q, --quiet                Do not print the banner.
  -s, --stdin                Read statements from stdin.
  --prefer-column-vectors    Build column vectors by default.
  --precision=N              Significant digits when printing [default: 5].
  -h, --help                 Display this help.
  -v, --version              Print tc version.

If tc's stdin is a TTY, and tc was invoked with no SCRIPT or COMMAND,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the statements passed with -c.
func Command() string {
	return command
}

// Interactive returns true if tc should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. For -h, -v or a malformed command line it
// prints a message and exits.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	apply(opts, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func apply(opts docopt.Opts, tty bool) {
	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = command == "" && script == "" && tty

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	quiet, _ = opts.Bool("--quiet")

	preferences = prefs.Default()
	preferences.PreferColumnVectors, _ = opts.Bool("--prefer-column-vectors")

	if s, _ := opts.String("--precision"); s != "" {
		n, err := strconv.Atoi(s)
		if err == nil && n > 0 {
			preferences.OutputPrecision = n
		}
	}
}

// Preferences returns the preferences selected on the command line.
func Preferences() prefs.T {
	return preferences
}

// Quiet returns true if the banner should be suppressed.
func Quiet() bool {
	return quiet
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}
