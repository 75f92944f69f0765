// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func parse(t *testing.T, tty bool, argv ...string) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	// A nil argv would be replaced with os.Args.
	opts, err := p.ParseArgs(usage, append([]string{}, argv...), Version)
	if err != nil {
		t.Fatalf("Parsing %v: %v", argv, err)
	}

	apply(opts, tty)
}

func TestInteractive(t *testing.T) {
	tests := []struct {
		argv        []string
		tty         bool
		interactive bool
	}{
		{nil, true, true},
		{nil, false, false},
		{[]string{"-i"}, true, false},
		{[]string{"-i"}, false, true},
		{[]string{"-s"}, true, true},
		{[]string{"script.tc"}, true, false},
		{[]string{"-c", "x = 1"}, true, false},
	}

	for _, tt := range tests {
		parse(t, tt.tty, tt.argv...)

		if Interactive() != tt.interactive {
			t.Errorf("%v (tty %v): expected interactive %v", tt.argv, tt.tty, tt.interactive)
		}
	}
}

func TestScriptAndCommand(t *testing.T) {
	parse(t, false, "-q", "script.tc")

	if Script() != "script.tc" || Command() != "" || !Quiet() {
		t.Fatalf("unexpected script %q command %q quiet %v", Script(), Command(), Quiet())
	}

	parse(t, false, "-c", "x = 1")

	if Script() != "" || Command() != "x = 1" || Quiet() {
		t.Fatalf("unexpected script %q command %q quiet %v", Script(), Command(), Quiet())
	}
}

func TestPreferences(t *testing.T) {
	parse(t, false, "--prefer-column-vectors", "--precision=8", "-s")

	p := Preferences()
	if !p.PreferColumnVectors || p.OutputPrecision != 8 {
		t.Fatalf("unexpected preferences %+v", p)
	}

	parse(t, false)

	p = Preferences()
	if p.PreferColumnVectors || p.OutputPrecision != 5 {
		t.Fatalf("unexpected default preferences %+v", p)
	}
}
