// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for tc.
package ui

import (
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/tc/internal/reader"
	"github.com/michaelmacinnis/tc/internal/reader/ast"
	"github.com/michaelmacinnis/tc/internal/system/history"
)

// Prompts.
const (
	Continue = ".. "
	Prompt   = ">> "
)

// Evaluator is the interface for things that want to process parsed
// statements.
type Evaluator interface {
	Evaluate(stmts []*ast.Statement) error
	Report(err error)
	Variables() []string
}

// Run reads statements from the terminal and sends them to e until the
// user ends input. Names in builtins are offered as completions.
func Run(e Evaluator, builtins []string) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	_ = history.Load(cli.ReadHistory)

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(line, pos, builtins, e.Variables())
	})

	r := reader.New("tc")

	for {
		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		p := Prompt
		if r.Pending() {
			p = Continue
		}

		line, err := cli.Prompt(p)

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			continue
		case errors.Is(err, io.EOF):
			os.Stdout.WriteString("\n")

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		stmts, err := r.Scan(line + "\n")
		if err == nil {
			err = e.Evaluate(stmts)
		}

		if err != nil {
			e.Report(err)
		}
	}
}

// complete offers the builtins and variables that start with the word
// ending at pos.
func complete(line string, pos int, builtins, variables []string) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	start := strings.LastIndexFunc(head, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) + 1

	word := head[start:]
	if word == "" {
		return head, nil, tail
	}

	seen := map[string]bool{}

	var cs []string

	for _, l := range [][]string{variables, builtins} {
		for _, n := range l {
			if strings.HasPrefix(n, word) && !seen[n] {
				seen[n] = true
				cs = append(cs, n)
			}
		}
	}

	sort.Strings(cs)

	return head[:start], cs, tail
}
