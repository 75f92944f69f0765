// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for tc statements.
//
// The tc lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/tc/internal/reader/loc"
	"github.com/michaelmacinnis/tc/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = scanStart

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	l.tokens <- token.New(c, v, source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

// peekAt returns the byte n bytes past the current one, or 0.
func (l *T) peekAt(n int) byte {
	if l.index+n < len(l.bytes) {
		return l.bytes[l.index+n]
	}

	return 0
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterMinus(l *T) action {
	r, w := l.peek()

	if r == '-' {
		l.accept(r, w)
		l.emit(token.Decrement, l.Text())
	} else {
		l.emit('-', l.Text())
	}

	return scanStart
}

func afterPlus(l *T) action {
	r, w := l.peek()

	if r == '+' {
		l.accept(r, w)
		l.emit(token.Increment, l.Text())
	} else {
		l.emit('+', l.Text())
	}

	return scanStart
}

func collectSpace(l *T) action {
	for {
		r, w := l.peek()
		if r != ' ' && r != '\t' {
			l.emit(token.Space, l.Text())

			return scanStart
		}

		l.accept(r, w)
	}
}

func scanDoubleQuoted(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof, '\n':
			l.emit(token.Error, "unterminated string")

			return scanStart
		case '"':
			l.emit(token.DoubleQuoted, l.Text())

			return scanStart
		case '\\':
			if c, _ := l.peek(); c != eof && c != '\n' {
				l.next()
			}
		}
	}
}

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !identifier(r) {
			l.emit(token.Identifier, l.Text())

			return scanStart
		}

		l.accept(r, w)
	}
}

func scanNumber(l *T) action {
	l.digits()

	if r, w := l.peek(); r == '.' && l.peekAt(1) != '.' {
		l.accept(r, w)
		l.digits()
	}

	if r, w := l.peek(); strings.ContainsRune("eEdD", rune(r)) {
		n := 1
		if c := l.peekAt(1); c == '+' || c == '-' {
			n = 2
		}

		if c := l.peekAt(n); c >= '0' && c <= '9' {
			for ; n > 0; n-- {
				l.accept(r, w)
				r, w = l.peek()
			}

			l.digits()
		}
	}

	if r, w := l.peek(); strings.ContainsRune("iIjJ", rune(r)) {
		if c := l.peekAt(1); !identifier(token.Class(c)) {
			l.accept(r, w)
		}
	}

	l.emit(token.Number, l.Text())

	return scanStart
}

func scanSingleQuoted(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof, '\n':
			l.emit(token.Error, "unterminated string")

			return scanStart
		case '\'':
			// Two quotes in a row stand for one.
			if c, w := l.peek(); c == '\'' {
				l.accept(c, w)

				continue
			}

			l.emit(token.SingleQuoted, l.Text())

			return scanStart
		}
	}
}

func scanStart(l *T) action {
	r := l.next()

	switch {
	case r == eof:
		return nil
	case r == ' ' || r == '\t':
		return collectSpace
	case r == '%' || r == '#':
		return skipComment
	case r == '"':
		return scanDoubleQuoted
	case r == '\'':
		return scanSingleQuoted
	case r == '+':
		return afterPlus
	case r == '-':
		return afterMinus
	case r >= '0' && r <= '9':
		return scanNumber
	case r == '.' && l.peekAt(0) >= '0' && l.peekAt(0) <= '9':
		return scanNumber
	case identifier(r) && !unicode.IsDigit(rune(r)):
		return scanIdentifier
	}

	switch r {
	case '\n', '(', ')', ',', ':', ';', '=', '[', ']':
		l.emit(r, l.Text())
	default:
		l.emit(token.Error, "invalid character '"+l.Text()+"'")
	}

	return scanStart
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return scanStart
		}

		l.accept(r, w)
	}
}

func (l *T) digits() {
	for {
		r, w := l.peek()
		if r < '0' || r > '9' {
			return
		}

		l.accept(r, w)
	}
}

func identifier(r token.Class) bool {
	return r == '_' || unicode.IsLetter(rune(r)) || unicode.IsDigit(rune(r))
}
