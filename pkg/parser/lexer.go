package parser

import (
	"unicode/utf8"

	"github.com/goderiv/goderiv/pkg/types"
)

const eof = -1

// Lexer converts a pattern string into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided pattern string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
//
// A backslash escapes exactly the next character, which is then always a
// plain literal, operator characters and backslash included. A backslash
// with nothing after it is an error.
func (l *Lexer) Next() Token {
	ch := l.nextRune()
	if ch == eof {
		return l.eof()
	}

	if ch == '\\' {
		esc := l.nextRune()
		if esc == eof {
			return l.error(types.ErrUnterminatedEscape, "unterminated escape at end of pattern")
		}
		t := l.newToken(TokenLiteral)
		t.Rune = esc
		return t
	}

	if tt := lookupSymbol(ch); tt > 0 {
		return l.newToken(tt)
	}

	t := l.newToken(TokenLiteral)
	t.Rune = ch
	return t
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// nextRune reads the next rune from the input and advances the position.
func (l *Lexer) nextRune() rune {
	if l.current >= l.length {
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.current += w
	return r
}

// newToken creates a token of the given type spanning the current scan
// window, then resets the window.
func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.start = l.current
	return t
}

// eof returns the end-of-input token.
func (l *Lexer) eof() Token {
	return Token{Type: TokenEOF, Position: l.length}
}

// error records and returns an error token.
func (l *Lexer) error(code types.ErrorCode, msg string) Token {
	t := l.newToken(TokenError)
	l.err = types.NewError(code, msg, t.Position).WithToken(t.Value)
	return t
}
