package parser

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenLiteral // plain character, or backslash-escaped metacharacter

	// Operators
	TokenAlternate // |
	TokenStar      // *
	TokenPlus      // +
	TokenOptional  // ?

	// Grouping symbols
	TokenParenOpen  // (
	TokenParenClose // )
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenLiteral:
		return "(literal)"
	case TokenAlternate:
		return "|"
	case TokenStar:
		return "*"
	case TokenPlus:
		return "+"
	case TokenOptional:
		return "?"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in a pattern.
type Token struct {
	Type     TokenType // Type of the token
	Rune     rune      // Decoded character; meaningful only for TokenLiteral
	Value    string    // Source text of the token, escape included
	Position int       // Starting byte offset in the pattern
}

// lookupSymbol returns the token type for an operator character.
// Returns 0 if the rune has no operator meaning.
func lookupSymbol(r rune) TokenType {
	switch r {
	case '|':
		return TokenAlternate
	case '*':
		return TokenStar
	case '+':
		return TokenPlus
	case '?':
		return TokenOptional
	case '(':
		return TokenParenOpen
	case ')':
		return TokenParenClose
	default:
		return 0
	}
}
