package parser

import (
	"fmt"

	"github.com/goderiv/goderiv/pkg/types"
)

// Operator precedence. Postfix repetition is applied immediately and never
// stacked, so only concatenation, alternation, and the open-paren marker
// appear on the operator stack; the paren's zero precedence stops draining.
const (
	precParen     = 0
	precAlternate = 2
	precConcat    = 3
	precPostfix   = 4
)

// stackOp is an operator awaiting reduction.
type stackOp uint8

const (
	opParen stackOp = iota // open-paren marker, discarded by ")"
	opAlternate
	opConcat
)

func (op stackOp) precedence() int {
	switch op {
	case opAlternate:
		return precAlternate
	case opConcat:
		return precConcat
	default:
		return precParen
	}
}

func (op stackOp) String() string {
	switch op {
	case opAlternate:
		return "alternation"
	case opConcat:
		return "concatenation"
	default:
		return "("
	}
}

// opEntry is a stacked operator plus the byte position it was pushed at,
// kept for error reporting.
type opEntry struct {
	op  stackOp
	pos int
}

// Parser builds a canonical expression tree from a pattern string.
//
// Its whole state is an operand stack, an operator stack, and prev: the
// most recently completed operand, or nil when one has just (re)started —
// at pattern start, right after "(", right after "|". Every token is
// consumed exactly once; there is no backtracking.
type Parser struct {
	lexer    *Lexer
	store    *types.Store
	source   string
	operands []*types.Node
	ops      []opEntry
	prev     *types.Node
}

// NewParser creates a new parser for the given pattern string.
func NewParser(pattern string, opts ...CompileOption) *Parser {
	options := CompileOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	st := options.Store
	if st == nil {
		st = types.NewStore()
	}

	return &Parser{
		lexer:  NewLexer(pattern),
		store:  st,
		source: pattern,
	}
}

// Parse consumes the whole token stream and returns the compiled pattern.
func (p *Parser) Parse() (*types.Pattern, error) {
	for {
		t := p.lexer.Next()
		switch t.Type {
		case TokenEOF:
			return p.finish()

		case TokenError:
			return nil, p.lexer.Error()

		case TokenLiteral:
			if err := p.pushOperand(p.store.Literal(t.Rune), t.Position); err != nil {
				return nil, err
			}

		case TokenParenOpen:
			// A group opener starts a fresh operand and does not
			// concatenate with what precedes it; "a(b)" fails the final
			// single-operand check.
			p.ops = append(p.ops, opEntry{opParen, t.Position})
			p.prev = nil

		case TokenParenClose:
			if err := p.closeGroup(t); err != nil {
				return nil, err
			}

		case TokenStar, TokenPlus, TokenOptional:
			if err := p.applyPostfix(t); err != nil {
				return nil, err
			}

		case TokenAlternate:
			if err := p.drain(precAlternate); err != nil {
				return nil, err
			}
			p.ops = append(p.ops, opEntry{opAlternate, t.Position})
			p.prev = nil
		}
	}
}

// pushOperand pushes a completed operand. If another operand immediately
// precedes it, the juxtaposition is an implicit concatenation: operators
// binding at least as tightly are reduced first, then a concatenation
// operator is shifted.
func (p *Parser) pushOperand(n *types.Node, pos int) error {
	if p.prev != nil {
		if err := p.drain(precConcat); err != nil {
			return err
		}
		p.ops = append(p.ops, opEntry{opConcat, pos})
	}
	p.operands = append(p.operands, n)
	p.prev = n
	return nil
}

// drain reduces stacked operators whose precedence is at least min.
func (p *Parser) drain(min int) error {
	for len(p.ops) > 0 {
		e := p.ops[len(p.ops)-1]
		if e.op.precedence() < min {
			return nil
		}
		p.ops = p.ops[:len(p.ops)-1]
		if err := p.apply(e); err != nil {
			return err
		}
	}
	return nil
}

// apply reduces one binary operator: pop b, pop a, push the combined node.
func (p *Parser) apply(e opEntry) error {
	if len(p.operands) < 2 {
		return types.NewError(types.ErrIncompletePattern,
			fmt.Sprintf("%s is missing an operand", e.op), e.pos)
	}
	b := p.operands[len(p.operands)-1]
	a := p.operands[len(p.operands)-2]
	p.operands = p.operands[:len(p.operands)-1]

	switch e.op {
	case opAlternate:
		p.operands[len(p.operands)-1] = p.store.Union(a, b)
	case opConcat:
		p.operands[len(p.operands)-1] = p.store.Concat(a, b)
	}
	return nil
}

// closeGroup reduces back to the matching "(", discards it, and completes
// the group as an operand.
func (p *Parser) closeGroup(t Token) error {
	for {
		if len(p.ops) == 0 {
			return types.NewError(types.ErrMismatchedParen, `unmatched ")"`, t.Position).WithToken(t.Value)
		}
		e := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if e.op == opParen {
			break
		}
		if err := p.apply(e); err != nil {
			return err
		}
	}
	if len(p.operands) == 0 {
		return types.NewError(types.ErrIncompletePattern, "empty group", t.Position).WithToken(t.Value)
	}
	p.prev = p.operands[len(p.operands)-1]
	return nil
}

// applyPostfix rewrites the preceding operand in place. Repetition binds
// tighter than everything else, so no draining is needed; it only requires
// that an operand actually precedes it.
func (p *Parser) applyPostfix(t Token) error {
	if p.prev == nil {
		return types.NewError(types.ErrMisplacedOperator,
			fmt.Sprintf("%q cannot appear at the start of an expression", t.Value),
			t.Position).WithToken(t.Value)
	}

	operand := p.operands[len(p.operands)-1]
	var n *types.Node
	switch t.Type {
	case TokenStar:
		n = p.store.Star(operand)
	case TokenPlus:
		// e+ is e followed by zero or more e.
		n = p.store.Concat(operand, p.store.Star(operand))
	case TokenOptional:
		// e? is epsilon or e.
		n = p.store.Union(p.store.Epsilon(), operand)
	}
	p.operands[len(p.operands)-1] = n
	p.prev = n
	return nil
}

// finish reduces everything left on the operator stack and checks that the
// parse produced exactly one expression.
func (p *Parser) finish() (*types.Pattern, error) {
	for len(p.ops) > 0 {
		e := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if e.op == opParen {
			return nil, types.NewError(types.ErrMismatchedParen, `unclosed "("`, e.pos).WithToken("(")
		}
		if err := p.apply(e); err != nil {
			return nil, err
		}
	}

	if len(p.operands) != 1 {
		return nil, types.NewError(types.ErrIncompletePattern,
			fmt.Sprintf("pattern must reduce to a single expression, got %d", len(p.operands)),
			len(p.source))
	}
	return types.NewPattern(p.operands[0], p.store, p.source), nil
}
