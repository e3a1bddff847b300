package filter

import (
	"fmt"
	"strconv"
)

// ParseError reports a syntax error with its byte offset in the input.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse filter at offset %d: %s", e.Pos, e.Msg)
}

// Parse parses a filter expression into a tree.
//
// Grammar, loosest binding first:
//
//	expr  := and ('||' and)*
//	and   := unary ('&&' unary)*
//	unary := '!' unary | '(' expr ')' | key OP literal
//
// OP is one of ==, !=, ^= (prefix), $= (suffix), *= (contains), > and <.
// String literals use double quotes with Go escape syntax; integer literals
// are decimal. Keys are identifiers, dots allowed (e.g. model.name).
func Parse(expr string) (*Node, error) {
	p := &parser{input: expr}
	if err := p.next(); err != nil {
		return nil, err
	}

	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errf(p.tok.pos, "unexpected trailing input")
	}

	return n, nil
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokInt
	tokOp
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	text string // ident payload
	val  Value  // literal payload
	op   Op     // comparison payload
}

type parser struct {
	input string
	pos   int
	tok   token
}

func (p *parser) errf(pos int, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseOr() (*Node, error) {
	n, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokOr {
		return n, nil
	}

	children := []*Node{n}
	for p.tok.kind == tokOr {
		if err := p.next(); err != nil {
			return nil, err
		}
		c, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	return Any(children...), nil
}

func (p *parser) parseAnd() (*Node, error) {
	n, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokAnd {
		return n, nil
	}

	children := []*Node{n}
	for p.tok.kind == tokAnd {
		if err := p.next(); err != nil {
			return nil, err
		}
		c, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	return All(children...), nil
}

func (p *parser) parseUnary() (*Node, error) {
	switch p.tok.kind {
	case tokNot:
		if err := p.next(); err != nil {
			return nil, err
		}
		c, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(c), nil

	case tokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errf(p.tok.pos, "expected closing parenthesis")
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return n, nil

	case tokIdent:
		key := p.tok.text
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokOp {
			return nil, p.errf(p.tok.pos, "expected comparison operator after %q", key)
		}
		op := p.tok.op
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokString && p.tok.kind != tokInt {
			return nil, p.errf(p.tok.pos, "expected string or integer literal")
		}
		v := p.tok.val
		if err := p.next(); err != nil {
			return nil, err
		}
		return Leaf(key, op, v), nil

	default:
		return nil, p.errf(p.tok.pos, "expected expression")
	}
}

// next advances to the following token.
func (p *parser) next() error {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return nil
	}

	c := p.input[p.pos]
	switch {
	case c == '(':
		p.pos++
		p.tok = token{kind: tokLParen, pos: start}
	case c == ')':
		p.pos++
		p.tok = token{kind: tokRParen, pos: start}
	case c == '&':
		if !p.take("&&") {
			return p.errf(start, "expected &&")
		}
		p.tok = token{kind: tokAnd, pos: start}
	case c == '|':
		if !p.take("||") {
			return p.errf(start, "expected ||")
		}
		p.tok = token{kind: tokOr, pos: start}
	case c == '!':
		if p.take("!=") {
			p.tok = token{kind: tokOp, pos: start, op: OpNotEqual}
		} else {
			p.pos++
			p.tok = token{kind: tokNot, pos: start}
		}
	case c == '=':
		if !p.take("==") {
			return p.errf(start, "expected ==")
		}
		p.tok = token{kind: tokOp, pos: start, op: OpEqual}
	case c == '^':
		if !p.take("^=") {
			return p.errf(start, "expected ^=")
		}
		p.tok = token{kind: tokOp, pos: start, op: OpStartsWith}
	case c == '$':
		if !p.take("$=") {
			return p.errf(start, "expected $=")
		}
		p.tok = token{kind: tokOp, pos: start, op: OpEndsWith}
	case c == '*':
		if !p.take("*=") {
			return p.errf(start, "expected *=")
		}
		p.tok = token{kind: tokOp, pos: start, op: OpContains}
	case c == '>':
		p.pos++
		p.tok = token{kind: tokOp, pos: start, op: OpGreaterThan}
	case c == '<':
		p.pos++
		p.tok = token{kind: tokOp, pos: start, op: OpLessThan}
	case c == '"':
		return p.lexString(start)
	case c == '-' || isDigit(c):
		return p.lexInt(start)
	case isIdentStart(c):
		i := p.pos + 1
		for i < len(p.input) && isIdentPart(p.input[i]) {
			i++
		}
		p.tok = token{kind: tokIdent, pos: start, text: p.input[p.pos:i]}
		p.pos = i
	default:
		return p.errf(start, "unexpected character %q", c)
	}

	return nil
}

func (p *parser) lexString(start int) error {
	i := p.pos + 1
	for i < len(p.input) {
		if p.input[i] == '\\' {
			i += 2
			continue
		}
		if p.input[i] == '"' {
			s, err := strconv.Unquote(p.input[start : i+1])
			if err != nil {
				return p.errf(start, "bad string literal: %v", err)
			}
			p.pos = i + 1
			p.tok = token{kind: tokString, pos: start, val: String(s)}
			return nil
		}
		i++
	}
	return p.errf(start, "unterminated string literal")
}

func (p *parser) lexInt(start int) error {
	i := p.pos + 1
	for i < len(p.input) && isDigit(p.input[i]) {
		i++
	}
	v, err := strconv.ParseInt(p.input[p.pos:i], 10, 64)
	if err != nil {
		return p.errf(start, "bad integer literal: %v", err)
	}
	p.pos = i
	p.tok = token{kind: tokInt, pos: start, val: Int(v)}
	return nil
}

// take consumes s when it starts at the current position.
func (p *parser) take(s string) bool {
	if len(p.input)-p.pos < len(s) || p.input[p.pos:p.pos+len(s)] != s {
		return false
	}
	p.pos += len(s)
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.'
}
