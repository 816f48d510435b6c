package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnolang/ceq/internal/term"
)

// Parser consumes tokens and builds term.Expr trees. Named binder
// occurrences are resolved to de Bruijn indices against the stack of
// binders entered so far; symbols bound nowhere become constants.
type Parser struct {
	tokens  []Token
	current int
	binders []string // innermost binder last
}

// NewParser creates a Parser over the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a single top-level form.
func Parse(input string) (term.Expr, error) {
	p := NewParser(NewLexer(input).Tokenize())
	e, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("%d:%d: unexpected %s after expression", tok.Line, tok.Column, tok.Type)
	}
	return e, nil
}

// ParseAll parses every top-level form of the input, in order.
func ParseAll(input string) ([]term.Expr, error) {
	p := NewParser(NewLexer(input).Tokenize())
	var forms []term.Expr
	for p.peek().Type != TokenEOF {
		e, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, e)
	}
	return forms, nil
}

func (p *Parser) parseForm() (term.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenSymbol:
		p.current++
		return p.resolveSymbol(tok), nil
	case TokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("%d:%d: expected expression, found %s", tok.Line, tok.Column, tok.Type)
	}
}

func (p *Parser) parseList() (term.Expr, error) {
	open := p.peek()
	p.current++ // consume '('

	head := p.peek()
	if head.Type == TokenRParen {
		return nil, fmt.Errorf("%d:%d: empty form", open.Line, open.Column)
	}

	if head.Type == TokenSymbol {
		switch head.Value {
		case "forall", "fun":
			p.current++
			return p.parseBinder(head.Value)
		case "=":
			p.current++
			ty, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			lhs, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			rhs, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokenRParen); err != nil {
				return nil, err
			}
			return term.Eq(ty, lhs, rhs), nil
		case "not":
			p.current++
			a, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokenRParen); err != nil {
				return nil, err
			}
			return term.Not(a), nil
		case "and":
			p.current++
			a, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			b, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokenRParen); err != nil {
				return nil, err
			}
			return term.And(a, b), nil
		case "ite":
			p.current++
			c, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			a, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			b, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokenRParen); err != nil {
				return nil, err
			}
			return term.Ite(c, a, b), nil
		}
	}

	// Plain application: (fn arg ...)
	fn, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	var args []term.Expr
	for p.peek().Type != TokenRParen {
		if p.peek().Type == TokenEOF {
			return nil, fmt.Errorf("%d:%d: unclosed form", open.Line, open.Column)
		}
		a, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	p.current++ // consume ')'
	if len(args) == 0 {
		return fn, nil
	}
	return term.App(fn, args...), nil
}

// parseBinder handles (forall (x D) body) and (fun (x D) body). The
// binder name shadows any outer binding of the same name for the
// duration of the body.
func (p *Parser) parseBinder(kind string) (term.Expr, error) {
	if err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	name := p.peek()
	if name.Type != TokenSymbol {
		return nil, fmt.Errorf("%d:%d: expected binder name, found %s", name.Line, name.Column, name.Type)
	}
	p.current++
	domain, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	p.binders = append(p.binders, name.Value)
	body, err := p.parseForm()
	p.binders = p.binders[:len(p.binders)-1]
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	if kind == "forall" {
		return term.Pi(name.Value, domain, body), nil
	}
	return term.Lam(name.Value, domain, body), nil
}

// resolveSymbol maps a symbol to a variable reference when it names an
// enclosing binder (or uses the explicit #n form), and to a constant
// otherwise.
func (p *Parser) resolveSymbol(tok Token) term.Expr {
	if strings.HasPrefix(tok.Value, "#") {
		if idx, err := strconv.Atoi(tok.Value[1:]); err == nil && idx >= 0 {
			return term.Var(idx)
		}
	}
	for i := len(p.binders) - 1; i >= 0; i-- {
		if p.binders[i] == tok.Value {
			return term.Var(len(p.binders) - i - 1)
		}
	}
	return term.Const(tok.Value)
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) expect(t TokenType) error {
	tok := p.peek()
	if tok.Type != t {
		return fmt.Errorf("%d:%d: expected %s, found %s", tok.Line, tok.Column, t, tok.Type)
	}
	p.current++
	return nil
}
