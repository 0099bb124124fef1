package pattern

import (
	"strconv"

	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/object"
)

// Parse turns pattern source text into an expression.
//
//	pattern  := ".." "(" patterns ")"
//	          | IDENT [ "(" patterns ")" ]
//	          | INT | FLOAT | STRING | "true" | "false"
//	          | "_" | "otherwise"
//	patterns := pattern { "," pattern }
//
// The whole input must be a single pattern; trailing tokens are an error.
func Parse(src string) (Expr, error) {
	p := &parser{l: newLexer(src)}
	p.next()
	p.next()
	expr, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != EOF {
		return nil, p.errorf("unexpected %q after pattern", p.cur.Literal)
	}
	return expr, nil
}

type parser struct {
	l    *lexer
	cur  Token
	peek Token
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.l.nextToken()
}

func (p *parser) errorf(format string, a ...interface{}) error {
	return diagnostics.NewErrorAt(diagnostics.ErrP001, p.cur.Line, p.cur.Column, format, a...)
}

func (p *parser) parsePattern() (Expr, error) {
	switch p.cur.Type {
	case UNDERSCORE:
		p.next()
		return Wildcard(), nil

	case OTHERWISE:
		p.next()
		return Catchall(), nil

	case DOTDOT:
		p.next()
		if p.cur.Type != LPAREN {
			return nil, p.errorf("expected '(' after '..', got %q", p.cur.Literal)
		}
		elems, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return TupleOf(elems...), nil

	case IDENT:
		name := p.cur
		p.next()
		if p.cur.Type != LPAREN {
			return &NameExpr{Value: name.Literal, Line: name.Line, Column: name.Column}, nil
		}
		args, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return &CallExpr{Name: name.Literal, Args: args, Line: name.Line, Column: name.Column}, nil

	case INT:
		n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("malformed integer literal %q", p.cur.Literal)
		}
		p.next()
		return &LiteralExpr{Value: &object.Integer{Value: n}}, nil

	case FLOAT:
		f, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return nil, p.errorf("malformed float literal %q", p.cur.Literal)
		}
		p.next()
		return &LiteralExpr{Value: &object.Float{Value: f}}, nil

	case STRING:
		s := p.cur.Literal
		p.next()
		return &LiteralExpr{Value: &object.String{Value: s}}, nil

	case TRUE:
		p.next()
		return &LiteralExpr{Value: object.TRUE}, nil

	case FALSE:
		p.next()
		return &LiteralExpr{Value: object.FALSE}, nil

	case EOF:
		return nil, p.errorf("unexpected end of pattern")

	default:
		return nil, p.errorf("unexpected %q in pattern", p.cur.Literal)
	}
}

// parseList consumes "(" patterns ")" with the cursor on the opening
// parenthesis, and leaves the cursor past the closing one. An empty
// argument list is allowed for nullary constructor applications.
func (p *parser) parseList() ([]Expr, error) {
	p.next() // consume '('
	var elems []Expr
	if p.cur.Type == RPAREN {
		p.next()
		return elems, nil
	}
	for {
		e, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		switch p.cur.Type {
		case COMMA:
			p.next()
		case RPAREN:
			p.next()
			return elems, nil
		default:
			return nil, p.errorf("expected ',' or ')' in pattern list, got %q", p.cur.Literal)
		}
	}
}
