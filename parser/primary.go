package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

var magicConstants = map[token.Kind]string{
	token.KwLine: "__LINE__", token.KwFile: "__FILE__", token.KwDir: "__DIR__",
	token.KwClassC: "__CLASS__", token.KwTraitC: "__TRAIT__", token.KwMethodC: "__METHOD__",
	token.KwFuncC: "__FUNCTION__", token.KwNsC: "__NAMESPACE__", token.KwPropertyC: "__PROPERTY__",
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	t := p.peek()

	if name, ok := magicConstants[t.Kind]; ok {
		p.advance()
		return &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: t.Location}, Parts: []string{name}}, nil
	}

	switch t.Kind {
	case token.Number:
		p.advance()
		return &ast.NumberLiteral{Base: ast.Base{Kind: ast.KNumberLiteral, Location: t.Location}, Raw: t.Text, IsFloat: t.Payload.IsFloat}, nil
	case token.String:
		p.advance()
		return &ast.StringLiteral{Base: ast.Base{Kind: ast.KStringLiteral, Location: t.Location}, Raw: t.Text, Quote: t.Payload.Quote}, nil
	case token.KwTrue:
		p.advance()
		return &ast.BooleanLiteral{Base: ast.Base{Kind: ast.KBooleanLiteral, Location: t.Location}, Value: true}, nil
	case token.KwFalse:
		p.advance()
		return &ast.BooleanLiteral{Base: ast.Base{Kind: ast.KBooleanLiteral, Location: t.Location}, Value: false}, nil
	case token.KwNull:
		p.advance()
		return &ast.NullLiteral{Base: ast.Base{Kind: ast.KNullLiteral, Location: t.Location}}, nil
	case token.Variable:
		return p.parseVariableExpr()
	case token.Dollar:
		return p.parseComplexVariable()
	case token.Identifier, token.Backslash, token.KwNamespace:
		name, err := p.parseNameExpression()
		if err != nil {
			return nil, err
		}
		return name, nil
	case token.KwStatic:
		if p.peekAt(1).Kind == token.KwFunction || p.peekAt(1).Kind == token.KwFn {
			return p.parseClosureOrArrow(true)
		}
		p.advance()
		return &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: t.Location}, Parts: []string{"static"}}, nil
	case token.KwFunction:
		return p.parseClosureOrArrow(false)
	case token.KwFn:
		return p.parseClosureOrArrow(false)
	case token.LParen:
		return p.parseParenthesized()
	case token.LBracket:
		return p.parseArrayLiteral(false)
	case token.KwArray:
		if p.peekAt(1).Kind == token.LParen {
			return p.parseArrayLiteral(true)
		}
		return nil, p.errorf("unexpected 'array' without '('")
	case token.KwList:
		return p.parseListExpression()
	case token.KwIsset:
		return p.parseIsset()
	case token.KwEmpty:
		return p.parseEmpty()
	case token.KwEval:
		return p.parseEval()
	case token.KwExit:
		return p.parseExit()
	case token.KwMatch:
		return p.parseMatch()
	default:
		return nil, p.errorf("unexpected token %s in expression", t.Kind)
	}
}

func (p *Parser) parseVariableExpr() (ast.Expression, error) {
	return p.parseVariable()
}

// parseComplexVariable handles `$$x` and `${expr}` variable-variables.
func (p *Parser) parseComplexVariable() (ast.Expression, error) {
	start := p.advance().Location // $
	if p.match(token.LBrace) {
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.RBrace, "expected '}'")
		if err != nil {
			return nil, err
		}
		return &ast.Variable{Base: ast.Base{Kind: ast.KVariable, Location: mergeLoc(start, end.Location)}, NameExpr: inner}, nil
	}
	inner, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Base: ast.Base{Kind: ast.KVariable, Location: mergeLoc(start, inner.GetLocation())}, NameExpr: inner}, nil
}

func (p *Parser) parseParenthesized() (ast.Expression, error) {
	p.advance() // (
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseArrayLiteral parses both `[...]` and `array(...)` forms,
// including keyed, spread, and by-reference elements.
func (p *Parser) parseArrayLiteral(longForm bool) (ast.Expression, error) {
	var start position.Location
	var closeKind token.Kind
	if longForm {
		start = p.advance().Location // 'array'
		p.advance()                  // (
		closeKind = token.RParen
	} else {
		start = p.advance().Location // [
		closeKind = token.RBracket
	}
	var elements []*ast.ArrayElement
	for !p.check(closeKind) && !p.isAtEnd() {
		elemStart := p.peek().Location
		if p.match(token.Ellipsis) {
			val, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, &ast.ArrayElement{Base: ast.Base{Kind: ast.KArrayElement, Location: mergeLoc(elemStart, val.GetLocation())}, Value: val, Spread: true})
		} else {
			byRef := p.match(token.Amp)
			first, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			if p.match(token.DoubleArrow) {
				valByRef := p.match(token.Amp)
				value, err := p.ParseExpression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, &ast.ArrayElement{Base: ast.Base{Kind: ast.KArrayElement, Location: mergeLoc(elemStart, value.GetLocation())}, Key: first, Value: value, ByRef: valByRef})
			} else {
				elements = append(elements, &ast.ArrayElement{Base: ast.Base{Kind: ast.KArrayElement, Location: mergeLoc(elemStart, first.GetLocation())}, Value: first, ByRef: byRef})
			}
		}
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(closeKind, "expected closing array delimiter")
	if err != nil {
		return nil, err
	}
	return &ast.ArrayExpression{Base: ast.Base{Kind: ast.KArrayExpression, Location: mergeLoc(start, end.Location)}, Elements: elements, LongForm: longForm}, nil
}

// parseListExpression parses `list(...)` destructuring, allowing
// skipped positional slots (`list($a, , $c)`).
func (p *Parser) parseListExpression() (ast.Expression, error) {
	start := p.advance().Location // 'list'
	if _, err := p.consume(token.LParen, "expected '(' after list"); err != nil {
		return nil, err
	}
	var elements []*ast.ArrayElement
	for !p.check(token.RParen) && !p.isAtEnd() {
		if p.check(token.Comma) {
			elements = append(elements, nil)
			p.advance()
			continue
		}
		elemStart := p.peek().Location
		byRef := p.match(token.Amp)
		first, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if p.match(token.DoubleArrow) {
			valByRef := p.match(token.Amp)
			value, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, &ast.ArrayElement{Base: ast.Base{Kind: ast.KArrayElement, Location: mergeLoc(elemStart, value.GetLocation())}, Key: first, Value: value, ByRef: valByRef})
		} else {
			elements = append(elements, &ast.ArrayElement{Base: ast.Base{Kind: ast.KArrayElement, Location: mergeLoc(elemStart, first.GetLocation())}, Value: first, ByRef: byRef})
		}
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.RParen, "expected ')'")
	if err != nil {
		return nil, err
	}
	return &ast.ListExpression{Base: ast.Base{Kind: ast.KListExpression, Location: mergeLoc(start, end.Location)}, Elements: elements}, nil
}

func (p *Parser) parseIsset() (ast.Expression, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '(' after isset"); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.check(token.RParen) && !p.isAtEnd() {
		e, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.RParen, "expected ')'")
	if err != nil {
		return nil, err
	}
	return &ast.IssetExpression{Base: ast.Base{Kind: ast.KIssetExpression, Location: mergeLoc(start, end.Location)}, Arguments: args}, nil
}

func (p *Parser) parseEmpty() (ast.Expression, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '(' after empty"); err != nil {
		return nil, err
	}
	arg, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.RParen, "expected ')'")
	if err != nil {
		return nil, err
	}
	return &ast.EmptyExpression{Base: ast.Base{Kind: ast.KEmptyExpression, Location: mergeLoc(start, end.Location)}, Argument: arg}, nil
}

func (p *Parser) parseEval() (ast.Expression, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '(' after eval"); err != nil {
		return nil, err
	}
	arg, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.RParen, "expected ')'")
	if err != nil {
		return nil, err
	}
	return &ast.EvalExpression{Base: ast.Base{Kind: ast.KEvalExpression, Location: mergeLoc(start, end.Location)}, Argument: arg}, nil
}

func (p *Parser) parseExit() (ast.Expression, error) {
	start := p.advance().Location
	if !p.check(token.LParen) {
		return &ast.ExitExpression{Base: ast.Base{Kind: ast.KExitExpression, Location: start}}, nil
	}
	p.advance()
	var arg ast.Expression
	if !p.check(token.RParen) {
		var err error
		arg, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.RParen, "expected ')'")
	if err != nil {
		return nil, err
	}
	return &ast.ExitExpression{Base: ast.Base{Kind: ast.KExitExpression, Location: mergeLoc(start, end.Location)}, Argument: arg}, nil
}

// parseMatch parses a PHP 8 `match` expression.
func (p *Parser) parseMatch() (ast.Expression, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '(' after match"); err != nil {
		return nil, err
	}
	subject, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LBrace, "expected '{'"); err != nil {
		return nil, err
	}
	var arms []*ast.MatchArm
	for !p.check(token.RBrace) && !p.isAtEnd() {
		armStart := p.peek().Location
		var conditions []ast.Expression
		if p.match(token.KwDefault) {
			// conditions stays nil
		} else {
			for {
				c, err := p.ParseExpression()
				if err != nil {
					return nil, err
				}
				conditions = append(conditions, c)
				if !p.match(token.Comma) {
					break
				}
				if p.check(token.DoubleArrow) {
					break
				}
			}
		}
		if _, err := p.consume(token.DoubleArrow, "expected '=>' in match arm"); err != nil {
			return nil, err
		}
		body, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		arms = append(arms, &ast.MatchArm{Base: ast.Base{Kind: ast.KMatchArm, Location: mergeLoc(armStart, body.GetLocation())}, Conditions: conditions, Body: body})
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.RBrace, "expected '}'")
	if err != nil {
		return nil, err
	}
	return &ast.MatchExpression{Base: ast.Base{Kind: ast.KMatchExpression, Location: mergeLoc(start, end.Location)}, Subject: subject, Arms: arms}, nil
}
