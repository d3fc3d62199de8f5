package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/token"
)

// parseClosureOrArrow parses `function(...) use(...) {...}` and
// `fn(...) => expr`, both optionally `static`-prefixed. isStatic
// signals the caller already identified a leading `static` keyword
// that has NOT yet been consumed.
func (p *Parser) parseClosureOrArrow(isStatic bool) (ast.Expression, error) {
	start := p.peek().Location
	static := false
	if isStatic {
		p.advance() // 'static'
		static = true
	}

	if p.check(token.KwFn) {
		p.advance()
		byRef := p.match(token.Amp)
		params, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		var retType ast.Node
		if p.match(token.Colon) {
			retType, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.consume(token.DoubleArrow, "expected '=>' in arrow function"); err != nil {
			return nil, err
		}
		body, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ArrowFunctionExpression{
			Base: ast.Base{Kind: ast.KArrowFunctionExpression, Location: mergeLoc(start, body.GetLocation())},
			Parameters: params, ReturnType: retType, Body: body,
			ReturnsReference: byRef, Static: static,
		}, nil
	}

	if _, err := p.consume(token.KwFunction, "expected 'function' or 'fn'"); err != nil {
		return nil, err
	}
	byRef := p.match(token.Amp)
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	var uses []*ast.ClosureUse
	if p.match(token.KwUse) {
		if _, err := p.consume(token.LParen, "expected '(' after use"); err != nil {
			return nil, err
		}
		for !p.check(token.RParen) && !p.isAtEnd() {
			useByRef := p.match(token.Amp)
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			uses = append(uses, &ast.ClosureUse{Base: ast.Base{Kind: ast.KClosureUse, Location: v.Location}, Variable: v, ByReference: useByRef})
			if !p.match(token.Comma) {
				break
			}
		}
		if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
			return nil, err
		}
	}
	var retType ast.Node
	if p.match(token.Colon) {
		retType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpression{
		Base: ast.Base{Kind: ast.KFunctionExpression, Location: mergeLoc(start, body.Location)},
		Parameters: params, Uses: uses, ReturnType: retType, Body: body,
		ReturnsReference: byRef, Static: static,
	}, nil
}
