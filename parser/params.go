package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/token"
)

var visibilityKeywords = map[token.Kind]string{
	token.KwPublic: "public", token.KwProtected: "protected", token.KwPrivate: "private",
}

// parseParameterList parses a `(...)` parameter list shared by
// functions, methods, closures, and arrow functions, including
// constructor-promoted properties (visibility/readonly modifiers on a
// parameter) and attribute groups.
func (p *Parser) parseParameterList() ([]*ast.Parameter, error) {
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	var params []*ast.Parameter
	for !p.check(token.RParen) && !p.isAtEnd() {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParameter() (*ast.Parameter, error) {
	start := p.peek().Location
	var attrs []*ast.AttributeGroup
	for p.check(token.Attribute) {
		t := p.advance()
		attrs = append(attrs, &ast.AttributeGroup{Base: ast.Base{Kind: ast.KAttributeGroup, Location: t.Location}, Raw: t.Text})
	}
	var promoted []string
	readonly := false
	for {
		if vis, ok := visibilityKeywords[p.peek().Kind]; ok {
			p.advance()
			promoted = append(promoted, vis)
			continue
		}
		if p.check(token.KwReadonly) {
			p.advance()
			readonly = true
			continue
		}
		break
	}
	byRef := p.match(token.Amp)
	variadic := p.match(token.Ellipsis)

	var typ ast.Node
	if !p.check(token.Variable) {
		var err error
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
		if !byRef {
			byRef = p.match(token.Amp)
		}
		if !variadic {
			variadic = p.match(token.Ellipsis)
		}
	}

	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	var def ast.Expression
	if p.match(token.Assign) {
		def, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	end := v.Location
	if def != nil {
		end = def.GetLocation()
	}
	return &ast.Parameter{
		Base: ast.Base{Kind: ast.KParameter, Location: mergeLoc(start, end)},
		Name: v.Name, Type: typ, ByRef: byRef, Variadic: variadic, Default: def,
		Promoted: promoted, Readonly: readonly, Attributes: attrs,
	}, nil
}
