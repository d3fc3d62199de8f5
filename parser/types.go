package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/token"
)

// parseType parses a return/parameter/property type: an optional
// leading `?` (nullable), then a union (`|`) or intersection (`&`) of
// simple/array/callable types. Union and intersection do not mix
// without parentheses in real PHP; this parser takes whichever
// separator appears first and ends the type at the first token that
// is not that separator. A leading `?` wraps the whole type that
// follows it.
func (p *Parser) parseType() (ast.Node, error) {
	if p.match(token.Question) {
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.NullableType{Base: ast.Base{Kind: ast.KNullableType, Location: inner.GetLocation()}, Inner: inner}, nil
	}

	first, err := p.parseTypeAtom()
	if err != nil {
		return nil, err
	}
	if p.check(token.Pipe) {
		members := []ast.Node{first}
		for p.match(token.Pipe) {
			m, err := p.parseTypeAtom()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return &ast.UnionType{Base: ast.Base{Kind: ast.KUnionType, Location: first.GetLocation()}, Members: members}, nil
	}
	if p.check(token.Amp) && isTypeContinuation(p.peekAt(1).Kind) {
		members := []ast.Node{first}
		for p.check(token.Amp) && isTypeContinuation(p.peekAt(1).Kind) {
			p.advance()
			m, err := p.parseTypeAtom()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return &ast.IntersectionType{Base: ast.Base{Kind: ast.KIntersectionType, Location: first.GetLocation()}, Members: members}, nil
	}
	return first, nil
}

// isTypeContinuation disambiguates `Foo&Bar` (intersection type) from
// `Foo &$x` (by-ref parameter following an untyped-looking name) by
// requiring the token after `&` to itself start a type.
func isTypeContinuation(k token.Kind) bool {
	return k == token.Identifier || k == token.Backslash || k == token.KwArray || k == token.KwCallable || k == token.KwStatic
}

func (p *Parser) parseTypeAtom() (ast.Node, error) {
	switch {
	case p.check(token.KwArray):
		t := p.advance()
		return &ast.ArrayType{Base: ast.Base{Kind: ast.KArrayType, Location: t.Location}}, nil
	case p.check(token.KwCallable):
		t := p.advance()
		return &ast.CallableType{Base: ast.Base{Kind: ast.KCallableType, Location: t.Location}}, nil
	case p.check(token.KwStatic):
		t := p.advance()
		name := &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: t.Location}, Parts: []string{"static"}}
		return &ast.SimpleType{Base: ast.Base{Kind: ast.KSimpleType, Location: t.Location}, Name: name}, nil
	default:
		name, err := p.parseNameExpression()
		if err != nil {
			return nil, err
		}
		return &ast.SimpleType{Base: ast.Base{Kind: ast.KSimpleType, Location: name.Location}, Name: name}, nil
	}
}
