package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

func (p *Parser) parseFunctionDeclarationAsStatement() (ast.Statement, error) {
	decl, err := p.parseFunctionDeclaration(nil)
	if err != nil {
		return nil, err
	}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseFunctionDeclaration(attrs []*ast.AttributeGroup) (*ast.FunctionDeclaration, error) {
	start := p.advance().Location // 'function'
	byRef := p.match(token.Amp)
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
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
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Base: ast.Base{Kind: ast.KFunctionDeclaration, Location: mergeLoc(start, body.Location)},
		Name: name, Parameters: params, ReturnType: retType, Body: body,
		ReturnsReference: byRef, Attributes: attrs,
	}, nil
}

var classModifierKeywords = map[token.Kind]string{
	token.KwAbstract: "abstract", token.KwFinal: "final", token.KwReadonly: "readonly",
}

func (p *Parser) parseClassDeclarationAsStatement() (ast.Statement, error) {
	decl, err := p.parseClassDeclaration(nil)
	if err != nil {
		return nil, err
	}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseClassDeclaration(attrs []*ast.AttributeGroup) (*ast.ClassDeclaration, error) {
	start := p.peek().Location
	var modifiers []string
	for {
		if mod, ok := classModifierKeywords[p.peek().Kind]; ok {
			p.advance()
			modifiers = append(modifiers, mod)
			continue
		}
		break
	}
	if _, err := p.consume(token.KwClass, "expected 'class'"); err != nil {
		return nil, err
	}
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var superClass *ast.NameExpression
	if p.match(token.KwExtends) {
		superClass, err = p.parseNameExpression()
		if err != nil {
			return nil, err
		}
	}
	var interfaces []*ast.NameExpression
	if p.match(token.KwImplements) {
		for {
			iface, err := p.parseNameExpression()
			if err != nil {
				return nil, err
			}
			interfaces = append(interfaces, iface)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	body, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDeclaration{
		Base: ast.Base{Kind: ast.KClassDeclaration, Location: mergeLoc(start, end)},
		Name: name, Modifiers: modifiers, SuperClass: superClass, Interfaces: interfaces,
		Body: body, Attributes: attrs,
	}, nil
}

// parseClassBody parses the `{ ... }` member list shared by class,
// anonymous class, interface, trait, and enum declarations: properties,
// methods, class constants, trait uses, and (inside enums) cases.
func (p *Parser) parseClassBody() ([]ast.Node, position.Location, error) {
	if _, err := p.consume(token.LBrace, "expected '{'"); err != nil {
		return nil, position.Location{}, err
	}
	var members []ast.Node
	for !p.check(token.RBrace) && !p.isAtEnd() {
		m, err := p.parseClassMember()
		if err != nil {
			if p.opts.ErrorRecovery {
				p.synchronize()
				continue
			}
			return nil, position.Location{}, err
		}
		if m != nil {
			members = append(members, m)
		}
	}
	end, err := p.consume(token.RBrace, "expected '}'")
	if err != nil {
		return nil, position.Location{}, err
	}
	return members, end.Location, nil
}

var memberModifierKeywords = map[token.Kind]string{
	token.KwPublic: "public", token.KwProtected: "protected", token.KwPrivate: "private",
	token.KwStatic: "static", token.KwAbstract: "abstract", token.KwFinal: "final",
	token.KwReadonly: "readonly", token.KwVar: "var",
}

func (p *Parser) parseClassMember() (ast.Node, error) {
	start := p.peek().Location
	var attrs []*ast.AttributeGroup
	for p.check(token.Attribute) {
		t := p.advance()
		attrs = append(attrs, &ast.AttributeGroup{Base: ast.Base{Kind: ast.KAttributeGroup, Location: t.Location}, Raw: t.Text})
	}
	if p.check(token.KwUse) {
		return p.parseTraitUse()
	}
	if p.check(token.KwCase) {
		return p.parseEnumCase()
	}
	var modifiers []string
	for {
		if mod, ok := memberModifierKeywords[p.peek().Kind]; ok {
			p.advance()
			modifiers = append(modifiers, mod)
			continue
		}
		break
	}
	if p.check(token.KwConst) {
		return p.parseClassConstDeclaration(modifiers, attrs, start)
	}
	if p.check(token.KwFunction) {
		return p.parseMethodDeclaration(modifiers, attrs, start)
	}
	return p.parsePropertyDeclaration(modifiers, attrs, start)
}

func (p *Parser) parseMethodDeclaration(modifiers []string, attrs []*ast.AttributeGroup, start position.Location) (ast.Node, error) {
	p.advance() // 'function'
	byRef := p.match(token.Amp)
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
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
	var body *ast.BlockStatement
	end := start
	if p.check(token.LBrace) {
		body, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		end = body.Location
	} else {
		t, err := p.consume(token.Semicolon, "expected ';' or method body")
		if err != nil {
			return nil, err
		}
		end = t.Location
	}
	return &ast.MethodDeclaration{
		Base: ast.Base{Kind: ast.KMethodDeclaration, Location: mergeLoc(start, end)},
		Name: name, Modifiers: modifiers, Parameters: params, ReturnType: retType,
		Body: body, ReturnsReference: byRef, Attributes: attrs,
	}, nil
}

func (p *Parser) parsePropertyDeclaration(modifiers []string, attrs []*ast.AttributeGroup, start position.Location) (ast.Node, error) {
	var typ ast.Node
	if !p.check(token.Variable) {
		var err error
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	var decls []*ast.PropertyDeclarator
	var hooks []*ast.PropertyHook
	for {
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
		decls = append(decls, &ast.PropertyDeclarator{Base: ast.Base{Kind: ast.KPropertyDeclaration, Location: v.Location}, Name: v.Name, Default: def})
		if p.check(token.LBrace) {
			hooks, err = p.parsePropertyHooks()
			if err != nil {
				return nil, err
			}
			break
		}
		if !p.match(token.Comma) {
			break
		}
	}
	end := start
	if len(hooks) > 0 {
		end = hooks[len(hooks)-1].Location
	} else {
		t, err := p.consume(token.Semicolon, "expected ';'")
		if err != nil {
			return nil, err
		}
		end = t.Location
	}
	return &ast.PropertyDeclaration{
		Base: ast.Base{Kind: ast.KPropertyDeclaration, Location: mergeLoc(start, end)},
		Modifiers: modifiers, Type: typ, Declarators: decls, Hooks: hooks, Attributes: attrs,
	}, nil
}

// parsePropertyHooks parses PHP 8.4 `{ get { ... } set(...) { ... } }`
// property-hook bodies.
func (p *Parser) parsePropertyHooks() ([]*ast.PropertyHook, error) {
	if _, err := p.consume(token.LBrace, "expected '{'"); err != nil {
		return nil, err
	}
	var hooks []*ast.PropertyHook
	for !p.check(token.RBrace) && !p.isAtEnd() {
		hookStart := p.peek().Location
		name, _, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		var params []*ast.Parameter
		if p.check(token.LParen) {
			params, err = p.parseParameterList()
			if err != nil {
				return nil, err
			}
		}
		var body ast.Node
		var end = hookStart
		if p.match(token.DoubleArrow) {
			expr, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			body = expr
			end = expr.GetLocation()
			t, err := p.consume(token.Semicolon, "expected ';'")
			if err != nil {
				return nil, err
			}
			end = t.Location
		} else if p.check(token.LBrace) {
			blk, err := p.parseBlockStatement()
			if err != nil {
				return nil, err
			}
			body = blk
			end = blk.Location
		} else {
			t, err := p.consume(token.Semicolon, "expected ';' for abstract hook")
			if err != nil {
				return nil, err
			}
			end = t.Location
		}
		hooks = append(hooks, &ast.PropertyHook{Base: ast.Base{Kind: ast.KPropertyHook, Location: mergeLoc(hookStart, end)}, Name: name, Parameters: params, Body: body})
	}
	if _, err := p.consume(token.RBrace, "expected '}'"); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (p *Parser) parseClassConstDeclaration(modifiers []string, attrs []*ast.AttributeGroup, start position.Location) (ast.Node, error) {
	p.advance() // 'const'
	var typ ast.Node
	if p.check(token.Identifier) && p.peekAt(1).Kind != token.Assign {
		var err error
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	var decls []*ast.ConstDeclarator
	for {
		name, loc, err := p.parseIdentifierOrKeywordName()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Assign, "expected '='"); err != nil {
			return nil, err
		}
		val, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		decls = append(decls, &ast.ConstDeclarator{Base: ast.Base{Kind: ast.KClassConstDeclaration, Location: mergeLoc(loc, val.GetLocation())}, Name: name, Value: val})
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.ClassConstDeclaration{Base: ast.Base{Kind: ast.KClassConstDeclaration, Location: mergeLoc(start, end.Location)}, Modifiers: modifiers, Type: typ, Declarators: decls, Attributes: attrs}, nil
}

func (p *Parser) parseTraitUse() (ast.Node, error) {
	start := p.advance().Location // 'use'
	var traits []*ast.NameExpression
	for {
		t, err := p.parseNameExpression()
		if err != nil {
			return nil, err
		}
		traits = append(traits, t)
		if !p.match(token.Comma) {
			break
		}
	}
	var adaptations []ast.Node
	end := traits[len(traits)-1].Location
	if p.match(token.LBrace) {
		for !p.check(token.RBrace) && !p.isAtEnd() {
			adapt, err := p.parseTraitAdaptation()
			if err != nil {
				return nil, err
			}
			adaptations = append(adaptations, adapt)
		}
		rb, err := p.consume(token.RBrace, "expected '}'")
		if err != nil {
			return nil, err
		}
		end = rb.Location
	} else {
		t, err := p.consume(token.Semicolon, "expected ';'")
		if err != nil {
			return nil, err
		}
		end = t.Location
	}
	return &ast.TraitUse{Base: ast.Base{Kind: ast.KTraitUse, Location: mergeLoc(start, end)}, Traits: traits, Adaptations: adaptations}, nil
}

func (p *Parser) parseTraitAdaptation() (ast.Node, error) {
	start := p.peek().Location
	firstName, loc, err := p.parseIdentifierOrKeywordName()
	if err != nil {
		return nil, err
	}
	var trait *ast.NameExpression
	method := firstName
	if p.match(token.DoubleColon) {
		trait = &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: loc}, Parts: []string{firstName}}
		method, _, err = p.parseIdentifierOrKeywordName()
		if err != nil {
			return nil, err
		}
	}
	if p.match(token.KwInsteadof) {
		var insteadOf []*ast.NameExpression
		for {
			n, err := p.parseNameExpression()
			if err != nil {
				return nil, err
			}
			insteadOf = append(insteadOf, n)
			if !p.match(token.Comma) {
				break
			}
		}
		end, err := p.consume(token.Semicolon, "expected ';'")
		if err != nil {
			return nil, err
		}
		return &ast.TraitAdaptationPrecedence{Base: ast.Base{Kind: ast.KTraitAdaptationPrecedence, Location: mergeLoc(start, end.Location)}, Trait: trait, Method: method, InsteadOf: insteadOf}, nil
	}
	if _, err := p.consume(token.KwAs, "expected 'as' or 'insteadof'"); err != nil {
		return nil, err
	}
	var visibility, alias string
	if vis, ok := visibilityKeywords[p.peek().Kind]; ok {
		p.advance()
		visibility = vis
	}
	if p.check(token.Identifier) {
		alias, _, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.TraitAdaptationAlias{Base: ast.Base{Kind: ast.KTraitAdaptationAlias, Location: mergeLoc(start, end.Location)}, Trait: trait, Method: method, Visibility: visibility, Alias: alias}, nil
}

func (p *Parser) parseEnumCase() (ast.Node, error) {
	start := p.advance().Location // 'case'
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var value ast.Expression
	if p.match(token.Assign) {
		value, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.EnumCase{Base: ast.Base{Kind: ast.KEnumCase, Location: mergeLoc(start, end.Location)}, Name: name, Value: value}, nil
}

func (p *Parser) parseInterfaceDeclarationAsStatement() (ast.Statement, error) {
	start := p.advance().Location // 'interface'
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var extends []*ast.NameExpression
	if p.match(token.KwExtends) {
		for {
			n, err := p.parseNameExpression()
			if err != nil {
				return nil, err
			}
			extends = append(extends, n)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	body, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	decl := &ast.InterfaceDeclaration{Base: ast.Base{Kind: ast.KInterfaceDeclaration, Location: mergeLoc(start, end)}, Name: name, Extends: extends, Body: body}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseTraitDeclarationAsStatement() (ast.Statement, error) {
	start := p.advance().Location // 'trait'
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	body, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	decl := &ast.TraitDeclaration{Base: ast.Base{Kind: ast.KTraitDeclaration, Location: mergeLoc(start, end)}, Name: name, Body: body}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseEnumDeclarationAsStatement() (ast.Statement, error) {
	start := p.advance().Location // 'enum'
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var scalar string
	if p.match(token.Colon) {
		word, _, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if word != "int" && word != "string" {
			return nil, p.errorf("enum backing type must be 'int' or 'string', got %q", word)
		}
		scalar = word
	}
	var interfaces []*ast.NameExpression
	if p.match(token.KwImplements) {
		for {
			n, err := p.parseNameExpression()
			if err != nil {
				return nil, err
			}
			interfaces = append(interfaces, n)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	body, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	decl := &ast.EnumDeclaration{Base: ast.Base{Kind: ast.KEnumDeclaration, Location: mergeLoc(start, end)}, Name: name, ScalarType: scalar, Interfaces: interfaces, Body: body}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseNamespaceDeclarationAsStatement() (ast.Statement, error) {
	start := p.advance().Location // 'namespace'
	var parts []string
	if !p.check(token.LBrace) {
		name, err := p.parseNameExpression()
		if err != nil {
			return nil, err
		}
		parts = name.Parts
	}
	var stmts []ast.Statement
	braced := false
	end := start
	if p.check(token.LBrace) {
		braced = true
		blk, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = blk.Statements
		end = blk.Location
	} else {
		t, err := p.consume(token.Semicolon, "expected ';'")
		if err != nil {
			return nil, err
		}
		end = t.Location
		// the `;` form owns every statement up to EOF or the next namespace
		for !p.isAtEnd() && !(p.check(token.KwNamespace) && p.peekAt(1).Kind != token.Backslash) {
			if p.match(token.CloseTag, token.OpenTag, token.OpenTagEcho) {
				continue
			}
			s, err := p.parseStatementRecovering()
			if err != nil {
				if !p.opts.ErrorRecovery {
					return nil, err
				}
				continue
			}
			stmts = append(stmts, s)
			end = s.GetLocation()
		}
	}
	decl := &ast.NamespaceDeclaration{Base: ast.Base{Kind: ast.KNamespaceDeclaration, Location: mergeLoc(start, end)}, Parts: parts, Statements: stmts, Braced: braced}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseUseDeclarationAsStatement() (ast.Statement, error) {
	start := p.advance().Location // 'use'
	kind := ast.UseNormal
	if p.check(token.KwFunction) {
		p.advance()
		kind = ast.UseFunction
	} else if p.check(token.KwConst) {
		p.advance()
		kind = ast.UseConst
	}
	var items []*ast.UseItem
	for {
		name, err := p.parseNameExpression()
		if err != nil {
			return nil, err
		}
		alias := ""
		if p.match(token.KwAs) {
			alias, _, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
		}
		items = append(items, &ast.UseItem{Base: ast.Base{Kind: ast.KUseDeclaration, Location: name.Location}, Name: name, Alias: alias})
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	decl := &ast.UseDeclaration{Base: ast.Base{Kind: ast.KUseDeclaration, Location: mergeLoc(start, end.Location)}, UseKind: kind, Items: items}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}

func (p *Parser) parseConstDeclarationAsStatement() (ast.Statement, error) {
	start := p.advance().Location // 'const'
	var decls []*ast.ConstDeclarator
	for {
		name, loc, err := p.parseIdentifierOrKeywordName()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Assign, "expected '='"); err != nil {
			return nil, err
		}
		val, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		decls = append(decls, &ast.ConstDeclarator{Base: ast.Base{Kind: ast.KConstDeclaration, Location: mergeLoc(loc, val.GetLocation())}, Name: name, Value: val})
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	decl := &ast.ConstDeclaration{Base: ast.Base{Kind: ast.KConstDeclaration, Location: mergeLoc(start, end.Location)}, Declarators: decls}
	return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
}
