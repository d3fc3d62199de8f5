package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/perr"
	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

// ParseExpression is the public entry point for the expression
// grammar, spec §4.5's 18-level precedence ladder: assignment, then
// ternary, coalesce, the logical/bitwise/comparison/arithmetic
// binary tiers, exponentiation, unary-prefix-and-cast, postfix
// chains, and primary. The low-precedence `and`/`or`/`xor` keyword
// operators sit above the whole ladder, binding looser than `=`, as
// in the PHP engine grammar.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseLowOr()
}

func (p *Parser) parseLowOr() (ast.Expression, error) {
	left, err := p.parseLowXor()
	if err != nil {
		return nil, err
	}
	for p.check(token.KwOr) {
		op := p.advance()
		right, err := p.parseLowXor()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Base: ast.Base{Kind: ast.KLogicalExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: op.Text, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLowXor() (ast.Expression, error) {
	left, err := p.parseLowAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.KwXor) {
		op := p.advance()
		right, err := p.parseLowAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Base: ast.Base{Kind: ast.KLogicalExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: op.Text, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLowAnd() (ast.Expression, error) {
	left, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	for p.check(token.KwAnd) {
		op := p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Base: ast.Base{Kind: ast.KLogicalExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: op.Text, Left: left, Right: right}
	}
	return left, nil
}

var assignOps = map[token.Kind]string{
	token.Assign: "=", token.PlusEq: "+=", token.MinusEq: "-=", token.StarEq: "*=",
	token.SlashEq: "/=", token.PercentEq: "%=", token.DotEq: ".=", token.AmpEq: "&=",
	token.PipeEq: "|=", token.CaretEq: "^=", token.ShlEq: "<<=", token.ShrEq: ">>=",
	token.PowEq: "**=", token.CoalesceEq: "??=",
}

// parseAssignment is right-associative; it also handles `=&` by-ref
// assignment (a `=` immediately followed by `&`).
func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.check(token.Assign) && p.peekAt(1).Kind == token.Amp {
		p.advance() // =
		p.advance() // &
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Base: ast.Base{Kind: ast.KAssignmentExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: "=", Left: left, Right: right, ByRef: true}, nil
	}
	if opName, ok := assignOps[p.peek().Kind]; ok {
		p.advance()
		if opName == "=" {
			if arr, ok := left.(*ast.ArrayExpression); ok {
				pattern, err := p.arrayExpressionToPattern(arr)
				if err != nil {
					return nil, err
				}
				left = pattern
			}
		}
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Base: ast.Base{Kind: ast.KAssignmentExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: opName, Left: left, Right: right}, nil
	}
	return left, nil
}

// arrayExpressionToPattern rewrites an array literal used on the left
// side of `=` into a destructuring ArrayPattern, per the assignment
// grammar's `[$a, $b] = $arr` form. Keyed elements are rejected: PHP
// allows `['k' => $v] = $arr` at runtime, but this front end treats a
// key inside a destructuring target as a syntax error.
func (p *Parser) arrayExpressionToPattern(arr *ast.ArrayExpression) (*ast.ArrayPattern, error) {
	for _, el := range arr.Elements {
		if el == nil {
			continue
		}
		if el.Key != nil {
			err := perr.NewSyntaxError("destructuring target cannot have a key", el.Key.GetLocation(), nil)
			p.errors.Add(err)
			return nil, err
		}
		if nested, ok := el.Value.(*ast.ArrayExpression); ok {
			inner, err := p.arrayExpressionToPattern(nested)
			if err != nil {
				return nil, err
			}
			el.Value = inner
		}
	}
	return &ast.ArrayPattern{Base: ast.Base{Kind: ast.KArrayPattern, Location: arr.Location}, Elements: arr.Elements, LongForm: arr.LongForm}, nil
}

// parseTernary handles `cond ? cons : alt` and the short form
// `cond ?: alt`; right-associative on the alternate branch.
func (p *Parser) parseTernary() (ast.Expression, error) {
	test, err := p.parseCoalesce()
	if err != nil {
		return nil, err
	}
	if !p.check(token.Question) {
		return test, nil
	}
	p.advance()
	if p.match(token.Colon) {
		alt, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpression{Base: ast.Base{Kind: ast.KConditionalExpression, Location: mergeLoc(test.GetLocation(), alt.GetLocation())}, Test: test, Alternate: alt}, nil
	}
	cons, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon, "expected ':' in ternary expression"); err != nil {
		return nil, err
	}
	alt, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Base: ast.Base{Kind: ast.KConditionalExpression, Location: mergeLoc(test.GetLocation(), alt.GetLocation())}, Test: test, Consequent: cons, Alternate: alt}, nil
}

// parseCoalesce is `??`, right-associative.
func (p *Parser) parseCoalesce() (ast.Expression, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if p.match(token.Coalesce) {
		right, err := p.parseCoalesce()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Base: ast.Base{Kind: ast.KBinaryExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: "??", Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) binaryLeftAssoc(next func() (ast.Expression, error), logical bool, kinds ...token.Kind) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, k := range kinds {
			if p.check(k) {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		loc := mergeLoc(left.GetLocation(), right.GetLocation())
		if logical {
			left = &ast.LogicalExpression{Base: ast.Base{Kind: ast.KLogicalExpression, Location: loc}, Operator: op.Text, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{Base: ast.Base{Kind: ast.KBinaryExpression, Location: loc}, Operator: op.Text, Left: left, Right: right}
		}
	}
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseLogicalAnd, true, token.BoolOr)
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseBitwiseOr, true, token.BoolAnd)
}

func (p *Parser) parseBitwiseOr() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseBitwiseXor, false, token.Pipe)
}

func (p *Parser) parseBitwiseXor() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseBitwiseAnd, false, token.Caret)
}

func (p *Parser) parseBitwiseAnd() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseEquality, false, token.Amp)
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseComparison, false, token.EqEq, token.NotEq, token.EqEqEq, token.NotEqEq)
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseSpaceship, false, token.Lt, token.Gt, token.LtEq, token.GtEq)
}

func (p *Parser) parseSpaceship() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseShift, false, token.Spaceship)
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseAdditive, false, token.Shl, token.Shr)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseMultiplicative, false, token.Plus, token.Minus, token.Dot)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.binaryLeftAssoc(p.parseInstanceof, false, token.Star, token.Slash, token.Percent)
}

// parseInstanceof binds tighter than the arithmetic tiers above it and
// looser than unary, matching the PHP precedence table.
func (p *Parser) parseInstanceof() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.match(token.KwInstanceof) {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Base: ast.Base{Kind: ast.KBinaryExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: "instanceof", Left: left, Right: right}
	}
	return left, nil
}

var castWords = map[string]string{
	"int": "int", "integer": "int", "float": "float", "double": "float", "real": "float",
	"string": "string", "bool": "bool", "boolean": "bool", "array": "array",
	"object": "object", "unset": "unset", "binary": "string",
}

// lookingAtCast speculatively checks for `( castword )` immediately
// followed by an operand; cast detection lives in the parser (spec
// §4.5) rather than the tokenizer, which only emits plain `(`,
// identifier/keyword, `)`.
func (p *Parser) lookingAtCast() (string, bool) {
	if !p.check(token.LParen) {
		return "", false
	}
	idTok := p.peekAt(1)
	var word string
	switch idTok.Kind {
	case token.Identifier:
		word = idTok.Text
	case token.KwArray:
		word = "array"
	default:
		return "", false
	}
	normalized, ok := castWords[lowerASCII(word)]
	if !ok {
		return "", false
	}
	if p.peekAt(2).Kind != token.RParen {
		return "", false
	}
	return normalized, true
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// parseUnary handles prefix operators: !, ~, +, -, ++, --, @, casts,
// print, clone, yield, new, include/require, error-suppression, and
// reference-taking `&`. Everything else falls through to the
// exponentiation/postfix/primary chain.
func (p *Parser) parseUnary() (ast.Expression, error) {
	start := p.peek().Location

	if castType, ok := p.lookingAtCast(); ok {
		p.advance() // (
		p.advance() // word
		p.advance() // )
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.CastExpression{Base: ast.Base{Kind: ast.KCastExpression, Location: mergeLoc(start, operand.GetLocation())}, CastType: castType, Operand: operand}, nil
	}

	switch p.peek().Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus:
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Base: ast.Base{Kind: ast.KUnaryExpression, Location: mergeLoc(start, operand.GetLocation())}, Operator: op.Text, Operand: operand}, nil
	case token.At:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.ErrorControlExpression{Base: ast.Base{Kind: ast.KErrorControlExpression, Location: mergeLoc(start, operand.GetLocation())}, Argument: operand}, nil
	case token.PlusPlus, token.MinusMinus:
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{Base: ast.Base{Kind: ast.KUpdateExpression, Location: mergeLoc(start, operand.GetLocation())}, Operator: op.Text, Operand: operand, Prefix: true}, nil
	case token.Amp:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.ReferenceExpression{Base: ast.Base{Kind: ast.KReferenceExpression, Location: mergeLoc(start, operand.GetLocation())}, Argument: operand}, nil
	case token.KwPrint:
		p.advance()
		operand, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.PrintExpression{Base: ast.Base{Kind: ast.KPrintExpression, Location: mergeLoc(start, operand.GetLocation())}, Argument: operand}, nil
	case token.KwClone:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.CloneExpression{Base: ast.Base{Kind: ast.KCloneExpression, Location: mergeLoc(start, operand.GetLocation())}, Operand: operand}, nil
	case token.KwNew:
		return p.parseNewExpression()
	case token.KwYield:
		return p.parseYieldExpression()
	case token.KwInclude, token.KwIncludeOnce, token.KwRequire, token.KwRequireOnce:
		kindWord := p.advance()
		operand, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.IncludeExpression{Base: ast.Base{Kind: ast.KIncludeExpression, Location: mergeLoc(start, operand.GetLocation())}, IncludeKind: kindWord.Text, Argument: operand}, nil
	default:
		return p.parsePow()
	}
}

func (p *Parser) parseYieldExpression() (ast.Expression, error) {
	start := p.advance().Location // 'yield'
	if p.check(token.Identifier) && lowerASCII(p.peek().Text) == "from" {
		p.advance()
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.YieldExpression{Base: ast.Base{Kind: ast.KYieldExpression, Location: mergeLoc(start, arg.GetLocation())}, Value: arg, From: true}, nil
	}
	if p.yieldHasNoOperand() {
		return &ast.YieldExpression{Base: ast.Base{Kind: ast.KYieldExpression, Location: start}}, nil
	}
	first, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.match(token.DoubleArrow) {
		value, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		return &ast.YieldExpression{Base: ast.Base{Kind: ast.KYieldExpression, Location: mergeLoc(start, value.GetLocation())}, Key: first, Value: value}, nil
	}
	return &ast.YieldExpression{Base: ast.Base{Kind: ast.KYieldExpression, Location: mergeLoc(start, first.GetLocation())}, Value: first}, nil
}

func (p *Parser) yieldHasNoOperand() bool {
	switch p.peek().Kind {
	case token.Semicolon, token.RParen, token.RBracket, token.RBrace, token.Comma, token.EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) parseNewExpression() (ast.Expression, error) {
	start := p.advance().Location // 'new'
	if p.check(token.KwClass) {
		anon, err := p.parseAnonymousClass(start)
		if err != nil {
			return nil, err
		}
		return &ast.NewExpression{Base: ast.Base{Kind: ast.KNewExpression, Location: anon.GetLocation()}, Callee: anon}, nil
	}
	var callee ast.Expression
	var err error
	if p.check(token.KwStatic) {
		t := p.advance()
		callee = &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: t.Location}, Parts: []string{"static"}}
	} else if p.check(token.Variable) || p.check(token.LParen) {
		callee, err = p.parsePostfix()
		if err != nil {
			return nil, err
		}
	} else {
		callee, err = p.parseNameExpression()
		if err != nil {
			return nil, err
		}
	}
	var args []*ast.Argument
	end := callee.GetLocation()
	if p.check(token.LParen) {
		args, end, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return &ast.NewExpression{Base: ast.Base{Kind: ast.KNewExpression, Location: mergeLoc(start, end)}, Callee: callee, Arguments: args}, nil
}

func (p *Parser) parseAnonymousClass(start position.Location) (ast.Expression, error) {
	p.advance() // 'class'
	var args []*ast.Argument
	var err error
	if p.check(token.LParen) {
		args, _, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
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
	return &ast.AnonymousClassExpression{Base: ast.Base{Kind: ast.KAnonymousClassExpression, Location: mergeLoc(start, end)}, Arguments: args, SuperClass: superClass, Interfaces: interfaces, Body: body}, nil
}

// parsePow handles `**`, right-associative; its right operand may
// itself carry unary prefixes (`2 ** -2`), while the base on the left
// is a plain postfix chain so that `-2 ** 2` parses as `-(2 ** 2)`.
func (p *Parser) parsePow() (ast.Expression, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.match(token.Pow) {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Base: ast.Base{Kind: ast.KBinaryExpression, Location: mergeLoc(left.GetLocation(), right.GetLocation())}, Operator: "**", Left: left, Right: right}, nil
	}
	return left, nil
}

// parsePostfix chains member access, calls, indexing, and post ++/--
// onto a primary expression.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(token.Arrow) || p.check(token.NullsafeArrow):
			nullsafe := p.peek().Kind == token.NullsafeArrow
			p.advance()
			prop, computed, err := p.parseMemberName()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Base: ast.Base{Kind: ast.KMemberExpression, Location: mergeLoc(expr.GetLocation(), prop.GetLocation())}, Object: expr, Property: prop, Computed: computed, Nullsafe: nullsafe}
		case p.check(token.DoubleColon):
			p.advance()
			prop, computed, err := p.parseStaticMemberName()
			if err != nil {
				return nil, err
			}
			expr = &ast.StaticMemberExpression{Base: ast.Base{Kind: ast.KStaticMemberExpression, Location: mergeLoc(expr.GetLocation(), prop.GetLocation())}, Class: expr, Property: prop, Computed: computed}
		case p.check(token.LBracket):
			p.advance()
			var index ast.Expression
			if !p.check(token.RBracket) {
				index, err = p.ParseExpression()
				if err != nil {
					return nil, err
				}
			}
			end, err := p.consume(token.RBracket, "expected ']'")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Base: ast.Base{Kind: ast.KMemberExpression, Location: mergeLoc(expr.GetLocation(), end.Location)}, Object: expr, Property: index, Computed: true}
		case p.check(token.LBrace) && isOffsetContext(expr):
			p.advance()
			index, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			end, err := p.consume(token.RBrace, "expected '}'")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Base: ast.Base{Kind: ast.KMemberExpression, Location: mergeLoc(expr.GetLocation(), end.Location)}, Object: expr, Property: index, Computed: true}
		case p.check(token.LParen):
			if p.peekAt(1).Kind == token.Ellipsis && p.peekAt(2).Kind == token.RParen {
				start := p.advance().Location
				p.advance() // ...
				end := p.advance().Location // )
				expr = &ast.FirstClassCallableExpression{Base: ast.Base{Kind: ast.KFirstClassCallableExpression, Location: mergeLoc(start, end)}, Callee: expr}
				continue
			}
			args, end, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{Base: ast.Base{Kind: ast.KCallExpression, Location: mergeLoc(expr.GetLocation(), end)}, Callee: expr, Arguments: args}
		case p.check(token.PlusPlus) || p.check(token.MinusMinus):
			op := p.advance()
			expr = &ast.UpdateExpression{Base: ast.Base{Kind: ast.KUpdateExpression, Location: mergeLoc(expr.GetLocation(), op.Location)}, Operator: op.Text, Operand: expr, Prefix: false}
		default:
			return expr, nil
		}
	}
}

// isOffsetContext is conservative: `{}` postfix string/array offset
// access applies to any postfix chain already in progress.
func isOffsetContext(ast.Expression) bool { return true }

func (p *Parser) parseMemberName() (ast.Expression, bool, error) {
	if p.check(token.LBrace) {
		p.advance()
		e, err := p.ParseExpression()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.consume(token.RBrace, "expected '}'"); err != nil {
			return nil, false, err
		}
		return e, true, nil
	}
	if p.check(token.Variable) {
		v, err := p.parseVariable()
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
	name, loc, err := p.parseIdentifier()
	if err != nil {
		return nil, false, err
	}
	return &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: loc}, Parts: []string{name}}, false, nil
}

func (p *Parser) parseStaticMemberName() (ast.Expression, bool, error) {
	if p.check(token.Variable) {
		v, err := p.parseVariable()
		if err != nil {
			return nil, false, err
		}
		return v, false, nil
	}
	if p.check(token.LBrace) {
		p.advance()
		e, err := p.ParseExpression()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.consume(token.RBrace, "expected '}'"); err != nil {
			return nil, false, err
		}
		return e, true, nil
	}
	if p.check(token.KwClass) {
		t := p.advance()
		return &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: t.Location}, Parts: []string{"class"}}, false, nil
	}
	name, loc, err := p.parseIdentifier()
	if err != nil {
		return nil, false, err
	}
	return &ast.NameExpression{Base: ast.Base{Kind: ast.KNameExpression, Location: loc}, Parts: []string{name}}, false, nil
}

// parseArguments parses a `(...)` call argument list, including named
// arguments (`name: value`) and spread (`...value`).
func (p *Parser) parseArguments() ([]*ast.Argument, position.Location, error) {
	open, err := p.consume(token.LParen, "expected '('")
	if err != nil {
		return nil, position.Location{}, err
	}
	var args []*ast.Argument
	for !p.check(token.RParen) && !p.isAtEnd() {
		argStart := p.peek().Location
		if p.match(token.Ellipsis) {
			val, err := p.ParseExpression()
			if err != nil {
				return nil, position.Location{}, err
			}
			args = append(args, &ast.Argument{Base: ast.Base{Kind: ast.KArgument, Location: mergeLoc(argStart, val.GetLocation())}, Value: val, Spread: true})
		} else if p.check(token.Identifier) && p.peekAt(1).Kind == token.Colon && p.peekAt(2).Kind != token.Colon {
			nameTok := p.advance()
			p.advance() // :
			val, err := p.ParseExpression()
			if err != nil {
				return nil, position.Location{}, err
			}
			args = append(args, &ast.Argument{Base: ast.Base{Kind: ast.KArgument, Location: mergeLoc(argStart, val.GetLocation())}, Name: nameTok.Text, Value: val})
		} else {
			val, err := p.ParseExpression()
			if err != nil {
				return nil, position.Location{}, err
			}
			args = append(args, &ast.Argument{Base: ast.Base{Kind: ast.KArgument, Location: val.GetLocation()}, Value: val})
		}
		if !p.match(token.Comma) {
			break
		}
	}
	close, err := p.consume(token.RParen, "expected ')'")
	if err != nil {
		return nil, position.Location{}, err
	}
	return args, mergeLoc(open.Location, close.Location), nil
}
