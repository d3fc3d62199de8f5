package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

// parseStatement dispatches on the current token to the matching
// statement form, falling back to declarations and finally a bare
// expression statement, per spec §4.6/§4.8's statement-vs-declaration
// handling.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.check(token.Attribute) {
		return p.parseAttributedDeclarationStatement()
	}
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlockStatement()
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwWhile:
		return p.parseWhileStatement()
	case token.KwDo:
		return p.parseDoWhileStatement()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwForeach:
		return p.parseForeachStatement()
	case token.KwSwitch:
		return p.parseSwitchStatement()
	case token.KwBreak:
		return p.parseBreakStatement()
	case token.KwContinue:
		return p.parseContinueStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwThrow:
		return p.parseThrowStatement()
	case token.KwTry:
		return p.parseTryStatement()
	case token.KwEcho:
		return p.parseEchoStatement()
	case token.KwGlobal:
		return p.parseGlobalStatement()
	case token.KwStatic:
		if p.peekAt(1).Kind == token.Variable {
			return p.parseStaticStatement()
		}
	case token.KwUnset:
		return p.parseUnsetStatement()
	case token.KwGoto:
		return p.parseGotoStatement()
	case token.KwDeclare:
		return p.parseDeclareStatement()
	case token.InlineHTML:
		t := p.advance()
		return &ast.InlineHTMLStatement{Base: ast.Base{Kind: ast.KInlineHTMLStatement, Location: t.Location}, Text: t.Text}, nil
	case token.Semicolon:
		t := p.advance()
		return &ast.ExpressionStatement{Base: ast.Base{Kind: ast.KExpressionStatement, Location: t.Location}, Expr: nil}, nil
	case token.KwFunction:
		if p.peekAt(1).Kind == token.Identifier || p.peekAt(1).Kind == token.Amp {
			return p.parseFunctionDeclarationAsStatement()
		}
	case token.KwAbstract, token.KwFinal, token.KwReadonly, token.KwClass:
		return p.parseClassDeclarationAsStatement()
	case token.KwInterface:
		return p.parseInterfaceDeclarationAsStatement()
	case token.KwTrait:
		return p.parseTraitDeclarationAsStatement()
	case token.KwEnum:
		return p.parseEnumDeclarationAsStatement()
	case token.KwNamespace:
		return p.parseNamespaceDeclarationAsStatement()
	case token.KwUse:
		return p.parseUseDeclarationAsStatement()
	case token.KwConst:
		return p.parseConstDeclarationAsStatement()
	case token.Identifier:
		if p.peekAt(1).Kind == token.Colon {
			return p.parseLabeledStatement()
		}
	}
	return p.parseExpressionStatement()
}

// collectAttributes consumes consecutive `#[...]` groups, per spec
// §4.8 — a declaration may carry any number of them before its
// keyword.
func (p *Parser) collectAttributes() []*ast.AttributeGroup {
	var attrs []*ast.AttributeGroup
	for p.check(token.Attribute) {
		t := p.advance()
		attrs = append(attrs, &ast.AttributeGroup{Base: ast.Base{Kind: ast.KAttributeGroup, Location: t.Location}, Raw: t.Text})
	}
	return attrs
}

// parseAttributedDeclarationStatement handles a statement-position
// declaration preceded by one or more attribute groups, dispatching to
// the matching declaration parser with attrs threaded through.
func (p *Parser) parseAttributedDeclarationStatement() (ast.Statement, error) {
	attrs := p.collectAttributes()
	switch p.peek().Kind {
	case token.KwFunction:
		decl, err := p.parseFunctionDeclaration(attrs)
		if err != nil {
			return nil, err
		}
		return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
	case token.KwAbstract, token.KwFinal, token.KwReadonly, token.KwClass:
		decl, err := p.parseClassDeclaration(attrs)
		if err != nil {
			return nil, err
		}
		return &ast.DeclarationStatement{Base: ast.Base{Kind: ast.KDeclarationStatement, Location: decl.Location}, Decl: decl}, nil
	case token.KwInterface:
		return p.parseInterfaceDeclarationAsStatement()
	case token.KwTrait:
		return p.parseTraitDeclarationAsStatement()
	case token.KwEnum:
		return p.parseEnumDeclarationAsStatement()
	default:
		return nil, p.errorf("expected declaration after attribute group, got %s", p.peek().Kind)
	}
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	start, err := p.consume(token.LBrace, "expected '{'")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check(token.RBrace) && !p.isAtEnd() {
		s, err := p.parseStatementRecovering()
		if err != nil {
			continue
		}
		stmts = append(stmts, s)
	}
	end, err := p.consume(token.RBrace, "expected '}'")
	if err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Base: ast.Base{Kind: ast.KBlockStatement, Location: mergeLoc(start.Location, end.Location)}, Statements: stmts}, nil
}

// parseStatementRecovering parses one statement; in recovery mode a
// parse error triggers synchronize() so the caller's loop can keep
// consuming the remaining statements instead of aborting the whole
// block.
func (p *Parser) parseStatementRecovering() (ast.Statement, error) {
	s, err := p.parseStatement()
	if err != nil {
		if p.opts.ErrorRecovery {
			p.synchronize()
		}
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	end := expr.GetLocation()
	if t, err := p.consume(token.Semicolon, "expected ';'"); err == nil {
		end = t.Location
	} else if !p.isAtEnd() {
		return nil, err
	}
	return &ast.ExpressionStatement{Base: ast.Base{Kind: ast.KExpressionStatement, Location: mergeLoc(expr.GetLocation(), end)}, Expr: expr}, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	start := p.advance().Location // if
	if _, err := p.consume(token.LParen, "expected '(' after if"); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	if p.match(token.Colon) {
		return p.parseAlternativeIf(start, cond)
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseIfs []*ast.ElseIfClause
	var alt ast.Statement
	for p.check(token.KwElseif) || (p.check(token.KwElse) && p.peekAt(1).Kind == token.KwIf) {
		eStart := p.peek().Location
		if p.match(token.KwElseif) {
			// consumed
		} else {
			p.advance() // else
			p.advance() // if
		}
		if _, err := p.consume(token.LParen, "expected '('"); err != nil {
			return nil, err
		}
		eCond, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
			return nil, err
		}
		eBody, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		elseIfs = append(elseIfs, &ast.ElseIfClause{Base: ast.Base{Kind: ast.KElseIfClause, Location: mergeLoc(eStart, eBody.GetLocation())}, Condition: eCond, Body: eBody})
	}
	if p.match(token.KwElse) {
		alt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	end := then.GetLocation()
	if alt != nil {
		end = alt.GetLocation()
	} else if len(elseIfs) > 0 {
		end = elseIfs[len(elseIfs)-1].GetLocation()
	}
	return &ast.IfStatement{Base: ast.Base{Kind: ast.KIfStatement, Location: mergeLoc(start, end)}, Condition: cond, Then: then, ElseIfClauses: elseIfs, Alternate: alt}, nil
}

// parseAlternativeIf handles the `if (...): ... elseif: ... else: ... endif;`
// alternate syntax (spec §8 SUPPLEMENTED FEATURES).
func (p *Parser) parseAlternativeIf(start position.Location, cond ast.Expression) (ast.Statement, error) {
	then, err := p.parseStatementsUntil(token.KwElseif, token.KwElse, token.KwEndif)
	if err != nil {
		return nil, err
	}
	var elseIfs []*ast.ElseIfClause
	for p.check(token.KwElseif) {
		eStart := p.advance().Location
		if _, err := p.consume(token.LParen, "expected '('"); err != nil {
			return nil, err
		}
		eCond, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Colon, "expected ':'"); err != nil {
			return nil, err
		}
		eBody, err := p.parseStatementsUntil(token.KwElseif, token.KwElse, token.KwEndif)
		if err != nil {
			return nil, err
		}
		elseIfs = append(elseIfs, &ast.ElseIfClause{Base: ast.Base{Kind: ast.KElseIfClause, Location: mergeLoc(eStart, eBody.GetLocation())}, Condition: eCond, Body: eBody})
	}
	var alt ast.Statement
	if p.match(token.KwElse) {
		if _, err := p.consume(token.Colon, "expected ':'"); err != nil {
			return nil, err
		}
		alt, err = p.parseStatementsUntil(token.KwEndif)
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.KwEndif, "expected 'endif'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
		return nil, err
	}
	return &ast.IfStatement{Base: ast.Base{Kind: ast.KIfStatement, Location: mergeLoc(start, end.Location)}, Condition: cond, Then: then, ElseIfClauses: elseIfs, Alternate: alt, IsAlternative: true}, nil
}

// parseStatementsUntil collects statements into a synthetic
// BlockStatement until one of the given terminator keywords is ahead
// (not consumed), for the alternative `:`-block syntaxes.
func (p *Parser) parseStatementsUntil(terminators ...token.Kind) (*ast.BlockStatement, error) {
	start := p.peek().Location
	var stmts []ast.Statement
	for !p.isAtEnd() {
		stop := false
		for _, t := range terminators {
			if p.check(t) {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		s, err := p.parseStatementRecovering()
		if err != nil {
			continue
		}
		stmts = append(stmts, s)
	}
	end := start
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].GetLocation()
	}
	return &ast.BlockStatement{Base: ast.Base{Kind: ast.KBlockStatement, Location: mergeLoc(start, end)}, Statements: stmts}, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	if p.match(token.Colon) {
		body, err := p.parseStatementsUntil(token.KwEndwhile)
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.KwEndwhile, "expected 'endwhile'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Base: ast.Base{Kind: ast.KWhileStatement, Location: mergeLoc(start, end.Location)}, Condition: cond, Body: body, IsAlternative: true}, nil
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Base: ast.Base{Kind: ast.KWhileStatement, Location: mergeLoc(start, body.GetLocation())}, Condition: cond, Body: body}, nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	start := p.advance().Location // do
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.KwWhile, "expected 'while'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.DoWhileStatement{Base: ast.Base{Kind: ast.KDoWhileStatement, Location: mergeLoc(start, end.Location)}, Body: body, Condition: cond}, nil
}

func (p *Parser) parseForStatement() (ast.Statement, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	init, err := p.parseForExprList(token.Semicolon)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
		return nil, err
	}
	test, err := p.parseForExprList(token.Semicolon)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
		return nil, err
	}
	update, err := p.parseForExprList(token.RParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	if p.match(token.Colon) {
		body, err := p.parseStatementsUntil(token.KwEndfor)
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.KwEndfor, "expected 'endfor'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
			return nil, err
		}
		return &ast.ForStatement{Base: ast.Base{Kind: ast.KForStatement, Location: mergeLoc(start, end.Location)}, Init: init, Test: test, Update: update, Body: body, IsAlternative: true}, nil
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Base: ast.Base{Kind: ast.KForStatement, Location: mergeLoc(start, body.GetLocation())}, Init: init, Test: test, Update: update, Body: body}, nil
}

// parseForExprList parses a comma-joined expression list (for the
// for-loop init/update/test clauses), wrapping 2+ expressions in a
// SequenceExpression; a single expression is returned unwrapped.
func (p *Parser) parseForExprList(stop token.Kind) (ast.Expression, error) {
	if p.check(stop) {
		return nil, nil
	}
	start := p.peek().Location
	var exprs []ast.Expression
	for {
		e, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.match(token.Comma) {
			break
		}
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.SequenceExpression{Base: ast.Base{Kind: ast.KSequenceExpression, Location: mergeLoc(start, exprs[len(exprs)-1].GetLocation())}, Expressions: exprs}, nil
}

func (p *Parser) parseForeachStatement() (ast.Statement, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	subject, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.KwAs, "expected 'as'"); err != nil {
		return nil, err
	}
	byRef := p.match(token.Amp)
	first, err := p.parseForeachTarget()
	if err != nil {
		return nil, err
	}
	var key, value ast.Expression
	value = first
	if p.match(token.DoubleArrow) {
		key = first
		byRef = p.match(token.Amp)
		value, err = p.parseForeachTarget()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	if p.match(token.Colon) {
		body, err := p.parseStatementsUntil(token.KwEndforeach)
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.KwEndforeach, "expected 'endforeach'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
			return nil, err
		}
		return &ast.ForeachStatement{Base: ast.Base{Kind: ast.KForeachStatement, Location: mergeLoc(start, end.Location)}, Subject: subject, Key: key, Value: value, ByRef: byRef, Body: body, IsAlternative: true}, nil
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForeachStatement{Base: ast.Base{Kind: ast.KForeachStatement, Location: mergeLoc(start, body.GetLocation())}, Subject: subject, Key: key, Value: value, ByRef: byRef, Body: body}, nil
}

// parseForeachTarget allows a plain expression or a list()/[] destructure.
func (p *Parser) parseForeachTarget() (ast.Expression, error) {
	if p.check(token.KwList) {
		return p.parseListExpression()
	}
	if p.check(token.LBracket) {
		return p.parseArrayLiteral(false)
	}
	return p.ParseExpression()
}

func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	disc, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	alternative := false
	if p.match(token.Colon) {
		alternative = true
	} else if _, err := p.consume(token.LBrace, "expected '{' or ':'"); err != nil {
		return nil, err
	}
	p.match(token.Semicolon) // optional stray `;` before first case
	var cases []*ast.SwitchCase
	endTokens := []token.Kind{token.KwEndswitch}
	if !alternative {
		endTokens = []token.Kind{token.RBrace}
	}
	for !p.isAtEnd() {
		stop := false
		for _, t := range endTokens {
			if p.check(t) {
				stop = true
			}
		}
		if stop {
			break
		}
		caseStart := p.peek().Location
		var test ast.Expression
		if p.match(token.KwCase) {
			test, err = p.ParseExpression()
			if err != nil {
				return nil, err
			}
		} else if _, err := p.consume(token.KwDefault, "expected 'case' or 'default'"); err != nil {
			return nil, err
		}
		if !p.match(token.Colon) {
			if _, err := p.consume(token.Semicolon, "expected ':' or ';'"); err != nil {
				return nil, err
			}
		}
		var body []ast.Statement
		for !p.check(token.KwCase) && !p.check(token.KwDefault) {
			stop := false
			for _, t := range endTokens {
				if p.check(t) {
					stop = true
				}
			}
			if stop || p.isAtEnd() {
				break
			}
			s, err := p.parseStatementRecovering()
			if err != nil {
				continue
			}
			body = append(body, s)
		}
		caseEnd := caseStart
		if len(body) > 0 {
			caseEnd = body[len(body)-1].GetLocation()
		}
		cases = append(cases, &ast.SwitchCase{Base: ast.Base{Kind: ast.KSwitchCase, Location: mergeLoc(caseStart, caseEnd)}, Test: test, Consequent: body})
	}
	var end token.Token
	if alternative {
		end, err = p.consume(token.KwEndswitch, "expected 'endswitch'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Semicolon, "expected ';'"); err != nil {
			return nil, err
		}
	} else {
		end, err = p.consume(token.RBrace, "expected '}'")
		if err != nil {
			return nil, err
		}
	}
	return &ast.SwitchStatement{Base: ast.Base{Kind: ast.KSwitchStatement, Location: mergeLoc(start, end.Location)}, Discriminant: disc, Cases: cases, IsAlternative: alternative}, nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	start := p.advance().Location
	var label ast.Expression
	if p.check(token.Number) {
		t := p.advance()
		label = &ast.NumberLiteral{Base: ast.Base{Kind: ast.KNumberLiteral, Location: t.Location}, Raw: t.Text, IsFloat: t.Payload.IsFloat}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.BreakStatement{Base: ast.Base{Kind: ast.KBreakStatement, Location: mergeLoc(start, end.Location)}, Label: label}, nil
}

func (p *Parser) parseContinueStatement() (ast.Statement, error) {
	start := p.advance().Location
	var label ast.Expression
	if p.check(token.Number) {
		t := p.advance()
		label = &ast.NumberLiteral{Base: ast.Base{Kind: ast.KNumberLiteral, Location: t.Location}, Raw: t.Text, IsFloat: t.Payload.IsFloat}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{Base: ast.Base{Kind: ast.KContinueStatement, Location: mergeLoc(start, end.Location)}, Label: label}, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	start := p.advance().Location
	var arg ast.Expression
	if !p.check(token.Semicolon) {
		var err error
		arg, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Base: ast.Base{Kind: ast.KReturnStatement, Location: mergeLoc(start, end.Location)}, Argument: arg}, nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	start := p.advance().Location
	arg, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{Base: ast.Base{Kind: ast.KThrowStatement, Location: mergeLoc(start, end.Location)}, Argument: arg}, nil
}

func (p *Parser) parseTryStatement() (ast.Statement, error) {
	start := p.advance().Location
	block, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	var handlers []*ast.CatchClause
	for p.check(token.KwCatch) {
		cStart := p.advance().Location
		if _, err := p.consume(token.LParen, "expected '('"); err != nil {
			return nil, err
		}
		var types []*ast.NameExpression
		for {
			tn, err := p.parseNameExpression()
			if err != nil {
				return nil, err
			}
			types = append(types, tn)
			if !p.match(token.Pipe) {
				break
			}
		}
		var v *ast.Variable
		if p.check(token.Variable) {
			v, err = p.parseVariable()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
			return nil, err
		}
		body, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, &ast.CatchClause{Base: ast.Base{Kind: ast.KCatchClause, Location: mergeLoc(cStart, body.Location)}, Types: types, Variable: v, Body: body})
	}
	var finalizer *ast.BlockStatement
	if p.match(token.KwFinally) {
		finalizer, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
	}
	if len(handlers) == 0 && finalizer == nil {
		return nil, p.errorf("try must have at least one catch clause or a finally block")
	}
	end := block.Location
	if finalizer != nil {
		end = finalizer.Location
	} else if len(handlers) > 0 {
		end = handlers[len(handlers)-1].Body.Location
	}
	return &ast.TryStatement{Base: ast.Base{Kind: ast.KTryStatement, Location: mergeLoc(start, end)}, Block: block, Handlers: handlers, Finalizer: finalizer}, nil
}

func (p *Parser) parseEchoStatement() (ast.Statement, error) {
	start := p.advance().Location
	var args []ast.Expression
	for {
		e, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.EchoStatement{Base: ast.Base{Kind: ast.KEchoStatement, Location: mergeLoc(start, end.Location)}, Arguments: args}, nil
}

func (p *Parser) parseGlobalStatement() (ast.Statement, error) {
	start := p.advance().Location
	var vars []*ast.Variable
	for {
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.GlobalStatement{Base: ast.Base{Kind: ast.KGlobalStatement, Location: mergeLoc(start, end.Location)}, Variables: vars}, nil
}

func (p *Parser) parseStaticStatement() (ast.Statement, error) {
	start := p.advance().Location
	var decls []*ast.StaticVarDeclarator
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
		decls = append(decls, &ast.StaticVarDeclarator{Base: ast.Base{Kind: ast.KStaticVarDeclarator, Location: v.Location}, Variable: v, Default: def})
		if !p.match(token.Comma) {
			break
		}
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.StaticStatement{Base: ast.Base{Kind: ast.KStaticStatement, Location: mergeLoc(start, end.Location)}, Declarations: decls}, nil
}

func (p *Parser) parseUnsetStatement() (ast.Statement, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.check(token.RParen) {
		e, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.UnsetStatement{Base: ast.Base{Kind: ast.KUnsetStatement, Location: mergeLoc(start, end.Location)}, Arguments: args}, nil
}

func (p *Parser) parseGotoStatement() (ast.Statement, error) {
	start := p.advance().Location
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.Semicolon, "expected ';'")
	if err != nil {
		return nil, err
	}
	return &ast.GotoStatement{Base: ast.Base{Kind: ast.KGotoStatement, Location: mergeLoc(start, end.Location)}, Label: name}, nil
}

func (p *Parser) parseLabeledStatement() (ast.Statement, error) {
	nameTok := p.advance()
	p.advance() // :
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.LabeledStatement{Base: ast.Base{Kind: ast.KLabeledStatement, Location: mergeLoc(nameTok.Location, body.GetLocation())}, Label: nameTok.Text, Body: body}, nil
}

func (p *Parser) parseDeclareStatement() (ast.Statement, error) {
	start := p.advance().Location
	if _, err := p.consume(token.LParen, "expected '('"); err != nil {
		return nil, err
	}
	var directives []*ast.DeclareDirective
	for {
		name, loc, err := p.parseIdentifier()
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
		directives = append(directives, &ast.DeclareDirective{Base: ast.Base{Kind: ast.KDeclareDirective, Location: mergeLoc(loc, val.GetLocation())}, Name: name, Value: val})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.consume(token.RParen, "expected ')'"); err != nil {
		return nil, err
	}
	var body ast.Statement
	end := directives[len(directives)-1].GetLocation()
	if p.check(token.LBrace) {
		var err error
		body, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		end = body.GetLocation()
	} else {
		t, err := p.consume(token.Semicolon, "expected ';'")
		if err != nil {
			return nil, err
		}
		end = t.Location
	}
	return &ast.DeclareStatement{Base: ast.Base{Kind: ast.KDeclareStatement, Location: mergeLoc(start, end)}, Directives: directives, Body: body}, nil
}
