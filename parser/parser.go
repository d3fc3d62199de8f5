package parser

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/perr"
	"github.com/wudi/phpfront/token"
)

// Parse runs the full grammar over an already-filtered-or-not token
// slice (New applies Filter internally) and returns the Program root,
// per spec §4.8: leading InlineHTML/open-tag handling, then a
// declaration-vs-statement dispatch loop until EOF, with
// synchronize()-based recovery between top-level statements when
// opts.ErrorRecovery is set.
func Parse(tokens []token.Token, opts Options) perr.Result[*ast.Program] {
	p := New(tokens, opts)
	prog, err := p.ParseProgram()
	if err != nil && !opts.ErrorRecovery {
		return perr.Err[*ast.Program](err.(*perr.Error))
	}
	if p.errors.HasErrors() && !opts.ErrorRecovery {
		return perr.Err[*ast.Program](p.errors.First())
	}
	return perr.Ok(prog)
}

// ParseProgram is the Parser-method form of Parse, for callers that
// already hold a constructed Parser (e.g. to inspect p.Errors() after
// a recovering parse).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start := p.peek().Location
	var stmts []ast.Statement
	for !p.isAtEnd() {
		if p.check(token.CloseTag) {
			p.advance()
			continue
		}
		if p.check(token.OpenTag) || p.check(token.OpenTagEcho) {
			p.advance()
			continue
		}
		s, err := p.parseStatementRecovering()
		if err != nil {
			if !p.opts.ErrorRecovery {
				return nil, err
			}
			continue
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	end := start
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].GetLocation()
	}
	return &ast.Program{Base: ast.Base{Kind: ast.KProgram, Location: mergeLoc(start, end)}, Statements: stmts}, nil
}
