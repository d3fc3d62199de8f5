// Package parser implements the recursive-descent, precedence-climbing
// PHP parser: token cursor, expression/statement/declaration grammars,
// and the top-level orchestrator.
package parser

import (
	"fmt"

	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/perr"
	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

// Options configures parsing. PHPVersion is informational (it governs
// which PHP-8.x syntax forms are accepted; this core accepts the
// superset of 5.x-8.x forms unconditionally rather than gating on it,
// since the spec's non-goals exclude version-sensitive diagnostics).
type Options struct {
	PHPVersion    string
	ErrorRecovery bool
	Strict        bool
}

func DefaultOptions() Options {
	return Options{PHPVersion: "8.0", ErrorRecovery: true, Strict: false}
}

// Parser holds the filtered token slice and a cursor into it, plus
// accumulated diagnostics.
type Parser struct {
	tokens  []token.Token
	current int
	opts    Options
	errors  perr.List
}

// Filter drops Whitespace, Newline, Comment and DocComment tokens,
// per spec §4.2/§4.4 — the parser base never sees trivia.
func Filter(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case token.Whitespace, token.Newline, token.Comment, token.DocComment:
			continue
		}
		out = append(out, t)
	}
	return out
}

func New(tokens []token.Token, opts Options) *Parser {
	return &Parser{tokens: Filter(tokens), opts: opts}
}

// peek synthesizes an EOF token (at the last real token's location) if
// the cursor has run past the end of input.
func (p *Parser) peek() token.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	if len(p.tokens) == 0 {
		return token.Token{Kind: token.EOF}
	}
	last := p.tokens[len(p.tokens)-1]
	return token.Token{Kind: token.EOF, Location: last.Location}
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.current + offset
	if idx < 0 || idx >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.Token{Kind: token.EOF}
		}
		last := p.tokens[len(p.tokens)-1]
		return token.Token{Kind: token.EOF, Location: last.Location}
	}
	return p.tokens[idx]
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the given kind, or records a
// ParseError at the current token with msg.
func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), msg)
}

func (p *Parser) errorAt(t token.Token, msg string) error {
	tk := t
	err := perr.NewSyntaxError(msg, t.Location, &tk)
	p.errors.Add(err)
	return err
}

func (p *Parser) errorf(format string, args ...any) error {
	return p.errorAt(p.peek(), fmt.Sprintf(format, args...))
}

// synchronize advances past tokens until a ';' is behind the cursor or
// a statement-starter keyword is ahead, per spec §4.4.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		if token.IsStatementStarter(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func mergeLoc(a, b position.Location) position.Location {
	return position.Merge(a, b)
}

// parseIdentifier consumes a bare Identifier token.
func (p *Parser) parseIdentifier() (string, position.Location, error) {
	if !p.check(token.Identifier) {
		// class-like keywords are valid identifiers in member-name
		// position (e.g. `$obj->class`), matching spec §4.5 primary.
		if isIdentifierLikeKeyword(p.peek().Kind) {
			t := p.advance()
			return lowerIfBareKeyword(t), t.Location, nil
		}
		return "", position.Location{}, p.errorf("expected identifier, got %s", p.peek().Kind)
	}
	t := p.advance()
	return t.Text, t.Location, nil
}

func lowerIfBareKeyword(t token.Token) string {
	return lowerASCII(t.Text)
}

func isIdentifierLikeKeyword(k token.Kind) bool {
	switch k {
	case token.KwClass, token.KwInterface, token.KwTrait, token.KwAbstract, token.KwFinal,
		token.KwList, token.KwArray, token.KwStatic, token.KwDefault, token.KwMatch,
		token.KwEnum, token.KwNamespace, token.KwFn, token.KwFor, token.KwGet, token.KwSet:
		return true
	default:
		return false
	}
}

// parseVariable consumes a `$name` token and strips the dollar.
func (p *Parser) parseVariable() (*ast.Variable, error) {
	if !p.check(token.Variable) {
		return nil, p.errorf("expected variable, got %s", p.peek().Kind)
	}
	t := p.advance()
	return &ast.Variable{Base: ast.Base{Kind: ast.KVariable, Location: t.Location}, Name: t.Payload.Name}, nil
}

// parseNameExpression parses a sequence of identifiers separated by
// `\`, classifying the qualification per spec §3's NameExpression.
func (p *Parser) parseNameExpression() (*ast.NameExpression, error) {
	start := p.peek().Location
	qual := ast.Unqualified
	if p.match(token.Backslash) {
		qual = ast.FullyQualified
	} else if p.check(token.KwNamespace) && p.peekAt(1).Kind == token.Backslash {
		p.advance()
		p.advance()
		qual = ast.RelativeNS
	}
	var parts []string
	name, loc, err := p.parseIdentifierOrKeywordName()
	if err != nil {
		return nil, err
	}
	parts = append(parts, name)
	end := loc
	for p.match(token.Backslash) {
		qual = maxQualification(qual, ast.Qualified)
		name, loc, err = p.parseIdentifierOrKeywordName()
		if err != nil {
			return nil, err
		}
		parts = append(parts, name)
		end = loc
	}
	return &ast.NameExpression{
		Base:      ast.Base{Kind: ast.KNameExpression, Location: mergeLoc(start, end)},
		Parts:     parts,
		Qualified: qual,
	}, nil
}

func maxQualification(a, b ast.Qualification) ast.Qualification {
	if a == ast.FullyQualified || a == ast.RelativeNS {
		return a
	}
	return b
}

// parseIdentifierOrKeywordName allows reserved words as name segments
// (PHP permits many keywords as class/namespace/method names).
func (p *Parser) parseIdentifierOrKeywordName() (string, position.Location, error) {
	t := p.peek()
	if t.Kind == token.Identifier || isIdentifierLikeKeyword(t.Kind) || isKeywordUsableAsName(t.Kind) {
		p.advance()
		return t.Text, t.Location, nil
	}
	return "", position.Location{}, p.errorf("expected name, got %s", t.Kind)
}

func isKeywordUsableAsName(k token.Kind) bool {
	switch k {
	case token.KwNew, token.KwClone, token.KwEcho, token.KwPrint, token.KwExit,
		token.KwIsset, token.KwUnset, token.KwEmpty, token.KwInclude, token.KwRequire,
		token.KwReturn, token.KwYield, token.KwUse, token.KwCase, token.KwCatch,
		token.KwTry, token.KwIf, token.KwElse, token.KwWhile, token.KwDo,
		token.KwSwitch, token.KwBreak, token.KwContinue, token.KwGlobal, token.KwConst,
		token.KwPrivate, token.KwProtected, token.KwPublic, token.KwVar, token.KwReadonly,
		token.KwCallable, token.KwInstanceof, token.KwInsteadof, token.KwExtends,
		token.KwImplements, token.KwThrow, token.KwFinally, token.KwGoto:
		return true
	default:
		return false
	}
}

// Errors returns the accumulated diagnostics (every error raised so
// far, in either mode).
func (p *Parser) Errors() perr.List {
	return p.errors
}
