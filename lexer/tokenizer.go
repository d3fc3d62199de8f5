package lexer

import (
	"strings"

	"github.com/wudi/phpfront/perr"
	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

// Options controls which trivia kinds the tokenizer retains. All three
// default to true; a separate filtering pass (see parser.Filter) drops
// Whitespace/Newline/Comment/DocComment before parsing regardless of
// these flags, which only govern whether tokenize() itself keeps them
// in the returned slice.
type Options struct {
	PreserveComments    bool
	PreserveWhitespace  bool
	PreserveInlineHTML  bool
}

func DefaultOptions() Options {
	return Options{PreserveComments: true, PreserveWhitespace: true, PreserveInlineHTML: true}
}

type pendingHeredoc struct {
	label    string
	isNowdoc bool
}

// Tokenizer drives a Scanner and a StateStack to produce a Token
// stream. It never throws: malformed input becomes Unknown tokens.
type Tokenizer struct {
	scanner *Scanner
	state   *StateStack
	opts    Options
	pending *pendingHeredoc
	source  string
}

func NewTokenizer(source string, opts Options) *Tokenizer {
	return &Tokenizer{
		scanner: NewScanner(source),
		state:   NewStateStack(),
		opts:    opts,
		source:  source,
	}
}

// Tokenize runs the tokenizer to completion. Per spec §4.2 the
// tokenizer cannot fail, so the Result is always Ok; the Result
// envelope is kept for symmetry with parse() and for a future lexical
// diagnostics pass.
func Tokenize(source string, opts Options) perr.Result[[]token.Token] {
	t := NewTokenizer(source, opts)
	var toks []token.Token
	for {
		tok := t.NextToken()
		switch tok.Kind {
		case token.Comment, token.DocComment:
			if !opts.PreserveComments {
				continue
			}
		case token.Whitespace, token.Newline:
			if !opts.PreserveWhitespace {
				continue
			}
		case token.InlineHTML:
			if !opts.PreserveInlineHTML {
				continue
			}
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return perr.Ok(toks)
}

func (t *Tokenizer) loc(start position.Position) position.Location {
	return position.Location{Start: start, End: t.scanner.GetCurrentPosition()}
}

func (t *Tokenizer) tok(kind token.Kind, start position.Position, text string) token.Token {
	return token.Token{Kind: kind, Text: text, Location: t.loc(start)}
}

// NextToken returns the next token in the stream, synthesizing a
// trailing EOF token when the scanner is exhausted and there is no
// pending heredoc work.
func (t *Tokenizer) NextToken() token.Token {
	if t.scanner.IsAtEnd() && t.pending == nil {
		pos := t.scanner.GetCurrentPosition()
		return t.tok(token.EOF, pos, "")
	}

	switch t.state.Peek() {
	case ModeNormal:
		return t.nextOutsidePhp()
	case ModeHeredoc:
		return t.nextHeredocBody(false)
	case ModeNowdoc:
		return t.nextHeredocBody(true)
	default:
		return t.nextInScripting()
	}
}

// --- outside PHP: HTML / open tags ---

func (t *Tokenizer) nextOutsidePhp() token.Token {
	start := t.scanner.GetCurrentPosition()
	if t.scanner.Matches("<?php") {
		t.scanner.Skip(5)
		t.consumeOneSpaceOrTab()
		t.state.Push(ModeScripting)
		return t.tok(token.OpenTag, start, t.source[start.Offset:t.scanner.GetCurrentPosition().Offset])
	}
	if t.scanner.Matches("<?=") {
		t.scanner.Skip(3)
		t.state.Push(ModeScripting)
		return t.tok(token.OpenTagEcho, start, "<?=")
	}
	if t.scanner.Matches("<?") && !t.scanner.Matches("<?xml") {
		t.scanner.Skip(2)
		t.state.Push(ModeScripting)
		return t.tok(token.OpenTag, start, "<?")
	}
	text := t.scanner.ConsumeUntil(func(byte) bool {
		return t.scanner.Matches("<?php") || t.scanner.Matches("<?=") ||
			(t.scanner.Matches("<?") && !t.scanner.Matches("<?xml"))
	})
	if text == "" {
		// lone '<' that never resolves to a tag before EOF: consume one
		// byte to guarantee forward progress.
		text = string(t.scanner.Advance())
	}
	return t.tok(token.InlineHTML, start, text)
}

func (t *Tokenizer) consumeOneSpaceOrTab() {
	if t.scanner.Peek(0) == ' ' || t.scanner.Peek(0) == '\t' {
		t.scanner.Advance()
	}
}

// --- inside PHP ---

func (t *Tokenizer) nextInScripting() token.Token {
	start := t.scanner.GetCurrentPosition()
	ch := t.scanner.Peek(0)

	switch {
	case ch == eofRune && t.scanner.IsAtEnd():
		t.state.Reset()
		return t.tok(token.EOF, start, "")
	case IsWhitespace(ch):
		text := t.scanner.ConsumeWhile(IsWhitespace)
		return t.tok(token.Whitespace, start, text)
	case IsNewline(ch):
		t.scanner.Advance()
		return t.tok(token.Newline, start, t.source[start.Offset:t.scanner.GetCurrentPosition().Offset])
	case t.scanner.Matches("?>"):
		t.scanner.Skip(2)
		t.state.Pop()
		// a trailing newline right after ?> is consumed by PHP; we keep
		// it simple and let the next outer-HTML scan pick it up.
		return t.tok(token.CloseTag, start, "?>")
	case t.scanner.Matches("//") || (ch == '#' && t.scanner.Peek(1) != '['):
		return t.scanLineComment(start)
	case t.scanner.Matches("/*"):
		return t.scanBlockComment(start)
	case t.scanner.Matches("#["):
		return t.scanAttribute(start)
	case ch == '"' || ch == '\'' || ch == '`':
		return t.scanString(start, ch)
	case t.scanner.Matches("<<<"):
		return t.scanHeredocStart(start)
	case IsDigit(ch) || (ch == '.' && IsDigit(t.scanner.Peek(1))):
		return t.scanNumber(start)
	case ch == '$':
		return t.scanVariable(start)
	case IsIdentifierStart(ch):
		return t.scanIdentifier(start)
	default:
		return t.scanOperator(start)
	}
}

func (t *Tokenizer) scanLineComment(start position.Position) token.Token {
	// PHP stops a line comment at a newline or at a closing tag.
	text := t.scanner.ConsumeUntil(func(b byte) bool { return b == '\n' || b == '\r' || t.scanner.Matches("?>") })
	return t.tok(token.Comment, start, text)
}

func (t *Tokenizer) scanBlockComment(start position.Position) token.Token {
	isDoc := t.scanner.Matches("/**") && !t.scanner.Matches("/**/")
	t.scanner.Skip(2)
	for !t.scanner.IsAtEnd() && !t.scanner.Matches("*/") {
		t.scanner.Advance()
	}
	if t.scanner.Matches("*/") {
		t.scanner.Skip(2)
	}
	end := t.scanner.GetCurrentPosition()
	text := t.source[start.Offset:end.Offset]
	if isDoc {
		return t.tok(token.DocComment, start, text)
	}
	return t.tok(token.Comment, start, text)
}

func (t *Tokenizer) scanAttribute(start position.Position) token.Token {
	t.scanner.Skip(2) // '#['
	depth := 1
	for !t.scanner.IsAtEnd() && depth > 0 {
		ch := t.scanner.Advance()
		switch ch {
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	end := t.scanner.GetCurrentPosition()
	return t.tok(token.Attribute, start, t.source[start.Offset:end.Offset])
}

// scanString scans a single/double/backtick-quoted string as one
// opaque token (per SPEC_FULL's resolution of the interpolation open
// question): \ escapes one following character verbatim.
func (t *Tokenizer) scanString(start position.Position, quote byte) token.Token {
	t.scanner.Advance() // opening quote
	for !t.scanner.IsAtEnd() {
		ch := t.scanner.Peek(0)
		if ch == '\\' && quote != '\'' {
			t.scanner.Advance()
			if !t.scanner.IsAtEnd() {
				t.scanner.Advance()
			}
			continue
		}
		if ch == '\\' && quote == '\'' {
			// single-quoted strings only recognize \\ and \' as escapes
			if t.scanner.Peek(1) == '\\' || t.scanner.Peek(1) == '\'' {
				t.scanner.Advance()
				t.scanner.Advance()
				continue
			}
			t.scanner.Advance()
			continue
		}
		if ch == quote {
			t.scanner.Advance()
			break
		}
		t.scanner.Advance()
	}
	end := t.scanner.GetCurrentPosition()
	tk := t.tok(token.String, start, t.source[start.Offset:end.Offset])
	tk.Payload.Quote = quote
	return tk
}

func (t *Tokenizer) scanNumber(start position.Position) token.Token {
	isFloat := false
	if t.scanner.Peek(0) == '0' && (t.scanner.Peek(1) == 'x' || t.scanner.Peek(1) == 'X') {
		t.scanner.Advance()
		t.scanner.Advance()
		t.scanner.ConsumeWhile(func(b byte) bool { return IsHexDigit(b) || b == '_' })
	} else if t.scanner.Peek(0) == '0' && (t.scanner.Peek(1) == 'b' || t.scanner.Peek(1) == 'B') {
		t.scanner.Advance()
		t.scanner.Advance()
		t.scanner.ConsumeWhile(func(b byte) bool { return IsBinaryDigit(b) || b == '_' })
	} else if t.scanner.Peek(0) == '0' && (t.scanner.Peek(1) == 'o' || t.scanner.Peek(1) == 'O') {
		t.scanner.Advance()
		t.scanner.Advance()
		t.scanner.ConsumeWhile(func(b byte) bool { return IsOctalDigit(b) || b == '_' })
	} else {
		t.scanner.ConsumeWhile(func(b byte) bool { return IsDigit(b) || b == '_' })
		if t.scanner.Peek(0) == '.' && IsDigit(t.scanner.Peek(1)) {
			isFloat = true
			t.scanner.Advance()
			t.scanner.ConsumeWhile(func(b byte) bool { return IsDigit(b) || b == '_' })
		}
		if t.scanner.Peek(0) == 'e' || t.scanner.Peek(0) == 'E' {
			save := t.scanner.Save()
			t.scanner.Advance()
			if t.scanner.Peek(0) == '+' || t.scanner.Peek(0) == '-' {
				t.scanner.Advance()
			}
			if IsDigit(t.scanner.Peek(0)) {
				isFloat = true
				t.scanner.ConsumeWhile(IsDigit)
			} else {
				t.scanner.Restore(save)
			}
		}
	}
	end := t.scanner.GetCurrentPosition()
	tk := t.tok(token.Number, start, t.source[start.Offset:end.Offset])
	tk.Payload.IsFloat = isFloat
	return tk
}

func (t *Tokenizer) scanVariable(start position.Position) token.Token {
	t.scanner.Advance() // '$'
	if !IsIdentifierStart(t.scanner.Peek(0)) {
		// bare '$' (variable-variable or complex interpolation form);
		// the parser handles the compound construct.
		return t.tok(token.Dollar, start, "$")
	}
	name := t.scanner.ConsumeWhile(IsIdentifierPart)
	tk := t.tok(token.Variable, start, "$"+name)
	tk.Payload.Name = name
	return tk
}

func (t *Tokenizer) scanIdentifier(start position.Position) token.Token {
	text := t.scanner.ConsumeWhile(IsIdentifierPart)
	lower := strings.ToLower(text)
	if kind, ok := token.LookupKeyword(lower); ok {
		tk := t.tok(kind, start, text)
		if kind == token.KwExit && lower == "die" {
			tk.Text = text
		}
		return tk
	}
	tk := t.tok(token.Identifier, start, text)
	tk.Payload.Name = text
	return tk
}

// --- operators: longest match, 3/2/1 char ---

var threeCharOps = map[string]token.Kind{
	"===": token.EqEqEq, "!==": token.NotEqEq, "<<=": token.ShlEq,
	">>=": token.ShrEq, "**=": token.PowEq, "<=>": token.Spaceship,
	"??=": token.CoalesceEq, "...": token.Ellipsis, "?->": token.NullsafeArrow,
}

var twoCharOps = map[string]token.Kind{
	"==": token.EqEq, "!=": token.NotEq, "<>": token.NotEq, "<=": token.LtEq,
	">=": token.GtEq, "&&": token.BoolAnd, "||": token.BoolOr, "??": token.Coalesce,
	"<<": token.Shl, ">>": token.Shr, "->": token.Arrow, "=>": token.DoubleArrow,
	"::": token.DoubleColon, "++": token.PlusPlus, "--": token.MinusMinus,
	"+=": token.PlusEq, "-=": token.MinusEq, "*=": token.StarEq, "/=": token.SlashEq,
	".=": token.DotEq, "%=": token.PercentEq, "&=": token.AmpEq, "|=": token.PipeEq,
	"^=": token.CaretEq, "**": token.Pow,
}

var oneCharOps = map[byte]token.Kind{
	';': token.Semicolon, ',': token.Comma, '.': token.Dot,
	'{': token.LBrace, '}': token.RBrace, '(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket,
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash, '%': token.Percent,
	'&': token.Amp, '|': token.Pipe, '^': token.Caret, '~': token.Tilde,
	'<': token.Lt, '>': token.Gt, '=': token.Assign, '!': token.Bang,
	'?': token.Question, ':': token.Colon, '@': token.At, '$': token.Dollar,
	'\\': token.Backslash,
}

func (t *Tokenizer) scanOperator(start position.Position) token.Token {
	three := string(t.scanner.Peek(0)) + string(t.scanner.Peek(1)) + string(t.scanner.Peek(2))
	if kind, ok := threeCharOps[three]; ok {
		t.scanner.Skip(3)
		return t.tok(kind, start, three)
	}
	two := string(t.scanner.Peek(0)) + string(t.scanner.Peek(1))
	if kind, ok := twoCharOps[two]; ok {
		t.scanner.Skip(2)
		return t.tok(kind, start, two)
	}
	ch := t.scanner.Advance()
	if kind, ok := oneCharOps[ch]; ok {
		return t.tok(kind, start, string(ch))
	}
	return t.tok(token.Unknown, start, string(ch))
}

// --- heredoc / nowdoc ---

func (t *Tokenizer) scanHeredocStart(start position.Position) token.Token {
	t.scanner.Skip(3) // '<<<'
	t.scanner.ConsumeWhile(IsWhitespace)
	quote := byte(0)
	if t.scanner.Peek(0) == '\'' || t.scanner.Peek(0) == '"' {
		quote = t.scanner.Peek(0)
		t.scanner.Advance()
	}
	label := t.scanner.ConsumeWhile(IsIdentifierPart)
	if quote != 0 && t.scanner.Peek(0) == quote {
		t.scanner.Advance()
	}
	// consume to end of line (inclusive), tolerating \r\n
	t.scanner.ConsumeUntil(IsNewline)
	if IsNewline(t.scanner.Peek(0)) {
		t.scanner.Advance()
	}
	t.pending = &pendingHeredoc{label: label, isNowdoc: quote == '\''}
	if t.pending.isNowdoc {
		t.state.Push(ModeNowdoc)
	} else {
		t.state.Push(ModeHeredoc)
	}
	end := t.scanner.GetCurrentPosition()
	return t.tok(token.StartHeredoc, start, t.source[start.Offset:end.Offset])
}

// nextHeredocBody emits either the non-interpolated body as one
// EncapsedAndWhitespace chunk, or (if already at the closing label)
// the EndHeredoc token, per spec §4.2/§9: heredoc bodies are opaque,
// matching the source, regardless of isNowdoc.
func (t *Tokenizer) nextHeredocBody(_ bool) token.Token {
	start := t.scanner.GetCurrentPosition()
	if t.isAtHeredocEnd() {
		return t.consumeHeredocEnd(start)
	}
	bodyStart := start
	for !t.scanner.IsAtEnd() {
		if IsNewline(t.scanner.Peek(0)) {
			t.scanner.Advance()
			if t.isAtHeredocEnd() {
				break
			}
			continue
		}
		t.scanner.Advance()
	}
	end := t.scanner.GetCurrentPosition()
	if end.Offset == bodyStart.Offset {
		return t.consumeHeredocEnd(start)
	}
	return t.tok(token.EncapsedAndWhitespace, bodyStart, t.source[bodyStart.Offset:end.Offset])
}

func (t *Tokenizer) consumeHeredocEnd(start position.Position) token.Token {
	t.scanner.ConsumeWhile(IsWhitespace)
	t.scanner.Skip(len(t.pending.label))
	t.pending = nil
	t.state.Pop()
	end := t.scanner.GetCurrentPosition()
	return t.tok(token.EndHeredoc, start, t.source[start.Offset:end.Offset])
}

// isAtHeredocEnd reports whether, at a line start, optional indentation
// followed by the pending label (not followed by an identifier-part
// character) appears — PHP 7.3+'s flexible, indentation-tolerant
// heredoc closing rule.
func (t *Tokenizer) isAtHeredocEnd() bool {
	if t.pending == nil {
		return false
	}
	save := t.scanner.Save()
	defer t.scanner.Restore(save)
	t.scanner.ConsumeWhile(IsWhitespace)
	if !t.scanner.Matches(t.pending.label) {
		return false
	}
	next := t.scanner.Peek(len(t.pending.label))
	return !IsIdentifierPart(next)
}
