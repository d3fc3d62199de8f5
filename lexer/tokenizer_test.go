package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wudi/phpfront/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	res := Tokenize(src, DefaultOptions())
	assert.True(t, res.IsOk())
	return res.Value
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestTokenize_HelloWorld(t *testing.T) {
	input := `<?php echo "Hello, World!"; ?>`

	tests := []struct {
		expectedKind token.Kind
		expectedText string
	}{
		{token.OpenTag, "<?php "},
		{token.KwEcho, "echo"},
		{token.Whitespace, " "},
		{token.String, `"Hello, World!"`},
		{token.Semicolon, ";"},
		{token.Whitespace, " "},
		{token.CloseTag, "?>"},
		{token.EOF, ""},
	}

	toks := tokenize(t, input)
	for i, tt := range tests {
		assert.Equalf(t, tt.expectedKind, toks[i].Kind, "test[%d] - kind wrong, got %s", i, toks[i].Kind)
		assert.Equalf(t, tt.expectedText, toks[i].Text, "test[%d] - text wrong", i)
	}
}

func TestTokenize_InlineHTML(t *testing.T) {
	input := `<p>before</p><?php $x = 1; ?><p>after</p>`
	toks := tokenize(t, input)
	assert.Equal(t, token.InlineHTML, toks[0].Kind)
	assert.Equal(t, "<p>before</p>", toks[0].Text)
	last := toks[len(toks)-2]
	assert.Equal(t, token.InlineHTML, last.Kind)
	assert.Equal(t, "<p>after</p>", last.Text)
}

func TestTokenize_Variables(t *testing.T) {
	input := `<?php $name = "John"; $age = 25;`
	toks := tokenize(t, input)
	var vars []token.Token
	for _, tk := range toks {
		if tk.Kind == token.Variable {
			vars = append(vars, tk)
		}
	}
	assert.Len(t, vars, 2)
	assert.Equal(t, "name", vars[0].Payload.Name)
	assert.Equal(t, "age", vars[1].Payload.Name)
}

func TestTokenize_Operators(t *testing.T) {
	input := `<?php $a <=> $b; $c ??= $d; $e **= 2; $f <<= 1;`
	toks := tokenize(t, input)
	got := filterTrivia(toks)
	wantKinds := []token.Kind{
		token.OpenTag, token.Variable, token.Spaceship, token.Variable, token.Semicolon,
		token.Variable, token.CoalesceEq, token.Variable, token.Semicolon,
		token.Variable, token.PowEq, token.Number, token.Semicolon,
		token.Variable, token.ShlEq, token.Number, token.Semicolon,
		token.EOF,
	}
	assert.Equal(t, wantKinds, kinds(got))
}

func filterTrivia(toks []token.Token) []token.Token {
	var out []token.Token
	for _, tk := range toks {
		switch tk.Kind {
		case token.Whitespace, token.Newline, token.Comment, token.DocComment:
			continue
		}
		out = append(out, tk)
	}
	return out
}

func TestTokenize_CastLookalikeEmitsPlainTokens(t *testing.T) {
	// the lexer never decides cast-vs-paren; it always emits the same
	// three tokens and leaves disambiguation to the parser.
	input := `<?php (int)$x; (int)->foo();`
	toks := filterTrivia(tokenize(t, input))
	assert.Equal(t, token.LParen, toks[1].Kind)
	assert.Equal(t, token.Identifier, toks[2].Kind)
	assert.Equal(t, token.RParen, toks[3].Kind)
}

func TestTokenize_Heredoc(t *testing.T) {
	input := "<?php $x = <<<EOT\nline one\nline two\nEOT;\n"
	toks := filterTrivia(tokenize(t, input))
	var sawStart, sawBody, sawEnd bool
	for _, tk := range toks {
		switch tk.Kind {
		case token.StartHeredoc:
			sawStart = true
		case token.EncapsedAndWhitespace:
			sawBody = true
			assert.Contains(t, tk.Text, "line one")
		case token.EndHeredoc:
			sawEnd = true
		}
	}
	assert.True(t, sawStart)
	assert.True(t, sawBody)
	assert.True(t, sawEnd)
}

func TestTokenize_Nowdoc(t *testing.T) {
	input := "<?php $x = <<<'EOT'\nraw $notInterpolated\nEOT;\n"
	toks := filterTrivia(tokenize(t, input))
	found := false
	for _, tk := range toks {
		if tk.Kind == token.EncapsedAndWhitespace {
			found = true
			assert.Contains(t, tk.Text, "$notInterpolated")
		}
	}
	assert.True(t, found)
}

func TestTokenize_Attribute(t *testing.T) {
	input := `<?php #[Attribute(Foo::class)] class X {}`
	toks := filterTrivia(tokenize(t, input))
	assert.Equal(t, token.Attribute, toks[1].Kind)
	assert.Contains(t, toks[1].Text, "Attribute(Foo::class)")
}

func TestTokenize_StringEscapes(t *testing.T) {
	input := `<?php "a\"b"; 'c\'d'; 'raw\nstays';`
	toks := filterTrivia(tokenize(t, input))
	assert.Equal(t, `"a\"b"`, toks[1].Text)
	assert.Equal(t, `'c\'d'`, toks[3].Text)
	assert.Equal(t, `'raw\nstays'`, toks[5].Text)
}

func TestTokenize_NumberForms(t *testing.T) {
	input := `<?php 0x1A; 0b101; 0o17; 1_000; 1.5; 1e10; 1.2e-3;`
	toks := filterTrivia(tokenize(t, input))
	var nums []token.Token
	for _, tk := range toks {
		if tk.Kind == token.Number {
			nums = append(nums, tk)
		}
	}
	assert.Len(t, nums, 7)
	assert.False(t, nums[0].Payload.IsFloat)
	assert.False(t, nums[3].Payload.IsFloat)
	assert.True(t, nums[4].Payload.IsFloat)
	assert.True(t, nums[5].Payload.IsFloat)
	assert.True(t, nums[6].Payload.IsFloat)
}

func TestTokenize_KeywordsAreCaseInsensitive(t *testing.T) {
	input := `<?php ECHO $x; Function foo() {}`
	toks := filterTrivia(tokenize(t, input))
	assert.Equal(t, token.KwEcho, toks[1].Kind)
	assert.Equal(t, token.KwFunction, toks[4].Kind)
}

func TestTokenize_UnterminatedBacktickIsStringToken(t *testing.T) {
	input := "<?php $x = `;"
	toks := filterTrivia(tokenize(t, input))
	// backtick starts a shell-exec string form; unterminated at EOF still
	// yields a single String token rather than an error, per the
	// tokenizer's never-fail contract.
	foundString := false
	for _, tk := range toks {
		if tk.Kind == token.String {
			foundString = true
		}
	}
	assert.True(t, foundString)
}
