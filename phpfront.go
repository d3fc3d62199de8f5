// Package phpfront is the package-root convenience surface: Tokenize,
// Parse and ParseTokens. The traversal helpers are not re-exported
// here; they live in package walk. Callers needing finer control (custom
// tokenizer Options, inspecting a recovering parse's accumulated
// errors) should use the lexer/parser packages directly.
package phpfront

import (
	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/lexer"
	"github.com/wudi/phpfront/parser"
	"github.com/wudi/phpfront/perr"
	"github.com/wudi/phpfront/token"
)

// Tokenize lexes source into a token stream. It never fails: malformed
// input surfaces as Unknown-kind tokens rather than an error.
func Tokenize(source string) perr.Result[[]token.Token] {
	return lexer.Tokenize(source, lexer.DefaultOptions())
}

// Parse lexes and parses source in one step, using default tokenizer
// and parser options (error recovery on).
func Parse(source string) perr.Result[*ast.Program] {
	tokens := Tokenize(source)
	return parser.Parse(tokens.Value, parser.DefaultOptions())
}

// ParseTokens parses an already-tokenized stream, for callers that
// tokenized with custom Options.
func ParseTokens(tokens []token.Token, opts parser.Options) perr.Result[*ast.Program] {
	return parser.Parse(tokens, opts)
}
