// Package perr holds the error and result types shared by the
// tokenizer and parser public entry points.
package perr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wudi/phpfront/position"
	"github.com/wudi/phpfront/token"
)

// Kind classifies an Error the way the syntactic/lexical taxonomy in
// the error-handling design separates concerns, even though only
// Syntax is ever surfaced by this core (malformed input becomes
// Unknown tokens, which in turn surfaces as a syntax error downstream).
type Kind int

const (
	Syntax Kind = iota
	Lexical
)

func (k Kind) String() string {
	if k == Lexical {
		return "lexical error"
	}
	return "syntax error"
}

// Error is the uniform error type raised at component boundaries:
// ParseError{message, location, token?} from spec §7, plus a
// correlation id an external caller (an MCP server, an IDE plugin) can
// key diagnostics on across a request/response boundary.
type Error struct {
	Kind     Kind
	Message  string
	Location position.Location
	Token    *token.Token
	ID       uuid.UUID
}

func NewSyntaxError(message string, loc position.Location, tok *token.Token) *Error {
	return &Error{Kind: Syntax, Message: message, Location: loc, Token: tok, ID: uuid.New()}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Location.Start, e.Message)
}

// List accumulates errors produced during error-recovery parsing. The
// public surface only ever surfaces the first (per spec §7's "first
// error only" policy) but recovery mode keeps the rest for callers
// that want them.
type List []*Error

func (l *List) Add(err *Error) {
	*l = append(*l, err)
}

func (l List) HasErrors() bool {
	return len(l) > 0
}

func (l List) First() *Error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

func (l List) Error() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Result wraps a value and an error uniformly at public boundaries,
// per spec §7's propagation policy (raw errors are wrapped; internal
// code uses ordinary Go error returns).
type Result[T any] struct {
	Value T
	Err   *Error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Err[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) IsOk() bool {
	return r.Err == nil
}
