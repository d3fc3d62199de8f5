package token

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/wudi/phpfront/position"
)

// Payload carries kind-specific data a bare Kind/Text pair can't: for
// Number, whether the literal is a float; for String forms, the
// decoded quote character; for Identifier/Variable, the bare name.
type Payload struct {
	IsFloat bool
	Quote   byte // '"', '\'', '`'; 0 if not a string form
	Name    string
}

// Token is the tagged record the tokenizer emits: kind plus the exact
// source slice, its location, and an optional kind-specific payload.
type Token struct {
	Kind     Kind
	Text     string
	Location position.Location
	Payload  Payload
}

// PHPName returns the PHP T_* constant name this token's kind maps to,
// refining Number into T_LNUMBER/T_DNUMBER from the payload.
func (t Token) PHPName() string {
	if t.Kind == Number && t.Payload.IsFloat {
		return "T_DNUMBER"
	}
	return t.Kind.PHPName()
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s, %q, line %s}", t.Kind, t.Text, humanize.Comma(int64(t.Location.Start.Line)))
}
