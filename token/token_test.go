package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword_CaseInsensitive(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"echo", KwEcho},
		{"ECHO", KwEcho},
		{"Function", KwFunction},
		{"die", KwExit},
		{"readonly", KwReadonly},
		{"match", KwMatch},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.text)
		assert.True(t, ok, "expected %q to be a keyword", tt.text)
		assert.Equal(t, tt.want, k, "keyword %q", tt.text)
	}

	_, ok := LookupKeyword("notakeyword")
	assert.False(t, ok)
}

func TestIsStatementStarter(t *testing.T) {
	assert.True(t, IsStatementStarter(KwIf))
	assert.True(t, IsStatementStarter(KwClass))
	assert.False(t, IsStatementStarter(KwEcho))
}

func TestToken_PHPNameDistinguishesFloatFromInt(t *testing.T) {
	intTok := Token{Kind: Number, Payload: Payload{IsFloat: false}}
	floatTok := Token{Kind: Number, Payload: Payload{IsFloat: true}}
	assert.Equal(t, "T_LNUMBER", intTok.PHPName())
	assert.Equal(t, "T_DNUMBER", floatTok.PHPName())
}

func TestToken_StringIncludesKindAndText(t *testing.T) {
	tok := Token{Kind: KwEcho, Text: "echo"}
	s := tok.String()
	assert.Contains(t, s, "echo")
}

func TestKind_StringIsStable(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.NotEmpty(t, KwClass.String())
}
