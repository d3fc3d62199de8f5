package ast

import "github.com/wudi/phpfront/position"

// Node is the common interface every AST node implements: a kind tag,
// a source location, and its direct children for generic traversal.
type Node interface {
	GetKind() Kind
	GetLocation() position.Location
	GetChildren() []Node
}

// Statement, Expression and Declaration are marker interfaces used by
// the is.* predicates and by the parser's return types; a concrete
// node type may implement more than one (e.g. DeclarationStatement
// wraps a Declaration to be usable wherever a Statement is expected).
type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Declaration interface {
	Node
	declarationNode()
}

// Base is embedded by every concrete node; it supplies GetKind and
// GetLocation. GetChildren is overridden per concrete type.
type Base struct {
	Kind     Kind
	Location position.Location
}

func (b Base) GetKind() Kind                   { return b.Kind }
func (b Base) GetLocation() position.Location  { return b.Location }
func (b Base) GetChildren() []Node             { return nil }

// childNodes filters a heterogeneous argument list down to the
// non-nil Node values, skipping absent optional fields (e.g. an absent
// `else` branch). Optional fields must be passed as plain interface
// values (Statement/Expression/nil), never as a typed nil pointer, so
// a straight == nil check is sufficient. GetChildren methods with
// optional fields use it; it does no reflection.
func childNodes(candidates ...Node) []Node {
	out := make([]Node, 0, len(candidates))
	for _, n := range candidates {
		if n == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func statements(ss []Statement) []Node {
	out := make([]Node, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func expressions(es []Expression) []Node {
	out := make([]Node, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}
