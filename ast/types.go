package ast

// Type nodes implement Node directly; they are not Expression or
// Statement, matching spec §3's separate "Types" node family.

type SimpleType struct {
	Base
	Name *NameExpression
}

func (n *SimpleType) GetChildren() []Node { return []Node{n.Name} }

type NullableType struct {
	Base
	Inner Node
}

func (n *NullableType) GetChildren() []Node { return []Node{n.Inner} }

type UnionType struct {
	Base
	Members []Node
}

func (n *UnionType) GetChildren() []Node { return n.Members }

type IntersectionType struct {
	Base
	Members []Node
}

func (n *IntersectionType) GetChildren() []Node { return n.Members }

// ArrayType is the `array` builtin used as a type annotation (not the
// ArrayExpression value constructor).
type ArrayType struct{ Base }

func (n *ArrayType) GetChildren() []Node { return nil }

// CallableType is the `callable` builtin used as a type annotation.
type CallableType struct{ Base }

func (n *CallableType) GetChildren() []Node { return nil }
