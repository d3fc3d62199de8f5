package ast

func (*FunctionDeclaration) declarationNode()  {}
func (*ClassDeclaration) declarationNode()     {}
func (*InterfaceDeclaration) declarationNode() {}
func (*TraitDeclaration) declarationNode()     {}
func (*EnumDeclaration) declarationNode()      {}
func (*NamespaceDeclaration) declarationNode() {}
func (*UseDeclaration) declarationNode()       {}
func (*ConstDeclaration) declarationNode()     {}

type FunctionDeclaration struct {
	Base
	Name             string
	Parameters       []*Parameter
	ReturnType       Node
	Body             *BlockStatement
	ReturnsReference bool
	Attributes       []*AttributeGroup
}

func (n *FunctionDeclaration) GetChildren() []Node {
	var out []Node
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	return out
}

// MethodDeclaration is a class/interface/trait method. Body is nil for
// abstract methods and interface method signatures.
type MethodDeclaration struct {
	Base
	Name             string
	Modifiers        []string
	Parameters       []*Parameter
	ReturnType       Node
	Body             *BlockStatement
	ReturnsReference bool
	Attributes       []*AttributeGroup
}

func (n *MethodDeclaration) GetChildren() []Node {
	var out []Node
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

// PropertyHook is a PHP 8.4 `get`/`set` accessor on a property.
type PropertyHook struct {
	Base
	Name       string // "get" or "set"
	Parameters []*Parameter
	Body       Node // *BlockStatement, or an Expression for the short `=>` form; nil for abstract hooks
}

func (n *PropertyHook) GetChildren() []Node {
	var out []Node
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

type PropertyDeclarator struct {
	Base
	Name        string
	Default     Expression
}

func (n *PropertyDeclarator) GetChildren() []Node { return childNodes(asNode(n.Default)) }

type PropertyDeclaration struct {
	Base
	Modifiers    []string
	Type         Node // nil if untyped
	Declarators  []*PropertyDeclarator
	Hooks        []*PropertyHook
	Attributes   []*AttributeGroup
}

func (n *PropertyDeclaration) GetChildren() []Node {
	var out []Node
	if n.Type != nil {
		out = append(out, n.Type)
	}
	for _, d := range n.Declarators {
		out = append(out, d)
	}
	for _, h := range n.Hooks {
		out = append(out, h)
	}
	return out
}

type ConstDeclarator struct {
	Base
	Name  string
	Value Expression
}

func (n *ConstDeclarator) GetChildren() []Node { return []Node{n.Value} }

// ClassConstDeclaration is a class/interface/trait/enum `const` member.
type ClassConstDeclaration struct {
	Base
	Modifiers    []string
	Type         Node
	Declarators  []*ConstDeclarator
	Attributes   []*AttributeGroup
}

func (n *ClassConstDeclaration) GetChildren() []Node {
	var out []Node
	if n.Type != nil {
		out = append(out, n.Type)
	}
	for _, d := range n.Declarators {
		out = append(out, d)
	}
	return out
}

// ConstDeclaration is a top-level `const NAME = expr, ...;`.
type ConstDeclaration struct {
	Base
	Declarators []*ConstDeclarator
}

func (n *ConstDeclaration) GetChildren() []Node {
	out := make([]Node, len(n.Declarators))
	for i, d := range n.Declarators {
		out[i] = d
	}
	return out
}

type TraitAdaptationAlias struct {
	Base
	Trait      *NameExpression // nil if unqualified `method as alias`
	Method     string
	Visibility string // "" if unchanged
	Alias      string // "" if only visibility changes
}

func (n *TraitAdaptationAlias) GetChildren() []Node { return childNodes(asNode2(n.Trait)) }

type TraitAdaptationPrecedence struct {
	Base
	Trait     *NameExpression
	Method    string
	InsteadOf []*NameExpression
}

func (n *TraitAdaptationPrecedence) GetChildren() []Node {
	out := []Node{n.Trait}
	for _, t := range n.InsteadOf {
		out = append(out, t)
	}
	return out
}

type TraitUse struct {
	Base
	Traits      []*NameExpression
	Adaptations []Node // *TraitAdaptationAlias or *TraitAdaptationPrecedence
}

func (n *TraitUse) GetChildren() []Node {
	out := make([]Node, 0, len(n.Traits)+len(n.Adaptations))
	for _, t := range n.Traits {
		out = append(out, t)
	}
	out = append(out, n.Adaptations...)
	return out
}

type EnumCase struct {
	Base
	Name  string
	Value Expression // nil for pure enums
}

func (n *EnumCase) GetChildren() []Node { return childNodes(asNode(n.Value)) }

type ClassDeclaration struct {
	Base
	Name       string
	Modifiers  []string // abstract, final, readonly
	SuperClass *NameExpression
	Interfaces []*NameExpression
	Body       []Node // MethodDeclaration/PropertyDeclaration/ClassConstDeclaration/TraitUse
	Attributes []*AttributeGroup
}

func (n *ClassDeclaration) GetChildren() []Node {
	var out []Node
	if n.SuperClass != nil {
		out = append(out, n.SuperClass)
	}
	for _, i := range n.Interfaces {
		out = append(out, i)
	}
	out = append(out, n.Body...)
	return out
}

type InterfaceDeclaration struct {
	Base
	Name    string
	Extends []*NameExpression
	Body    []Node
}

func (n *InterfaceDeclaration) GetChildren() []Node {
	out := make([]Node, 0, len(n.Extends)+len(n.Body))
	for _, e := range n.Extends {
		out = append(out, e)
	}
	out = append(out, n.Body...)
	return out
}

type TraitDeclaration struct {
	Base
	Name string
	Body []Node
}

func (n *TraitDeclaration) GetChildren() []Node { return n.Body }

type EnumDeclaration struct {
	Base
	Name        string
	ScalarType  string // "", "int", or "string"
	Interfaces  []*NameExpression
	Body        []Node // EnumCase/MethodDeclaration/ClassConstDeclaration/TraitUse
}

func (n *EnumDeclaration) GetChildren() []Node {
	out := make([]Node, 0, len(n.Interfaces)+len(n.Body))
	for _, i := range n.Interfaces {
		out = append(out, i)
	}
	out = append(out, n.Body...)
	return out
}

type NamespaceDeclaration struct {
	Base
	Parts      []string
	Statements []Statement
	Braced     bool
}

func (n *NamespaceDeclaration) GetChildren() []Node { return statements(n.Statements) }

type UseKind int

const (
	UseNormal UseKind = iota
	UseFunction
	UseConst
)

type UseItem struct {
	Base
	Name  *NameExpression
	Alias string // "" if none
}

func (n *UseItem) GetChildren() []Node { return []Node{n.Name} }

type UseDeclaration struct {
	Base
	UseKind UseKind
	Items   []*UseItem
}

func (n *UseDeclaration) GetChildren() []Node {
	out := make([]Node, len(n.Items))
	for i, it := range n.Items {
		out[i] = it
	}
	return out
}

func asNode2(n *NameExpression) Node {
	if n == nil {
		return nil
	}
	return n
}
