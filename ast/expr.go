package ast

func (*NumberLiteral) expressionNode()               {}
func (*StringLiteral) expressionNode()               {}
func (*TemplateStringExpression) expressionNode()    {}
func (*BooleanLiteral) expressionNode()              {}
func (*NullLiteral) expressionNode()                 {}
func (*Variable) expressionNode()                    {}
func (*NameExpression) expressionNode()               {}
func (*ArrayExpression) expressionNode()              {}
func (*ArrayPattern) expressionNode()                 {}
func (*UnaryExpression) expressionNode()              {}
func (*UpdateExpression) expressionNode()             {}
func (*BinaryExpression) expressionNode()             {}
func (*LogicalExpression) expressionNode()            {}
func (*ConditionalExpression) expressionNode()        {}
func (*AssignmentExpression) expressionNode()         {}
func (*CastExpression) expressionNode()               {}
func (*CallExpression) expressionNode()               {}
func (*MemberExpression) expressionNode()             {}
func (*StaticMemberExpression) expressionNode()       {}
func (*NewExpression) expressionNode()                {}
func (*CloneExpression) expressionNode()              {}
func (*YieldExpression) expressionNode()              {}
func (*MatchExpression) expressionNode()              {}
func (*IncludeExpression) expressionNode()            {}
func (*IssetExpression) expressionNode()              {}
func (*EmptyExpression) expressionNode()              {}
func (*EvalExpression) expressionNode()               {}
func (*ExitExpression) expressionNode()               {}
func (*PrintExpression) expressionNode()              {}
func (*ListExpression) expressionNode()               {}
func (*SpreadExpression) expressionNode()             {}
func (*ReferenceExpression) expressionNode()          {}
func (*ErrorControlExpression) expressionNode()       {}
func (*AnonymousClassExpression) expressionNode()     {}
func (*FunctionExpression) expressionNode()           {}
func (*ArrowFunctionExpression) expressionNode()      {}
func (*FirstClassCallableExpression) expressionNode() {}
func (*SequenceExpression) expressionNode()           {}

// NumberLiteral is an integer or float literal; IsFloat mirrors the
// tokenizer's payload flag, Raw keeps the exact source text (including
// separators) for lossless re-emission by a downstream generator.
type NumberLiteral struct {
	Base
	Raw     string
	IsFloat bool
}

func (n *NumberLiteral) GetChildren() []Node { return nil }

// StringLiteral is an opaque single/double/backtick-quoted string: Raw
// is the source text including quotes, Quote is the quote character.
type StringLiteral struct {
	Base
	Raw   string
	Quote byte
}

func (n *StringLiteral) GetChildren() []Node { return nil }

// TemplateStringExpression models an interpolated string as mixed
// parts; unused by the default opaque-string tokenizer path (see
// SPEC_FULL §7) but kept so a caller that opts into lexer-level
// interpolation has somewhere to put the result.
type TemplateStringExpression struct {
	Base
	Parts []Node // each element is *StringLiteral (literal run) or Expression
}

func (n *TemplateStringExpression) GetChildren() []Node { return n.Parts }

type BooleanLiteral struct {
	Base
	Value bool
}

func (n *BooleanLiteral) GetChildren() []Node { return nil }

type NullLiteral struct{ Base }

func (n *NullLiteral) GetChildren() []Node { return nil }

// Variable is `$name`; Name may itself be an Expression for
// variable-variables (`$$x`, `${expr}`).
type Variable struct {
	Base
	Name     string
	NameExpr Expression // non-nil only for variable-variables
}

func (n *Variable) GetChildren() []Node {
	if n.NameExpr != nil {
		return []Node{n.NameExpr}
	}
	return nil
}

// Qualification classifies a NameExpression's leading separator.
type Qualification int

const (
	Unqualified Qualification = iota
	Qualified                 // Foo\Bar
	FullyQualified            // \Foo\Bar
	RelativeNS                // namespace\Foo\Bar
)

type NameExpression struct {
	Base
	Parts      []string
	Qualified  Qualification
}

func (n *NameExpression) GetChildren() []Node { return nil }

type ArrayElement struct {
	Base
	Key    Expression // nil if positional
	Value  Expression
	ByRef  bool
	Spread bool
}

func (n *ArrayElement) GetChildren() []Node {
	return childNodes(asNode(n.Key), asNode(n.Value))
}

type ArrayExpression struct {
	Base
	Elements []*ArrayElement
	LongForm bool // true for array(...), false for [...]
}

func (n *ArrayExpression) GetChildren() []Node {
	out := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		out[i] = e
	}
	return out
}

// ArrayPattern is the destructuring target of an assignment whose left
// side was written as an array literal, e.g. `[$a, $b] = $pair;`. It is
// produced by rewriting an ArrayExpression in assignment position, not
// by the array-literal grammar directly; elements carry no keys.
type ArrayPattern struct {
	Base
	Elements []*ArrayElement // never nil: the array-literal grammar has no skipped slots
	LongForm bool            // true if written as array(...)
}

func (n *ArrayPattern) GetChildren() []Node {
	out := make([]Node, 0, len(n.Elements))
	for _, e := range n.Elements {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

type UnaryExpression struct {
	Base
	Operator string
	Operand  Expression
}

func (n *UnaryExpression) GetChildren() []Node { return []Node{n.Operand} }

// UpdateExpression is ++/-- in prefix or postfix position.
type UpdateExpression struct {
	Base
	Operator string
	Operand  Expression
	Prefix   bool
}

func (n *UpdateExpression) GetChildren() []Node { return []Node{n.Operand} }

type BinaryExpression struct {
	Base
	Operator string
	Left     Expression
	Right    Expression
}

func (n *BinaryExpression) GetChildren() []Node { return []Node{n.Left, n.Right} }

// LogicalExpression is &&/||/and/or/xor; kept distinct from
// BinaryExpression so callers can special-case short-circuit operators
// without string-comparing Operator.
type LogicalExpression struct {
	Base
	Operator string
	Left     Expression
	Right    Expression
}

func (n *LogicalExpression) GetChildren() []Node { return []Node{n.Left, n.Right} }

// ConditionalExpression is the ternary `cond ? cons : alt`; Consequent
// is nil for the short form `cond ?: alt`.
type ConditionalExpression struct {
	Base
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (n *ConditionalExpression) GetChildren() []Node {
	return childNodes(asNode(n.Test), asNode(n.Consequent), asNode(n.Alternate))
}

type AssignmentExpression struct {
	Base
	Operator string
	Left     Expression
	Right    Expression
	ByRef    bool
}

func (n *AssignmentExpression) GetChildren() []Node { return []Node{n.Left, n.Right} }

type CastExpression struct {
	Base
	CastType string // normalized: int, float, string, bool, array, object, unset
	Operand  Expression
}

func (n *CastExpression) GetChildren() []Node { return []Node{n.Operand} }

type Argument struct {
	Base
	Name   string // "" if positional
	Value  Expression
	Spread bool
}

func (n *Argument) GetChildren() []Node { return []Node{n.Value} }

type CallExpression struct {
	Base
	Callee    Expression
	Arguments []*Argument
}

func (n *CallExpression) GetChildren() []Node {
	out := []Node{n.Callee}
	for _, a := range n.Arguments {
		out = append(out, a)
	}
	return out
}

type MemberExpression struct {
	Base
	Object   Expression
	Property Expression // NameExpression for `->prop`, any Expression for `[expr]`/`->{expr}`
	Computed bool
	Nullsafe bool
}

func (n *MemberExpression) GetChildren() []Node { return []Node{n.Object, n.Property} }

type StaticMemberExpression struct {
	Base
	Class    Expression // NameExpression or arbitrary Expression (`(new C)::m`)
	Property Expression
	Computed bool
}

func (n *StaticMemberExpression) GetChildren() []Node { return []Node{n.Class, n.Property} }

type NewExpression struct {
	Base
	Callee    Expression // NameExpression, Expression, or *AnonymousClassExpression
	Arguments []*Argument
}

func (n *NewExpression) GetChildren() []Node {
	out := []Node{n.Callee}
	for _, a := range n.Arguments {
		out = append(out, a)
	}
	return out
}

type CloneExpression struct {
	Base
	Operand Expression
}

func (n *CloneExpression) GetChildren() []Node { return []Node{n.Operand} }

type YieldExpression struct {
	Base
	Key   Expression
	Value Expression
	From  bool
}

func (n *YieldExpression) GetChildren() []Node {
	return childNodes(asNode(n.Key), asNode(n.Value))
}

type MatchArm struct {
	Base
	Conditions []Expression // nil means `default`
	Body       Expression
}

func (n *MatchArm) GetChildren() []Node {
	out := expressions(n.Conditions)
	out = append(out, n.Body)
	return out
}

type MatchExpression struct {
	Base
	Subject Expression
	Arms    []*MatchArm
}

func (n *MatchExpression) GetChildren() []Node {
	out := []Node{n.Subject}
	for _, a := range n.Arms {
		out = append(out, a)
	}
	return out
}

type IncludeExpression struct {
	Base
	IncludeKind string // include, include_once, require, require_once
	Argument    Expression
}

func (n *IncludeExpression) GetChildren() []Node { return []Node{n.Argument} }

type IssetExpression struct {
	Base
	Arguments []Expression
}

func (n *IssetExpression) GetChildren() []Node { return expressions(n.Arguments) }

type EmptyExpression struct {
	Base
	Argument Expression
}

func (n *EmptyExpression) GetChildren() []Node { return []Node{n.Argument} }

type EvalExpression struct {
	Base
	Argument Expression
}

func (n *EvalExpression) GetChildren() []Node { return []Node{n.Argument} }

type ExitExpression struct {
	Base
	Argument Expression // nil if bare `exit;`
}

func (n *ExitExpression) GetChildren() []Node { return childNodes(asNode(n.Argument)) }

type PrintExpression struct {
	Base
	Argument Expression
}

func (n *PrintExpression) GetChildren() []Node { return []Node{n.Argument} }

type ListExpression struct {
	Base
	Elements []*ArrayElement // elements may be nil (skipped slot: list($a, , $c))
}

func (n *ListExpression) GetChildren() []Node {
	out := make([]Node, 0, len(n.Elements))
	for _, e := range n.Elements {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

type SpreadExpression struct {
	Base
	Argument Expression
}

func (n *SpreadExpression) GetChildren() []Node { return []Node{n.Argument} }

type ReferenceExpression struct {
	Base
	Argument Expression
}

func (n *ReferenceExpression) GetChildren() []Node { return []Node{n.Argument} }

type ErrorControlExpression struct {
	Base
	Argument Expression
}

func (n *ErrorControlExpression) GetChildren() []Node { return []Node{n.Argument} }

type AnonymousClassExpression struct {
	Base
	Arguments  []*Argument
	SuperClass *NameExpression
	Interfaces []*NameExpression
	Body       []Node // ClassMember variants
}

func (n *AnonymousClassExpression) GetChildren() []Node {
	var out []Node
	for _, a := range n.Arguments {
		out = append(out, a)
	}
	out = append(out, n.Body...)
	return out
}

type ClosureUse struct {
	Base
	Variable  *Variable
	ByReference bool
}

func (n *ClosureUse) GetChildren() []Node { return []Node{n.Variable} }

type FunctionExpression struct {
	Base
	Parameters       []*Parameter
	Uses             []*ClosureUse
	ReturnType       Node // Type or nil
	Body             *BlockStatement
	ReturnsReference bool
	Static           bool
}

func (n *FunctionExpression) GetChildren() []Node {
	var out []Node
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	for _, u := range n.Uses {
		out = append(out, u)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	return out
}

type ArrowFunctionExpression struct {
	Base
	Parameters       []*Parameter
	ReturnType       Node
	Body             Expression
	ReturnsReference bool
	Static           bool
}

func (n *ArrowFunctionExpression) GetChildren() []Node {
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

// FirstClassCallableExpression models `foo(...)` (PHP 8.1).
type FirstClassCallableExpression struct {
	Base
	Callee Expression
}

func (n *FirstClassCallableExpression) GetChildren() []Node { return []Node{n.Callee} }

// SequenceExpression is the comma-joined init/update list in a
// C-style `for`; it is only ever constructed by the for-statement
// parser, never by the general expression grammar.
type SequenceExpression struct {
	Base
	Expressions []Expression
}

func (n *SequenceExpression) GetChildren() []Node { return expressions(n.Expressions) }

// Parameter is shared by function/method/closure/arrow-function
// declarations.
type Parameter struct {
	Base
	Name       string
	Type       Node // Type or nil
	ByRef      bool
	Variadic   bool
	Default    Expression
	Promoted   []string // visibility modifiers; empty if not promoted
	Readonly   bool
	Attributes []*AttributeGroup
}

func (n *Parameter) GetChildren() []Node {
	var out []Node
	if n.Type != nil {
		out = append(out, n.Type)
	}
	if n.Default != nil {
		out = append(out, n.Default)
	}
	return out
}

// AttributeGroup is one `#[Name(args), Name2(args)]` group.
type AttributeGroup struct {
	Base
	Raw string // unparsed attribute body; downstream tools reparse on demand
}

func (n *AttributeGroup) GetChildren() []Node { return nil }

func asNode(e Expression) Node {
	if e == nil {
		return nil
	}
	return e
}
