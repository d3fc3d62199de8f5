// Package ast defines the PHP abstract syntax tree: a closed set of
// tagged node variants, each carrying a source location.
package ast

import "fmt"

// Kind discriminates AST node variants. Downstream code switches on
// Kind (or type-switches on the Node interface); no reflection is
// needed for normal dispatch.
type Kind int

const (
	KProgram Kind = iota

	// statements
	KExpressionStatement
	KBlockStatement
	KIfStatement
	KElseIfClause
	KWhileStatement
	KDoWhileStatement
	KForStatement
	KForeachStatement
	KSwitchStatement
	KSwitchCase
	KBreakStatement
	KContinueStatement
	KReturnStatement
	KThrowStatement
	KTryStatement
	KCatchClause
	KEchoStatement
	KGlobalStatement
	KStaticStatement
	KUnsetStatement
	KGotoStatement
	KLabeledStatement
	KDeclareStatement
	KDeclareDirective
	KStaticVarDeclarator
	KInlineHTMLStatement
	KDeclarationStatement

	// declarations
	KFunctionDeclaration
	KClassDeclaration
	KInterfaceDeclaration
	KTraitDeclaration
	KEnumDeclaration
	KNamespaceDeclaration
	KUseDeclaration
	KConstDeclaration

	// class/trait/enum members
	KMethodDeclaration
	KPropertyDeclaration
	KClassConstDeclaration
	KTraitUse
	KTraitAdaptationAlias
	KTraitAdaptationPrecedence
	KEnumCase
	KPropertyHook

	// expressions
	KNumberLiteral
	KStringLiteral
	KTemplateStringExpression
	KBooleanLiteral
	KNullLiteral
	KVariable
	KNameExpression
	KArrayExpression
	KArrayElement
	KArrayPattern
	KUnaryExpression
	KUpdateExpression
	KBinaryExpression
	KLogicalExpression
	KConditionalExpression
	KAssignmentExpression
	KCastExpression
	KCallExpression
	KMemberExpression
	KStaticMemberExpression
	KNewExpression
	KCloneExpression
	KYieldExpression
	KMatchExpression
	KMatchArm
	KIncludeExpression
	KIssetExpression
	KEmptyExpression
	KEvalExpression
	KExitExpression
	KPrintExpression
	KListExpression
	KSpreadExpression
	KReferenceExpression
	KErrorControlExpression
	KAnonymousClassExpression
	KFunctionExpression
	KClosureUse
	KArrowFunctionExpression
	KFirstClassCallableExpression
	KAttributeGroup
	KArgument
	KParameter
	KSequenceExpression

	// types
	KSimpleType
	KNullableType
	KUnionType
	KIntersectionType
	KArrayType
	KCallableType
)

var kindNames = [...]string{
	"Program",
	"ExpressionStatement", "BlockStatement", "IfStatement", "ElseIfClause",
	"WhileStatement", "DoWhileStatement", "ForStatement", "ForeachStatement",
	"SwitchStatement", "SwitchCase", "BreakStatement", "ContinueStatement",
	"ReturnStatement", "ThrowStatement", "TryStatement", "CatchClause",
	"EchoStatement", "GlobalStatement", "StaticStatement", "UnsetStatement",
	"GotoStatement", "LabeledStatement", "DeclareStatement", "DeclareDirective",
	"StaticVarDeclarator", "InlineHTMLStatement",
	"DeclarationStatement",
	"FunctionDeclaration", "ClassDeclaration", "InterfaceDeclaration",
	"TraitDeclaration", "EnumDeclaration", "NamespaceDeclaration",
	"UseDeclaration", "ConstDeclaration",
	"MethodDeclaration", "PropertyDeclaration", "ClassConstDeclaration",
	"TraitUse", "TraitAdaptationAlias", "TraitAdaptationPrecedence",
	"EnumCase", "PropertyHook",
	"NumberLiteral", "StringLiteral", "TemplateStringExpression", "BooleanLiteral",
	"NullLiteral", "Variable", "NameExpression", "ArrayExpression", "ArrayElement",
	"ArrayPattern",
	"UnaryExpression", "UpdateExpression", "BinaryExpression", "LogicalExpression",
	"ConditionalExpression", "AssignmentExpression", "CastExpression",
	"CallExpression", "MemberExpression", "StaticMemberExpression",
	"NewExpression", "CloneExpression", "YieldExpression", "MatchExpression",
	"MatchArm", "IncludeExpression", "IssetExpression", "EmptyExpression",
	"EvalExpression", "ExitExpression", "PrintExpression", "ListExpression",
	"SpreadExpression", "ReferenceExpression", "ErrorControlExpression",
	"AnonymousClassExpression", "FunctionExpression", "ClosureUse",
	"ArrowFunctionExpression", "FirstClassCallableExpression", "AttributeGroup",
	"Argument", "Parameter", "SequenceExpression",
	"SimpleType", "NullableType", "UnionType", "IntersectionType", "ArrayType",
	"CallableType",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
