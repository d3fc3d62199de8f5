package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/lexer"
	"github.com/wudi/phpfront/perr"
	"github.com/wudi/phpfront/token"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.Tokenize(src, lexer.DefaultOptions())
	require.True(t, toks.IsOk())
	res := Parse(toks.Value, DefaultOptions())
	require.True(t, res.IsOk(), "unexpected parse error: %v", res.Err)
	return res.Value
}

func firstExprStmt(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	require.NotEmpty(t, prog.Statements)
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok, "expected ExpressionStatement, got %T", prog.Statements[0])
	return es.Expr
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	// '*' binds tighter than '+': 1 + 2 * 3 parses as 1 + (2 * 3).
	prog := parseSource(t, `<?php 1 + 2 * 3;`)
	expr := firstExprStmt(t, prog)
	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok, "expected BinaryExpression, got %T", expr)
	assert.Equal(t, "+", bin.Operator)
	rhs, ok := bin.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Operator)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog := parseSource(t, `<?php $a = $b = 1;`)
	expr := firstExprStmt(t, prog)
	assign, ok := expr.(*ast.AssignmentExpression)
	require.True(t, ok, "expected AssignmentExpression, got %T", expr)
	assert.Equal(t, "=", assign.Operator)
	inner, ok := assign.Right.(*ast.AssignmentExpression)
	require.True(t, ok, "right side of outer assignment should itself be an assignment")
	assert.Equal(t, "=", inner.Operator)
}

func TestParse_ByRefAssignment(t *testing.T) {
	prog := parseSource(t, `<?php $a =& $b;`)
	expr := firstExprStmt(t, prog)
	assign, ok := expr.(*ast.AssignmentExpression)
	require.True(t, ok)
	assert.True(t, assign.ByRef)
}

func TestParse_TernaryAndShortTernary(t *testing.T) {
	prog := parseSource(t, `<?php $a ? $b : $c; $x ?: $y;`)
	require.Len(t, prog.Statements, 2)

	es0 := prog.Statements[0].(*ast.ExpressionStatement)
	cond, ok := es0.Expr.(*ast.ConditionalExpression)
	require.True(t, ok)
	assert.NotNil(t, cond.Consequent)

	es1 := prog.Statements[1].(*ast.ExpressionStatement)
	short, ok := es1.Expr.(*ast.ConditionalExpression)
	require.True(t, ok)
	assert.Nil(t, short.Consequent)
}

func TestParse_NullCoalesceIsRightAssociative(t *testing.T) {
	prog := parseSource(t, `<?php $a ?? $b ?? $c;`)
	expr := firstExprStmt(t, prog)
	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "??", bin.Operator)
	_, ok = bin.Right.(*ast.BinaryExpression)
	assert.True(t, ok, "?? should nest on the right")
}

func TestParse_ExponentiationRightAssocAndUnaryInteraction(t *testing.T) {
	// 2 ** 3 ** 2 == 2 ** (3 ** 2) -- right associative
	prog := parseSource(t, `<?php 2 ** 3 ** 2;`)
	expr := firstExprStmt(t, prog)
	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "**", bin.Operator)
	_, ok = bin.Right.(*ast.BinaryExpression)
	assert.True(t, ok, "** should nest on the right")

	// -2 ** 2 == -(2 ** 2): unary minus applies to the whole power
	// expression, not just its base.
	prog2 := parseSource(t, `<?php -2 ** 2;`)
	expr2 := firstExprStmt(t, prog2)
	unary, ok := expr2.(*ast.UnaryExpression)
	require.True(t, ok, "expected UnaryExpression wrapping the power, got %T", expr2)
	assert.Equal(t, "-", unary.Operator)
	_, ok = unary.Operand.(*ast.BinaryExpression)
	assert.True(t, ok, "unary operand should be the ** expression")
}

func TestParse_InstanceofBindsTighterThanEquality(t *testing.T) {
	prog := parseSource(t, `<?php $a instanceof Foo == true;`)
	expr := firstExprStmt(t, prog)
	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "==", bin.Operator)
	lhs, ok := bin.Left.(*ast.BinaryExpression)
	require.True(t, ok, "instanceof should bind tighter than ==, got %T", bin.Left)
	assert.Equal(t, "instanceof", lhs.Operator)
}

func TestParse_CastVsParenDisambiguation(t *testing.T) {
	prog := parseSource(t, `<?php (int)$x; (foo)($x);`)
	require.Len(t, prog.Statements, 2)

	es0 := prog.Statements[0].(*ast.ExpressionStatement)
	cast, ok := es0.Expr.(*ast.CastExpression)
	require.True(t, ok, "expected CastExpression, got %T", es0.Expr)
	assert.Equal(t, "int", cast.CastType)

	es1 := prog.Statements[1].(*ast.ExpressionStatement)
	_, ok = es1.Expr.(*ast.CallExpression)
	assert.True(t, ok, "(foo)($x) is a call through a parenthesized name, not a cast")
}

func TestParse_NamedArgumentsAndSpread(t *testing.T) {
	prog := parseSource(t, `<?php foo(a: 1, ...$rest);`)
	expr := firstExprStmt(t, prog)
	call, ok := expr.(*ast.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)
	assert.Equal(t, "a", call.Arguments[0].Name)
	assert.True(t, call.Arguments[1].Spread)
}

func TestParse_MatchExpression(t *testing.T) {
	prog := parseSource(t, `<?php match($x) { 1, 2 => "a", default => "b" };`)
	expr := firstExprStmt(t, prog)
	m, ok := expr.(*ast.MatchExpression)
	require.True(t, ok, "expected MatchExpression, got %T", expr)
	require.Len(t, m.Arms, 2)
	assert.Len(t, m.Arms[0].Conditions, 2)
	assert.Nil(t, m.Arms[1].Conditions, "default arm carries no conditions")
}

func TestParse_AlternativeIfSyntax(t *testing.T) {
	prog := parseSource(t, `<?php if ($a): echo 1; elseif ($b): echo 2; else: echo 3; endif;`)
	require.Len(t, prog.Statements, 1)
	ifs, ok := prog.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.True(t, ifs.IsAlternative)
	require.Len(t, ifs.ElseIfClauses, 1)
	assert.NotNil(t, ifs.Alternate)
}

func TestParse_ForeachWithListDestructure(t *testing.T) {
	prog := parseSource(t, `<?php foreach ($pairs as [$k, $v]) { echo $k; }`)
	require.Len(t, prog.Statements, 1)
	_, ok := prog.Statements[0].(*ast.ForeachStatement)
	assert.True(t, ok)
}

func TestParse_AnonymousClass(t *testing.T) {
	prog := parseSource(t, `<?php $x = new class(1) extends Base implements Iface { public int $n; };`)
	expr := firstExprStmt(t, prog)
	assign, ok := expr.(*ast.AssignmentExpression)
	require.True(t, ok)
	newExpr, ok := assign.Right.(*ast.NewExpression)
	require.True(t, ok, "expected NewExpression, got %T", assign.Right)
	anon, ok := newExpr.Callee.(*ast.AnonymousClassExpression)
	require.True(t, ok, "expected AnonymousClassExpression callee, got %T", newExpr.Callee)
	assert.NotNil(t, anon.SuperClass)
	assert.Len(t, anon.Interfaces, 1)
}

func TestParse_ArrowFunctionAndClosureUse(t *testing.T) {
	prog := parseSource(t, `<?php $f = fn($x) => $x + 1; $g = function($x) use (&$y) { return $x; };`)
	require.Len(t, prog.Statements, 2)

	a0 := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.AssignmentExpression)
	_, ok := a0.Right.(*ast.ArrowFunctionExpression)
	assert.True(t, ok)

	a1 := prog.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.AssignmentExpression)
	closure, ok := a1.Right.(*ast.FunctionExpression)
	require.True(t, ok, "expected FunctionExpression (closure), got %T", a1.Right)
	require.Len(t, closure.Uses, 1)
	assert.True(t, closure.Uses[0].ByReference)
}

func TestParse_FirstClassCallable(t *testing.T) {
	prog := parseSource(t, `<?php strlen(...);`)
	expr := firstExprStmt(t, prog)
	_, ok := expr.(*ast.FirstClassCallableExpression)
	assert.True(t, ok, "expected FirstClassCallableExpression, got %T", expr)
}

func TestParse_EnumWithBackedCases(t *testing.T) {
	prog := parseSource(t, `<?php enum Suit: string { case Hearts = 'H'; case Spades = 'S'; }`)
	require.Len(t, prog.Statements, 1)
	decl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.EnumDeclaration)
	assert.Equal(t, "string", decl.ScalarType)
	assert.Len(t, decl.Body, 2)
}

func TestParse_ConstructorPromotedProperties(t *testing.T) {
	prog := parseSource(t, `<?php class Point { public function __construct(private readonly int $x) {} }`)
	decl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.ClassDeclaration)
	var ctor *ast.MethodDeclaration
	for _, m := range decl.Body {
		if md, ok := m.(*ast.MethodDeclaration); ok && md.Name == "__construct" {
			ctor = md
		}
	}
	require.NotNil(t, ctor)
	require.Len(t, ctor.Parameters, 1)
	assert.Contains(t, ctor.Parameters[0].Promoted, "private")
	assert.True(t, ctor.Parameters[0].Readonly)
}

func TestParse_AttributeGroupOnClassDeclaration(t *testing.T) {
	prog := parseSource(t, `<?php #[Attribute] class Foo {}`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.ClassDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Attributes, 1)
	assert.Contains(t, decl.Attributes[0].Raw, "Attribute")
}

func TestParse_AttributeGroupOnFunctionDeclaration(t *testing.T) {
	prog := parseSource(t, `<?php #[Deprecated] function foo() {}`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.FunctionDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Attributes, 1)
}

func TestParse_UnionAndIntersectionTypes(t *testing.T) {
	prog := parseSource(t, `<?php function f(int|string $a, Countable&Iterator $b) {}`)
	decl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.FunctionDeclaration)
	require.Len(t, decl.Parameters, 2)
	_, ok := decl.Parameters[0].Type.(*ast.UnionType)
	assert.True(t, ok, "expected UnionType, got %T", decl.Parameters[0].Type)
	_, ok = decl.Parameters[1].Type.(*ast.IntersectionType)
	assert.True(t, ok, "expected IntersectionType, got %T", decl.Parameters[1].Type)
}

func TestParse_TraitUseWithAdaptation(t *testing.T) {
	prog := parseSource(t, `<?php class C { use A, B { A::foo insteadof B; B::bar as baz; } }`)
	decl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.ClassDeclaration)
	var use *ast.TraitUse
	for _, m := range decl.Body {
		if tu, ok := m.(*ast.TraitUse); ok {
			use = tu
		}
	}
	require.NotNil(t, use)
	assert.Len(t, use.Traits, 2)
	assert.Len(t, use.Adaptations, 2)
}

func TestParse_ErrorRecoverySkipsMalformedStatement(t *testing.T) {
	toks := lexer.Tokenize(`<?php $a = ; echo 1;`, lexer.DefaultOptions())
	require.True(t, toks.IsOk())
	p := New(toks.Value, Options{PHPVersion: "8.0", ErrorRecovery: true})
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	assert.True(t, p.Errors().HasErrors())
	var sawEcho bool
	for _, s := range prog.Statements {
		if echo, ok := s.(*ast.EchoStatement); ok {
			require.Len(t, echo.Arguments, 1)
			sawEcho = true
		}
	}
	assert.True(t, sawEcho, "recovery should let parsing continue to the echo statement")
}

func TestParse_LabeledStatementAndGoto(t *testing.T) {
	prog := parseSource(t, `<?php goto end; echo 1; end: echo 2;`)
	require.Len(t, prog.Statements, 3)
	_, ok := prog.Statements[0].(*ast.GotoStatement)
	assert.True(t, ok)
	label, ok := prog.Statements[2].(*ast.LabeledStatement)
	require.True(t, ok)
	assert.Equal(t, "end", label.Label)
	assert.NotNil(t, label.Body)
}

func TestParse_PropertyHookShortForm(t *testing.T) {
	prog := parseSource(t, `<?php class C { public int $x { get => $this->x * 2; } }`)
	decl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.ClassDeclaration)
	var prop *ast.PropertyDeclaration
	for _, m := range decl.Body {
		if pd, ok := m.(*ast.PropertyDeclaration); ok {
			prop = pd
		}
	}
	require.NotNil(t, prop)
	require.Len(t, prop.Hooks, 1)
	assert.Equal(t, "get", prop.Hooks[0].Name)
}

func parseExpectError(t *testing.T, src string) *perr.Error {
	t.Helper()
	toks := lexer.Tokenize(src, lexer.DefaultOptions())
	require.True(t, toks.IsOk())
	res := Parse(toks.Value, Options{PHPVersion: "8.0", ErrorRecovery: false})
	require.False(t, res.IsOk(), "expected a parse error for %q", src)
	require.NotNil(t, res.Err)
	return res.Err
}

func TestParse_TryWithoutCatchOrFinallyIsAnError(t *testing.T) {
	err := parseExpectError(t, `<?php try { f(); }`)
	assert.Contains(t, err.Message, "catch")
}

func TestParse_TryWithOnlyFinallyIsFine(t *testing.T) {
	prog := parseSource(t, `<?php try { f(); } finally { g(); }`)
	try := prog.Statements[0].(*ast.TryStatement)
	assert.Empty(t, try.Handlers)
	assert.NotNil(t, try.Finalizer)
}

func TestParse_EnumBackingTypeMustBeIntOrString(t *testing.T) {
	err := parseExpectError(t, `<?php enum Foo: bogus {}`)
	assert.Contains(t, err.Message, "backing type")
}

func TestParse_EnumBackingTypeIntIsAccepted(t *testing.T) {
	prog := parseSource(t, `<?php enum Foo: int { case Bar = 1; }`)
	decl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.EnumDeclaration)
	assert.Equal(t, "int", decl.ScalarType)
}

func TestParse_ArrayDestructuringAssignment(t *testing.T) {
	prog := parseSource(t, `<?php [$a, $b] = $pair;`)
	assign := firstExprStmt(t, prog).(*ast.AssignmentExpression)
	pattern, ok := assign.Left.(*ast.ArrayPattern)
	require.True(t, ok, "expected ArrayPattern, got %T", assign.Left)
	require.Len(t, pattern.Elements, 2)
	assert.Equal(t, "a", pattern.Elements[0].Value.(*ast.Variable).Name)
	assert.Equal(t, "b", pattern.Elements[1].Value.(*ast.Variable).Name)
}

func TestParse_NestedArrayDestructuringAssignment(t *testing.T) {
	prog := parseSource(t, `<?php [[$a, $b], $c] = $nested;`)
	assign := firstExprStmt(t, prog).(*ast.AssignmentExpression)
	outer := assign.Left.(*ast.ArrayPattern)
	require.Len(t, outer.Elements, 2)
	inner, ok := outer.Elements[0].Value.(*ast.ArrayPattern)
	require.True(t, ok, "nested destructuring target should itself be rewritten, got %T", outer.Elements[0].Value)
	require.Len(t, inner.Elements, 2)
}

func TestParse_ArrayDestructuringWithKeyIsAnError(t *testing.T) {
	err := parseExpectError(t, `<?php ['k' => $v] = $arr;`)
	assert.Contains(t, err.Message, "key")
}

func TestFilter_DropsTrivia(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Whitespace},
		{Kind: token.Variable},
		{Kind: token.Comment},
		{Kind: token.Semicolon},
		{Kind: token.DocComment},
		{Kind: token.EOF},
	}
	filtered := Filter(toks)
	var kindsOut []token.Kind
	for _, tk := range filtered {
		kindsOut = append(kindsOut, tk.Kind)
	}
	assert.Equal(t, []token.Kind{token.Variable, token.Semicolon, token.EOF}, kindsOut)
}
