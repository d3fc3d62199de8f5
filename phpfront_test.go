package phpfront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpfront/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	res := Parse(src)
	require.True(t, res.IsOk(), "unexpected parse error: %v", res.Err)
	return res.Value
}

// TestScenario_S1 covers operator-precedence nesting for `1 + 2 * 3`
// inside an assignment.
func TestScenario_S1(t *testing.T) {
	prog := mustParse(t, `<?php $x = 1 + 2 * 3;`)
	require.Len(t, prog.Statements, 1)
	es := prog.Statements[0].(*ast.ExpressionStatement)
	assign := es.Expr.(*ast.AssignmentExpression)
	assert.Equal(t, "=", assign.Operator)
	assert.Equal(t, "x", assign.Left.(*ast.Variable).Name)

	outer := assign.Right.(*ast.BinaryExpression)
	assert.Equal(t, "+", outer.Operator)
	assert.Equal(t, "1", outer.Left.(*ast.NumberLiteral).Raw)
	inner := outer.Right.(*ast.BinaryExpression)
	assert.Equal(t, "*", inner.Operator)
	assert.Equal(t, "2", inner.Left.(*ast.NumberLiteral).Raw)
	assert.Equal(t, "3", inner.Right.(*ast.NumberLiteral).Raw)
}

// TestScenario_S2 covers if/elseif/else chaining.
func TestScenario_S2(t *testing.T) {
	prog := mustParse(t, `<?php if ($x > 0) echo "pos"; elseif ($x < 0) echo "neg"; else echo "z";`)
	require.Len(t, prog.Statements, 1)
	ifs := prog.Statements[0].(*ast.IfStatement)
	require.Len(t, ifs.ElseIfClauses, 1)
	_, ok := ifs.Alternate.(*ast.EchoStatement)
	assert.True(t, ok, "else branch should be an EchoStatement, got %T", ifs.Alternate)
}

// TestScenario_S3 covers foreach with a key, by-ref value, and an
// empty block body.
func TestScenario_S3(t *testing.T) {
	prog := mustParse(t, `<?php foreach ($a as $k => &$v) {}`)
	require.Len(t, prog.Statements, 1)
	fe := prog.Statements[0].(*ast.ForeachStatement)
	assert.NotNil(t, fe.Key)
	assert.True(t, fe.ByRef)
	body := fe.Body.(*ast.BlockStatement)
	assert.Empty(t, body.Statements)
}

// TestScenario_S4 covers a multi-type catch plus a finally block.
func TestScenario_S4(t *testing.T) {
	prog := mustParse(t, `<?php try { f(); } catch (A | B $e) {} finally {}`)
	require.Len(t, prog.Statements, 1)
	try := prog.Statements[0].(*ast.TryStatement)
	require.Len(t, try.Handlers, 1)
	assert.Len(t, try.Handlers[0].Types, 2)
	assert.NotNil(t, try.Finalizer)
}

// TestScenario_S5 covers namespace + use + a class with inheritance,
// multiple interfaces, a nullable-typed property, and a variadic
// parameter with a void return type.
func TestScenario_S5(t *testing.T) {
	src := `<?php namespace Foo\Bar; use X\Y as Z; class C extends B implements I1, I2 { public ?int $n = 0; public function m(int ...$xs): void {} }`
	prog := mustParse(t, src)
	require.Len(t, prog.Statements, 1)

	nsDecl := prog.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.NamespaceDeclaration)
	assert.Equal(t, []string{"Foo", "Bar"}, nsDecl.Parts)
	require.Len(t, nsDecl.Statements, 2)

	useDecl := nsDecl.Statements[0].(*ast.DeclarationStatement).Decl.(*ast.UseDeclaration)
	require.Len(t, useDecl.Items, 1)
	assert.Equal(t, []string{"X", "Y"}, useDecl.Items[0].Name.Parts)
	assert.Equal(t, "Z", useDecl.Items[0].Alias)

	classDecl := nsDecl.Statements[1].(*ast.DeclarationStatement).Decl.(*ast.ClassDeclaration)
	assert.Equal(t, []string{"B"}, classDecl.SuperClass.Parts)
	assert.Len(t, classDecl.Interfaces, 2)

	var prop *ast.PropertyDeclaration
	var method *ast.MethodDeclaration
	for _, m := range classDecl.Body {
		switch v := m.(type) {
		case *ast.PropertyDeclaration:
			prop = v
		case *ast.MethodDeclaration:
			method = v
		}
	}
	require.NotNil(t, prop)
	nullable, ok := prop.Type.(*ast.NullableType)
	require.True(t, ok, "expected NullableType, got %T", prop.Type)
	simple, ok := nullable.Inner.(*ast.SimpleType)
	require.True(t, ok)
	assert.Equal(t, []string{"int"}, simple.Name.Parts)

	require.NotNil(t, method)
	require.NotEmpty(t, method.Parameters)
	last := method.Parameters[len(method.Parameters)-1]
	assert.True(t, last.Variadic)
	retType, ok := method.ReturnType.(*ast.SimpleType)
	require.True(t, ok)
	assert.Equal(t, []string{"void"}, retType.Name.Parts)
}

// TestScenario_S6 covers a match expression with a multi-condition arm
// and a default arm.
func TestScenario_S6(t *testing.T) {
	prog := mustParse(t, `<?php $r = match($x) { 1, 2 => 'a', default => 'b' };`)
	es := prog.Statements[0].(*ast.ExpressionStatement)
	assign := es.Expr.(*ast.AssignmentExpression)
	m := assign.Right.(*ast.MatchExpression)
	require.Len(t, m.Arms, 2)
	assert.Len(t, m.Arms[0].Conditions, 2)
	assert.Nil(t, m.Arms[1].Conditions)
}

func TestTokenize_NeverFails(t *testing.T) {
	res := Tokenize("<?php $x = ")
	assert.True(t, res.IsOk(), "tokenizing never produces an error result")
	assert.NotEmpty(t, res.Value)
}
