package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpfront/ast"
	"github.com/wudi/phpfront/lexer"
	"github.com/wudi/phpfront/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.Tokenize(src, lexer.DefaultOptions())
	require.True(t, toks.IsOk())
	res := parser.Parse(toks.Value, parser.DefaultOptions())
	require.True(t, res.IsOk(), "unexpected parse error: %v", res.Err)
	return res.Value
}

type countingVisitor struct {
	kinds []ast.Kind
}

func (c *countingVisitor) Visit(node ast.Node) bool {
	c.kinds = append(c.kinds, node.GetKind())
	return true
}

func TestVisitor_VisitsWholeTree(t *testing.T) {
	prog := mustParse(t, `<?php $a = 1;`)
	v := &countingVisitor{}
	ast.Walk(v, prog)
	assert.Equal(t, ast.KProgram, v.kinds[0])
	assert.Contains(t, v.kinds, ast.KAssignmentExpression)
	assert.Contains(t, v.kinds, ast.KVariable)
	assert.Contains(t, v.kinds, ast.KNumberLiteral)
}

type pruningVisitor struct {
	visited []ast.Kind
}

func (p *pruningVisitor) Visit(node ast.Node) bool {
	p.visited = append(p.visited, node.GetKind())
	// never descend past an ExpressionStatement
	return node.GetKind() != ast.KExpressionStatement
}

func TestVisitor_FalseReturnPrunesChildren(t *testing.T) {
	prog := mustParse(t, `<?php $a + $b;`)
	v := &pruningVisitor{}
	ast.Walk(v, prog)
	assert.NotContains(t, v.visited, ast.KVariable, "pruned subtree should not be visited")
	assert.Contains(t, v.visited, ast.KExpressionStatement)
}

func TestVisitor_NilNodeIsNoop(t *testing.T) {
	v := &countingVisitor{}
	ast.Walk(v, nil)
	assert.Empty(t, v.kinds)
}

func TestKind_StringRoundTrips(t *testing.T) {
	assert.Equal(t, "Program", ast.KProgram.String())
	assert.Equal(t, "BinaryExpression", ast.KBinaryExpression.String())
}

func TestChildNodes_FiltersNilOptionalFields(t *testing.T) {
	prog := mustParse(t, `<?php $a ?: $b;`)
	es := prog.Statements[0].(*ast.ExpressionStatement)
	cond := es.Expr.(*ast.ConditionalExpression)
	children := cond.GetChildren()
	for _, c := range children {
		assert.NotNil(t, c, "childNodes must filter absent optional fields, not return typed-nil entries")
	}
	assert.Len(t, children, 2, "short ternary has no Consequent child")
}
