package is

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpfront/ast"
)

func TestPredicates(t *testing.T) {
	num := &ast.NumberLiteral{Base: ast.Base{Kind: ast.KNumberLiteral}, Raw: "1"}
	stmt := &ast.ExpressionStatement{Base: ast.Base{Kind: ast.KExpressionStatement}, Expr: num}
	decl := &ast.FunctionDeclaration{Base: ast.Base{Kind: ast.KFunctionDeclaration}, Name: "f"}

	assert.True(t, Expression(num))
	assert.False(t, Statement(num))

	assert.True(t, Statement(stmt))
	assert.False(t, Expression(stmt))

	assert.True(t, Declaration(decl))
	assert.False(t, Statement(decl))

	assert.True(t, Literal(num))
	assert.False(t, Literal(stmt))
}
