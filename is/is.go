// Package is provides the node-kind predicates downstream tools use to
// classify an ast.Node without a type switch: is.Statement, is.Expression,
// is.Declaration, is.Literal.
package is

import "github.com/wudi/phpfront/ast"

func Statement(n ast.Node) bool {
	_, ok := n.(ast.Statement)
	return ok
}

func Expression(n ast.Node) bool {
	_, ok := n.(ast.Expression)
	return ok
}

func Declaration(n ast.Node) bool {
	_, ok := n.(ast.Declaration)
	return ok
}

// Literal reports whether n is one of the literal expression kinds:
// number, string, boolean, or null.
func Literal(n ast.Node) bool {
	switch n.(type) {
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	default:
		return false
	}
}
