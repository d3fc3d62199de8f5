// Package walk implements the generic AST traversal framework: walk,
// transform, findNodes, findFirst, and an async variant. Walk,
// findNodes, findFirst and the async variant are built on ast.Node's
// GetChildren rather than a bespoke per-node-kind table; Transform
// instead enumerates Node-typed struct fields by reflection.
package walk

import (
	"golang.org/x/exp/slices"

	"github.com/wudi/phpfront/ast"
)

// Signal is the visitor's traversal-control return value.
type Signal int

const (
	SigContinue Signal = iota
	SigSkip
	SigStop
	SigTerminate
)

// Outcome is what a VisitorFunc returns: one of continue/skip/stop, or
// a terminate carrying an arbitrary result value propagated back out
// of Walk.
type Outcome struct {
	Signal Signal
	Result any
}

func Continue() Outcome         { return Outcome{Signal: SigContinue} }
func Skip() Outcome             { return Outcome{Signal: SigSkip} }
func Stop() Outcome             { return Outcome{Signal: SigStop} }
func Terminate(v any) Outcome   { return Outcome{Signal: SigTerminate, Result: v} }

// Context accompanies every visitor call: the ancestor chain
// (excluding the node itself, outermost first), the node's depth, and
// a caller-supplied value threaded through unchanged.
type Context struct {
	Parents     []ast.Node
	Depth       int
	UserContext any
}

// VisitorFunc is called before descending into a node's children.
type VisitorFunc func(node ast.Node, ctx Context) Outcome

// Walk traverses root in document order, calling visitor before
// descending into each node's children. It returns the Terminate
// value and true if the visitor terminated the walk early.
func Walk(root ast.Node, visitor VisitorFunc, userContext any) (any, bool) {
	return walkNode(root, visitor, Context{UserContext: userContext})
}

func walkNode(node ast.Node, visitor VisitorFunc, ctx Context) (any, bool) {
	if node == nil {
		return nil, false
	}
	outcome := visitor(node, ctx)
	switch outcome.Signal {
	case SigStop:
		return nil, true
	case SigTerminate:
		return outcome.Result, true
	case SigSkip:
		return nil, false
	}

	childParents := append(slices.Clone(ctx.Parents), node)
	childCtx := Context{Parents: childParents, Depth: ctx.Depth + 1, UserContext: ctx.UserContext}
	for _, child := range node.GetChildren() {
		if result, stopped := walkNode(child, visitor, childCtx); stopped {
			return result, true
		}
	}
	return nil, false
}

// FindNodes returns every node (in document order) for which pred
// holds.
func FindNodes(root ast.Node, pred func(ast.Node) bool) []ast.Node {
	var out []ast.Node
	Walk(root, func(node ast.Node, _ Context) Outcome {
		if pred(node) {
			out = append(out, node)
		}
		return Continue()
	}, nil)
	return out
}

// FindFirst returns the first node (in document order) for which pred
// holds, or nil.
func FindFirst(root ast.Node, pred func(ast.Node) bool) ast.Node {
	result, _ := Walk(root, func(node ast.Node, _ Context) Outcome {
		if pred(node) {
			return Terminate(node)
		}
		return Continue()
	}, nil)
	if result == nil {
		return nil
	}
	return result.(ast.Node)
}
