package walk

import (
	"context"
	"errors"
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

func TestWalk_VisitsEveryVariableInDocumentOrder(t *testing.T) {
	prog := mustParse(t, `<?php $a = $b + $c;`)
	var names []string
	Walk(prog, func(node ast.Node, _ Context) Outcome {
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
		}
		return Continue()
	}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestWalk_SkipPrunesSubtree(t *testing.T) {
	prog := mustParse(t, `<?php $a = $b + $c; $d = $e;`)
	var names []string
	Walk(prog, func(node ast.Node, _ Context) Outcome {
		if assign, ok := node.(*ast.AssignmentExpression); ok {
			if v, ok := assign.Left.(*ast.Variable); ok && v.Name == "a" {
				return Skip()
			}
		}
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
		}
		return Continue()
	}, nil)
	assert.Equal(t, []string{"d", "e"}, names)
}

func TestWalk_StopHaltsTraversalEntirely(t *testing.T) {
	prog := mustParse(t, `<?php $a; $b; $c;`)
	var names []string
	_, stopped := Walk(prog, func(node ast.Node, _ Context) Outcome {
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
			if v.Name == "b" {
				return Stop()
			}
		}
		return Continue()
	}, nil)
	assert.True(t, stopped)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestWalk_ParentsAreTrackedOutermostFirst(t *testing.T) {
	prog := mustParse(t, `<?php $a = 1;`)
	var gotParents []string
	Walk(prog, func(node ast.Node, ctx Context) Outcome {
		if v, ok := node.(*ast.Variable); ok && v.Name == "a" {
			for _, p := range ctx.Parents {
				gotParents = append(gotParents, p.GetKind().String())
			}
		}
		return Continue()
	}, nil)
	require.NotEmpty(t, gotParents)
	assert.Equal(t, "Program", gotParents[0])
}

func TestFindNodes_CollectsAllMatches(t *testing.T) {
	prog := mustParse(t, `<?php function f() { $x = 1; } function g() { $y = 2; }`)
	fns := FindNodes(prog, func(n ast.Node) bool {
		_, ok := n.(*ast.FunctionDeclaration)
		return ok
	})
	assert.Len(t, fns, 2)
}

func TestFindFirst_ReturnsNilWhenNoMatch(t *testing.T) {
	prog := mustParse(t, `<?php $a = 1;`)
	found := FindFirst(prog, func(n ast.Node) bool {
		_, ok := n.(*ast.ClassDeclaration)
		return ok
	})
	assert.Nil(t, found)
}

func TestTransform_RewritesVariableNames(t *testing.T) {
	prog := mustParse(t, `<?php $old = $old + 1;`)
	rewritten := Transform(prog, func(node ast.Node, _ Context) ast.Node {
		if v, ok := node.(*ast.Variable); ok && v.Name == "old" {
			clone := *v
			clone.Name = "new"
			return &clone
		}
		return node
	})
	var names []string
	Walk(rewritten, func(node ast.Node, _ Context) Outcome {
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
		}
		return Continue()
	}, nil)
	assert.Equal(t, []string{"new", "new"}, names)
}

func TestTransform_NilRemovesStatementFromBlock(t *testing.T) {
	prog := mustParse(t, `<?php { $a; $b; $c; }`)
	rewritten := Transform(prog, func(node ast.Node, _ Context) ast.Node {
		if es, ok := node.(*ast.ExpressionStatement); ok {
			if v, ok := es.Expr.(*ast.Variable); ok && v.Name == "b" {
				return nil
			}
		}
		return node
	})
	var names []string
	Walk(rewritten, func(node ast.Node, _ Context) Outcome {
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
		}
		return Continue()
	}, nil)
	assert.Equal(t, []string{"a", "c"}, names)
}

func TestWalkAsync_VisitsInDocumentOrder(t *testing.T) {
	prog := mustParse(t, `<?php $a; $b;`)
	var names []string
	_, stopped, err := WalkAsync(context.Background(), prog, func(_ context.Context, node ast.Node, _ Context) (Outcome, error) {
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
		}
		return Continue(), nil
	}, nil)
	require.NoError(t, err)
	assert.False(t, stopped)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestWalkAsync_PropagatesVisitorError(t *testing.T) {
	prog := mustParse(t, `<?php $a;`)
	boom := errors.New("boom")
	_, stopped, err := WalkAsync(context.Background(), prog, func(_ context.Context, node ast.Node, _ Context) (Outcome, error) {
		if _, ok := node.(*ast.Variable); ok {
			return Outcome{}, boom
		}
		return Continue(), nil
	}, nil)
	assert.True(t, stopped)
	assert.ErrorIs(t, err, boom)
}

func TestWalkAsync_RespectsCancellation(t *testing.T) {
	prog := mustParse(t, `<?php $a; $b; $c;`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, stopped, err := WalkAsync(ctx, prog, func(_ context.Context, _ ast.Node, _ Context) (Outcome, error) {
		return Continue(), nil
	}, nil)
	assert.True(t, stopped)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransform_DoesNotMutateOriginalTree(t *testing.T) {
	prog := mustParse(t, `<?php $old;`)
	_ = Transform(prog, func(node ast.Node, _ Context) ast.Node {
		if v, ok := node.(*ast.Variable); ok {
			clone := *v
			clone.Name = "new"
			return &clone
		}
		return node
	})
	var names []string
	Walk(prog, func(node ast.Node, _ Context) Outcome {
		if v, ok := node.(*ast.Variable); ok {
			names = append(names, v.Name)
		}
		return Continue()
	}, nil)
	assert.Equal(t, []string{"old"}, names, "Transform must not mutate the input tree")
}
