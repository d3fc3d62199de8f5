package walk

import (
	"context"

	"github.com/wudi/phpfront/ast"
)

// AsyncVisitorFunc mirrors VisitorFunc but may suspend (the caller's
// implementation can do I/O, yield to a scheduler, etc.) between
// nodes. WalkAsync guarantees sequential, never concurrent, visits:
// a node's children run only after its own visitor call returns, and
// siblings run in document order — the same ordering guarantee as the
// synchronous Walk, just with cooperative suspension points around
// each call.
type AsyncVisitorFunc func(ctx context.Context, node ast.Node, wctx Context) (Outcome, error)

// WalkAsync traverses root the way Walk does, except the visitor may
// return an error (propagated immediately, aborting the walk) and the
// whole traversal is cancellable via ctx. It never parallelizes across
// children or siblings.
func WalkAsync(ctx context.Context, root ast.Node, visitor AsyncVisitorFunc, userContext any) (any, bool, error) {
	return walkNodeAsync(ctx, root, visitor, Context{UserContext: userContext})
}

func walkNodeAsync(ctx context.Context, node ast.Node, visitor AsyncVisitorFunc, wctx Context) (any, bool, error) {
	if node == nil {
		return nil, false, nil
	}
	select {
	case <-ctx.Done():
		return nil, true, ctx.Err()
	default:
	}

	outcome, err := visitor(ctx, node, wctx)
	if err != nil {
		return nil, true, err
	}
	switch outcome.Signal {
	case SigStop:
		return nil, true, nil
	case SigTerminate:
		return outcome.Result, true, nil
	case SigSkip:
		return nil, false, nil
	}

	childParents := append(append([]ast.Node(nil), wctx.Parents...), node)
	childCtx := Context{Parents: childParents, Depth: wctx.Depth + 1, UserContext: wctx.UserContext}
	for _, child := range node.GetChildren() {
		result, stopped, err := walkNodeAsync(ctx, child, visitor, childCtx)
		if err != nil {
			return nil, true, err
		}
		if stopped {
			return result, true, nil
		}
	}
	return nil, false, nil
}
