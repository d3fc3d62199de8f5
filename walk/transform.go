package walk

import (
	"reflect"

	"github.com/wudi/phpfront/ast"
)

var nodeType = reflect.TypeOf((*ast.Node)(nil)).Elem()

// TransformerFunc is called on every node, pre-order. Returning nil
// removes the node (from its containing slice, or drops the field to
// its zero value); any other ast.Node value replaces it, after which
// its children are themselves recursively transformed. A replacement
// must still implement whatever interface the node's field/slice
// element requires (e.g. ast.Statement for a *BlockStatement.Statements
// entry); mismatches panic, since there is no meaningful recovery.
type TransformerFunc func(node ast.Node, ctx Context) ast.Node

// Transform rebuilds root top-down: transformer runs on a node first,
// and the (possibly replaced) node's children are then transformed and
// spliced into a shallow clone. Identity is not preserved; every
// non-removed node becomes a new object, and the input tree is left
// unchanged.
func Transform(root ast.Node, transformer TransformerFunc) ast.Node {
	return transformNode(root, transformer, Context{})
}

func transformNode(node ast.Node, transformer TransformerFunc, ctx Context) ast.Node {
	if node == nil {
		return nil
	}
	replaced := transformer(node, ctx)
	if replaced == nil {
		return nil
	}
	childCtx := Context{Parents: append(append([]ast.Node(nil), ctx.Parents...), replaced), Depth: ctx.Depth + 1, UserContext: ctx.UserContext}
	return rebuildChildren(replaced, transformer, childCtx)
}

// rebuildChildren shallow-clones node's underlying struct and replaces
// every Node-shaped field (a direct ast.Node-implementing field, or a
// slice of ast.Node-implementing elements) with its transformed value.
// This is the generic reflective fallback spec §4.9/§9 calls for: it
// lets Transform handle every concrete AST struct without a bespoke
// rebuild method per type.
func rebuildChildren(node ast.Node, transformer TransformerFunc, ctx Context) ast.Node {
	val := reflect.ValueOf(node)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return node
	}
	elem := val.Elem()
	clone := reflect.New(elem.Type())
	clone.Elem().Set(elem)
	cv := clone.Elem()

	for i := 0; i < cv.NumField(); i++ {
		f := cv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.Interface:
			transformInterfaceField(f, transformer, ctx)
		case reflect.Ptr:
			transformPtrField(f, transformer, ctx)
		case reflect.Slice:
			transformSliceField(f, transformer, ctx)
		}
	}
	return clone.Interface().(ast.Node)
}

func transformInterfaceField(f reflect.Value, transformer TransformerFunc, ctx Context) {
	if f.IsNil() {
		return
	}
	child, ok := f.Interface().(ast.Node)
	if !ok {
		return
	}
	newChild := transformNode(child, transformer, ctx)
	if newChild == nil {
		f.Set(reflect.Zero(f.Type()))
		return
	}
	f.Set(reflect.ValueOf(newChild))
}

func transformPtrField(f reflect.Value, transformer TransformerFunc, ctx Context) {
	if f.IsNil() {
		return
	}
	child, ok := f.Interface().(ast.Node)
	if !ok {
		return
	}
	newChild := transformNode(child, transformer, ctx)
	if newChild == nil {
		f.Set(reflect.Zero(f.Type()))
		return
	}
	f.Set(reflect.ValueOf(newChild))
}

func transformSliceField(f reflect.Value, transformer TransformerFunc, ctx Context) {
	elemType := f.Type().Elem()
	isNodeElem := (elemType.Kind() == reflect.Interface || elemType.Kind() == reflect.Ptr) && elemType.Implements(nodeType)
	if !isNodeElem {
		return
	}
	out := reflect.MakeSlice(f.Type(), 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		ev := f.Index(i)
		if ev.IsNil() {
			continue
		}
		child, ok := ev.Interface().(ast.Node)
		if !ok {
			out = reflect.Append(out, ev)
			continue
		}
		newChild := transformNode(child, transformer, ctx)
		if newChild == nil {
			continue
		}
		out = reflect.Append(out, reflect.ValueOf(newChild))
	}
	f.Set(out)
}
