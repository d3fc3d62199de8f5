package ast

// Visitor is the minimal traversal façade: Visit returns whether to
// descend into node's children. This mirrors the teacher's
// ast.Visitor/Walk pair; the richer walk/transform/find API with
// parent tracking, depth, and skip/stop control values lives in the
// sibling walk package, which is built on top of GetChildren rather
// than on this interface.
type Visitor interface {
	Visit(node Node) bool
}

// Walk recurses over node and its children in document order, calling
// v.Visit before descending. If Visit returns false, node's children
// are not visited.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if !v.Visit(node) {
		return
	}
	for _, child := range node.GetChildren() {
		Walk(v, child)
	}
}
