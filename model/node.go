package model

import (
	"github.com/tsawler/graphia/text"
)

// maxWalkDepth caps guarded traversals. Well-formed diagrams nest a handful
// of levels deep; the cap only matters for hostile or corrupt input.
const maxWalkDepth = 64

// Node is a Cell enriched with hierarchy links. Each Node is owned by
// exactly its parent's Children list; top-level nodes are owned by the Page.
type Node struct {
	Cell
	Children []*Node
}

// Text returns the resolved plain text of the node's raw value: HTML
// entities decoded, tags stripped, whitespace collapsed. Resolution happens
// on demand so callers that need the raw value still have it in Cell.Value.
func (n *Node) Text() string {
	return text.Plain(n.Value)
}

// HasText reports whether the node resolves to non-empty plain text.
func (n *Node) HasText() bool {
	return n.Text() != ""
}

// Walk visits n and its descendants depth-first in child order, calling fn
// with each node and its depth. If fn returns false the node's children are
// skipped. The traversal carries a visited set and a depth cap, so it
// terminates even when malformed input links nodes into a cycle.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	visited := make(map[*Node]bool)
	n.walk(0, visited, fn)
}

func (n *Node) walk(depth int, visited map[*Node]bool, fn func(node *Node, depth int) bool) {
	if n == nil || visited[n] || depth > maxWalkDepth {
		return
	}
	visited[n] = true
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(depth+1, visited, fn)
	}
}
