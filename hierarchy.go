package graphia

import (
	"github.com/tsawler/graphia/classify"
	"github.com/tsawler/graphia/model"
)

// maxRenderDepth caps the structural render. Matches the traversal cap in
// the model package; only hostile or corrupt input gets near it.
const maxRenderDepth = 64

// renderPage builds the full hierarchical render of one page: the
// structural tree of top-level non-edge nodes, the flattened edge section,
// and the orphan section. Orphans are excluded from the structural tree so
// each one appears exactly once.
func renderPage(page *model.Page) HierarchyPage {
	hp := HierarchyPage{Page: pageName(page)}

	orphans := collectOrphans(page)
	orphanSet := make(map[*model.Node]bool, len(orphans))
	for _, o := range orphans {
		orphanSet[o] = true
	}

	visited := make(map[*model.Node]bool)
	for _, top := range page.TopLevel {
		if top.Edge {
			continue
		}
		if rendered, ok := renderNode(page, top, 0, visited, orphanSet); ok {
			hp.Roots = append(hp.Roots, rendered)
		}
	}

	for _, node := range page.Nodes {
		if node.Edge {
			hp.Edges = append(hp.Edges, renderEdge(page, node))
		}
	}

	for _, o := range orphans {
		hp.Orphans = append(hp.Orphans, OrphanNode{ID: o.ID, Text: o.Text()})
	}

	return hp
}

// renderNode renders one non-edge node and its subtree depth-first,
// children before sibling edge arrows. Nodes with no text anywhere in
// their subtree are dropped. The visited set and depth cap keep the render
// terminating on cyclic parent links.
func renderNode(page *model.Page, n *model.Node, depth int, visited, orphans map[*model.Node]bool) (HierarchyNode, bool) {
	if visited[n] || orphans[n] || depth > maxRenderDepth {
		return HierarchyNode{}, false
	}
	visited[n] = true

	rendered := HierarchyNode{
		ID:    n.ID,
		Text:  n.Text(),
		Shape: classify.ShapeOf(n.Style),
	}

	for _, child := range n.Children {
		if child.Edge {
			continue
		}
		if sub, ok := renderNode(page, child, depth+1, visited, orphans); ok {
			rendered.Children = append(rendered.Children, sub)
		}
	}
	for _, child := range n.Children {
		if child.Edge {
			rendered.Edges = append(rendered.Edges, renderEdge(page, child))
		}
	}

	if rendered.Text == "" && len(rendered.Children) == 0 && len(rendered.Edges) == 0 {
		return HierarchyNode{}, false
	}
	return rendered, true
}

// renderEdge resolves an edge's endpoints the same way Relationships does.
func renderEdge(page *model.Page, n *model.Node) HierarchyEdge {
	return HierarchyEdge{
		Source: page.ResolveName(n.SourceID),
		Target: page.ResolveName(n.TargetID),
		Label:  n.Text(),
		Type:   classify.RelationOf(n.Style),
	}
}

// collectOrphans finds floating annotations in encounter order: textual
// non-edge nodes whose container resolves to a real node that has no text
// of its own and no other textual non-edge child. Such nodes would be
// invisible in the structural render, which drops textless subtrees.
func collectOrphans(page *model.Page) []*model.Node {
	var orphans []*model.Node
	for _, node := range page.Nodes {
		if node.Edge || !node.HasText() {
			continue
		}
		parent := page.Node(node.ParentID)
		if parent == nil || parent == node || parent.HasText() {
			continue
		}
		if hasOtherTextualChild(parent, node) {
			continue
		}
		orphans = append(orphans, node)
	}
	return orphans
}

func hasOtherTextualChild(parent, except *model.Node) bool {
	for _, child := range parent.Children {
		if child == except || child.Edge {
			continue
		}
		if child.HasText() {
			return true
		}
	}
	return false
}
