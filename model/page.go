package model

// Page represents a single named diagram within a multi-page document.
// It owns its cells in document encounter order plus the node tree built
// from them. Pages are constructed once and never mutate.
type Page struct {
	Name   string  // Diagram name; may be empty
	Number int     // 1-indexed page number, assigned by Document.AddPage
	Cells  []Cell  // All cells in encounter order
	Nodes  []*Node // One node per cell, same order as Cells

	// TopLevel holds nodes whose parent is absent, unresolvable, or a
	// canonical root sentinel, in encounter order.
	TopLevel []*Node

	byID map[string]*Node
}

// NewPage builds a page from normalized cells: one node per cell, an
// id→node map scoped to the page, and parent→children links inserted in
// encounter order. Only links are inserted here — no traversal happens —
// so a malformed parent cycle cannot loop the builder.
func NewPage(name string, cells []Cell) *Page {
	p := &Page{
		Name:  name,
		Cells: cells,
		Nodes: make([]*Node, 0, len(cells)),
		byID:  make(map[string]*Node),
	}

	// First pass: allocate nodes and index resolvable ids. Cells without
	// an id stay out of the map but still count toward aggregate stats.
	// Canonical root ids are never resolvable. On a duplicate id the first
	// cell wins, matching document order.
	for _, cell := range cells {
		node := &Node{Cell: cell}
		p.Nodes = append(p.Nodes, node)
		if cell.ID != "" && !IsCanonicalRoot(cell.ID) {
			if _, exists := p.byID[cell.ID]; !exists {
				p.byID[cell.ID] = node
			}
		}
	}

	// Second pass: attach children. A node whose parent is missing,
	// unresolvable, a canonical root, or itself is top-level.
	for _, node := range p.Nodes {
		parentID := node.ParentID
		if parentID == "" || IsCanonicalRoot(parentID) {
			p.TopLevel = append(p.TopLevel, node)
			continue
		}
		parent, ok := p.byID[parentID]
		if !ok || parent == node {
			p.TopLevel = append(p.TopLevel, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return p
}

// Node returns the node with the given id, or nil if the id is empty,
// canonical, or not present on this page. Id lookups are page-scoped:
// the same id on another page is a different node.
func (p *Page) Node(id string) *Node {
	if id == "" {
		return nil
	}
	return p.byID[id]
}

// ResolveName resolves a cell id to display text: the referenced node's
// resolved plain text when the node exists and has any, otherwise the raw
// id string. It never fails — dangling edge endpoints are tolerated.
func (p *Page) ResolveName(id string) string {
	if node := p.Node(id); node != nil {
		if t := node.Text(); t != "" {
			return t
		}
	}
	return id
}

// CellCount returns the total number of cells on the page.
func (p *Page) CellCount() int {
	return len(p.Cells)
}

// EdgeCount returns the number of connector cells on the page.
func (p *Page) EdgeCount() int {
	count := 0
	for _, cell := range p.Cells {
		if cell.Edge {
			count++
		}
	}
	return count
}
