package graphia

import (
	"github.com/tsawler/graphia/classify"
)

// hyperlinkTextLimit caps the text carried by hyperlink inventory entries.
// Overview output is a summary; full text is available via TextInventory.
const hyperlinkTextLimit = 60

// Overview summarizes a document: page structure, aggregate counts, and
// the hyperlink inventory.
type Overview struct {
	TotalPages       int              // Number of pages in the document
	PageNames        []string         // Page names in document order
	TotalCells       int              // Total cell count across all pages
	LabeledCells     int              // Cells with non-empty resolved text
	TotalConnections int              // Edge count across all pages
	Swimlanes        int              // Cells classified as swimlanes
	Decisions        int              // Cells classified as decisions
	Images           int              // Cells carrying an embedded image
	Hyperlinks       []HyperlinkEntry // Cells carrying a hyperlink target
}

// HyperlinkEntry describes one cell carrying a hyperlink target.
type HyperlinkEntry struct {
	Page   string // Owning page name
	ID     string // Cell id
	Text   string // Resolved text, truncated for summary display
	Target string // The hyperlink target
}

// Component is a non-edge cell with non-empty resolved text.
type Component struct {
	Page         string             // Owning page name
	ID           string             // Cell id
	Text         string             // Resolved plain text
	Shape        classify.ShapeType // Classified shape type
	HasHyperlink bool               // True when the cell carries a hyperlink
}

// ComponentList holds components grouped by page in encounter order.
// Truncated is set when a result cap cut the listing short.
type ComponentList struct {
	Components []Component
	Truncated  bool
}

// TextEntry is one cell from the flattened text inventory. Edges are
// included and marked.
type TextEntry struct {
	Page   string // Owning page name
	ID     string // Cell id
	Text   string // Resolved plain text
	IsEdge bool   // True for connector cells
}

// Container is a class-like grouping cell (swimlane or process shape).
type Container struct {
	Page  string             // Owning page name
	ID    string             // Cell id
	Name  string             // Resolved text, or the raw id when unlabeled
	Shape classify.ShapeType // Swimlane or process
}

// Relationship is one edge with both endpoints resolved to display names.
type Relationship struct {
	Page   string                // Owning page name
	ID     string                // Edge cell id
	Source string                // Source endpoint resolved text, or raw id
	Target string                // Target endpoint resolved text, or raw id
	Label  string                // Edge's own resolved text; may be empty
	Type   classify.RelationType // Classified relationship kind
}

// RelationshipList holds relationships in encounter order. Truncated is
// set when a result cap cut the listing short.
type RelationshipList struct {
	Relationships []Relationship
	Truncated     bool
}

// HierarchyNode is one non-edge node in the structural render, with its
// children and sibling edge arrows nested beneath it.
type HierarchyNode struct {
	ID       string             // Cell id
	Text     string             // Resolved plain text; may be empty
	Shape    classify.ShapeType // Classified shape type
	Children []HierarchyNode    // Child nodes, children before edges
	Edges    []HierarchyEdge    // Edge children rendered as arrows
}

// HierarchyEdge is an edge rendered inside the structural hierarchy as an
// arrow annotated with the relationship type.
type HierarchyEdge struct {
	Source string                // Source endpoint resolved text, or raw id
	Target string                // Target endpoint resolved text, or raw id
	Label  string                // Edge's own resolved text; may be empty
	Type   classify.RelationType // Classified relationship kind
}

// OrphanNode is a textual node whose container has no text of its own and
// no other textual child. Orphans are floating annotations that would be
// invisible in the structural render, so they are surfaced separately.
type OrphanNode struct {
	ID   string // Cell id
	Text string // Resolved plain text
}

// HierarchyPage is the full hierarchical render of one page: the
// structural tree, the flattened edge section, and the orphan section.
type HierarchyPage struct {
	Page    string          // Page name
	Roots   []HierarchyNode // Top-level non-edge nodes in encounter order
	Edges   []HierarchyEdge // All edges flattened, endpoints resolved
	Orphans []OrphanNode    // Floating annotations, each exactly once
}

// ImageEntry describes one embedded raster image found in a cell style.
type ImageEntry struct {
	Page   string // Owning page name
	ID     string // Cell id
	Format string // Decoded image format (png, jpeg, gif, bmp, webp)
	Width  int    // Pixel width
	Height int    // Pixel height
}

// ImageTextEntry is the OCR result for one embedded image.
type ImageTextEntry struct {
	Page string // Owning page name
	ID   string // Cell id
	Text string // Recognized text
}

// truncateText shortens s to at most limit runes, appending an ellipsis
// marker when anything was cut.
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
