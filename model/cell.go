package model

// Cell is the uniform record produced by normalizing the two on-disk cell
// encodings (direct mxCell elements and label-wrapped object elements).
// A Cell is immutable after construction.
type Cell struct {
	ID       string // Unique within a page; may be empty. Not unique across pages.
	Value    string // Raw, possibly HTML-encoded label text; may be empty
	Style    string // Raw style descriptor string; may be empty
	ParentID string // Containing cell id; empty or a canonical root id means top-level
	Edge     bool   // True for connector cells
	SourceID string // Edge source reference; edges only
	TargetID string // Edge target reference; edges only
	Link     string // Hyperlink target carried by wrapped cells; orthogonal to Style
}

// Canonical root ids: "0" is the model root, "1" the default layer. Cells
// with one of these as parent are top-level, and neither id is ever
// resolvable to a real Node.
const (
	rootCellID  = "0"
	layerCellID = "1"
)

// IsCanonicalRoot reports whether id is one of the reserved parent sentinel
// values meaning "no container".
func IsCanonicalRoot(id string) bool {
	return id == rootCellID || id == layerCellID
}

// HasLabel reports whether the cell carries any raw label text.
func (c Cell) HasLabel() bool {
	return c.Value != ""
}
