package mxfile

import (
	"github.com/tsawler/graphia/model"
)

// cells converts the page's ordered raw records into uniform model cells.
func (r rootXML) cells() []model.Cell {
	cells := make([]model.Cell, 0, len(r.Entries))
	for _, entry := range r.Entries {
		switch {
		case entry.Cell != nil:
			cells = append(cells, directCell(*entry.Cell))
		case entry.Object != nil:
			cells = append(cells, wrappedCell(*entry.Object))
		}
	}
	return cells
}

// directCell maps an <mxCell> record attribute-for-attribute.
//
// Edge detection is deliberately permissive: some exporters omit the edge
// flag but still write a source reference, and a cell with a source is
// clearly meant as a connection.
func directCell(c cellXML) model.Cell {
	return model.Cell{
		ID:       c.ID,
		Value:    c.Value,
		Style:    c.Style,
		ParentID: c.Parent,
		Edge:     c.Edge == "1" || c.Source != "",
		SourceID: c.Source,
		TargetID: c.Target,
	}
}

// wrappedCell merges an <object>/<UserObject> container with its nested
// direct cell: the label comes from the container (label preferred over
// value), the structural attributes from the nested cell — which take
// precedence over same-named container attributes — and the hyperlink is
// preserved as its own field, never mixed into the style.
func wrappedCell(o objectXML) model.Cell {
	value := o.Label
	if value == "" {
		value = o.Value
	}

	cell := model.Cell{
		ID:       o.ID,
		Value:    value,
		Style:    o.Style,
		ParentID: o.Parent,
		Link:     o.Link,
	}

	if nested := o.Cell; nested != nil {
		if nested.ID != "" {
			cell.ID = nested.ID
		}
		if nested.Style != "" {
			cell.Style = nested.Style
		}
		if nested.Parent != "" {
			cell.ParentID = nested.Parent
		}
		cell.Edge = nested.Edge == "1" || nested.Source != ""
		cell.SourceID = nested.Source
		cell.TargetID = nested.Target
	}

	return cell
}
