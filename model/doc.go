// Package model provides the intermediate representation (IR) for extracted
// diagram content.
//
// This package defines the user-facing data structures that represent the
// semantic structure of a draw.io document. All parsing and normalization
// ultimately produces these types, making them the primary API for consuming
// extracted content.
//
// # Document Structure
//
// The [Document] type represents a complete multi-page diagram file with
// metadata and pages:
//
//	doc := model.NewDocument()
//	doc.Metadata.Host = "app.diagrams.net"
//	doc.AddPage(model.NewPage("Architecture", cells))
//
// Each [Page] owns an ordered sequence of [Cell] records in document
// encounter order, plus the [Node] tree built from them.
//
// # Cells and Nodes
//
// A [Cell] is the uniform record both on-disk cell encodings normalize to:
// atomic shape or connector data (id, raw value, style descriptor, parent
// reference, edge endpoints, optional hyperlink). Cells never mutate after
// construction.
//
// A [Node] wraps a Cell with hierarchy links. The tree is built by
// [NewPage]: one Node per Cell, parent→children links inserted in encounter
// order, and an id→Node map scoped to the page. The reserved root ids "0"
// and "1" are never resolvable to a Node; cells referencing them are
// top-level. Because input cannot be trusted to be acyclic, traversal goes
// through [Node.Walk], which carries a visited set and a depth cap.
package model
